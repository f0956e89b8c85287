package game

import (
	"errors"
	"math"
	"math/rand/v2"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/drift/internal/config"
	"github.com/iburimskiy/drift/internal/drift"

	"github.com/hajimehoshi/ebiten/v2"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	cfg := config.Default()
	cfg.Media.Autoplay = false
	g, err := NewGame(cfg, nil, rand.New(rand.NewPCG(7, 8)))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	g.openDialog = func() (string, error) { return "", nil }
	return g
}

func TestNewGameRegistersRegions(t *testing.T) {
	g := newTestGame(t)
	if len(g.regions) != 2 {
		t.Fatalf("regions = %d, want 2", len(g.regions))
	}
	if len(g.manager.Containers()) != 2 {
		t.Errorf("manager containers = %d, want 2", len(g.manager.Containers()))
	}
	if g.manager.Total() != 0 {
		t.Errorf("circles spawned before first layout: %d", g.manager.Total())
	}
}

func TestNewGameRejectsBadFill(t *testing.T) {
	cfg := config.Default()
	cfg.Circles.Fill = "white"
	if _, err := NewGame(cfg, nil, nil); err == nil {
		t.Error("expected an error for an invalid fill color")
	}
}

func TestLayoutSeedsAndReseeds(t *testing.T) {
	g := newTestGame(t)
	maxPer := g.cfg.Circles.MaxPerContainer

	if w, h := g.Layout(800, 600); w != 800 || h != 600 {
		t.Fatalf("Layout = %dx%d", w, h)
	}
	for _, r := range g.regions {
		n := g.manager.Count(r.ID())
		if n < 1 || n > maxPer {
			t.Errorf("%s: %d circles after first layout", r.ID(), n)
		}
	}
	spawned := g.manager.Stats().Spawned

	g.Layout(800, 600)
	if g.manager.Stats().Spawned != spawned {
		t.Error("unchanged layout reseeded the regions")
	}

	g.Layout(1200, 700)
	if g.manager.Stats().Spawned == spawned {
		t.Error("resize did not reseed")
	}
	_, _, w, h := g.regions[0].Bounds()
	if w != 1200 || math.Abs(h-420) > 1e-9 {
		t.Errorf("hero bounds %vx%v after resize", w, h)
	}
}

func TestLayoutIgnoresEmptyWindow(t *testing.T) {
	g := newTestGame(t)
	if w, h := g.Layout(0, 0); w != config.WindowWidth || h != config.WindowHeight {
		t.Errorf("Layout(0, 0) = %dx%d, want the configured size", w, h)
	}
	if g.manager.Total() != 0 {
		t.Error("empty layout seeded circles")
	}
}

func TestStepKeepsPopulationCapped(t *testing.T) {
	g := newTestGame(t)
	g.Layout(1024, 640)
	maxPer := g.cfg.Circles.MaxPerContainer

	// Ten simulated minutes at 60 TPS.
	for i := 0; i < 60*60*10; i++ {
		if err := g.step(input{}); err != nil {
			t.Fatalf("step: %v", err)
		}
		if i%600 != 0 {
			continue
		}
		for _, r := range g.regions {
			if n := g.manager.Count(r.ID()); n < 1 || n > maxPer {
				t.Fatalf("tick %d: %s has %d circles", i, r.ID(), n)
			}
		}
	}
	if g.manager.Stats().Completed == 0 {
		t.Error("no circle completed in ten minutes")
	}
}

func TestStepReset(t *testing.T) {
	g := newTestGame(t)
	g.Layout(1024, 640)
	before := g.manager.Stats().Spawned

	if err := g.step(input{reset: true}); err != nil {
		t.Fatal(err)
	}
	if g.manager.Stats().Spawned <= before {
		t.Error("reset key did not reseed")
	}
}

func TestStepQuit(t *testing.T) {
	g := newTestGame(t)
	if err := g.step(input{quit: true}); !errors.Is(err, ebiten.Termination) {
		t.Errorf("quit step = %v, want ebiten.Termination", err)
	}
}

func TestStepTogglePanelPersists(t *testing.T) {
	g := newTestGame(t)
	g.step(input{togglePanel: true})
	if !g.panel.Expanded || !g.store.Get().PanelExpanded {
		t.Errorf("expanded=%v stored=%v", g.panel.Expanded, g.store.Get().PanelExpanded)
	}

	tx, ty := g.panel.Toggle.X+1, g.panel.Toggle.Y+1
	g.step(input{mouseX: tx, mouseY: ty, justPressed: true})
	g.step(input{mouseX: tx, mouseY: ty, justReleased: true})
	if g.panel.Expanded || g.store.Get().PanelExpanded {
		t.Error("toggle click did not collapse the panel")
	}
}

func TestOpenAndPlay(t *testing.T) {
	g := newTestGame(t)

	g.openAndPlay()
	if g.lastErr != nil {
		t.Errorf("cancelled dialog set an error: %v", g.lastErr)
	}

	dialogErr := errors.New("no display")
	g.openDialog = func() (string, error) { return "", dialogErr }
	g.openAndPlay()
	if !errors.Is(g.lastErr, dialogErr) {
		t.Errorf("lastErr = %v, want dialog error", g.lastErr)
	}

	missing := filepath.Join(t.TempDir(), "missing.mp3")
	g.openDialog = func() (string, error) { return missing, nil }
	g.openAndPlay()
	if g.lastErr == nil || g.store.Get().LastSource != "" {
		t.Errorf("failed play: lastErr=%v lastSource=%q", g.lastErr, g.store.Get().LastSource)
	}
}

func TestStartMediaWithoutSources(t *testing.T) {
	g := newTestGame(t)
	g.cfg.Media.Autoplay = true
	g.StartMedia()
	if g.lastErr != nil {
		t.Errorf("StartMedia with no sources set an error: %v", g.lastErr)
	}
	if g.statusLine() == "" {
		t.Error("empty status line")
	}
}

func TestSettingsFrom(t *testing.T) {
	s, err := settingsFrom(config.Default())
	if err != nil {
		t.Fatal(err)
	}
	want := drift.Settings{
		MaxPerContainer:      5,
		SizeMin:              150,
		SizeMax:              400,
		DurationMin:          8,
		DurationMax:          20,
		EdgeOffsetMultiplier: 1.5,
		BlurRadius:           30,
	}
	want.Fill.R, want.Fill.G, want.Fill.B, want.Fill.A = 255, 255, 255, 0x26
	if s != want {
		t.Errorf("settingsFrom = %+v, want %+v", s, want)
	}
}
