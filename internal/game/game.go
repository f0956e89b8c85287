package game

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/drift/internal/config"
	"github.com/iburimskiy/drift/internal/drift"
	"github.com/iburimskiy/drift/internal/media"
	"github.com/iburimskiy/drift/internal/prefs"
	"github.com/iburimskiy/drift/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game wires the circle manager, background media and control panel into an
// ebiten.Game. All state is touched from the ebiten loop only.
type Game struct {
	cfg     *config.Config
	manager *drift.Manager
	regions []*drift.Region
	sprites *spriteCache

	player     *media.Player
	store      *prefs.Store
	panel      *ui.Panel
	openDialog func() (string, error)

	tps              int
	screenW, screenH int
	laidOut          bool

	// viz
	time       float64
	colorPhase float64

	// input edge detection
	prevKey map[ebiten.Key]bool

	lastErr error
}

// input is one tick's worth of pointer and keyboard state.
type input struct {
	mouseX, mouseY int
	justPressed    bool
	justReleased   bool

	pause       bool
	reset       bool
	togglePanel bool
	quit        bool
}

// NewGame builds a Game from cfg. A nil store keeps preferences in memory,
// and a nil rng uses the global random source.
func NewGame(cfg *config.Config, store *prefs.Store, rng *rand.Rand) (*Game, error) {
	settings, err := settingsFrom(cfg)
	if err != nil {
		return nil, err
	}
	if store == nil {
		store = prefs.NewStore(nil)
	}

	g := &Game{
		cfg:        cfg,
		manager:    drift.NewManager(settings, rng),
		sprites:    newSpriteCache(settings.BlurRadius),
		player:     media.NewPlayer(cfg.Media.Sources, rng),
		store:      store,
		panel:      ui.NewPanel(config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, store.Get().PanelExpanded),
		openDialog: media.OpenDialog,
		tps:        cfg.Window.TPS,
		screenW:    cfg.Window.Width,
		screenH:    cfg.Window.Height,
		prevKey:    map[ebiten.Key]bool{},
	}
	for _, rc := range cfg.Regions {
		r := drift.NewRegion(drift.ContainerID(rc.Name), rc.X, rc.Y, rc.Width, rc.Height)
		g.regions = append(g.regions, r)
		g.manager.AddContainer(r)
	}
	return g, nil
}

func settingsFrom(cfg *config.Config) (drift.Settings, error) {
	fill, err := config.ParseHexColor(cfg.Circles.Fill)
	if err != nil {
		return drift.Settings{}, fmt.Errorf("invalid circle fill: %w", err)
	}
	c := cfg.Circles
	return drift.Settings{
		MaxPerContainer:      c.MaxPerContainer,
		SizeMin:              c.SizeMin,
		SizeMax:              c.SizeMax,
		DurationMin:          c.DurationMin,
		DurationMax:          c.DurationMax,
		EdgeOffsetMultiplier: c.EdgeOffsetMultiplier,
		Fill:                 fill,
		BlurRadius:           c.BlurRadius,
	}, nil
}

// StartMedia picks the first background track. With no configured sources
// it falls back to the last file the user opened.
func (g *Game) StartMedia() {
	if !g.cfg.Media.Autoplay {
		return
	}
	err := g.player.PlayRandom()
	if errors.Is(err, media.ErrNoSources) {
		last := g.store.Get().LastSource
		if last == "" {
			return
		}
		err = g.player.Play(last)
	}
	if err != nil {
		g.setErr(err)
	}
}

// Close stops media playback.
func (g *Game) Close() {
	g.player.Close()
}

func (g *Game) Update() error {
	return g.step(g.readInput())
}

func (g *Game) readInput() input {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mx, my := ebiten.CursorPosition()
	return input{
		mouseX:       mx,
		mouseY:       my,
		justPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		justReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		pause:        justPressed(ebiten.KeySpace),
		reset:        justPressed(ebiten.KeyR),
		togglePanel:  justPressed(ebiten.KeyTab),
		quit:         justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ),
	}
}

func (g *Game) step(in input) error {
	switch g.panel.Update(in.mouseX, in.mouseY, in.justPressed, in.justReleased) {
	case ui.ActionToggle:
		g.store.SetPanelExpanded(g.panel.Expanded)
	case ui.ActionShuffle:
		if err := g.player.PlayRandom(); err != nil {
			g.setErr(err)
		}
	case ui.ActionOpen:
		g.openAndPlay()
	}

	if in.togglePanel {
		g.panel.Flip()
		g.store.SetPanelExpanded(g.panel.Expanded)
	}
	if in.pause {
		g.player.TogglePause()
	}
	if in.reset {
		log.Printf("[Game] Manual reset of %d regions", len(g.regions))
		g.manager.ResetAll()
	}
	if in.quit {
		return ebiten.Termination
	}

	g.manager.Update(time.Second / time.Duration(g.tps))
	if err := g.player.Update(); err != nil {
		g.setErr(err)
	}

	g.time += 1.0 / float64(g.tps)
	g.colorPhase += config.ColorShiftSpeed
	return nil
}

func (g *Game) openAndPlay() {
	path, err := g.openDialog()
	if err != nil {
		g.setErr(err)
		return
	}
	if path == "" {
		return
	}
	if err := g.player.Play(path); err != nil {
		g.setErr(err)
		return
	}
	g.store.SetLastSource(path)
}

func (g *Game) setErr(err error) {
	log.Printf("[Game] Error: %v", err)
	g.lastErr = err
}

// Layout follows the window size. Any change resizes every region and
// reseeds it, so no circle keeps a path computed for the old size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.screenW, g.screenH
	}
	if !g.laidOut || outsideWidth != g.screenW || outsideHeight != g.screenH {
		g.relayout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) relayout(w, h int) {
	g.screenW, g.screenH = w, h
	for _, r := range g.regions {
		r.Resize(w, h)
	}
	log.Printf("[Game] Layout %dx%d, reseeding %d regions", w, h, len(g.regions))
	g.manager.ResetAll()
	g.laidOut = true
}
