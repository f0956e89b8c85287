package game

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"

	"github.com/iburimskiy/drift/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawCircles(screen)
	g.drawPanel(screen)
	ebitenutil.DebugPrintAt(screen, g.statusLine(), 12, 12)
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	// Brighten with the background track's loudness.
	boost := 25 * clamp01(g.player.Level())
	for y := 0; y < g.screenH; y += 2 {
		ratio := float64(y) / float64(g.screenH)
		r := uint8(20 + boost + 15*math.Sin(g.time*0.2+ratio*math.Pi))
		g_val := uint8(12 + boost + 10*math.Cos(g.time*0.15+ratio*math.Pi))
		b := uint8(30 + boost + 20*math.Sin(g.time*0.25+ratio*math.Pi))
		vector.DrawFilledRect(screen, 0, float32(y), float32(g.screenW), 2, color.RGBA{R: r, G: g_val, B: b, A: 255}, false)
	}
}

func (g *Game) drawCircles(screen *ebiten.Image) {
	margin := float64(g.sprites.blur)
	for _, r := range g.regions {
		x0, y0, _, _ := r.Bounds()
		for _, st := range g.manager.Circles(r.ID()) {
			tex, scale := g.sprites.get(st.Size)

			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(-margin, -margin)
			op.GeoM.Scale(scale, scale)
			op.GeoM.Translate(x0+st.Position.X, y0+st.Position.Y)
			op.ColorScale.ScaleWithColor(st.Fill)
			op.Filter = ebiten.FilterLinear
			screen.DrawImage(tex, op)
		}
	}
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	drawButton(screen, &g.panel.Toggle)
	if !g.panel.Expanded {
		return
	}

	x, y, w, h := g.panel.Body()
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), color.RGBA{R: 20, G: 25, B: 35, A: 200}, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, color.RGBA{R: 60, G: 70, B: 90, A: 255}, false)

	// Tint the panel border with the current hue so it drifts with the scene.
	hr, hg, hb := hsvToRgb(g.colorPhase*360, 0.5, 0.9)
	vector.StrokeLine(screen, float32(x), float32(y), float32(x+w), float32(y), 2, color.RGBA{R: hr, G: hg, B: hb, A: 255}, false)

	drawButton(screen, &g.panel.Shuffle)
	drawButton(screen, &g.panel.Open)
}

func drawButton(screen *ebiten.Image, b *ui.Button) {
	var bgColor color.Color
	if b.Pressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if b.Hovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}

	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bgColor, false)

	borderColor := color.RGBA{R: 150, G: 170, B: 200, A: 255}
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, borderColor, false)

	textWidth := len(b.Label) * 6 // debug font glyph width
	textX := b.X + (b.W-textWidth)/2
	textY := b.Y + (b.H-16)/2
	ebitenutil.DebugPrintAt(screen, b.Label, textX, textY)
}

func (g *Game) statusLine() string {
	st := g.manager.Stats()
	status := fmt.Sprintf("circles %d  spawned %d  completed %d", g.manager.Total(), st.Spawned, st.Completed)

	if track := g.player.Current(); track != "" {
		elapsed, total := g.player.Position()
		status += fmt.Sprintf(" | %s %s/%s", filepath.Base(track), formatDuration(elapsed), formatDuration(total))
		if g.player.Paused() {
			status += " (paused)"
		}
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	return status
}
