package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/square-breathing/internal/config"
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	g.drawSquare(screen)
	g.drawHalo(screen)
	g.drawBall(screen)
	g.drawLabel(screen)
	g.drawCornerDots(screen)

	status := fmt.Sprintf("%s  cycles: %d  Esc/Q: quit", formatDuration(g.session), g.cycles)
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

// Edges keep their own colors whatever the current phase is.
func (g *Game) drawSquare(screen *ebiten.Image) {
	for _, e := range g.square.Edges() {
		vector.StrokeLine(screen,
			float32(e.From.X), float32(e.From.Y), float32(e.To.X), float32(e.To.Y),
			config.LineWidth, e.Phase.Color(), true)
	}
}

func (g *Game) drawHalo(screen *ebiten.Image) {
	if g.level < 0.01 {
		return
	}
	c := g.state.LineColor
	halo := color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(160 * g.level)}
	radius := config.BallRadius + g.level*config.HaloGain
	vector.DrawFilledCircle(screen, float32(g.state.Ball.X), float32(g.state.Ball.Y), float32(radius), halo, true)
}

func (g *Game) drawBall(screen *ebiten.Image) {
	vector.DrawFilledCircle(screen, float32(g.state.Ball.X), float32(g.state.Ball.Y), config.BallRadius, config.BallColor, true)
}

func (g *Game) drawLabel(screen *ebiten.Image) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(config.WindowWidth/2, config.WindowHeight/2)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(config.TextColor)
	op.ColorScale.ScaleAlpha(float32(labelAlpha(g.state.Progress)) / 255)
	text.Draw(screen, g.state.Phase.String(), g.face, op)
}

func (g *Game) drawCornerDots(screen *ebiten.Image) {
	for _, p := range g.square.Corners() {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), config.CornerDotRadius, config.CornerDotColor, true)
	}
}
