// Package game runs the breathing guide as an ebiten game: every tick it
// samples the clock, works out the current phase and fires the cue when
// the phase changes; every frame it paints the square, the ball and the
// fading instruction.
package game

import (
	"bytes"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/square-breathing/internal/breath"
	"github.com/iburimskiy/square-breathing/internal/config"
)

// CuePlayer plays phase cues without blocking and reports their loudness.
type CuePlayer interface {
	Play(phase breath.Phase)
	Level() float64
}

type Options struct {
	Cues   CuePlayer
	Logger *zap.Logger
	// Clock defaults to the system clock.
	Clock Clock
	// Quit reports whether the user asked to leave. Defaults to Esc or Q.
	Quit func() bool
}

type Game struct {
	clock  Clock
	cues   CuePlayer
	logger *zap.Logger
	quit   func() bool

	square breath.Square
	side   float64
	start  time.Time

	// loop state, fed back into the next tick
	lastPhase breath.Phase
	state     breath.State
	level     float64
	session   time.Duration
	cycles    int

	face    *text.GoTextFace
	prevKey map[ebiten.Key]bool
}

func New(opts Options) (*Game, error) {
	if opts.Cues == nil {
		return nil, fmt.Errorf("game: cue player is required")
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load label font: %w", err)
	}

	g := &Game{
		clock:   opts.Clock,
		cues:    opts.Cues,
		logger:  opts.Logger,
		quit:    opts.Quit,
		square:  breath.NewSquare(config.WindowWidth/2, config.WindowHeight/2, config.SquareSize),
		side:    config.SideDuration,
		face:    &text.GoTextFace{Source: src, Size: config.LabelFontSize},
		prevKey: map[ebiten.Key]bool{},
	}
	if g.clock == nil {
		g.clock = systemClock{}
	}
	if g.logger == nil {
		g.logger = zap.NewNop()
	}
	if g.quit == nil {
		g.quit = g.keyQuit
	}
	g.start = g.clock.Now()
	g.state = breath.Compute(0, g.side, g.square, breath.None)
	return g, nil
}

func (g *Game) Update() error {
	if g.quit() {
		g.logger.Info("Quit requested",
			zap.Duration("session", g.session),
			zap.Int("cycles", g.cycles),
		)
		return ebiten.Termination
	}

	g.session = g.clock.Now().Sub(g.start)
	elapsed := breath.Normalize(g.session.Seconds(), g.side)

	st := breath.Compute(elapsed, g.side, g.square, g.lastPhase)
	if st.Cue {
		if st.Phase == breath.Inhale && g.lastPhase != breath.None {
			g.cycles++
		}
		g.cues.Play(st.Phase)
		g.logger.Debug("Phase changed",
			zap.Stringer("from", g.lastPhase),
			zap.Stringer("to", st.Phase),
			zap.Float64("elapsed", elapsed),
		)
	}
	g.lastPhase = st.Phase
	g.state = st

	g.level = config.SmoothingFactor*g.level + (1-config.SmoothingFactor)*clamp01(g.cues.Level())
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Session is the time since the guide started.
func (g *Game) Session() time.Duration { return g.session }

// Cycles is the number of completed breathing cycles.
func (g *Game) Cycles() int { return g.cycles }

func (g *Game) keyQuit() bool {
	return g.justPressed(ebiten.KeyEscape) || g.justPressed(ebiten.KeyQ)
}

func (g *Game) justPressed(k ebiten.Key) bool {
	pressed := ebiten.IsKeyPressed(k)
	jp := pressed && !g.prevKey[k]
	g.prevKey[k] = pressed
	return jp
}
