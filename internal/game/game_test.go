package game

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iburimskiy/square-breathing/internal/breath"
	"github.com/iburimskiy/square-breathing/internal/config"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) set(start time.Time, d time.Duration) { c.now = start.Add(d) }

type fakeCues struct {
	played []breath.Phase
	level  float64
}

func (c *fakeCues) Play(p breath.Phase) { c.played = append(c.played, p) }
func (c *fakeCues) Level() float64      { return c.level }

func newTestGame(t *testing.T) (*Game, *fakeClock, *fakeCues, *bool) {
	t.Helper()
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	cues := &fakeCues{}
	quit := false
	g, err := New(Options{
		Cues:   cues,
		Logger: zap.NewNop(),
		Clock:  clock,
		Quit:   func() bool { return quit },
	})
	require.NoError(t, err)
	return g, clock, cues, &quit
}

func TestNewRequiresCues(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}

func TestUpdatePlaysCueOncePerPhase(t *testing.T) {
	g, clock, cues, _ := newTestGame(t)
	start := clock.now

	ticks := []time.Duration{
		0,
		time.Second,
		4 * time.Second,
		5 * time.Second,
		6 * time.Second,
		9 * time.Second,
		13 * time.Second,
		15 * time.Second,
		16 * time.Second,
		17 * time.Second,
	}
	for _, d := range ticks {
		clock.set(start, d)
		require.NoError(t, g.Update())
	}

	assert.Equal(t, []breath.Phase{
		breath.Inhale,
		breath.Hold,
		breath.Exhale,
		breath.Hold,
		breath.Inhale,
	}, cues.played)
	assert.Equal(t, 1, g.Cycles())
	assert.Equal(t, 17*time.Second, g.Session())
}

func TestUpdateTracksBall(t *testing.T) {
	g, clock, _, _ := newTestGame(t)
	start := clock.now

	clock.set(start, 2*time.Second)
	require.NoError(t, g.Update())
	assert.Equal(t, breath.Inhale, g.state.Phase)
	assert.InDelta(t, 0.5, g.state.Progress, 1e-9)
	assert.Equal(t, breath.Point{X: 400, Y: 100}, g.state.Ball)

	clock.set(start, 10*time.Second)
	require.NoError(t, g.Update())
	assert.Equal(t, breath.Exhale, g.state.Phase)
	assert.Equal(t, config.LightGrey, g.state.LineColor)
	assert.Equal(t, breath.Point{X: 400, Y: 500}, g.state.Ball)

	// A whole number of cycles later the ball is back where it was.
	clock.set(start, 10*time.Second+3*16*time.Second)
	require.NoError(t, g.Update())
	assert.Equal(t, breath.Point{X: 400, Y: 500}, g.state.Ball)
}

func TestUpdateSmoothsLevel(t *testing.T) {
	g, _, cues, _ := newTestGame(t)

	cues.level = 1
	require.NoError(t, g.Update())
	assert.InDelta(t, 1-config.SmoothingFactor, g.level, 1e-9)

	for i := 0; i < 200; i++ {
		require.NoError(t, g.Update())
	}
	assert.InDelta(t, 1, g.level, 1e-6)

	cues.level = 5
	require.NoError(t, g.Update())
	assert.LessOrEqual(t, g.level, 1.0)
}

func TestUpdateQuit(t *testing.T) {
	g, _, cues, quit := newTestGame(t)

	require.NoError(t, g.Update())
	*quit = true
	err := g.Update()
	assert.True(t, errors.Is(err, ebiten.Termination))
	assert.Len(t, cues.played, 1)
}

func TestLayout(t *testing.T) {
	g, _, _, _ := newTestGame(t)
	w, h := g.Layout(1920, 1080)
	assert.Equal(t, config.WindowWidth, w)
	assert.Equal(t, config.WindowHeight, h)
}
