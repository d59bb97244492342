package config

import (
	"image/color"
	"time"
)

const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "Yoga Breathing Exercise"

	// Ticks per second for the update loop
	TPS = 60

	// Square geometry
	SquareSize = 400
	LineWidth  = 5

	BallRadius      = 20
	CornerDotRadius = 10

	// Breathing cadence: seconds per side of the square
	SideDuration = 4.0

	LabelFontSize = 100

	// Halo around the ball, driven by cue loudness
	HaloGain        = 60
	SmoothingFactor = 0.8

	LogLevel       = "info"
	LogDevelopment = true
)

// Audio
const (
	AssetsDir       = "assets"
	InhaleCueFile   = "in.mp3"
	HoldCueFile     = "hold.mp3"
	ExhaleCueFile   = "out.mp3"
	AudioBufferTime = time.Second / 20
	LevelRingSize   = 2048
	ResampleQuality = 4
)

// Palette
var (
	BackgroundColor = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	BallColor       = color.RGBA{R: 247, G: 230, B: 227, A: 255} // #F7E6E3
	MustardYellow   = color.RGBA{R: 191, G: 174, B: 74, A: 255}  // #BFAE4A
	SoftPink        = color.RGBA{R: 224, G: 149, B: 146, A: 255} // #E09592
	LightGrey       = color.RGBA{R: 228, G: 228, B: 226, A: 255} // #E4E4E2
	CornerDotColor  = color.RGBA{R: 71, G: 72, B: 68, A: 255}    // #474844
	TextColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)
