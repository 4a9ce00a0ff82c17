// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	WindowTitle  = "Lab Backdrop"

	// Один шаг анимации, вне зависимости от реального времени кадра
	TimeStep = 0.016

	AreaPerParticle = 10000

	SpawnVelocity     = 0.4
	MinRadius         = 1.0
	MaxRadius         = 3.0
	MinBaseOpacity    = 0.3
	MaxBaseOpacity    = 0.8
	MinPulseSpeed     = 0.01
	MaxPulseSpeed     = 0.03
	PointerRadius     = 150.0
	PointerStrength   = 0.015
	JitterAmplitude   = 0.004
	WallRestitution   = -0.6
	Friction          = 0.98
	MinSpeed          = 0.1
	MinSpeedKick      = 0.075
	PulseOpacityWave  = 0.12
	PulseRadiusWave   = 0.25
	MinDrawOpacity    = 0.2
	MaxDrawOpacity    = 0.7
	MinDrawRadius     = 0.8
	GlowRadiusFactor  = 2.0
	GlowMinBaseRadius = 1.5
	GlowOpacityFactor = 0.25
	GlowMinOpacity    = 0.1

	ConnectionDistance  = 120.0
	ConnectionOpacity   = 0.35
	ConnectionLineWidth = 0.6

	CarouselStep      = 0.7
	CarouselItemWidth = 180.0
	CarouselCopies    = 3
	CarouselHeight    = 48

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0
	ClickCooldown    = 300 // ms

	TermCellWidth  = 8
	TermCellHeight = 16

	BenchFrames = 600
)

// ColorMode выбирает палитру частиц.
type ColorMode string

const (
	PrimaryOnDark ColorMode = "primary-on-dark"
	AccentOnLight ColorMode = "accent-on-light"
)

// Valid reports whether m is one of the two known palettes.
func (m ColorMode) Valid() bool {
	return m == PrimaryOnDark || m == AccentOnLight
}

// Toggle returns the other palette.
func (m ColorMode) Toggle() ColorMode {
	if m == AccentOnLight {
		return PrimaryOnDark
	}
	return AccentOnLight
}

var (
	PrimaryParticleColor = color.RGBA{96, 165, 250, 255}
	PrimaryBackground    = color.RGBA{11, 17, 32, 255}
	AccentParticleColor  = color.RGBA{13, 148, 136, 255}
	AccentBackground     = color.RGBA{248, 250, 252, 255}
	TextLightColor       = color.RGBA{240, 240, 240, 255}
	TextDarkColor        = color.RGBA{20, 20, 30, 255}
	IndicatorStroke      = color.RGBA{240, 240, 240, 255}
	CarouselBandDark     = color.RGBA{20, 28, 48, 200}
	CarouselBandLight    = color.RGBA{226, 232, 240, 200}

	DefaultLogos = []string{
		"Robotics Club", "City University", "Maker Space", "Open Science",
		"Young Engineers", "Code Academy", "BioLab", "Astro Society",
	}
)
