// internal/config/settings.go
package config

import (
	"fmt"
	"image/color"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"lab-backdrop/pkg/render"
)

// Palettes maps every color mode to its palette.
type Palettes map[ColorMode]render.Palette

// Get returns the palette for mode, falling back to primary-on-dark.
func (p Palettes) Get(mode ColorMode) render.Palette {
	if pal, ok := p[mode]; ok {
		return pal
	}
	if pal, ok := p[PrimaryOnDark]; ok {
		return pal
	}
	return render.Palette{Base: PrimaryParticleColor, Background: PrimaryBackground}
}

// DefaultPalettes returns the two built-in palettes.
func DefaultPalettes() Palettes {
	return Palettes{
		PrimaryOnDark: {Base: PrimaryParticleColor, Background: PrimaryBackground},
		AccentOnLight: {Base: AccentParticleColor, Background: AccentBackground},
	}
}

// PaletteSpec — палитра в YAML, цвета в виде "#rrggbb".
type PaletteSpec struct {
	Particle   string `yaml:"particle"`
	Background string `yaml:"background"`
}

type WindowSettings struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type CarouselSettings struct {
	ItemWidth float64  `yaml:"item_width"`
	Logos     []string `yaml:"logos"`
}

type TerminalSettings struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// Settings is the runtime configuration read from the YAML file.
type Settings struct {
	Window    WindowSettings            `yaml:"window"`
	ColorMode ColorMode                 `yaml:"color_mode"`
	Seed      int64                     `yaml:"seed"`
	Palettes  map[ColorMode]PaletteSpec `yaml:"palettes"`
	Carousel  CarouselSettings          `yaml:"carousel"`
	Terminal  TerminalSettings          `yaml:"terminal"`

	palettes Palettes
}

// Default returns the settings used when no config file is given.
func Default() Settings {
	s := Settings{
		Window:    WindowSettings{Width: ScreenWidth, Height: ScreenHeight, Title: WindowTitle},
		ColorMode: PrimaryOnDark,
		Carousel:  CarouselSettings{ItemWidth: CarouselItemWidth, Logos: append([]string(nil), DefaultLogos...)},
		Terminal:  TerminalSettings{CellWidth: TermCellWidth, CellHeight: TermCellHeight},
	}
	s.palettes = DefaultPalettes()
	return s
}

// Load reads settings from path. An empty path returns Default().
func Load(path string) (Settings, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML settings over the defaults and validates them.
func Parse(data []byte) (Settings, error) {
	s := Default()
	s.Palettes = nil
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := s.normalize(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s *Settings) normalize() error {
	if s.ColorMode == "" {
		s.ColorMode = PrimaryOnDark
	}
	if !s.ColorMode.Valid() {
		return fmt.Errorf("unknown color mode %q", s.ColorMode)
	}
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", s.Window.Width, s.Window.Height)
	}
	if s.Carousel.ItemWidth <= 0 {
		return fmt.Errorf("invalid carousel item width %v", s.Carousel.ItemWidth)
	}
	if s.Terminal.CellWidth <= 0 || s.Terminal.CellHeight <= 0 {
		return fmt.Errorf("invalid terminal cell size %dx%d", s.Terminal.CellWidth, s.Terminal.CellHeight)
	}

	s.palettes = DefaultPalettes()
	for mode, spec := range s.Palettes {
		if !mode.Valid() {
			return fmt.Errorf("palette for unknown color mode %q", mode)
		}
		pal := s.palettes[mode]
		if spec.Particle != "" {
			c, err := parseHex(spec.Particle)
			if err != nil {
				return fmt.Errorf("palette %s particle: %w", mode, err)
			}
			pal.Base = c
		}
		if spec.Background != "" {
			c, err := parseHex(spec.Background)
			if err != nil {
				return fmt.Errorf("palette %s background: %w", mode, err)
			}
			pal.Background = c
		}
		s.palettes[mode] = pal
	}
	return nil
}

// ResolvedPalettes returns the palettes after applying the file overrides.
func (s Settings) ResolvedPalettes() Palettes {
	if s.palettes == nil {
		return DefaultPalettes()
	}
	return s.palettes
}

func parseHex(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
