package timeline

import "math/rand/v2"

// DefaultColors is the fixed palette new scenes draw their color from.
var DefaultColors = []string{
	"#F65937",
	"#379EF6",
	"#1FBD5F",
	"#F6A337",
	"#9B37F6",
	"#F6379B",
	"#37F6A3",
	"#F6E337",
	"#37A3F6",
	"#F63737",
}

// Palette picks display colors for new scenes.
type Palette struct {
	colors []string
	rng    *rand.Rand
}

// NewPalette creates a palette over colors. A nil rng uses the global source.
func NewPalette(colors []string, rng *rand.Rand) *Palette {
	if len(colors) == 0 {
		colors = DefaultColors
	}
	c := make([]string, len(colors))
	copy(c, colors)
	return &Palette{colors: c, rng: rng}
}

// Pick returns a random color from the palette.
func (p *Palette) Pick() string {
	if p.rng != nil {
		return p.colors[p.rng.IntN(len(p.colors))]
	}
	return p.colors[rand.IntN(len(p.colors))]
}

// Colors returns a copy of the palette's colors.
func (p *Palette) Colors() []string {
	c := make([]string, len(p.colors))
	copy(c, p.colors)
	return c
}
