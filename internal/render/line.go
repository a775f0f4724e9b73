package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Line is a Renderer that writes one colored line per request.
type Line struct {
	w       io.Writer
	noColor bool
}

// LineOption configures a Line renderer.
type LineOption func(*Line)

// WithNoColor disables ANSI color output.
func WithNoColor(disabled bool) LineOption {
	return func(l *Line) {
		l.noColor = disabled
	}
}

// NewLine creates a line renderer writing to w.
func NewLine(w io.Writer, opts ...LineOption) *Line {
	l := &Line{w: w}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Init writes nothing; the line renderer has no setup.
func (l *Line) Init() error {
	return nil
}

// RenderScene writes "■ name @ local" in the nearest terminal color.
func (l *Line) RenderScene(name, hex string, localFrame int) error {
	c := color.New(Nearest(hex))
	if l.noColor {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	// One write per line.
	_, err := fmt.Fprintf(l.w, "%s %s @ %d\n", c.Sprint("■"), name, localFrame)
	return err
}

// Clear writes an empty frame marker.
func (l *Line) Clear() error {
	c := color.New(color.Faint)
	if l.noColor {
		c.DisableColor()
	}
	_, err := fmt.Fprintln(l.w, c.Sprint("□ (empty)"))
	return err
}

var ansiColors = []struct {
	attr    color.Attribute
	r, g, b int
}{
	{color.FgRed, 205, 49, 49},
	{color.FgGreen, 13, 188, 121},
	{color.FgYellow, 229, 229, 16},
	{color.FgBlue, 36, 114, 200},
	{color.FgMagenta, 188, 63, 188},
	{color.FgCyan, 17, 168, 205},
	{color.FgHiRed, 241, 76, 76},
	{color.FgHiGreen, 35, 209, 139},
	{color.FgHiYellow, 245, 245, 67},
	{color.FgHiBlue, 59, 142, 234},
	{color.FgHiMagenta, 214, 112, 214},
	{color.FgHiCyan, 41, 184, 219},
	{color.FgWhite, 229, 229, 229},
}

// Nearest maps a #RRGGBB color to the closest 16-color foreground.
func Nearest(hex string) color.Attribute {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return color.FgWhite
	}
	best, bestDist := color.FgWhite, -1
	for _, c := range ansiColors {
		dr, dg, db := r-c.r, g-c.g, b-c.b
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = c.attr, d
		}
	}
	return best
}
