package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/tessro/cutline/internal/core"
)

type call struct {
	op    string
	name  string
	color string
	local int
}

type recorder struct {
	calls   []call
	initErr error
}

func (r *recorder) Init() error {
	r.calls = append(r.calls, call{op: "init"})
	return r.initErr
}

func (r *recorder) RenderScene(name, color string, local int) error {
	r.calls = append(r.calls, call{op: "scene", name: name, color: color, local: local})
	return nil
}

func (r *recorder) Clear() error {
	r.calls = append(r.calls, call{op: "clear"})
	return nil
}

type sceneList []core.Scene

func (s sceneList) SceneAtFrame(frame int) (core.Scene, int, bool) {
	return core.Locate(s, frame)
}

func threeScenes() sceneList {
	return core.Recalculate([]core.Scene{
		{Name: "A", Color: "#F65937", Length: 30},
		{Name: "B", Color: "#379EF6", Length: 60},
		{Name: "C", Color: "#1FBD5F", Length: 30},
	})
}

func TestDraw(t *testing.T) {
	loc := threeScenes()
	r := &recorder{}

	tests := []struct {
		frame int
		want  call
	}{
		{0, call{op: "scene", name: "A", color: "#F65937", local: 0}},
		{45, call{op: "scene", name: "B", color: "#379EF6", local: 15}},
		{119, call{op: "scene", name: "C", color: "#1FBD5F", local: 29}},
		{120, call{op: "clear"}},
		{-1, call{op: "clear"}},
	}
	for _, tt := range tests {
		r.calls = nil
		if err := Draw(r, loc, tt.frame); err != nil {
			t.Fatalf("Draw(%d) error = %v", tt.frame, err)
		}
		if len(r.calls) != 1 || r.calls[0] != tt.want {
			t.Errorf("Draw(%d) calls = %+v, want %+v", tt.frame, r.calls, tt.want)
		}
	}
}

func TestDedupe(t *testing.T) {
	r := &recorder{}
	d := Dedupe(r)
	loc := threeScenes()

	_ = d.Init()
	_ = d.Init()
	for _, f := range []int{10, 10, 11, 200, 200, 11} {
		if err := Draw(d, loc, f); err != nil {
			t.Fatal(err)
		}
	}

	var ops []string
	for _, c := range r.calls {
		ops = append(ops, c.op)
	}
	want := "init scene scene clear scene"
	if got := strings.Join(ops, " "); got != want {
		t.Errorf("forwarded = %q, want %q", got, want)
	}

	d.Reset()
	_ = Draw(d, loc, 11)
	if len(r.calls) != 6 {
		t.Errorf("Reset() did not force a render: %d calls", len(r.calls))
	}
}

func TestDedupeInitError(t *testing.T) {
	boom := errors.New("boom")
	r := &recorder{initErr: boom}
	d := Dedupe(r)
	if err := d.Init(); !errors.Is(err, boom) {
		t.Errorf("Init() = %v, want boom", err)
	}
	if err := d.Init(); !errors.Is(err, boom) {
		t.Errorf("second Init() = %v, want cached boom", err)
	}
	if len(r.calls) != 1 {
		t.Errorf("Init forwarded %d times, want 1", len(r.calls))
	}
}

func TestSwatch(t *testing.T) {
	s := NewSwatch()
	if !strings.Contains(s.View(20, 3), "no scene") {
		t.Error("uninitialized swatch should show placeholder")
	}
	_ = s.Init()

	if err := Draw(s, threeScenes(), 45); err != nil {
		t.Fatal(err)
	}
	name, hex, local, ok := s.Scene()
	if !ok || name != "B" || hex != "#379EF6" || local != 15 {
		t.Errorf("Scene() = %q %q %d %v", name, hex, local, ok)
	}
	if v := s.View(20, 3); !strings.Contains(v, "B") || !strings.Contains(v, "frame 15") {
		t.Errorf("View() = %q, want scene label", v)
	}

	_ = Draw(s, threeScenes(), 500)
	if _, _, _, ok := s.Scene(); ok {
		t.Error("Scene() ok after clear")
	}
	if s.Renders() != 2 {
		t.Errorf("Renders() = %d, want 2", s.Renders())
	}
}

func TestLine(t *testing.T) {
	var buf bytes.Buffer
	l := NewLine(&buf, WithNoColor(true))
	_ = l.Init()
	_ = Draw(l, threeScenes(), 31)
	_ = Draw(l, threeScenes(), 999)

	want := "■ B @ 1\n□ (empty)\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestNearest(t *testing.T) {
	tests := []struct {
		hex  string
		want color.Attribute
	}{
		{"#FF0000", color.FgRed},
		{"#F14C4C", color.FgHiRed},
		{"#0DBC79", color.FgGreen},
		{"#2472C8", color.FgBlue},
		{"nope", color.FgWhite},
	}
	for _, tt := range tests {
		if got := Nearest(tt.hex); got != tt.want {
			t.Errorf("Nearest(%q) = %v, want %v", tt.hex, got, tt.want)
		}
	}
}

func TestContrast(t *testing.T) {
	if got := contrast("#FFFFFF"); got != "#111827" {
		t.Errorf("contrast(white) = %s", got)
	}
	if got := contrast("#000000"); got != "#F9FAFB" {
		t.Errorf("contrast(black) = %s", got)
	}
}
