package playback

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"
)

// Formatter formats events for output.
type Formatter struct {
	showEmoji     bool
	showTimestamp bool
	timecode      string
	template      *template.Template
}

// FormatterOption configures a Formatter.
type FormatterOption func(*Formatter)

// WithEmoji enables emoji output.
func WithEmoji(enabled bool) FormatterOption {
	return func(f *Formatter) {
		f.showEmoji = enabled
	}
}

// WithTimestamp enables timestamp output.
func WithTimestamp(enabled bool) FormatterOption {
	return func(f *Formatter) {
		f.showTimestamp = enabled
	}
}

// WithTimecode selects seconds or frames for the playhead position.
func WithTimecode(mode string) FormatterOption {
	return func(f *Formatter) {
		if mode != "" {
			f.timecode = mode
		}
	}
}

// WithTemplate sets a custom format template.
func WithTemplate(tmpl string) FormatterOption {
	return func(f *Formatter) {
		if tmpl != "" {
			t, err := template.New("format").Parse(tmpl)
			if err == nil {
				f.template = t
			}
		}
	}
}

// ParseTemplate reports whether tmpl is a valid format template.
func ParseTemplate(tmpl string) error {
	_, err := template.New("format").Parse(tmpl)
	return err
}

// NewFormatter creates a new formatter with the given options.
func NewFormatter(opts ...FormatterOption) *Formatter {
	f := &Formatter{
		showEmoji: true,
		timecode:  TimecodeSeconds,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format formats an event as a string.
func (f *Formatter) Format(e Event) string {
	if f.template != nil {
		return f.formatTemplate(e)
	}
	return f.formatLine(e)
}

// formatLine formats an event as a simple line.
func (f *Formatter) formatLine(e Event) string {
	var parts []string

	if f.showTimestamp {
		parts = append(parts, e.Timestamp.Format("15:04:05"))
	}

	if f.showEmoji {
		parts = append(parts, eventEmoji(e.Type))
	}

	parts = append(parts, "["+Timecode(e.Frame, e.FPS, f.timecode)+"]")
	parts = append(parts, f.eventDescription(e))

	return strings.Join(parts, " ")
}

// formatTemplate formats an event using a custom template.
func (f *Formatter) formatTemplate(e Event) string {
	data := templateData{
		Type:       EventTypeName(e.Type),
		Emoji:      eventEmoji(e.Type),
		Timestamp:  e.Timestamp,
		Time:       e.Timestamp.Format("15:04:05"),
		Frame:      e.Frame,
		LocalFrame: e.LocalFrame,
		Timecode:   Timecode(e.Frame, e.FPS, f.timecode),
		Loops:      e.Loops,
	}

	if e.Scene != nil {
		data.Scene = e.Scene.Name
		data.Color = e.Scene.Color
		data.Index = e.Scene.Index
	}
	if e.Previous != nil {
		data.PreviousScene = e.Previous.Name
	}

	var buf bytes.Buffer
	if err := f.template.Execute(&buf, data); err != nil {
		return f.formatLine(e)
	}
	return buf.String()
}

type templateData struct {
	Type          string
	Emoji         string
	Timestamp     time.Time
	Time          string
	Frame         int
	LocalFrame    int
	Timecode      string
	Scene         string
	Color         string
	Index         int
	PreviousScene string
	Loops         int
}

// eventDescription returns a human-readable description of the event.
func (f *Formatter) eventDescription(e Event) string {
	switch e.Type {
	case EventFrame:
		if e.Scene != nil {
			return fmt.Sprintf("%s +%d", e.Scene.Name, e.LocalFrame)
		}
		return fmt.Sprintf("frame %d", e.Frame)

	case EventSceneChange:
		if e.Scene != nil {
			return fmt.Sprintf("Now showing: %s (%d frames)", e.Scene.Name, e.Scene.Length)
		}
		return "Scene changed"

	case EventLoop:
		if e.Loops == 1 {
			return "Looped"
		}
		return fmt.Sprintf("Looped (%d times)", e.Loops)

	case EventPause:
		return "Paused"

	case EventResume:
		return "Resumed"

	default:
		return "Unknown event"
	}
}

// eventEmoji returns an emoji for the event type.
func eventEmoji(t EventType) string {
	switch t {
	case EventFrame:
		return "🎞️"
	case EventSceneChange:
		return "🎬"
	case EventLoop:
		return "🔁"
	case EventPause:
		return "⏸️"
	case EventResume:
		return "▶️"
	default:
		return "❓"
	}
}

// EventTypeName returns the name of the event type.
func EventTypeName(t EventType) string {
	switch t {
	case EventFrame:
		return "frame"
	case EventSceneChange:
		return "scene_change"
	case EventLoop:
		return "loop"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	default:
		return "unknown"
	}
}
