package render

import (
	"sync"

	"github.com/mitchellh/hashstructure/v2"
)

type request struct {
	Clear bool
	Name  string
	Color string
	Local int
}

// Deduper forwards to a Renderer, skipping requests identical to the last one
// and calling Init at most once.
type Deduper struct {
	next     Renderer
	initOnce sync.Once
	initErr  error
	last     uint64
	primed   bool
}

// Dedupe wraps r.
func Dedupe(r Renderer) *Deduper {
	return &Deduper{next: r}
}

// Init initializes the wrapped renderer once.
func (d *Deduper) Init() error {
	d.initOnce.Do(func() {
		d.initErr = d.next.Init()
	})
	return d.initErr
}

// RenderScene forwards unless the request repeats the previous one.
func (d *Deduper) RenderScene(name, color string, localFrame int) error {
	if d.seen(request{Name: name, Color: color, Local: localFrame}) {
		return nil
	}
	return d.next.RenderScene(name, color, localFrame)
}

// Clear forwards unless the previous request was also a clear.
func (d *Deduper) Clear() error {
	if d.seen(request{Clear: true}) {
		return nil
	}
	return d.next.Clear()
}

// Reset forgets the last request so the next one is always forwarded.
func (d *Deduper) Reset() {
	d.primed = false
}

func (d *Deduper) seen(req request) bool {
	h, err := hashstructure.Hash(req, hashstructure.FormatV2, nil)
	if err != nil {
		// Unhashable requests are never deduplicated.
		d.primed = false
		return false
	}
	if d.primed && h == d.last {
		return true
	}
	d.last, d.primed = h, true
	return false
}
