package playback

import (
	"fmt"
	"math"
)

// Timecode modes.
const (
	TimecodeSeconds = "seconds"
	TimecodeFrames  = "frames"
)

// Timecode formats frame for display. In seconds mode it renders MM:SS:FF
// where FF is the frame within the second; in frames mode the raw number.
func Timecode(frame int, fps float64, mode string) string {
	if frame < 0 {
		frame = 0
	}
	if mode == TimecodeFrames {
		return fmt.Sprintf("%d", frame)
	}
	if fps <= 0 {
		fps = 30
	}
	perSecond := int(math.Round(fps))
	if perSecond < 1 {
		perSecond = 1
	}
	secs := frame / perSecond
	ff := frame % perSecond
	return fmt.Sprintf("%02d:%02d:%02d", secs/60, secs%60, ff)
}
