package core

// DefaultFPS is the playback rate used when none is configured.
const DefaultFPS = 30

// PlaybackState represents the playhead of a timeline.
type PlaybackState struct {
	CurrentFrame int     `json:"current_frame"`
	IsPlaying    bool    `json:"is_playing"`
	FPS          float64 `json:"fps"`
}

// Progress returns playback progress as a percentage (0-100).
func (s PlaybackState) Progress(totalFrames int) float64 {
	if totalFrames <= 1 {
		return 0
	}
	return float64(s.CurrentFrame) / float64(totalFrames-1) * 100
}

// ClampFrame bounds frame to [0, totalFrames-1], or 0 for an empty timeline.
func ClampFrame(frame, totalFrames int) int {
	if frame > totalFrames-1 {
		frame = totalFrames - 1
	}
	if frame < 0 {
		frame = 0
	}
	return frame
}

// NextFrame returns the frame after current, wrapping to 0 past the end.
func NextFrame(current, totalFrames int) int {
	next := current + 1
	if next >= totalFrames {
		return 0
	}
	return next
}
