package core

// Recalculate returns a copy of scenes with Index and StartFrame derived from
// each scene's position and the lengths before it. The input is not modified.
func Recalculate(scenes []Scene) []Scene {
	out := make([]Scene, len(scenes))
	start := 0
	for i, s := range scenes {
		s.Index = i
		s.StartFrame = start
		start += s.Length
		out[i] = s
	}
	return out
}

// TotalFrames returns the summed length of all scenes.
func TotalFrames(scenes []Scene) int {
	total := 0
	for _, s := range scenes {
		total += s.Length
	}
	return total
}

// Locate returns the scene owning frame and the frame's offset into it.
// ok is false when frame is outside [0, TotalFrames) or scenes is empty.
func Locate(scenes []Scene, frame int) (scene Scene, localFrame int, ok bool) {
	if frame < 0 {
		return Scene{}, 0, false
	}
	for _, s := range scenes {
		if s.Contains(frame) {
			return s, frame - s.StartFrame, true
		}
	}
	return Scene{}, 0, false
}

// CheckSequence returns the index of the first scene that breaks the
// contiguity invariant, or -1 if the sequence is consistent.
func CheckSequence(scenes []Scene) int {
	start := 0
	for i, s := range scenes {
		if s.Index != i || s.StartFrame != start {
			return i
		}
		start += s.Length
	}
	return -1
}

// Clone returns an independent copy of scenes.
func Clone(scenes []Scene) []Scene {
	if scenes == nil {
		return nil
	}
	out := make([]Scene, len(scenes))
	copy(out, scenes)
	return out
}
