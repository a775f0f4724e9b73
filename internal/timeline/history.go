package timeline

// History is a linear undo/redo stack. Index points at the most recently
// executed command, or -1 when nothing is applied.
type History struct {
	commands []Command
	index    int
	limit    int
}

// NewHistory creates an empty history. A limit of 0 keeps every entry.
func NewHistory(limit int) *History {
	if limit < 0 {
		limit = 0
	}
	return &History{index: -1, limit: limit}
}

// Push records cmd as the newest applied command, discarding any redo branch.
func (h *History) Push(cmd Command) {
	h.commands = append(h.commands[:h.index+1], cmd)
	h.index = len(h.commands) - 1

	if h.limit > 0 && len(h.commands) > h.limit {
		drop := len(h.commands) - h.limit
		h.commands = append([]Command(nil), h.commands[drop:]...)
		h.index -= drop
	}
}

// Current returns the command Undo would revert.
func (h *History) Current() (Command, bool) {
	if h.index < 0 {
		return nil, false
	}
	return h.commands[h.index], true
}

// Next returns the command Redo would re-apply.
func (h *History) Next() (Command, bool) {
	if h.index >= len(h.commands)-1 {
		return nil, false
	}
	return h.commands[h.index+1], true
}

// Back moves the cursor one entry towards the start.
func (h *History) Back() {
	if h.index >= 0 {
		h.index--
	}
}

// Forward moves the cursor one entry towards the tail.
func (h *History) Forward() {
	if h.index < len(h.commands)-1 {
		h.index++
	}
}

// Index returns the cursor position.
func (h *History) Index() int {
	return h.index
}

// Len returns the number of recorded commands, including redoable ones.
func (h *History) Len() int {
	return len(h.commands)
}

// CanUndo reports whether a command is available to undo.
func (h *History) CanUndo() bool {
	return h.index >= 0
}

// CanRedo reports whether a command is available to redo.
func (h *History) CanRedo() bool {
	return h.index < len(h.commands)-1
}

// Commands returns a copy of the recorded commands.
func (h *History) Commands() []Command {
	out := make([]Command, len(h.commands))
	copy(out, h.commands)
	return out
}

// Descriptions returns the description of every recorded command.
func (h *History) Descriptions() []string {
	out := make([]string, len(h.commands))
	for i, c := range h.commands {
		out[i] = c.Description()
	}
	return out
}
