package game

// HistoryEntry records one placement and what it captured, enough to undo it.
type HistoryEntry struct {
	Player   Player
	Placed   Coord
	Captured []Coord
}

// History is a LIFO stack of placements.
type History struct {
	entries []HistoryEntry
}

func (h *History) Push(player Player, placed Coord, captured []Coord) {
	h.entries = append(h.entries, HistoryEntry{Player: player, Placed: placed, Captured: captured})
}

// Pop removes and returns the most recent entry. Popping an empty history panics.
func (h *History) Pop() HistoryEntry {
	if len(h.entries) == 0 {
		panic("cannot pop from empty history")
	}
	last := len(h.entries) - 1
	entry := h.entries[last]
	h.entries[last] = HistoryEntry{}
	h.entries = h.entries[:last]
	return entry
}

func (h *History) Len() int {
	return len(h.entries)
}

// Last returns the most recent entry without removing it.
func (h *History) Last() (HistoryEntry, bool) {
	if len(h.entries) == 0 {
		return HistoryEntry{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// Clone copies the stack. Captured slices are never mutated after a push, so they are shared.
func (h *History) Clone() History {
	entries := make([]HistoryEntry, len(h.entries))
	copy(entries, h.entries)
	return History{entries: entries}
}
