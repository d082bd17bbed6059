package model

// Bundle aggregates all three entity collections. It is both the persisted
// demo dataset and the by-value snapshot handed to read-only consumers
// (search, export, dashboard).
type Bundle struct {
	Notes  []Note  `json:"notes"`
	Tasks  []Task  `json:"tasks"`
	Events []Event `json:"events"`
}

// Clone returns a copy whose slices do not alias the receiver's.
func (b Bundle) Clone() Bundle {
	out := Bundle{
		Notes:  make([]Note, len(b.Notes)),
		Tasks:  make([]Task, len(b.Tasks)),
		Events: make([]Event, len(b.Events)),
	}
	copy(out.Notes, b.Notes)
	copy(out.Tasks, b.Tasks)
	copy(out.Events, b.Events)
	return out
}
