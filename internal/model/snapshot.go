package model

// Snapshot is the persisted state of the progress store.
type Snapshot struct {
	Goals            []Goal            `json:"goals"`
	PomodoroSessions []PomodoroSession `json:"pomodoroSessions"`
	ProgressRecords  []ProgressRecord  `json:"progressRecords"`
	CurrentStreak    int               `json:"currentStreak"`
}

// Normalize replaces nil slices so an empty store encodes as empty arrays.
func (s *Snapshot) Normalize() {
	if s.Goals == nil {
		s.Goals = []Goal{}
	}
	if s.PomodoroSessions == nil {
		s.PomodoroSessions = []PomodoroSession{}
	}
	if s.ProgressRecords == nil {
		s.ProgressRecords = []ProgressRecord{}
	}
}
