package model

type Stats struct {
	TotalMinutes   int     `json:"totalMinutes"`
	TotalHours     float64 `json:"totalHours"`
	CompletedCount int     `json:"completedCount"`
	RecordCount    int     `json:"recordCount"`
	SessionCount   int     `json:"sessionCount"`
	SessionMinutes int     `json:"sessionMinutes"`
	Streak         int     `json:"streak"`
}

// SubjectTotal aggregates finished focus sessions for one subject.
type SubjectTotal struct {
	Subject  string `json:"subject"`
	Sessions int    `json:"sessions"`
	Minutes  int    `json:"minutes"`
}
