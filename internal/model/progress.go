package model

// DateLayout is the calendar-day key used by progress records.
const DateLayout = "2006-01-02"

type ProgressRecord struct {
	Date      string `json:"date"`
	Goal      string `json:"goal"`
	TimeSpent int    `json:"timeSpent"` // minutes
	Completed bool   `json:"completed"`
	NextSteps string `json:"nextSteps"`
}
