package model

import (
	"time"
)

type Goal struct {
	ID            string    `json:"id"`
	Subject       string    `json:"subject"`
	Target        string    `json:"target"`
	TimeAvailable int       `json:"timeAvailable"` // minutes
	CreatedAt     time.Time `json:"createdAt"`
	Completed     bool      `json:"completed"`
}
