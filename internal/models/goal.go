package models

import (
	"time"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Goal struct {
	ID           string    `firestore:"-" json:"id"`
	UserID       string    `firestore:"userId" json:"userId"`
	Name         string    `firestore:"name" json:"name"`
	TargetAmount float64   `firestore:"targetAmount" json:"targetAmount"`
	CurrentSaved float64   `firestore:"currentSaved" json:"currentSaved"` // may exceed TargetAmount
	TargetDate   time.Time `firestore:"targetDate" json:"targetDate"`
	Priority     string    `firestore:"priority" json:"priority"` // "low", "medium" or "high"
	CreatedAt    time.Time `firestore:"createdAt" json:"createdAt"`
}
