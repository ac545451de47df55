package models

import (
	"time"
)

type Investment struct {
	ID        string    `firestore:"-" json:"id"`
	UserID    string    `firestore:"userId" json:"userId"`
	Name      string    `firestore:"name" json:"name"`
	Type      string    `firestore:"type" json:"type"`
	Amount    float64   `firestore:"amount" json:"amount"`     // principal
	Interest  float64   `firestore:"interest" json:"interest"` // annual percentage
	StartDate time.Time `firestore:"startDate" json:"startDate"`
	// Duration is in months. Nil means open-ended: no maturity date and no
	// growth projected.
	Duration  *int      `firestore:"duration,omitempty" json:"duration,omitempty"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}
