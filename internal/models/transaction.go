package models

import (
	"time"
)

const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

type Transaction struct {
	ID       string  `firestore:"-" json:"id"` // document ID, not stored in the doc body
	UserID   string  `firestore:"userId" json:"userId"`
	Type     string  `firestore:"type" json:"type"` // "income" or "expense"
	Amount   float64 `firestore:"amount" json:"amount"`
	Category string  `firestore:"category" json:"category"`
	Account  string  `firestore:"account" json:"account"`
	Note     string  `firestore:"note,omitempty" json:"note,omitempty"`
	// Color is the category's display tag copied in at write time. It is
	// deliberately not recomputed when the category configuration changes.
	Color string `firestore:"color" json:"color"`
	// CreatedAt is the user-editable event time, not the record creation
	// time. Users backdate or schedule the financial event itself.
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}
