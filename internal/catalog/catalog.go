// Package catalog holds the static category and investment-type
// configuration: allowed labels plus the display tag copied onto records
// at write time. The tables are load-time constants, never persisted.
package catalog

import (
	"github.com/pennywise-app/pennywise-backend/internal/models"
)

type Entry struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// DefaultTypeColor is returned for investment types missing from the
// table, so stale records still render.
const DefaultTypeColor = "bg-gray-100 text-gray-700"

var incomeCategories = []Entry{
	{Name: "Salary", Color: "text-green-600 bg-green-100"},
	{Name: "Freelance", Color: "text-emerald-600 bg-emerald-100"},
	{Name: "Interest", Color: "text-teal-600 bg-teal-100"},
	{Name: "Bonus", Color: "text-lime-600 bg-lime-100"},
	{Name: "Other", Color: "text-slate-600 bg-slate-100"},
}

var expenseCategories = []Entry{
	{Name: "Food", Color: "text-red-600 bg-red-100"},
	{Name: "Health", Color: "text-rose-600 bg-rose-100"},
	{Name: "Household", Color: "text-orange-600 bg-orange-100"},
	{Name: "Travel", Color: "text-yellow-600 bg-yellow-100"},
	{Name: "Social Life", Color: "text-indigo-600 bg-indigo-100"},
	{Name: "Shopping", Color: "text-pink-600 bg-pink-100"},
	{Name: "Other", Color: "text-slate-600 bg-slate-100"},
}

var investmentTypes = []Entry{
	{Name: "Fixed Deposit", Color: "text-blue-600 bg-blue-100"},
	{Name: "Mutual Fund", Color: "text-purple-600 bg-purple-100"},
	{Name: "Stocks", Color: "text-green-600 bg-green-100"},
	{Name: "Bonds", Color: "text-yellow-600 bg-yellow-100"},
	{Name: "PPF", Color: "text-orange-600 bg-orange-100"},
	{Name: "ELSS", Color: "text-pink-600 bg-pink-100"},
	{Name: "Gold", Color: "text-amber-600 bg-amber-100"},
	{Name: "Real Estate", Color: "text-indigo-600 bg-indigo-100"},
	{Name: "Crypto", Color: "text-cyan-600 bg-cyan-100"},
	{Name: "Other", Color: "text-slate-600 bg-slate-100"},
}

// Categories returns the configured categories for a transaction type, or
// nil for an unknown type.
func Categories(txType string) []Entry {
	switch txType {
	case models.TransactionIncome:
		return incomeCategories
	case models.TransactionExpense:
		return expenseCategories
	default:
		return nil
	}
}

// CategoryColor looks up a category within a transaction type. The second
// return reports whether the category is configured for that type.
func CategoryColor(txType, category string) (string, bool) {
	for _, e := range Categories(txType) {
		if e.Name == category {
			return e.Color, true
		}
	}
	return "", false
}

func InvestmentTypes() []Entry {
	return investmentTypes
}

// InvestmentTypeKnown reports whether the type is in the configured table.
func InvestmentTypeKnown(name string) bool {
	for _, e := range investmentTypes {
		if e.Name == name {
			return true
		}
	}
	return false
}

// InvestmentTypeColor returns the display tag for an investment type,
// falling back to DefaultTypeColor for unknown types.
func InvestmentTypeColor(name string) string {
	for _, e := range investmentTypes {
		if e.Name == name {
			return e.Color
		}
	}
	return DefaultTypeColor
}
