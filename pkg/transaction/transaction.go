package transaction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single retail sale
type Transaction struct {
	Date          time.Time       `json:"date"`
	Product       string          `json:"product"`
	Category      string          `json:"category"`
	Seller        string          `json:"seller"`
	City          string          `json:"city"`
	PaymentMethod string          `json:"payment_method"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Quantity      int64           `json:"quantity"`

	// Derived on AddTransaction
	LineTotal decimal.Decimal `json:"line_total"`
	Month     time.Month      `json:"month"`
}

// MonthName returns the English calendar name of the sale month
func (t Transaction) MonthName() string {
	return t.Month.String()
}

// TransactionList holds every sale loaded from one input file
type TransactionList struct {
	Transactions []Transaction `json:"transactions"`
	Total        int           `json:"total"`
	Source       string        `json:"source"`
	LoadedAt     time.Time     `json:"loaded_at"`
}

// AddTransaction derives the line total and month, then appends the sale
func (tl *TransactionList) AddTransaction(t Transaction) {
	t.LineTotal = t.UnitPrice.Mul(decimal.NewFromInt(t.Quantity))
	t.Month = t.Date.Month()
	tl.Transactions = append(tl.Transactions, t)
	tl.Total = len(tl.Transactions)
}

// Period returns the earliest and latest sale dates
func (tl *TransactionList) Period() (from, to time.Time) {
	for i, t := range tl.Transactions {
		if i == 0 || t.Date.Before(from) {
			from = t.Date
		}
		if i == 0 || t.Date.After(to) {
			to = t.Date
		}
	}
	return from, to
}

// Head returns at most the first n transactions
func (tl *TransactionList) Head(n int) []Transaction {
	if n > len(tl.Transactions) {
		n = len(tl.Transactions)
	}
	if n < 0 {
		n = 0
	}
	return tl.Transactions[:n]
}
