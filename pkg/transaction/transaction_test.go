package transaction

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionList_AddTransaction(t *testing.T) {
	tl := &TransactionList{}

	tx := Transaction{
		Date:          time.Date(2024, time.February, 14, 0, 0, 0, 0, time.UTC),
		Product:       "Laptop HP",
		Category:      "Computadoras",
		Seller:        "Ana",
		City:          "Lima",
		PaymentMethod: "Tarjeta",
		UnitPrice:     decimal.RequireFromString("899.99"),
		Quantity:      3,
	}

	tl.AddTransaction(tx)

	assert.Equal(t, 1, tl.Total)
	assert.Equal(t, 1, len(tl.Transactions))
	assert.Equal(t, "Laptop HP", tl.Transactions[0].Product)
	assert.True(t, decimal.RequireFromString("2699.97").Equal(tl.Transactions[0].LineTotal))
	assert.Equal(t, time.February, tl.Transactions[0].Month)
	assert.Equal(t, "February", tl.Transactions[0].MonthName())
}

func TestTransactionList_LineTotalIsExactProduct(t *testing.T) {
	tl := &TransactionList{}
	prices := []string{"0.1", "19.99", "1234.567", "0.01", "5"}
	for i, p := range prices {
		tl.AddTransaction(Transaction{
			Date:      time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			UnitPrice: decimal.RequireFromString(p),
			Quantity:  int64(i + 7),
		})
	}

	for _, tx := range tl.Transactions {
		want := tx.UnitPrice.Mul(decimal.NewFromInt(tx.Quantity))
		assert.True(t, want.Equal(tx.LineTotal), "line total for %s x %d", tx.UnitPrice, tx.Quantity)
	}
	assert.Equal(t, "0.7", tl.Transactions[0].LineTotal.String())
}

func TestTransactionList_Period(t *testing.T) {
	tl := &TransactionList{}

	from, to := tl.Period()
	assert.True(t, from.IsZero())
	assert.True(t, to.IsZero())

	dates := []time.Time{
		time.Date(2024, time.February, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 30, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		tl.AddTransaction(Transaction{Date: d})
	}

	from, to = tl.Period()
	assert.Equal(t, dates[1], from)
	assert.Equal(t, dates[2], to)
}

func TestTransactionList_Head(t *testing.T) {
	tl := &TransactionList{}
	for _, p := range []string{"a", "b", "c"} {
		tl.AddTransaction(Transaction{Product: p})
	}

	assert.Len(t, tl.Head(2), 2)
	assert.Equal(t, "b", tl.Head(2)[1].Product)
	assert.Len(t, tl.Head(10), 3)
	assert.Empty(t, tl.Head(-1))
}
