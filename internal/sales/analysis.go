package sales

import (
	"time"

	"github.com/example/sales-analyzer/pkg/transaction"
	"github.com/shopspring/decimal"
)

// KPIs are the headline business metrics.
type KPIs struct {
	TotalRevenue  decimal.Decimal
	Transactions  int
	AverageTicket decimal.Decimal
	UnitsSold     int64
}

// ComputeKPIs totals revenue and units over every transaction. The average
// ticket is the mean line total.
func ComputeKPIs(tl *transaction.TransactionList) KPIs {
	k := KPIs{TotalRevenue: decimal.Zero, AverageTicket: decimal.Zero}
	for _, tx := range tl.Transactions {
		k.TotalRevenue = k.TotalRevenue.Add(tx.LineTotal)
		k.UnitsSold += tx.Quantity
	}
	k.Transactions = len(tl.Transactions)
	if k.Transactions > 0 {
		k.AverageTicket = k.TotalRevenue.Div(decimal.NewFromInt(int64(k.Transactions)))
	}
	return k
}

// Options controls the shape of an Analysis.
type Options struct {
	TopProducts int
	Months      []time.Month
}

// DefaultOptions keeps ten products and the first quarter.
func DefaultOptions() Options {
	return Options{
		TopProducts: 10,
		Months:      []time.Month{time.January, time.February, time.March},
	}
}

// Analysis is everything derived from one TransactionList.
type Analysis struct {
	Transactions *transaction.TransactionList

	PriceStats    Summary
	QuantityStats Summary
	RevenueStats  Summary

	Categories     *View
	Sellers        *View
	Cities         *View
	PaymentMethods *View
	Products       *View
	Months         *View

	KPIs KPIs
}

// Analyze computes every view and statistic for tl.
func Analyze(tl *transaction.TransactionList, opts Options) *Analysis {
	prices := make([]float64, 0, tl.Total)
	quantities := make([]float64, 0, tl.Total)
	revenues := make([]float64, 0, tl.Total)
	for _, tx := range tl.Transactions {
		prices = append(prices, tx.UnitPrice.InexactFloat64())
		quantities = append(quantities, float64(tx.Quantity))
		revenues = append(revenues, tx.LineTotal.InexactFloat64())
	}

	return &Analysis{
		Transactions:   tl,
		PriceStats:     Describe(prices),
		QuantityStats:  Describe(quantities),
		RevenueStats:   Describe(revenues),
		Categories:     ByCategory(tl),
		Sellers:        BySeller(tl),
		Cities:         ByCity(tl),
		PaymentMethods: ByPaymentMethod(tl),
		Products:       TopProducts(tl, opts.TopProducts),
		Months:         ByMonth(tl, opts.Months),
		KPIs:           ComputeKPIs(tl),
	}
}

// TopCategory returns the highest-revenue category row, if any.
func (a *Analysis) TopCategory() (Row, bool) {
	return first(a.Categories)
}

// BestSeller returns the highest-revenue seller row, if any.
func (a *Analysis) BestSeller() (Row, bool) {
	return first(a.Sellers)
}

func first(v *View) (Row, bool) {
	if v == nil || len(v.Rows) == 0 {
		return Row{}, false
	}
	return v.Rows[0], true
}
