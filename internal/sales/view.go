// Package sales builds the grouped revenue views and summary statistics
// reported for a transaction list.
package sales

import (
	"github.com/shopspring/decimal"
)

// Metric identifies one numeric column of a View.
type Metric int

// Metrics a View can carry.
const (
	MetricRevenue Metric = iota
	MetricUnits
	MetricTransactions
	MetricShare
)

// Column is a labelled metric, in display order.
type Column struct {
	Metric Metric
	Label  string
}

// Display labels shared by several views.
const (
	LabelRevenue      = "Ingreso Total"
	LabelUnits        = "Unidades Vendidas"
	LabelTransactions = "Transacciones"
	LabelSales        = "Ventas Realizadas"
	LabelShare        = "Porcentaje"
)

// Row is one group of a View. Missing rows come from a reindex onto a key
// absent from the data and carry no values.
type Row struct {
	Key          string
	Revenue      decimal.Decimal
	Units        int64
	Transactions int
	Share        decimal.Decimal
	Missing      bool
}

// View is a read-only grouped summary keyed by one transaction field.
type View struct {
	Title    string
	KeyLabel string
	Columns  []Column
	Rows     []Row
}

// Len returns the number of rows.
func (v *View) Len() int {
	return len(v.Rows)
}

// Keys returns the row keys in order.
func (v *View) Keys() []string {
	keys := make([]string, len(v.Rows))
	for i, r := range v.Rows {
		keys[i] = r.Key
	}
	return keys
}

// RevenueValues returns the revenue of each row as float64, for plotting.
// Missing rows are skipped.
func (v *View) RevenueValues() []float64 {
	values := make([]float64, 0, len(v.Rows))
	for _, r := range v.Rows {
		if r.Missing {
			continue
		}
		values = append(values, r.Revenue.InexactFloat64())
	}
	return values
}

// Head returns a copy of the view truncated to its first n rows.
func (v *View) Head(n int) *View {
	n = max(0, min(n, len(v.Rows)))
	out := *v
	out.Rows = append([]Row(nil), v.Rows[:n]...)
	return &out
}

// TotalRevenue sums the revenue of every present row.
func (v *View) TotalRevenue() decimal.Decimal {
	total := decimal.Zero
	for _, r := range v.Rows {
		if !r.Missing {
			total = total.Add(r.Revenue)
		}
	}
	return total
}
