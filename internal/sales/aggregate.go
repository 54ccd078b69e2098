package sales

import (
	"slices"
	"strings"
	"time"

	"github.com/example/sales-analyzer/pkg/transaction"
	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

var hundred = decimal.NewFromInt(100)

// groupBy sums revenue, units and record count per key. Rows come back
// ordered by key so later stable sorts break revenue ties the same way on
// every run.
func groupBy(txs []transaction.Transaction, key func(transaction.Transaction) string) []Row {
	groups := make(map[string]*Row)
	for _, tx := range txs {
		k := key(tx)
		g, ok := groups[k]
		if !ok {
			g = &Row{Key: k, Revenue: decimal.Zero}
			groups[k] = g
		}
		g.Revenue = g.Revenue.Add(tx.LineTotal)
		g.Units += tx.Quantity
		g.Transactions++
	}

	rows := make([]Row, 0, len(groups))
	for _, g := range groups {
		g.Revenue = g.Revenue.RoundBank(moneyPlaces)
		rows = append(rows, *g)
	}
	slices.SortFunc(rows, func(a, b Row) int {
		return strings.Compare(a.Key, b.Key)
	})
	return rows
}

func sortByRevenue(rows []Row) {
	slices.SortStableFunc(rows, func(a, b Row) int {
		return b.Revenue.Cmp(a.Revenue)
	})
}

func revenueView(txs []transaction.Transaction, title, keyLabel string, key func(transaction.Transaction) string, cols ...Column) *View {
	rows := groupBy(txs, key)
	sortByRevenue(rows)
	return &View{
		Title:    title,
		KeyLabel: keyLabel,
		Columns:  cols,
		Rows:     rows,
	}
}

// ByCategory groups revenue, units and transaction count per category.
func ByCategory(tl *transaction.TransactionList) *View {
	return revenueView(tl.Transactions, "Ventas por Categoría", transaction.ColumnCategory,
		func(t transaction.Transaction) string { return t.Category },
		Column{MetricRevenue, LabelRevenue},
		Column{MetricUnits, LabelUnits},
		Column{MetricTransactions, LabelTransactions},
	)
}

// BySeller groups revenue and number of sales per seller.
func BySeller(tl *transaction.TransactionList) *View {
	return revenueView(tl.Transactions, "Desempeño por Vendedor", transaction.ColumnSeller,
		func(t transaction.Transaction) string { return t.Seller },
		Column{MetricRevenue, LabelRevenue},
		Column{MetricTransactions, LabelSales},
	)
}

// ByCity groups revenue and transaction count per city.
func ByCity(tl *transaction.TransactionList) *View {
	return revenueView(tl.Transactions, "Ventas por Ciudad", transaction.ColumnCity,
		func(t transaction.Transaction) string { return t.City },
		Column{MetricRevenue, LabelRevenue},
		Column{MetricTransactions, LabelTransactions},
	)
}

// ByPaymentMethod groups revenue and transaction count per payment method,
// adding each method's percentage of all transactions.
func ByPaymentMethod(tl *transaction.TransactionList) *View {
	v := revenueView(tl.Transactions, "Ventas por Método de Pago", transaction.ColumnPaymentMethod,
		func(t transaction.Transaction) string { return t.PaymentMethod },
		Column{MetricRevenue, LabelRevenue},
		Column{MetricTransactions, LabelTransactions},
		Column{MetricShare, LabelShare},
	)

	total := 0
	for _, r := range v.Rows {
		total += r.Transactions
	}
	if total == 0 {
		return v
	}
	for i := range v.Rows {
		v.Rows[i].Share = decimal.NewFromInt(int64(v.Rows[i].Transactions)).
			Mul(hundred).
			Div(decimal.NewFromInt(int64(total))).
			RoundBank(moneyPlaces)
	}
	return v
}

// TopProducts returns the n products with the highest revenue.
func TopProducts(tl *transaction.TransactionList, n int) *View {
	v := revenueView(tl.Transactions, "Top Productos por Ingreso", transaction.ColumnProduct,
		func(t transaction.Transaction) string { return t.Product },
		Column{MetricUnits, LabelUnits},
		Column{MetricRevenue, LabelRevenue},
	)
	return v.Head(n)
}

// ByMonth groups revenue and transaction count per calendar month, laid out
// in the given order instead of by revenue. Months of order with no sales
// are kept as Missing rows; months outside order are dropped.
func ByMonth(tl *transaction.TransactionList, order []time.Month) *View {
	grouped := groupBy(tl.Transactions, func(t transaction.Transaction) string {
		return t.MonthName()
	})
	byName := make(map[string]Row, len(grouped))
	for _, r := range grouped {
		byName[r.Key] = r
	}

	rows := make([]Row, 0, len(order))
	for _, m := range order {
		r, ok := byName[m.String()]
		if !ok {
			r = Row{Key: m.String(), Missing: true}
		}
		rows = append(rows, r)
	}

	return &View{
		Title:    "Ventas por Mes",
		KeyLabel: transaction.ColumnMonth,
		Columns: []Column{
			{MetricRevenue, LabelRevenue},
			{MetricTransactions, LabelTransactions},
		},
		Rows: rows,
	}
}
