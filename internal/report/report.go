// Package report renders an Analysis as console text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/example/sales-analyzer/internal/sales"
	"github.com/example/sales-analyzer/pkg/transaction"
)

const (
	ruleWidth = 70
	headRows  = 5
	dateFmt   = "02/01/2006"
)

// Reporter writes the sales report to a single writer.
type Reporter struct {
	w      io.Writer
	styles *Styles
}

// New creates a Reporter writing to w. Styling is dropped when w is not a
// terminal.
func New(w io.Writer) *Reporter {
	return &Reporter{
		w:      w,
		styles: NewStyles(lipgloss.NewRenderer(w)),
	}
}

// WriteReport writes sections 1 to 9 of the report for a.
func (r *Reporter) WriteReport(a *sales.Analysis) error {
	sections := []string{
		r.styles.Title.Render("ANÁLISIS DE VENTAS - TIENDA ELECTRÓNICA"),
		r.formatDataset(a.Transactions),
		r.formatStatistics(a),
		r.formatCategories(a),
		r.formatSellers(a),
		r.formatView(5, "ANÁLISIS POR CIUDAD", a.Cities),
		r.formatView(6, "ANÁLISIS POR MÉTODO DE PAGO", a.PaymentMethods),
		r.formatView(7, fmt.Sprintf("TOP %d PRODUCTOS MÁS VENDIDOS", a.Products.Len()), a.Products),
		r.formatView(8, "ANÁLISIS TEMPORAL (POR MES)", a.Months),
		r.formatKPIs(a.KPIs),
	}
	return r.write(strings.Join(sections, "\n\n"))
}

// WriteChartSaved writes the closing section once the figure is on disk.
func (r *Reporter) WriteChartSaved(path string) error {
	return r.write(strings.Join([]string{
		r.formatSectionHeader(10, "GENERANDO VISUALIZACIONES..."),
		fmt.Sprintf("Gráfico guardado como '%s'", path),
	}, "\n"))
}

// WriteWorkbookSaved notes the spreadsheet export.
func (r *Reporter) WriteWorkbookSaved(path string) error {
	return r.write(fmt.Sprintf("Libro de cálculo guardado como '%s'", path))
}

func (r *Reporter) write(s string) error {
	if _, err := fmt.Fprintln(r.w, s+"\n"); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func (r *Reporter) formatSectionHeader(n int, title string) string {
	return strings.Join([]string{
		r.styles.Rule.Render(strings.Repeat("=", ruleWidth)),
		r.styles.Section.Render(fmt.Sprintf("%d. %s", n, title)),
		r.styles.Rule.Render(strings.Repeat("-", ruleWidth)),
	}, "\n")
}

func (r *Reporter) formatDataset(tl *transaction.TransactionList) string {
	from, to := tl.Period()

	lines := []string{
		r.formatSectionHeader(1, "CARGA DE DATOS"),
		"Datos cargados exitosamente",
		fmt.Sprintf("Total de registros: %d", tl.Total),
		fmt.Sprintf("Periodo: %s - %s", from.Format(dateFmt), to.Format(dateFmt)),
		"",
		r.styles.Subtitle.Render(fmt.Sprintf("Primeras %d filas del dataset:", len(tl.Head(headRows)))),
		r.formatHead(tl.Head(headRows)),
		"",
		r.styles.Subtitle.Render("Información del dataset:"),
		r.formatSchema(tl.Total),
	}
	return strings.Join(lines, "\n")
}

func (r *Reporter) formatHead(txs []transaction.Transaction) string {
	headers := make([]string, len(transaction.Schema))
	for i, c := range transaction.Schema {
		headers[i] = c.Name
	}

	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, []string{
			tx.Date.Format("2006-01-02"),
			tx.Product,
			tx.Category,
			tx.Seller,
			tx.City,
			tx.PaymentMethod,
			FormatDecimal(tx.UnitPrice),
			FormatCount(tx.Quantity),
			FormatDecimal(tx.LineTotal),
			tx.MonthName(),
		})
	}
	numeric := map[int]bool{6: true, 7: true, 8: true}
	return r.renderTable(headers, rows, numeric)
}

func (r *Reporter) formatSchema(total int) string {
	rows := make([][]string, 0, len(transaction.Schema))
	for i, c := range transaction.Schema {
		rows = append(rows, []string{FormatCount(i), c.Name, FormatCount(total), c.Kind})
	}
	return r.renderTable([]string{"#", "Columna", "No nulos", "Tipo"}, rows, map[int]bool{0: true, 2: true})
}

func (r *Reporter) formatStatistics(a *sales.Analysis) string {
	stats := []sales.Summary{a.PriceStats, a.QuantityStats, a.RevenueStats}
	names := []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}

	rows := make([][]string, 0, len(names))
	for i, name := range names {
		row := []string{name}
		for _, s := range stats {
			row = append(row, formatStat(s, i))
		}
		rows = append(rows, row)
	}

	headers := []string{"", "Precios", "Cantidad", "Ingresos Totales"}
	return strings.Join([]string{
		r.formatSectionHeader(2, "ESTADÍSTICAS DESCRIPTIVAS"),
		r.renderTable(headers, rows, map[int]bool{1: true, 2: true, 3: true}),
	}, "\n")
}

func formatStat(s sales.Summary, i int) string {
	switch i {
	case 0:
		return FormatCount(s.Count)
	case 1:
		return FormatNumber(s.Mean)
	case 2:
		return FormatNumber(s.Std)
	case 3:
		return FormatNumber(s.Min)
	case 4:
		return FormatNumber(s.Q1)
	case 5:
		return FormatNumber(s.Median)
	case 6:
		return FormatNumber(s.Q3)
	default:
		return FormatNumber(s.Max)
	}
}

func (r *Reporter) formatCategories(a *sales.Analysis) string {
	out := r.formatView(3, "ANÁLISIS POR CATEGORÍAS", a.Categories)
	if top, ok := a.TopCategory(); ok {
		out += "\n\n" + r.styles.Highlight.Render(
			fmt.Sprintf("Categoría más rentable: %s (%s)", top.Key, FormatMoney(top.Revenue)))
	}
	return out
}

func (r *Reporter) formatSellers(a *sales.Analysis) string {
	out := r.formatView(4, "ANÁLISIS POR VENDEDOR", a.Sellers)
	if best, ok := a.BestSeller(); ok {
		out += "\n\n" + r.styles.Highlight.Render(
			fmt.Sprintf("Mejor vendedor: %s (%s)", best.Key, FormatMoney(best.Revenue)))
	}
	return out
}

func (r *Reporter) formatView(n int, section string, v *sales.View) string {
	headers := []string{v.KeyLabel}
	numeric := make(map[int]bool, len(v.Columns))
	for i, c := range v.Columns {
		headers = append(headers, c.Label)
		numeric[i+1] = true
	}

	rows := make([][]string, 0, len(v.Rows))
	for _, row := range v.Rows {
		cells := []string{row.Key}
		for _, c := range v.Columns {
			cells = append(cells, formatCell(row, c.Metric))
		}
		rows = append(rows, cells)
	}

	return strings.Join([]string{
		r.formatSectionHeader(n, section),
		r.styles.Subtitle.Render(v.Title + ":"),
		r.renderTable(headers, rows, numeric),
	}, "\n")
}

func formatCell(row sales.Row, m sales.Metric) string {
	if row.Missing {
		return "NaN"
	}
	switch m {
	case sales.MetricRevenue:
		return FormatDecimal(row.Revenue)
	case sales.MetricUnits:
		return FormatCount(row.Units)
	case sales.MetricTransactions:
		return FormatCount(row.Transactions)
	case sales.MetricShare:
		return FormatDecimal(row.Share)
	default:
		return ""
	}
}

func (r *Reporter) formatKPIs(k sales.KPIs) string {
	lines := []string{
		r.formatSectionHeader(9, "MÉTRICAS CLAVE DEL NEGOCIO"),
		fmt.Sprintf("Ingresos Totales: %s", r.styles.Highlight.Render(FormatMoney(k.TotalRevenue))),
		fmt.Sprintf("Total de Transacciones: %s", FormatCount(k.Transactions)),
		fmt.Sprintf("Ticket Promedio: %s", FormatMoney(k.AverageTicket)),
		fmt.Sprintf("Total de Productos Vendidos: %s unidades", FormatCount(k.UnitsSold)),
	}
	return strings.Join(lines, "\n")
}

func (r *Reporter) renderTable(headers []string, rows [][]string, numeric map[int]bool) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.styles.Border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return r.styles.Header
			case numeric[col]:
				return r.styles.NumericCell
			default:
				return r.styles.Cell
			}
		})
	return t.String()
}
