// Package workbook exports an Analysis as an .xlsx spreadsheet with one
// sheet per grouped view.
package workbook

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/sales-analyzer/internal/sales"
	"github.com/xuri/excelize/v2"
)

// Sheet names, in tab order.
const (
	SheetKPIs           = "KPIs"
	SheetCategories     = "Categorias"
	SheetSellers        = "Vendedores"
	SheetCities         = "Ciudades"
	SheetPaymentMethods = "MetodosPago"
	SheetProducts       = "Productos"
	SheetMonths         = "Meses"
)

// builtin number format "#,##0.00"
const moneyNumFmt = 4

type styles struct {
	header int
	money  int
}

// Save writes a to path, creating parent directories.
func Save(a *sales.Analysis, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	st, err := newStyles(f)
	if err != nil {
		return err
	}

	if err := f.SetSheetName("Sheet1", SheetKPIs); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if err := writeKPIs(f, st, a.KPIs); err != nil {
		return err
	}

	views := []struct {
		sheet string
		view  *sales.View
	}{
		{SheetCategories, a.Categories},
		{SheetSellers, a.Sellers},
		{SheetCities, a.Cities},
		{SheetPaymentMethods, a.PaymentMethods},
		{SheetProducts, a.Products},
		{SheetMonths, a.Months},
	}
	for _, v := range views {
		if _, err := f.NewSheet(v.sheet); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", v.sheet, err)
		}
		if err := writeView(f, st, v.sheet, v.view); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create workbook directory: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func newStyles(f *excelize.File) (styles, error) {
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#7B2CBF"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return styles{}, fmt.Errorf("failed to create header style: %w", err)
	}

	money, err := f.NewStyle(&excelize.Style{NumFmt: moneyNumFmt})
	if err != nil {
		return styles{}, fmt.Errorf("failed to create money style: %w", err)
	}
	return styles{header: header, money: money}, nil
}

func writeKPIs(f *excelize.File, st styles, k sales.KPIs) error {
	rows := [][]any{
		{"Métrica", "Valor"},
		{"Ingresos Totales", k.TotalRevenue.InexactFloat64()},
		{"Total de Transacciones", k.Transactions},
		{"Ticket Promedio", k.AverageTicket.Round(2).InexactFloat64()},
		{"Total de Productos Vendidos", k.UnitsSold},
	}
	if err := writeRows(f, SheetKPIs, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetKPIs, "A1", "B1", st.header); err != nil {
		return fmt.Errorf("failed to style %s: %w", SheetKPIs, err)
	}
	for _, cell := range []string{"B2", "B4"} {
		if err := f.SetCellStyle(SheetKPIs, cell, cell, st.money); err != nil {
			return fmt.Errorf("failed to style %s: %w", SheetKPIs, err)
		}
	}
	return f.SetColWidth(SheetKPIs, "A", "B", 28)
}

func writeView(f *excelize.File, st styles, sheet string, v *sales.View) error {
	header := []any{v.KeyLabel}
	for _, c := range v.Columns {
		header = append(header, c.Label)
	}

	rows := [][]any{header}
	for _, r := range v.Rows {
		row := []any{r.Key}
		for _, c := range v.Columns {
			row = append(row, cellValue(r, c.Metric))
		}
		rows = append(rows, row)
	}
	if err := writeRows(f, sheet, rows); err != nil {
		return err
	}

	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, st.header); err != nil {
		return fmt.Errorf("failed to style %s: %w", sheet, err)
	}

	for i, c := range v.Columns {
		if c.Metric != sales.MetricRevenue || len(v.Rows) == 0 {
			continue
		}
		top, _ := excelize.CoordinatesToCellName(i+2, 2)
		bottom, _ := excelize.CoordinatesToCellName(i+2, len(v.Rows)+1)
		if err := f.SetCellStyle(sheet, top, bottom, st.money); err != nil {
			return fmt.Errorf("failed to style %s: %w", sheet, err)
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(header))
	return f.SetColWidth(sheet, "A", lastCol, 20)
}

// cellValue returns nil for missing rows so the cell stays empty.
func cellValue(r sales.Row, m sales.Metric) any {
	if r.Missing {
		return nil
	}
	switch m {
	case sales.MetricRevenue:
		return r.Revenue.InexactFloat64()
	case sales.MetricUnits:
		return r.Units
	case sales.MetricTransactions:
		return r.Transactions
	case sales.MetricShare:
		return r.Share.InexactFloat64()
	default:
		return nil
	}
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		for j, value := range row {
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}
