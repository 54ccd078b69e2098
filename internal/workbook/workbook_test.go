package workbook

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/sales-analyzer/internal/sales"
	"github.com/example/sales-analyzer/pkg/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const fixtureCSV = `fecha,producto,categoria,vendedor,ciudad,metodo_pago,precio,cantidad
2024-01-10,Laptop,Computadoras,Ana,Lima,Tarjeta,1000.00,2
2024-01-10,Mouse,Accesorios,Luis,Cusco,Efectivo,25.50,4
2024-02-20,Monitor,Computadoras,Luis,Lima,Tarjeta,300.00,1
2024-02-20,Teclado,Accesorios,Ana,Arequipa,Transferencia,45.25,2
`

func TestSave(t *testing.T) {
	tl, err := transaction.ReadCSV(strings.NewReader(fixtureCSV))
	require.NoError(t, err)
	a := sales.Analyze(tl, sales.DefaultOptions())

	path := filepath.Join(t.TempDir(), "out", "ventas.xlsx")
	require.NoError(t, Save(a, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{
		SheetKPIs, SheetCategories, SheetSellers, SheetCities,
		SheetPaymentMethods, SheetProducts, SheetMonths,
	}, f.GetSheetList())

	rows, err := f.GetRows(SheetCategories)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"categoria", "Ingreso Total", "Unidades Vendidas", "Transacciones"}, rows[0])
	assert.Equal(t, "Computadoras", rows[1][0])
	assert.Equal(t, "3", rows[1][2])

	raw, err := f.GetCellValue(SheetCategories, "B2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "2300", raw)

	months, err := f.GetRows(SheetMonths)
	require.NoError(t, err)
	require.Len(t, months, 4)
	assert.Equal(t, []string{"March"}, months[3], "missing month keeps its key and empty values")

	kpis, err := f.GetRows(SheetKPIs)
	require.NoError(t, err)
	assert.Equal(t, "Total de Transacciones", kpis[2][0])
	assert.Equal(t, "4", kpis[2][1])
}
