package chart

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/sales-analyzer/internal/sales"
	"github.com/example/sales-analyzer/pkg/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

const fixtureCSV = `fecha,producto,categoria,vendedor,ciudad,metodo_pago,precio,cantidad
2024-01-10,Laptop,Computadoras,Ana,Lima,Tarjeta,1000.00,2
2024-01-10,Mouse,Accesorios,Luis,Cusco,Efectivo,25.50,4
2024-02-20,Monitor,Computadoras,Luis,Lima,Tarjeta,300.00,1
2024-02-20,Teclado,Accesorios,Ana,Arequipa,Transferencia,45.25,2
`

func analysis(t *testing.T) *sales.Analysis {
	t.Helper()
	tl, err := transaction.ReadCSV(strings.NewReader(fixtureCSV))
	require.NoError(t, err)
	return sales.Analyze(tl, sales.DefaultOptions())
}

func smallOptions() Options {
	opts := DefaultOptions()
	opts.Width = 8 * vg.Inch
	opts.Height = 6 * vg.Inch
	opts.DPI = 40
	return opts
}

func TestNew_PanelOrder(t *testing.T) {
	f, err := New(analysis(t), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Ingresos por Categoría",
		"Ingresos por Vendedor",
		"Distribución de Métodos de Pago",
		"Ingresos por Ciudad",
		"Top 5 Productos por Ingresos",
		"Tendencia de Ingresos Mensuales",
	}, f.Panels())
}

func TestNew_Repeatable(t *testing.T) {
	a := analysis(t)
	first, err := New(a, DefaultOptions())
	require.NoError(t, err)
	second, err := New(a, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, first.Panels(), second.Panels())
}

func TestWriteTo_PNGSize(t *testing.T) {
	f, err := New(analysis(t), smallOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := f.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	cfg, err := png.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, 240, cfg.Height)
}

func TestSave_CreatesDirectories(t *testing.T) {
	f, err := New(analysis(t), smallOptions())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "outputs", "nested", "analisis_ventas.png")
	require.NoError(t, f.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")))
}

func TestNewPie(t *testing.T) {
	pie, err := NewPie([]float64{2, 1, 1}, []string{"a", "b", "c"}, pieColors...)
	require.NoError(t, err)
	assert.InDelta(t, 1.5707963, pie.StartAngle, 1e-6)
	assert.Len(t, pie.Colors, 3)

	_, err = NewPie([]float64{1}, []string{"a", "b"})
	assert.ErrorContains(t, err, "1 values but 2 labels")

	_, err = NewPie([]float64{0, 0}, []string{"a", "b"})
	assert.ErrorContains(t, err, "sum to zero")

	_, err = NewPie([]float64{-1, 2}, []string{"a", "b"})
	assert.ErrorContains(t, err, "invalid value")
}
