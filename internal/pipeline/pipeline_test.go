package pipeline

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/example/sales-analyzer/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureCSV = `fecha,producto,categoria,vendedor,ciudad,metodo_pago,precio,cantidad
2024-01-10,Laptop,Computadoras,Ana,Lima,Tarjeta,1000.00,2
2024-01-10,Mouse,Accesorios,Luis,Cusco,Efectivo,25.50,4
2024-02-20,Monitor,Computadoras,Luis,Lima,Tarjeta,300.00,1
2024-02-20,Teclado,Accesorios,Ana,Arequipa,Transferencia,45.25,2
2024-03-02,Laptop,Computadoras,Rosa,Cusco,Efectivo,950.00,1
`

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "ventas_electronica.csv")
	require.NoError(t, os.WriteFile(input, []byte(fixtureCSV), 0644))

	return &config.Config{
		InputPath:        input,
		OutputPath:       filepath.Join(dir, "outputs", "analisis_ventas.png"),
		TopProducts:      10,
		ChartTopProducts: 5,
		Months:           []string{"January", "February", "March"},
		Chart: config.ChartConfig{
			WidthInches:  8,
			HeightInches: 6,
			DPI:          30,
			MonthLabels:  []string{"Enero", "Febrero", "Marzo"},
		},
		Logging: config.LoggingConfig{Level: "info", Format: "text"},
	}
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestRun(t *testing.T) {
	cfg := testConfig(t)
	cfg.WorkbookPath = filepath.Join(filepath.Dir(cfg.OutputPath), "ventas.xlsx")

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), cfg, &out, quietLogger()))

	assert.Contains(t, out.String(), "Total de registros: 5")
	assert.Contains(t, out.String(), "Ingresos Totales: $3,442.50")
	assert.Contains(t, out.String(), "Gráfico guardado como")
	assert.Contains(t, out.String(), "Libro de cálculo guardado como")

	assert.FileExists(t, cfg.OutputPath)
	assert.FileExists(t, cfg.WorkbookPath)
}

func TestRun_ByteIdenticalOutput(t *testing.T) {
	cfg := testConfig(t)

	var first, second bytes.Buffer
	require.NoError(t, Run(context.Background(), cfg, &first, quietLogger()))
	require.NoError(t, Run(context.Background(), cfg, &second, quietLogger()))

	assert.Equal(t, first.String(), second.String())
}

func TestRun_MissingInput(t *testing.T) {
	cfg := testConfig(t)
	cfg.InputPath = filepath.Join(t.TempDir(), "missing.csv")

	err := Run(context.Background(), cfg, io.Discard, quietLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NoFileExists(t, cfg.OutputPath)
}

func TestRun_Canceled(t *testing.T) {
	cfg := testConfig(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, cfg, io.Discard, quietLogger())
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, cfg.OutputPath)
}
