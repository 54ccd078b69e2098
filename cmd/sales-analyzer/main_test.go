package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	rootCmd := newRootCmd()

	// Test that rootCmd is defined and has expected properties
	assert.NotNil(t, rootCmd, "rootCmd should be defined")
	assert.Equal(t, "sales-analyzer", rootCmd.Use)
	assert.Contains(t, rootCmd.Short, "Analyze retail sales")
	assert.Contains(t, rootCmd.Long, "Sales Analyzer")

	for _, name := range []string{"config", "input", "output", "workbook", "dpi", "log-level", "log-format"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), "flag %s", name)
	}
	for name := range flagKeys {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), "bound flag %s", name)
	}
}

func TestVersionCommand(t *testing.T) {
	rootCmd := newRootCmd()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "sales-analyzer dev\n", out.String())
}

func TestRootCommand_RunsAnalysis(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "ventas.csv")
	output := filepath.Join(dir, "chart.png")
	csv := "fecha,producto,categoria,vendedor,ciudad,metodo_pago,precio,cantidad\n" +
		"2024-01-10,Laptop,Computadoras,Ana,Lima,Tarjeta,1000.00,2\n" +
		"2024-02-20,Mouse,Accesorios,Luis,Cusco,Efectivo,25.50,4\n"
	require.NoError(t, os.WriteFile(input, []byte(csv), 0644))

	rootCmd := newRootCmd()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"--input", input, "--output", output, "--dpi", "20", "--log-level", "warn"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Total de registros: 2")
	assert.FileExists(t, output)
}

func TestRootCommand_MissingInput(t *testing.T) {
	rootCmd := newRootCmd()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--input", filepath.Join(t.TempDir(), "none.csv")})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")
}
