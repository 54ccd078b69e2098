// Package pipeline runs the load, analyze, report and render steps in order.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/example/sales-analyzer/internal/chart"
	"github.com/example/sales-analyzer/internal/config"
	"github.com/example/sales-analyzer/internal/report"
	"github.com/example/sales-analyzer/internal/sales"
	"github.com/example/sales-analyzer/internal/workbook"
	"github.com/example/sales-analyzer/pkg/transaction"
	"gonum.org/v1/plot/vg"
)

// Run loads cfg.InputPath, writes the report to stdout and saves the chart
// (and the workbook, when configured). Progress goes to logger.
func Run(ctx context.Context, cfg *config.Config, stdout io.Writer, logger *log.Logger) error {
	start := time.Now()

	months, err := cfg.MonthOrder()
	if err != nil {
		return err
	}

	logger.Debug("loading transactions", "path", cfg.InputPath)
	tl, err := transaction.LoadFile(cfg.InputPath)
	if err != nil {
		return err
	}
	logger.Info("transactions loaded", "records", tl.Total)

	if err := ctx.Err(); err != nil {
		return err
	}

	a := sales.Analyze(tl, sales.Options{
		TopProducts: cfg.TopProducts,
		Months:      months,
	})
	logger.Debug("analysis complete",
		"categories", a.Categories.Len(),
		"sellers", a.Sellers.Len(),
		"cities", a.Cities.Len(),
		"products", a.Products.Len())

	r := report.New(stdout)
	if err := r.WriteReport(a); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	fig, err := chart.New(a, chart.Options{
		Width:       vg.Length(cfg.Chart.WidthInches) * vg.Inch,
		Height:      vg.Length(cfg.Chart.HeightInches) * vg.Inch,
		DPI:         cfg.Chart.DPI,
		TopProducts: cfg.ChartTopProducts,
		MonthLabels: cfg.Chart.MonthLabels,
	})
	if err != nil {
		return fmt.Errorf("failed to build chart: %w", err)
	}
	if err := fig.Save(cfg.OutputPath); err != nil {
		return err
	}
	logger.Info("chart saved", "path", cfg.OutputPath, "panels", len(fig.Panels()), "dpi", cfg.Chart.DPI)
	if err := r.WriteChartSaved(cfg.OutputPath); err != nil {
		return err
	}

	if cfg.WorkbookPath != "" {
		if err := workbook.Save(a, cfg.WorkbookPath); err != nil {
			return err
		}
		logger.Info("workbook saved", "path", cfg.WorkbookPath)
		if err := r.WriteWorkbookSaved(cfg.WorkbookPath); err != nil {
			return err
		}
	}

	logger.Info("analysis finished", "duration", time.Since(start))
	return nil
}
