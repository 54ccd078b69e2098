package transaction

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Load errors
var (
	ErrMissingColumn  = errors.New("missing required column")
	ErrInvalidDate    = errors.New("invalid date")
	ErrInvalidNumber  = errors.New("invalid number")
	ErrNoTransactions = errors.New("no transactions in input")
)

// Column names expected in the input header
const (
	ColumnDate          = "fecha"
	ColumnProduct       = "producto"
	ColumnCategory      = "categoria"
	ColumnSeller        = "vendedor"
	ColumnCity          = "ciudad"
	ColumnPaymentMethod = "metodo_pago"
	ColumnUnitPrice     = "precio"
	ColumnQuantity      = "cantidad"
	ColumnLineTotal     = "ingreso_total"
	ColumnMonth         = "mes"
)

// ColumnInfo describes one column of the loaded table
type ColumnInfo struct {
	Name string
	Kind string
}

// Schema lists the loaded columns in order, derived ones last
var Schema = []ColumnInfo{
	{Name: ColumnDate, Kind: "datetime"},
	{Name: ColumnProduct, Kind: "string"},
	{Name: ColumnCategory, Kind: "string"},
	{Name: ColumnSeller, Kind: "string"},
	{Name: ColumnCity, Kind: "string"},
	{Name: ColumnPaymentMethod, Kind: "string"},
	{Name: ColumnUnitPrice, Kind: "decimal"},
	{Name: ColumnQuantity, Kind: "int64"},
	{Name: ColumnLineTotal, Kind: "decimal"},
	{Name: ColumnMonth, Kind: "string"},
}

var requiredColumns = []string{
	ColumnDate,
	ColumnProduct,
	ColumnCategory,
	ColumnSeller,
	ColumnCity,
	ColumnPaymentMethod,
	ColumnUnitPrice,
	ColumnQuantity,
}

// Accepted date layouts, tried in order. Slash dates are day/month/year.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
	"02/01/2006",
	"2/1/2006",
}

// LoadFile reads the transactions stored in the CSV file at path
func LoadFile(path string) (*TransactionList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	tl, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	tl.Source = path
	return tl, nil
}

// ReadCSV parses a header row followed by one transaction per line
func ReadCSV(r io.Reader) (*TransactionList, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoTransactions
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	tl := &TransactionList{LoadedAt: time.Now()}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		line, _ := cr.FieldPos(0)
		t, err := parseRow(row, index)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		tl.AddTransaction(t)
	}

	if tl.Total == 0 {
		return nil, ErrNoTransactions
	}
	return tl, nil
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return index, nil
}

func parseRow(row []string, index map[string]int) (Transaction, error) {
	field := func(name string) string {
		i := index[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	date, err := ParseDate(field(ColumnDate))
	if err != nil {
		return Transaction{}, err
	}

	price, err := decimal.NewFromString(field(ColumnUnitPrice))
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %s %q", ErrInvalidNumber, ColumnUnitPrice, field(ColumnUnitPrice))
	}

	qty, err := decimal.NewFromString(field(ColumnQuantity))
	if err != nil || !qty.IsInteger() {
		return Transaction{}, fmt.Errorf("%w: %s %q", ErrInvalidNumber, ColumnQuantity, field(ColumnQuantity))
	}

	return Transaction{
		Date:          date,
		Product:       field(ColumnProduct),
		Category:      field(ColumnCategory),
		Seller:        field(ColumnSeller),
		City:          field(ColumnCity),
		PaymentMethod: field(ColumnPaymentMethod),
		UnitPrice:     price,
		Quantity:      qty.IntPart(),
	}, nil
}

// ParseDate parses an ISO or day/month/year date
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}
