// Package export renders the product list as tabular CSV data.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/onnuri/inventory/internal/model"
)

// bom is the UTF-8 byte order mark; spreadsheet applications need it to
// detect the encoding.
const bom = "\uFEFF"

// Columns is the literal header order of the export.
var Columns = []string{
	"name",
	"manufacturer",
	"quantity",
	"unit",
	"specification",
	"zone",
	"expiry date",
	"days to expiry",
	"last modified",
	"remark",
}

// ProductsCSV writes the product list to w as CSV with a BOM prefix.
// The remark column is reserved and always empty.
func ProductsCSV(w io.Writer, products []model.Product, now time.Time) error {
	if _, err := io.WriteString(w, bom); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, p := range products {
		row := []string{
			p.Name,
			p.Manufacturer,
			strconv.FormatInt(p.Quantity, 10),
			p.Unit,
			p.Spec,
			p.Zone,
			p.Expiry.String(),
			strconv.Itoa(model.DaysToExpiry(p.Expiry, now)),
			p.UpdatedAt.Format(time.RFC3339),
			"",
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row for %s: %w", p.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
