package output

import (
	"io"

	"github.com/agentstation/dessertshop/internal/cmd/table"
	"github.com/agentstation/dessertshop/pkg/desserts"
)

// FormatDesserts writes ds as a table, or as the raw records for
// structured formats. An empty list still renders as [] in JSON.
func FormatDesserts(w io.Writer, format Format, ds []desserts.Dessert, indexed bool) error {
	formatter := NewFormatter(format)

	var outputData any
	if format.IsTable() {
		outputData = table.DessertsToTableData(ds, table.Options{
			Wide:    format == FormatWide,
			Indexed: indexed,
		})
	} else {
		if ds == nil {
			ds = []desserts.Dessert{}
		}
		outputData = ds
	}

	return formatter.Format(w, outputData)
}

// FormatDessert writes a single dessert.
func FormatDessert(w io.Writer, format Format, d desserts.Dessert) error {
	formatter := NewFormatter(format)

	var outputData any = d
	if format.IsTable() {
		outputData = table.DessertToTableData(d)
	}

	return formatter.Format(w, outputData)
}

// FormatHistogram writes the price histogram.
func FormatHistogram(w io.Writer, format Format, h desserts.PriceHistogram) error {
	formatter := NewFormatter(format)

	var outputData any = h.Buckets()
	if format.IsTable() {
		outputData = table.HistogramToTableData(h)
	}

	return formatter.Format(w, outputData)
}
