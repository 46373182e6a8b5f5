// Package table converts desserts into rows for tabular CLI output.
package table

import (
	"strconv"
	"strings"

	"github.com/agentstation/dessertshop/internal/cmd/emoji"
	"github.com/agentstation/dessertshop/pkg/desserts"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// Options controls which columns DessertsToTableData emits.
type Options struct {
	// Wide adds the stock column.
	Wide bool
	// Indexed prepends the zero-based array position.
	Indexed bool
}

// DessertsToTableData converts desserts to table format, in order.
func DessertsToTableData(ds []desserts.Dessert, opts Options) Data {
	headers := []string{"ID", "Name", "Flavor", "Price", "Seasonal"}
	align := []Align{AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignCenter}
	if opts.Wide {
		headers = append(headers, "Stock")
		align = append(align, AlignRight)
	}
	if opts.Indexed {
		headers = append([]string{"#"}, headers...)
		align = append([]Align{AlignRight}, align...)
	}

	rows := make([][]string, 0, len(ds))
	for i, d := range ds {
		row := []string{
			d.ID,
			d.Name,
			d.Flavor,
			"$" + desserts.FormatPrice(d.Price),
			FormatSeasonal(d.Seasonal),
		}
		if opts.Wide {
			row = append(row, strconv.Itoa(d.Stock))
		}
		if opts.Indexed {
			row = append([]string{strconv.Itoa(i)}, row...)
		}
		rows = append(rows, row)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: align,
	}
}

// DessertToTableData converts one dessert to a property/value table.
func DessertToTableData(d desserts.Dessert) Data {
	return Data{
		Headers: []string{"Property", "Value"},
		Rows: [][]string{
			{"ID", d.ID},
			{"Name", d.Name},
			{"Flavor", d.Flavor},
			{"Price", "$" + desserts.FormatPrice(d.Price)},
			{"Stock", strconv.Itoa(d.Stock) + " servings"},
			{"Seasonal Limited", desserts.YesNo(d.Seasonal)},
		},
		ColumnAlignment: []Align{AlignLeft, AlignLeft},
	}
}

// HistogramToTableData converts a price histogram to a table with a bar
// column scaled to the largest band.
func HistogramToTableData(h desserts.PriceHistogram) Data {
	buckets := h.Buckets()
	peak := 0
	for _, b := range buckets {
		peak = max(peak, b.Count)
	}

	rows := make([][]string, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, []string{b.Label, strconv.Itoa(b.Count), Bar(b.Count, peak, 30)})
	}

	return Data{
		Headers:         []string{"Price Range", "Count", ""},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight, AlignLeft},
	}
}

// Bar draws n scaled to width against peak. A non-zero count always gets
// at least one mark.
func Bar(n, peak, width int) string {
	if n <= 0 || peak <= 0 || width <= 0 {
		return ""
	}
	size := n * width / peak
	if size == 0 {
		size = 1
	}
	return strings.Repeat(emoji.Bar, size)
}

// FormatSeasonal renders the seasonal flag for a table cell.
func FormatSeasonal(seasonal bool) string {
	if seasonal {
		return emoji.Seasonal
	}
	return ""
}
