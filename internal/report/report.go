// Package report renders the dessert inventory as a Markdown document.
package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	md "github.com/nao1215/markdown"

	"github.com/agentstation/dessertshop/pkg/desserts"
)

// Source is the read side of the store a report needs.
type Source interface {
	ToArray() []desserts.Dessert
	FilterSeasonal() []desserts.Dessert
	PriceHistogram() desserts.PriceHistogram
}

// Summary holds the aggregate figures shown at the top of a report.
type Summary struct {
	Desserts   int
	Seasonal   int
	OutOfStock int
	Servings   int
	StockValue float64
}

// Summarize computes the report summary for ds.
func Summarize(ds []desserts.Dessert) Summary {
	var s Summary
	s.Desserts = len(ds)
	for _, d := range ds {
		if d.Seasonal {
			s.Seasonal++
		}
		if d.Stock == 0 {
			s.OutOfStock++
		}
		s.Servings += d.Stock
		s.StockValue += d.Price * float64(d.Stock)
	}
	return s
}

// Option configures Write.
type Option func(*options)

type options struct {
	title string
	now   func() time.Time
}

// WithTitle overrides the document title.
func WithTitle(title string) Option {
	return func(o *options) {
		if title != "" {
			o.title = title
		}
	}
}

// WithClock sets the time source for the generated-at line.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// Write renders the inventory report for src to w.
func Write(w io.Writer, src Source, opts ...Option) error {
	o := options{title: "Dessert Inventory Report", now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	all := src.ToArray()
	summary := Summarize(all)

	doc := md.NewMarkdown(w)
	doc.H1(o.title).
		PlainTextf("Generated %s", md.Italic(o.now().UTC().Format(time.RFC3339))).
		LF()

	doc.H2("Summary").
		BulletList(
			fmt.Sprintf("%s %d", md.Bold("Desserts:"), summary.Desserts),
			fmt.Sprintf("%s %d", md.Bold("Seasonal limited:"), summary.Seasonal),
			fmt.Sprintf("%s %d", md.Bold("Out of stock:"), summary.OutOfStock),
			fmt.Sprintf("%s %d", md.Bold("Servings in stock:"), summary.Servings),
			fmt.Sprintf("%s $%s", md.Bold("Stock value:"), desserts.FormatPrice(summary.StockValue)),
		)

	hist := src.PriceHistogram()
	rows := make([][]string, 0, 3)
	for _, b := range hist.Buckets() {
		rows = append(rows, []string{b.Label, strconv.Itoa(b.Count)})
	}
	doc.H2("Price Distribution").
		Table(md.TableSet{
			Header: []string{"Price Range", "Count"},
			Rows:   rows,
		})

	doc.H2("Catalog")
	if len(all) == 0 {
		doc.PlainText("The catalog is empty.").LF()
	} else {
		doc.Table(md.TableSet{
			Header: []string{"ID", "Name", "Flavor", "Price", "Stock", "Seasonal"},
			Rows:   catalogRows(all),
		})
	}

	seasonal := src.FilterSeasonal()
	if len(seasonal) > 0 {
		items := make([]string, 0, len(seasonal))
		for _, d := range seasonal {
			items = append(items, fmt.Sprintf("%s %s (%s)", md.Code(d.ID), d.Name, d.Flavor))
		}
		doc.H2("Seasonal Specials").BulletList(items...)
	}

	return doc.Build()
}

func catalogRows(ds []desserts.Dessert) [][]string {
	rows := make([][]string, 0, len(ds))
	for _, d := range ds {
		rows = append(rows, []string{
			d.ID,
			d.Name,
			d.Flavor,
			"$" + desserts.FormatPrice(d.Price),
			strconv.Itoa(d.Stock),
			desserts.YesNo(d.Seasonal),
		})
	}
	return rows
}
