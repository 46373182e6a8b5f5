// Package desserts holds the dessert catalog: the Dessert record and the
// Store that owns an ordered, id-unique sequence of them.
//
// The Store is single-threaded by design. Every mutation is applied to the
// in-memory sequence first and then written through the configured
// Persister as one whole-list snapshot; the in-memory state stays
// authoritative when that write fails.
package desserts

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Dessert is one catalog entry. It is a value type: the Store keeps and
// hands out copies, and an update replaces the whole value at its slot.
type Dessert struct {
	ID       string  `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Flavor   string  `json:"flavor" yaml:"flavor"`
	Price    float64 `json:"price" yaml:"price"`
	Stock    int     `json:"stock" yaml:"stock"`
	Seasonal bool    `json:"seasonal" yaml:"seasonal"`
}

// New builds a Dessert from all six fields. None of them is optional.
func New(id, name, flavor string, price float64, stock int, seasonal bool) Dessert {
	return Dessert{
		ID:       id,
		Name:     name,
		Flavor:   flavor,
		Price:    price,
		Stock:    stock,
		Seasonal: seasonal,
	}
}

// SameEntry reports whether d and other denote the same catalog entry.
// Only the ID takes part; every other field may differ across updates.
func (d Dessert) SameEntry(other Dessert) bool {
	return d.ID == other.ID
}

// Matches reports whether the name or flavor contains keyword.
// The comparison is case-sensitive.
func (d Dessert) Matches(keyword string) bool {
	return strings.Contains(d.Name, keyword) || strings.Contains(d.Flavor, keyword)
}

// MatchesFold is Matches with Unicode case folding on both sides.
func (d Dessert) MatchesFold(keyword string) bool {
	fold := cases.Fold()
	k := fold.String(keyword)
	return strings.Contains(fold.String(d.Name), k) || strings.Contains(fold.String(d.Flavor), k)
}

// String renders the dessert as a multi-line info card.
func (d Dessert) String() string {
	var sb strings.Builder
	sb.WriteString("Dessert Info\n")
	fmt.Fprintf(&sb, "ID: %s\n", d.ID)
	fmt.Fprintf(&sb, "Name: %s\n", d.Name)
	fmt.Fprintf(&sb, "Flavor: %s\n", d.Flavor)
	fmt.Fprintf(&sb, "Price: $%s\n", FormatPrice(d.Price))
	fmt.Fprintf(&sb, "Stock: %d servings\n", d.Stock)
	fmt.Fprintf(&sb, "Seasonal Limited: %s\n", YesNo(d.Seasonal))
	return sb.String()
}

// FormatPrice renders a price with the shortest representation that
// round-trips, but never fewer than two decimals.
func FormatPrice(price float64) string {
	s := strconv.FormatFloat(price, 'f', 2, 64)
	if exact := strconv.FormatFloat(price, 'f', -1, 64); len(exact) > len(s) {
		return exact
	}
	return s
}

// YesNo renders a boolean the way the menu asks for it.
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
