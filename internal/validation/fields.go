// Package validation parses raw text into dessert field values.
//
// Each parser is pure: it returns the value or a *errors.ValidationError
// naming the field, and the caller decides whether to re-prompt or abort.
package validation

import (
	"math"
	"strconv"
	"strings"

	"github.com/agentstation/dessertshop/pkg/desserts"
	"github.com/agentstation/dessertshop/pkg/errors"
)

// Field names used in validation errors.
const (
	FieldID       = "id"
	FieldName     = "name"
	FieldFlavor   = "flavor"
	FieldPrice    = "price"
	FieldStock    = "stock"
	FieldSeasonal = "seasonal"
	FieldChoice   = "choice"
)

// ParseID trims s and requires it to be non-empty.
func ParseID(s string) (string, error) {
	return ParseText(FieldID, s)
}

// ParseText trims s and requires it to be non-empty.
func ParseText(field, s string) (string, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return "", errors.NewValidationError(field, s, "cannot be empty")
	}
	return v, nil
}

// ParsePrice parses a non-negative decimal.
func ParsePrice(s string) (float64, error) {
	v := strings.TrimSpace(s)
	v = strings.TrimPrefix(v, "$")
	price, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.WrapValidation(FieldPrice, s, "must be a number", err)
	}
	if price < 0 {
		return 0, errors.NewValidationError(FieldPrice, s, "cannot be negative")
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, errors.NewValidationError(FieldPrice, s, "must be a finite number")
	}
	return price, nil
}

// ParseStock parses a non-negative whole number of servings.
func ParseStock(s string) (int, error) {
	stock, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.WrapValidation(FieldStock, s, "must be a whole number", err)
	}
	if stock < 0 {
		return 0, errors.NewValidationError(FieldStock, s, "cannot be negative")
	}
	return stock, nil
}

// ParseSeasonal accepts yes/no and true/false, case-insensitively.
func ParseSeasonal(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true":
		return true, nil
	case "no", "n", "false":
		return false, nil
	default:
		return false, errors.NewValidationError(FieldSeasonal, s, "must be yes or no")
	}
}

// ParseChoice parses a menu selection in [min, max].
func ParseChoice(s string, min, max int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < min || n > max {
		return 0, errors.NewValidationError(FieldChoice, s,
			"must be a number from "+strconv.Itoa(min)+" to "+strconv.Itoa(max))
	}
	return n, nil
}

// Fields holds the raw text for every dessert field.
type Fields struct {
	ID       string
	Name     string
	Flavor   string
	Price    string
	Stock    string
	Seasonal string
}

// Dessert validates every field and builds the record. The first invalid
// field is reported.
func (f Fields) Dessert() (desserts.Dessert, error) {
	id, err := ParseID(f.ID)
	if err != nil {
		return desserts.Dessert{}, err
	}
	name, err := ParseText(FieldName, f.Name)
	if err != nil {
		return desserts.Dessert{}, err
	}
	flavor, err := ParseText(FieldFlavor, f.Flavor)
	if err != nil {
		return desserts.Dessert{}, err
	}
	price, err := ParsePrice(f.Price)
	if err != nil {
		return desserts.Dessert{}, err
	}
	stock, err := ParseStock(f.Stock)
	if err != nil {
		return desserts.Dessert{}, err
	}
	seasonal, err := ParseSeasonal(f.Seasonal)
	if err != nil {
		return desserts.Dessert{}, err
	}
	return desserts.New(id, name, flavor, price, stock, seasonal), nil
}
