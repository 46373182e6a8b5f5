// Package menu implements the interactive numbered menu over a line-based
// reader and writer.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/dessertshop/internal/cmd/alerts"
	"github.com/agentstation/dessertshop/internal/cmd/emoji"
	"github.com/agentstation/dessertshop/internal/cmd/output"
	"github.com/agentstation/dessertshop/internal/cmd/table"
	"github.com/agentstation/dessertshop/internal/validation"
	"github.com/agentstation/dessertshop/pkg/desserts"
	"github.com/agentstation/dessertshop/pkg/errors"
	"github.com/agentstation/dessertshop/pkg/logging"
)

// Store is the subset of *desserts.Store the menu drives.
type Store interface {
	Add(d *desserts.Dessert) error
	Update(id string, d *desserts.Dessert) error
	Delete(id string) error
	FindByID(id string) (desserts.Dessert, bool)
	FindByKeyword(text string) []desserts.Dessert
	FilterSeasonal() []desserts.Dessert
	ToArray() []desserts.Dessert
	PriceHistogram() desserts.PriceHistogram
}

// Menu choices.
const (
	ChoiceAdd = iota + 1
	ChoiceUpdate
	ChoiceDelete
	ChoiceList
	ChoiceGet
	ChoiceSearch
	ChoiceSeasonal
	ChoiceArray
	ChoiceHistogram
	ChoiceExit
)

const separator = "-----------------"

const banner = `
Dessert Shop Management System
1. Add Dessert  2. Update Dessert  3. Delete Dessert  4. View All
5. Search by ID  6. Fuzzy Search (Name/Flavor)  7. Filter Seasonal
8. Show Desserts in Array  9. Count Price Range  10. Exit`

// Menu runs the interactive loop.
type Menu struct {
	store  Store
	in     *bufio.Scanner
	out    io.Writer
	alerts alerts.Writer
	logger *zerolog.Logger
}

// Option configures a Menu.
type Option func(*Menu)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(logger *zerolog.Logger) Option {
	return func(m *Menu) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// New creates a Menu reading answers from in and writing to out.
func New(store Store, in io.Reader, out io.Writer, opts ...Option) *Menu {
	m := &Menu{
		store:  store,
		in:     bufio.NewScanner(in),
		out:    out,
		alerts: alerts.NewFormatWriter(out, output.FormatTable),
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run shows the menu until the user exits, input ends, or ctx is done.
// End of input is a normal exit.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.println(banner)
		choice, err := ask(m, "Please enter operation number (1-10)", func(s string) (int, error) {
			return validation.ParseChoice(s, ChoiceAdd, ChoiceExit)
		})
		if err != nil {
			return m.finish(err)
		}
		if choice == ChoiceExit {
			m.println("Exiting system!")
			return nil
		}

		m.logger.Debug().Int("choice", choice).Msg("Menu selection")
		if err := m.dispatch(choice); err != nil {
			return m.finish(err)
		}
	}
}

func (m *Menu) finish(err error) error {
	if err == io.EOF {
		m.println("")
		return nil
	}
	return err
}

func (m *Menu) dispatch(choice int) error {
	switch choice {
	case ChoiceAdd:
		return m.add()
	case ChoiceUpdate:
		return m.update()
	case ChoiceDelete:
		return m.delete()
	case ChoiceList:
		m.list()
	case ChoiceGet:
		return m.get()
	case ChoiceSearch:
		return m.search()
	case ChoiceSeasonal:
		m.seasonal()
	case ChoiceArray:
		m.array()
	case ChoiceHistogram:
		m.histogram()
	}
	return nil
}

func (m *Menu) add() error {
	m.println("\n----- Add New Dessert -----")
	id, err := ask(m, "ID (e.g., D001)", validation.ParseID)
	if err != nil {
		return err
	}
	d, err := m.askDetails(id, "")
	if err != nil {
		return err
	}
	m.alert(alerts.ForMutation("added", id, m.store.Add(&d)))
	return nil
}

func (m *Menu) update() error {
	m.println("\n----- Update Dessert -----")
	id, err := ask(m, "Enter ID of dessert to update", validation.ParseID)
	if err != nil {
		return err
	}
	current, ok := m.store.FindByID(id)
	if !ok {
		m.alert(alerts.NewError("Dessert not found"))
		return nil
	}
	m.println("Current Dessert Info:")
	m.println(current.String())

	d, err := m.askDetails(id, "New ")
	if err != nil {
		return err
	}
	m.alert(alerts.ForMutation("updated", id, m.store.Update(id, &d)))
	return nil
}

func (m *Menu) delete() error {
	m.println("\n----- Delete Dessert -----")
	id, err := ask(m, "Enter ID of dessert to delete", validation.ParseID)
	if err != nil {
		return err
	}
	m.alert(alerts.ForMutation("deleted", id, m.store.Delete(id)))
	return nil
}

func (m *Menu) list() {
	all := m.store.ToArray()
	if len(all) == 0 {
		m.alert(alerts.NewInfo("No dessert data available"))
		return
	}
	m.println("\n===== Dessert Shop Menu =====")
	m.cards(all)
}

func (m *Menu) get() error {
	m.println("\n----- Search by ID -----")
	id, err := ask(m, "Enter dessert ID", validation.ParseID)
	if err != nil {
		return err
	}
	d, ok := m.store.FindByID(id)
	if !ok {
		m.alert(alerts.NewError("Dessert not found"))
		return nil
	}
	m.println("Search Result:")
	m.println(d.String())
	return nil
}

func (m *Menu) search() error {
	m.println("\n----- Fuzzy Search (Name/Flavor) -----")
	keyword, err := m.readLine("Enter search keyword")
	if err != nil {
		return err
	}
	found := m.store.FindByKeyword(keyword)
	if len(found) == 0 {
		m.alert(alerts.NewError("No matching results"))
		return nil
	}
	m.printf("Found %d matching desserts:\n", len(found))
	m.cards(found)
	return nil
}

func (m *Menu) seasonal() {
	m.println("\n----- Seasonal Limited Desserts -----")
	found := m.store.FilterSeasonal()
	if len(found) == 0 {
		m.alert(alerts.NewInfo("No seasonal limited desserts available"))
		return
	}
	m.cards(found)
}

func (m *Menu) array() {
	m.println("\n----- Desserts in Array Format -----")
	arr := m.store.ToArray()
	if len(arr) == 0 {
		m.alert(alerts.NewInfo("No dessert data available in array"))
		return
	}
	for i, d := range arr {
		m.printf("Array Index %d:\n%s\n%s\n", i, separator, d.String())
	}
	m.printf("Total elements in array: %d\n", len(arr))
}

func (m *Menu) histogram() {
	m.println("\nDessert price range counts:")
	h := m.store.PriceHistogram()
	buckets := h.Buckets()
	peak := 0
	for _, b := range buckets {
		peak = max(peak, b.Count)
	}
	for _, b := range buckets {
		m.printf("%-14s %d %s\n", b.Label+":", b.Count, table.Bar(b.Count, peak, 20))
	}
}

// askDetails prompts for every field except the id.
func (m *Menu) askDetails(id, prefix string) (desserts.Dessert, error) {
	name, err := ask(m, prefix+"Name", func(s string) (string, error) {
		return validation.ParseText(validation.FieldName, s)
	})
	if err != nil {
		return desserts.Dessert{}, err
	}
	flavor, err := ask(m, prefix+"Flavor", func(s string) (string, error) {
		return validation.ParseText(validation.FieldFlavor, s)
	})
	if err != nil {
		return desserts.Dessert{}, err
	}
	price, err := ask(m, prefix+"Price ($)", validation.ParsePrice)
	if err != nil {
		return desserts.Dessert{}, err
	}
	stock, err := ask(m, prefix+"Stock", validation.ParseStock)
	if err != nil {
		return desserts.Dessert{}, err
	}
	seasonal, err := ask(m, prefix+"Seasonal Limited (Yes/No)", validation.ParseSeasonal)
	if err != nil {
		return desserts.Dessert{}, err
	}
	return desserts.New(id, name, flavor, price, stock, seasonal), nil
}

// ask re-prompts until parse accepts the answer. It returns io.EOF when
// input runs out.
func ask[T any](m *Menu, label string, parse func(string) (T, error)) (T, error) {
	for {
		line, err := m.readLine(label)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(line)
		if err == nil {
			return v, nil
		}

		var ve *errors.ValidationError
		if !errors.As(err, &ve) {
			var zero T
			return zero, err
		}
		m.alert(alerts.NewError("Invalid " + ve.Field + ": " + ve.Message))
	}
}

func (m *Menu) readLine(label string) (string, error) {
	m.printf("%s %s: ", emoji.Prompt, label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(m.in.Text(), "\r"), nil
}

func (m *Menu) cards(ds []desserts.Dessert) {
	for _, d := range ds {
		m.println(separator)
		m.println(d.String())
	}
}

func (m *Menu) alert(a *alerts.Alert) {
	if err := m.alerts.WriteAlert(a); err != nil {
		m.logger.Warn().Err(err).Msg("Failed to write alert")
	}
}

func (m *Menu) println(s string) {
	_, _ = fmt.Fprintln(m.out, s)
}

func (m *Menu) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(m.out, format, args...)
}
