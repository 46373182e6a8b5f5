package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/dessertshop/pkg/desserts"
)

// Mock provides a mock implementation of Interface for testing.
// If a function field is nil, the method returns a default value.
type Mock struct {
	StoreFunc        func() (*desserts.Store, error)
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string

	store *desserts.Store
}

// Compile-time interface check.
var _ Interface = (*Mock)(nil)

// NewMock returns a Mock backed by an in-memory store holding ds.
func NewMock(ds ...desserts.Dessert) *Mock {
	return &Mock{store: desserts.NewStore(desserts.WithDesserts(ds...))}
}

// Store returns the store from StoreFunc, or a shared in-memory store.
func (m *Mock) Store() (*desserts.Store, error) {
	if m.StoreFunc != nil {
		return m.StoreFunc()
	}
	if m.store == nil {
		m.store = desserts.NewStore()
	}
	return m.store, nil
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns the format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns the builder using the mock function or "unknown".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "unknown"
}
