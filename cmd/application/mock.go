package application

import (
	"github.com/rs/zerolog"

	"github.com/areatab/areatab"
	"github.com/areatab/areatab/pkg/records"
)

var _ Application = (*Mock)(nil)

// Mock implements Application for command tests. Set a Func field to
// script a method; unset methods return quiet defaults (an empty set,
// a nop logger, table output, dev build metadata).
type Mock struct {
	TablesFunc       func() (*records.Set, error)
	ClientFunc       func(opts ...areatab.Option) (areatab.Client, error)
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

func (m *Mock) Tables() (*records.Set, error) {
	if m.TablesFunc != nil {
		return m.TablesFunc()
	}
	return records.NewSet(), nil
}

func (m *Mock) Client(opts ...areatab.Option) (areatab.Client, error) {
	if m.ClientFunc != nil {
		return m.ClientFunc(opts...)
	}
	return nil, nil
}

func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	nop := zerolog.Nop()
	return &nop
}

func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}
