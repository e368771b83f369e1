package areatab

import (
	"time"

	"github.com/areatab/areatab/internal/schema"
	"github.com/areatab/areatab/pkg/constants"
	"github.com/areatab/areatab/pkg/errors"
	"github.com/areatab/areatab/pkg/layout"
	"github.com/areatab/areatab/pkg/records"
)

// Option is a function that configures a Client instance.
type Option func(*options) error

// options holds the configured state of a client.
type options struct {
	initialRecords     *records.Set
	snapshotPath       string
	schema             layout.Schema
	dryRun             bool
	delimiter          rune
	autoImportsEnabled bool
	autoImportInterval time.Duration
	autoImportPath     string
}

// defaults returns the default client options.
func defaults() *options {
	return &options{
		schema:             schema.Default(),
		delimiter:          ',',
		autoImportInterval: constants.DefaultImportInterval,
	}
}

// WithInitialRecords seeds the client with a record set. The client
// takes ownership of the set.
func WithInitialRecords(set *records.Set) Option {
	return func(o *options) error {
		if set == nil {
			return errors.NewValidationError("initialRecords", nil, "record set is required")
		}
		o.initialRecords = set
		return nil
	}
}

// WithSnapshotPath configures the snapshot file the client loads on
// startup and Save writes back to. A missing file is not an error;
// the client starts empty.
func WithSnapshotPath(path string) Option {
	return func(o *options) error {
		o.snapshotPath = path
		return nil
	}
}

// WithSchema overrides the vocabulary descriptor used for sheet
// headers.
func WithSchema(s layout.Schema) Option {
	return func(o *options) error {
		if err := s.Validate(); err != nil {
			return err
		}
		o.schema = s
		return nil
	}
}

// WithSchemaFile loads the vocabulary descriptor from a YAML file.
func WithSchemaFile(path string) Option {
	return func(o *options) error {
		s, err := schema.FromFile(path)
		if err != nil {
			return err
		}
		o.schema = s
		return nil
	}
}

// WithDryRun configures whether imports compute change instructions
// without applying them to the record set.
func WithDryRun(enabled bool) Option {
	return func(o *options) error {
		o.dryRun = enabled
		return nil
	}
}

// WithDelimiter sets the CSV field delimiter for sheet files. German
// Excel exports use ';'.
func WithDelimiter(d rune) Option {
	return func(o *options) error {
		o.delimiter = d
		return nil
	}
}

// WithAutoImports configures whether automatic imports are enabled.
func WithAutoImports(enabled bool) Option {
	return func(o *options) error {
		o.autoImportsEnabled = enabled
		return nil
	}
}

// WithAutoImportInterval configures how often the watched sheet is
// re-imported.
func WithAutoImportInterval(interval time.Duration) Option {
	return func(o *options) error {
		o.autoImportInterval = interval
		return nil
	}
}

// WithAutoImportPath configures the sheet file automatic imports read.
func WithAutoImportPath(path string) Option {
	return func(o *options) error {
		o.autoImportPath = path
		return nil
	}
}
