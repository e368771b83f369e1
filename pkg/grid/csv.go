package grid

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/areatab/areatab/pkg/constants"
	"github.com/areatab/areatab/pkg/errors"
)

// utf8BOM is the byte-order mark Excel prepends to UTF-8 CSV exports.
var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// Option adjusts the CSV codec.
type Option func(*codecOptions)

type codecOptions struct {
	delimiter rune
}

// WithDelimiter sets the cell delimiter. The default is ','; German
// Excel installations export with ';'.
func WithDelimiter(delimiter rune) Option {
	return func(o *codecOptions) {
		o.delimiter = delimiter
	}
}

func applyOptions(opts []Option) codecOptions {
	options := codecOptions{delimiter: ','}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

// Encode writes the grid as CSV, one record per grid row.
func Encode(w io.Writer, g *Grid, opts ...Option) error {
	options := applyOptions(opts)
	cw := csv.NewWriter(w)
	cw.Comma = options.delimiter
	for _, row := range g.Rows() {
		if err := cw.Write(row); err != nil {
			return errors.WrapIO("write", "", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.WrapIO("write", "", err)
	}
	return nil
}

// Decode reads CSV into a grid. Input that is not valid UTF-8 is
// decoded as Windows-1252, the code page of German Excel exports.
// Rows may be ragged and quoting is handled loosely.
func Decode(r io.Reader, opts ...Option) (*Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapIO("read", "", err)
	}
	return decode(data, "", applyOptions(opts))
}

func decode(data []byte, path string, options codecOptions) (*Grid, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		converted, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return nil, errors.WrapParse("csv", path, err)
		}
		data = converted
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = options.delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, errors.WrapParse("csv", path, err)
	}
	if err := checkBounds(rows); err != nil {
		return nil, err
	}
	return FromRows(rows), nil
}

// checkBounds rejects input beyond spreadsheet dimensions; no real
// sheet export ever reaches them.
func checkBounds(rows [][]string) error {
	if len(rows) > constants.MaxGridRows {
		return errors.NewStructuralError(
			fmt.Sprintf("sheet has %d rows, more than the %d a sheet can hold", len(rows), constants.MaxGridRows), nil)
	}
	for _, row := range rows {
		if len(row) > constants.MaxGridColumns {
			return errors.NewStructuralError(
				fmt.Sprintf("sheet has %d columns, more than the %d a sheet can hold", len(row), constants.MaxGridColumns), nil)
		}
	}
	return nil
}

// WriteFile encodes the grid to a CSV file, creating parent
// directories as needed.
func WriteFile(path string, g *Grid, opts ...Option) error {
	var buf bytes.Buffer
	if err := Encode(&buf, g, opts...); err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// ReadFile decodes a CSV file into a grid.
func ReadFile(path string, opts ...Option) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("sheet", path)
		}
		return nil, errors.WrapIO("read", path, err)
	}
	return decode(data, path, applyOptions(opts))
}
