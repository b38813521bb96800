// Package loader materializes rectangular in-memory tables from the
// supported container formats: delimited text, XLSX workbooks, and SQLite
// databases. Loaders declare each column's storage kind at load time; the
// core never reinterprets values afterwards.
package loader

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KaramelBytes/dataloom-cli/internal/dataset"
)

// ErrUnsupportedFormat indicates no registered loader handles the file.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Options controls loading behavior.
type Options struct {
	// Delimiter for CSV. If 0, auto-detects from the extension.
	Delimiter rune
	// SheetName selects an XLSX sheet by name; SheetIndex (1-based) by
	// position. Name wins when both are set.
	SheetName  string
	SheetIndex int
	// MaxRows limits rows loaded; 0 means unlimited.
	MaxRows int
	// MissingTokens are cell values treated as missing in text-based
	// formats.
	MissingTokens []string
}

// DefaultOptions returns reasonable loading defaults.
func DefaultOptions() Options {
	return Options{
		SheetIndex:    1,
		MissingTokens: []string{"", "NA", "N/A", "NaN", "null"},
	}
}

func (o Options) isMissing(v string) bool {
	for _, tok := range o.MissingTokens {
		if strings.EqualFold(v, tok) {
			return true
		}
	}
	return false
}

// Loader loads one container format into a table.
type Loader interface {
	CanLoad(path string) bool
	Load(path string, opt Options) (*dataset.Table, error)
}

var registry []Loader

// Register adds a loader implementation to the registry.
func Register(l Loader) {
	registry = append(registry, l)
}

// Load selects a loader by filename and materializes the table.
func Load(path string, opt Options) (*dataset.Table, error) {
	for _, l := range registry {
		if l.CanLoad(path) {
			return l.Load(path, opt)
		}
	}
	return nil, fmt.Errorf("%w: %s (use CSV, TSV, XLSX, or SQLite)", ErrUnsupportedFormat, path)
}

func init() {
	Register(csvLoader{})
	Register(xlsxLoader{})
	Register(sqliteLoader{})
}

// buildTable turns header + string records into typed columns. A column is
// declared numerical when every non-missing cell parses as a float, and
// categorical otherwise. An all-missing column defaults to numerical, the
// way a pandas all-NaN column lands as float64.
func buildTable(header []string, records [][]string, opt Options) (*dataset.Table, error) {
	ncol := len(header)
	cols := make([]*dataset.Column, 0, ncol)
	for j := 0; j < ncol; j++ {
		name := strings.TrimSpace(header[j])
		raw := make([]string, len(records))
		missing := make([]bool, len(records))
		numeric := true
		for i, rec := range records {
			v := ""
			if j < len(rec) {
				v = strings.TrimSpace(rec[j])
			}
			if opt.isMissing(v) {
				missing[i] = true
				continue
			}
			raw[i] = v
			if numeric {
				if _, err := strconv.ParseFloat(v, 64); err != nil {
					numeric = false
				}
			}
		}
		var (
			col *dataset.Column
			err error
		)
		if numeric {
			vals := make([]float64, len(raw))
			for i, v := range raw {
				if missing[i] {
					continue
				}
				vals[i], _ = strconv.ParseFloat(v, 64)
			}
			col, err = dataset.NewNumericColumn(name, vals, missing)
		} else {
			col, err = dataset.NewCategoricalColumn(name, raw, missing)
		}
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	return dataset.New(cols...)
}
