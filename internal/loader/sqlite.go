package loader

import (
	"database/sql"
	"fmt"
	"math"
	"strconv"
	"strings"

	// Pure-Go sqlite driver.
	_ "modernc.org/sqlite"

	"github.com/KaramelBytes/dataloom-cli/internal/dataset"
)

type sqliteLoader struct{}

func (sqliteLoader) CanLoad(path string) bool {
	name := strings.ToLower(path)
	return strings.HasSuffix(name, ".db") || strings.HasSuffix(name, ".sqlite") ||
		strings.HasSuffix(name, ".sqlite3") || strings.HasSuffix(name, ".sql")
}

// Load reads the first user table found in the database, the declared
// column affinity deciding each column's kind: INTEGER/REAL/NUMERIC
// affinities load as numerical, everything else as textual. NULL cells
// become missing markers.
func (sqliteLoader) Load(path string, opt Options) (*dataset.Table, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	var tableName string
	row := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' LIMIT 1`)
	if err := row.Scan(&tableName); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("no tables found in %s", path)
		}
		return nil, fmt.Errorf("read sqlite_master: %w", err)
	}

	rows, err := db.Query(fmt.Sprintf(`SELECT * FROM %q`, tableName))
	if err != nil {
		return nil, fmt.Errorf("query table %s: %w", tableName, err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("read column types: %w", err)
	}
	numeric := make([]bool, len(names))
	for i, ct := range types {
		numeric[i] = numericAffinity(ct.DatabaseTypeName())
	}

	ncol := len(names)
	nums := make([][]float64, ncol)
	cats := make([][]string, ncol)
	missing := make([][]bool, ncol)
	n := 0
	for rows.Next() {
		vals := make([]any, ncol)
		ptrs := make([]any, ncol)
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row %d: %w", n+1, err)
		}
		for i, v := range vals {
			f, s, miss := convertCell(v, numeric[i])
			nums[i] = append(nums[i], f)
			cats[i] = append(cats[i], s)
			missing[i] = append(missing[i], miss)
		}
		n++
		if opt.MaxRows > 0 && n >= opt.MaxRows {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	cols := make([]*dataset.Column, 0, ncol)
	for i, name := range names {
		var (
			col *dataset.Column
			err error
		)
		if numeric[i] {
			col, err = dataset.NewNumericColumn(name, nums[i], missing[i])
		} else {
			col, err = dataset.NewCategoricalColumn(name, cats[i], missing[i])
		}
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	return dataset.New(cols...)
}

func numericAffinity(declared string) bool {
	d := strings.ToUpper(declared)
	for _, frag := range []string{"INT", "REAL", "FLOA", "DOUB", "NUMERIC", "DECIMAL"} {
		if strings.Contains(d, frag) {
			return true
		}
	}
	return false
}

// convertCell maps a scanned sqlite value onto one of the two storages.
// A non-numeric value stored in a numeric-affinity column (sqlite permits
// this) becomes a missing marker rather than a silent zero.
func convertCell(v any, numeric bool) (f float64, s string, miss bool) {
	if v == nil {
		return 0, "", true
	}
	parsed := true
	switch x := v.(type) {
	case int64:
		f, s = float64(x), strconv.FormatInt(x, 10)
	case float64:
		f, s = x, strconv.FormatFloat(x, 'g', -1, 64)
	case []byte:
		s = string(x)
		var err error
		if f, err = strconv.ParseFloat(s, 64); err != nil {
			parsed = false
		}
	case string:
		s = x
		var err error
		if f, err = strconv.ParseFloat(s, 64); err != nil {
			parsed = false
		}
	case bool:
		if x {
			f = 1
		}
		s = strconv.FormatBool(x)
	default:
		s = fmt.Sprint(x)
		f = math.NaN()
		parsed = false
	}
	if numeric {
		if !parsed {
			return 0, s, true
		}
		return f, s, false
	}
	return 0, s, false
}
