package loader

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/dataloom-cli/internal/dataset"
)

func newTestDB(t *testing.T, stmts ...string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite", p)
	require.NoError(t, err)
	defer db.Close()
	for _, s := range stmts {
		_, err := db.Exec(s)
		require.NoError(t, err, s)
	}
	return p
}

func TestLoadSQLite(t *testing.T) {
	p := newTestDB(t,
		`CREATE TABLE people (age INTEGER, salary REAL, city TEXT)`,
		`INSERT INTO people VALUES (25, 50000.5, 'NY'), (30, 60000.0, 'LA')`,
	)
	tbl, err := Load(p, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Rows())
	assert.Equal(t, []string{"age", "salary", "city"}, tbl.Names())

	age, err := tbl.Column("age")
	require.NoError(t, err)
	assert.Equal(t, dataset.Numerical, age.Kind())
	v, ok := age.Float(0)
	require.True(t, ok)
	assert.Equal(t, 25.0, v)

	city, err := tbl.Column("city")
	require.NoError(t, err)
	assert.Equal(t, dataset.Categorical, city.Kind())
	s, ok := city.Category(1)
	require.True(t, ok)
	assert.Equal(t, "LA", s)
}

func TestLoadSQLiteNullsAreMissing(t *testing.T) {
	p := newTestDB(t,
		`CREATE TABLE people (age INTEGER, city TEXT)`,
		`INSERT INTO people VALUES (25, 'NY'), (NULL, NULL)`,
	)
	tbl, err := Load(p, DefaultOptions())
	require.NoError(t, err)

	age, _ := tbl.Column("age")
	assert.Equal(t, 1, age.MissingCount())
	city, _ := tbl.Column("city")
	assert.Equal(t, 1, city.MissingCount())
}

func TestLoadSQLiteFirstTableOnly(t *testing.T) {
	p := newTestDB(t,
		`CREATE TABLE first (a INTEGER)`,
		`CREATE TABLE second (b INTEGER)`,
		`INSERT INTO first VALUES (1)`,
	)
	tbl, err := Load(p, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, tbl.Names())
}

func TestLoadSQLiteEmptyDatabase(t *testing.T) {
	p := newTestDB(t)
	_, err := Load(p, DefaultOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no tables")
}

func TestLoadSQLiteMaxRows(t *testing.T) {
	p := newTestDB(t,
		`CREATE TABLE nums (n INTEGER)`,
		`INSERT INTO nums VALUES (1), (2), (3), (4)`,
	)
	opt := DefaultOptions()
	opt.MaxRows = 2
	tbl, err := Load(p, opt)
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Rows())
}

func TestLoadSQLiteTextInNumericColumn(t *testing.T) {
	// sqlite's flexible typing allows text in an INTEGER column.
	p := newTestDB(t,
		`CREATE TABLE odd (n INTEGER)`,
		`INSERT INTO odd VALUES (1), ('oops')`,
	)
	tbl, err := Load(p, DefaultOptions())
	require.NoError(t, err)
	n, _ := tbl.Column("n")
	assert.Equal(t, dataset.Numerical, n.Kind())
	assert.Equal(t, 1, n.MissingCount())
}

func TestNumericAffinity(t *testing.T) {
	cases := []struct {
		decl string
		want bool
	}{
		{"INTEGER", true},
		{"INT", true},
		{"BIGINT", true},
		{"REAL", true},
		{"DOUBLE", true},
		{"FLOAT", true},
		{"NUMERIC", true},
		{"DECIMAL(10,2)", true},
		{"TEXT", false},
		{"VARCHAR(20)", false},
		{"BLOB", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, numericAffinity(tc.decl), tc.decl)
	}
}
