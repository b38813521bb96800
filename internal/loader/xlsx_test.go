package loader

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/dataloom-cli/internal/dataset"
)

// writeXLSX assembles a minimal single-sheet workbook: a header row of
// shared strings, one string column, and one numeric column.
func writeXLSX(t *testing.T, sheetName string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "book.xlsx")
	f, err := os.Create(p)
	require.NoError(t, err)
	zw := zip.NewWriter(f)

	parts := map[string]string{
		"xl/workbook.xml": `<?xml version="1.0"?>
<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main"
 xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
 <sheets><sheet name="` + sheetName + `" sheetId="1" r:id="rId1"/></sheets>
</workbook>`,
		"xl/_rels/workbook.xml.rels": `<?xml version="1.0"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
 <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>
</Relationships>`,
		"xl/sharedStrings.xml": `<?xml version="1.0"?>
<sst xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" count="5" uniqueCount="5">
 <si><t>age</t></si><si><t>city</t></si><si><t>NY</t></si><si><t>LA</t></si><si><t>SF</t></si>
</sst>`,
		"xl/worksheets/sheet1.xml": `<?xml version="1.0"?>
<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">
 <sheetData>
  <row r="1"><c r="A1" t="s"><v>0</v></c><c r="B1" t="s"><v>1</v></c></row>
  <row r="2"><c r="A2"><v>25</v></c><c r="B2" t="s"><v>2</v></c></row>
  <row r="3"><c r="A3"><v>30</v></c><c r="B3" t="s"><v>3</v></c></row>
  <row r="4"><c r="A4"><v>35</v></c><c r="B4" t="s"><v>4</v></c></row>
 </sheetData>
</worksheet>`,
	}
	for name, body := range parts {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return p
}

func TestLoadXLSX(t *testing.T) {
	p := writeXLSX(t, "Sheet1")
	tbl, err := Load(p, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Rows())
	assert.Equal(t, []string{"age", "city"}, tbl.Names())

	age, err := tbl.Column("age")
	require.NoError(t, err)
	assert.Equal(t, dataset.Numerical, age.Kind())
	v, ok := age.Float(2)
	require.True(t, ok)
	assert.Equal(t, 35.0, v)

	city, err := tbl.Column("city")
	require.NoError(t, err)
	assert.Equal(t, dataset.Categorical, city.Kind())
	s, ok := city.Category(0)
	require.True(t, ok)
	assert.Equal(t, "NY", s)
}

func TestLoadXLSXBySheetName(t *testing.T) {
	p := writeXLSX(t, "People")
	opt := DefaultOptions()
	opt.SheetName = "people" // lookup is case-insensitive
	tbl, err := Load(p, opt)
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Rows())
}

func TestLoadXLSXUnknownSheet(t *testing.T) {
	p := writeXLSX(t, "Sheet1")
	opt := DefaultOptions()
	opt.SheetName = "Missing"
	_, err := Load(p, opt)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing")
	assert.Contains(t, err.Error(), "Sheet1")
}

func TestLoadXLSXMaxRows(t *testing.T) {
	p := writeXLSX(t, "Sheet1")
	opt := DefaultOptions()
	opt.MaxRows = 1
	tbl, err := Load(p, opt)
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Rows())
}

func TestColIndexFromRef(t *testing.T) {
	cases := []struct {
		ref  string
		want int
	}{
		{"A1", 0},
		{"B2", 1},
		{"Z10", 25},
		{"AA3", 26},
		{"AB100", 27},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, colIndexFromRef(tc.ref), tc.ref)
	}
}
