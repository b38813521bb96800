package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/dataloom-cli/internal/dataset"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadCSV(t *testing.T) {
	p := writeFile(t, "people.csv", "age,city\n25,NY\n30,LA\n35,NY\n")
	tbl, err := Load(p, DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tbl.Rows() != 3 || tbl.NumColumns() != 2 {
		t.Fatalf("got %dx%d, want 3x2", tbl.Rows(), tbl.NumColumns())
	}
	age, err := tbl.Column("age")
	if err != nil {
		t.Fatalf("Column(age): %v", err)
	}
	if age.Kind() != dataset.Numerical {
		t.Fatalf("age kind = %s, want numerical", age.Kind())
	}
	if v, ok := age.Float(1); !ok || v != 30 {
		t.Fatalf("age[1] = %v,%v want 30,true", v, ok)
	}
	city, err := tbl.Column("city")
	if err != nil {
		t.Fatalf("Column(city): %v", err)
	}
	if city.Kind() != dataset.Categorical {
		t.Fatalf("city kind = %s, want categorical", city.Kind())
	}
}

func TestLoadCSVMissingTokens(t *testing.T) {
	p := writeFile(t, "gaps.csv", "age,city\n25,NY\nNA,LA\n,null\n")
	tbl, err := Load(p, DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	age, _ := tbl.Column("age")
	if age.Kind() != dataset.Numerical {
		t.Fatalf("age kind = %s, want numerical despite NA cells", age.Kind())
	}
	if got := age.MissingCount(); got != 2 {
		t.Fatalf("age missing = %d, want 2", got)
	}
	city, _ := tbl.Column("city")
	if got := city.MissingCount(); got != 1 {
		t.Fatalf("city missing = %d, want 1", got)
	}
}

func TestLoadCSVMixedColumnIsCategorical(t *testing.T) {
	p := writeFile(t, "mixed.csv", "code\n12\nabc\n")
	tbl, err := Load(p, DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	code, _ := tbl.Column("code")
	if code.Kind() != dataset.Categorical {
		t.Fatalf("code kind = %s, want categorical", code.Kind())
	}
}

func TestLoadCSVAllMissingColumnDefaultsNumerical(t *testing.T) {
	p := writeFile(t, "blank.csv", "age,blank\n25,\n30,\n")
	tbl, err := Load(p, DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	blank, _ := tbl.Column("blank")
	if blank.Kind() != dataset.Numerical {
		t.Fatalf("blank kind = %s, want numerical", blank.Kind())
	}
	if blank.MissingCount() != 2 {
		t.Fatalf("blank missing = %d, want 2", blank.MissingCount())
	}
}

func TestLoadCSVMaxRows(t *testing.T) {
	p := writeFile(t, "big.csv", "n\n1\n2\n3\n4\n5\n")
	opt := DefaultOptions()
	opt.MaxRows = 2
	tbl, err := Load(p, opt)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tbl.Rows() != 2 {
		t.Fatalf("Rows = %d, want 2", tbl.Rows())
	}
}

func TestLoadTSV(t *testing.T) {
	p := writeFile(t, "people.tsv", "age\tcity\n25\tNY\n")
	tbl, err := Load(p, DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tbl.NumColumns() != 2 {
		t.Fatalf("NumColumns = %d, want 2", tbl.NumColumns())
	}
}

func TestLoadCSVRaggedRowsPadMissing(t *testing.T) {
	p := writeFile(t, "ragged.csv", "a,b\n1,2\n3\n")
	tbl, err := Load(p, DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	b, _ := tbl.Column("b")
	if b.MissingCount() != 1 {
		t.Fatalf("b missing = %d, want 1", b.MissingCount())
	}
}

func TestLoadCSVEmptyFile(t *testing.T) {
	p := writeFile(t, "empty.csv", "")
	if _, err := Load(p, DefaultOptions()); err == nil {
		t.Fatal("expected error for empty file")
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	p := writeFile(t, "data.parquet", "x")
	_, err := Load(p, DefaultOptions())
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Load = %v, want ErrUnsupportedFormat", err)
	}
}
