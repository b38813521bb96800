package dataset

import (
	"math"
	"testing"
)

func approx(t *testing.T, got, want float64, label string) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", label, got, want)
	}
}

func TestSummarizeValues(t *testing.T) {
	s := SummarizeValues([]float64{1, 2, 3, 4})
	if s.Count != 4 {
		t.Fatalf("Count = %d, want 4", s.Count)
	}
	approx(t, s.Mean, 2.5, "Mean")
	// Sample std of 1..4.
	approx(t, s.Std, math.Sqrt(5.0/3.0), "Std")
	approx(t, s.Min, 1, "Min")
	approx(t, s.Max, 4, "Max")
	approx(t, s.Q1, 1.75, "Q1")
	approx(t, s.Median, 2.5, "Median")
	approx(t, s.Q3, 3.25, "Q3")
}

func TestSummarizeValuesSingle(t *testing.T) {
	s := SummarizeValues([]float64{7})
	if s.Count != 1 {
		t.Fatalf("Count = %d, want 1", s.Count)
	}
	approx(t, s.Mean, 7, "Mean")
	approx(t, s.Std, 0, "Std")
	approx(t, s.Q1, 7, "Q1")
	approx(t, s.Median, 7, "Median")
	approx(t, s.Q3, 7, "Q3")
}

func TestSummarizeValuesEmpty(t *testing.T) {
	s := SummarizeValues(nil)
	if s.Count != 0 {
		t.Fatalf("Count = %d, want 0", s.Count)
	}
}

func TestSummarizeSkipsMissing(t *testing.T) {
	c := mustNumeric(t, "age", []float64{10, 0, 20}, []bool{false, true, false})
	s, err := Summarize(c)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if s.Count != 2 {
		t.Fatalf("Count = %d, want 2", s.Count)
	}
	approx(t, s.Mean, 15, "Mean")
}

func TestSummarizeRejectsCategorical(t *testing.T) {
	c := mustCategorical(t, "city", []string{"NY"}, nil)
	if _, err := Summarize(c); err == nil {
		t.Fatal("expected error for categorical column")
	}
}

func TestQuantileEdges(t *testing.T) {
	sorted := []float64{1, 2, 3}
	cases := []struct {
		q    float64
		want float64
	}{
		{0, 1},
		{0.5, 2},
		{1, 3},
		{0.25, 1.5},
	}
	for _, tc := range cases {
		if got := quantile(sorted, tc.q); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("quantile(%v) = %v, want %v", tc.q, got, tc.want)
		}
	}
}

func TestProfile(t *testing.T) {
	age := mustNumeric(t, "age", []float64{25, 0, 35}, []bool{false, true, false})
	city := mustCategorical(t, "city", []string{"NY", "LA", "NY"}, nil)
	tbl, err := New(age, city)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ps := Profile(tbl)
	if len(ps) != 2 {
		t.Fatalf("len(Profile) = %d, want 2", len(ps))
	}

	agep := ps[0]
	if agep.Name != "age" || agep.Kind != Numerical {
		t.Fatalf("profile[0] = %+v, want numerical age", agep)
	}
	if agep.NonNull != 2 || agep.Missing != 1 {
		t.Fatalf("age NonNull/Missing = %d/%d, want 2/1", agep.NonNull, agep.Missing)
	}
	if agep.Numeric == nil {
		t.Fatal("age profile missing numeric summary")
	}
	approx(t, agep.Numeric.Mean, 30, "age mean")

	cityp := ps[1]
	if cityp.Unique != 2 {
		t.Fatalf("city Unique = %d, want 2", cityp.Unique)
	}
	if len(cityp.TopValues) != 2 {
		t.Fatalf("city TopValues = %v, want 2 entries", cityp.TopValues)
	}
	if cityp.TopValues[0].Value != "NY" || cityp.TopValues[0].Count != 2 {
		t.Fatalf("top value = %+v, want NY x2", cityp.TopValues[0])
	}
}
