// Package preprocess turns a raw table into a fully numeric feature table:
// missing values are imputed, categorical columns one-hot encoded, and the
// original numerical columns z-score standardized, in that fixed order.
// Imputation precedes encoding so indicator generation never invents a
// "missing" category, and scaling follows encoding so indicator columns are
// excluded from it.
package preprocess

import (
	"github.com/KaramelBytes/dataloom-cli/internal/dataset"
)

// Result carries the prepared table plus any per-column warnings produced
// under the relaxed policies.
type Result struct {
	Table    *dataset.Table
	Warnings []string
}

// Preprocess derives a prepared table from raw without mutating it. The
// first component failure aborts the pass; no partially preprocessed table
// is ever returned silently.
func Preprocess(raw *dataset.Table, opt Options) (*Result, error) {
	imputed, warn1, err := Impute(raw, opt)
	if err != nil {
		return nil, err
	}
	encoded, err := Encode(imputed)
	if err != nil {
		return nil, err
	}
	scaled, warn2, err := Scale(encoded, opt)
	if err != nil {
		return nil, err
	}
	return &Result{Table: scaled, Warnings: append(warn1, warn2...)}, nil
}
