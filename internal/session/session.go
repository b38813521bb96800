// Package session keeps the raw and prepared views of one dataset alive for
// the lifetime of an interactive exploration. Which view a request targets
// is always passed explicitly; nothing depends on call order.
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/KaramelBytes/dataloom-cli/internal/dataset"
	"github.com/KaramelBytes/dataloom-cli/internal/preprocess"
)

// View names one of the two table variants of a session.
type View string

const (
	ViewRaw      View = "raw"
	ViewPrepared View = "prepared"
)

// ParseView maps a user-facing view name to a View.
func ParseView(s string) (View, error) {
	switch s {
	case "raw", "":
		return ViewRaw, nil
	case "prepared", "preprocessed":
		return ViewPrepared, nil
	default:
		return "", fmt.Errorf("unknown view %q (use raw|prepared)", s)
	}
}

// Session holds both table variants. Raw is the table as loaded; Prepared
// is derived from it exactly once and both stay read-only afterwards.
type Session struct {
	ID        string
	Source    string
	Raw       *dataset.Table
	Prepared  *dataset.Table
	Warnings  []string
	CreatedAt time.Time
}

// New derives the prepared table from raw and wraps both.
func New(source string, raw *dataset.Table, opt preprocess.Options) (*Session, error) {
	res, err := preprocess.Preprocess(raw, opt)
	if err != nil {
		return nil, fmt.Errorf("preprocess %s: %w", source, err)
	}
	return &Session{
		ID:        uuid.NewString(),
		Source:    source,
		Raw:       raw,
		Prepared:  res.Table,
		Warnings:  res.Warnings,
		CreatedAt: time.Now(),
	}, nil
}

// Table returns the requested view.
func (s *Session) Table(v View) (*dataset.Table, error) {
	switch v {
	case ViewRaw:
		return s.Raw, nil
	case ViewPrepared:
		return s.Prepared, nil
	default:
		return nil, fmt.Errorf("unknown view %q", v)
	}
}
