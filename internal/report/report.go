// Package report renders audit records as they are produced.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/gabssanto/logscope/internal/scan"
)

// Format names accepted by New
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Renderer writes records incrementally and finishes with a summary
type Renderer interface {
	Record(record scan.ClassificationRecord) error
	Close(summary Summary) error
}

// Summary aggregates the records of one audit run
type Summary struct {
	Services      int `json:"services" yaml:"services"`
	WithLogger    int `json:"with_logger" yaml:"with_logger"`
	WithoutLogger int `json:"without_logger" yaml:"without_logger"`
	BadPractice   int `json:"bad_practice" yaml:"bad_practice"`
	Unknown       int `json:"unknown" yaml:"unknown"`
	Warnings      int `json:"warnings" yaml:"warnings"`
}

// Summarize counts records by outcome
func Summarize(records []scan.ClassificationRecord) Summary {
	var s Summary
	for _, r := range records {
		s.Services++
		s.Warnings += len(r.Warnings)
		if !r.Scanned {
			s.Unknown++
			continue
		}
		if r.HasLogger {
			s.WithLogger++
		} else {
			s.WithoutLogger++
		}
		if r.HasBad {
			s.BadPractice++
		}
	}
	return s
}

// Failing reports whether any scanned service lacks a logger or shows bad practice
func (s Summary) Failing() bool {
	return s.WithoutLogger > 0 || s.BadPractice > 0
}

// New returns the renderer for format writing to w
func New(format string, w io.Writer) (Renderer, error) {
	switch strings.ToLower(format) {
	case FormatText, "":
		return NewTextRenderer(w), nil
	case FormatJSON:
		return NewJSONRenderer(w), nil
	case FormatYAML:
		return NewYAMLRenderer(w), nil
	default:
		return nil, fmt.Errorf("unknown report format: %s", format)
	}
}
