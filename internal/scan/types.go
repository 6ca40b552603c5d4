package scan

// Language identifies the source language a service directory is written in
type Language string

const (
	LanguageJS      Language = "js"
	LanguagePython  Language = "py"
	LanguageJava    Language = "java"
	LanguageUnknown Language = "unknown"
)

// ScanResult is the outcome of a compliance scan over one service directory
type ScanResult struct {
	HasLogger    bool
	HasBad       bool
	FilesScanned int
	LoggerFiles  []string    // Files matching the logger pattern
	BadFiles     []string    // Files matching the bad pattern
	Issues       []FileIssue // Files skipped in lenient mode
}

// FileIssue represents a non-fatal problem reading a single file
type FileIssue struct {
	FilePath string
	Err      error
}

// ClassificationRecord is the per-service audit output
type ClassificationRecord struct {
	Service     string   `json:"service" yaml:"service"`
	Path        string   `json:"path" yaml:"path"`
	Language    Language `json:"language" yaml:"language"`
	Scanned     bool     `json:"scanned" yaml:"scanned"`
	HasLogger   bool     `json:"has_logger" yaml:"has_logger"`
	HasBad      bool     `json:"has_bad" yaml:"has_bad"`
	BadExample  string   `json:"bad_example,omitempty" yaml:"bad_example,omitempty"`
	LoggerFiles []string `json:"logger_files,omitempty" yaml:"logger_files,omitempty"`
	BadFiles    []string `json:"bad_files,omitempty" yaml:"bad_files,omitempty"`
	Warnings    []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// MessageKind is one of the fixed report messages a record can produce
type MessageKind int

const (
	MessageUnknownLanguage MessageKind = iota
	MessageLoggerDetected
	MessageNoLogger
	MessageBadPractice
)

// Messages returns the report messages for the record, in print order.
// The bad practice message is independent of the logger messages.
func (r ClassificationRecord) Messages() []MessageKind {
	if !r.Scanned {
		return []MessageKind{MessageUnknownLanguage}
	}

	msgs := make([]MessageKind, 0, 2)
	if r.HasLogger {
		msgs = append(msgs, MessageLoggerDetected)
	} else {
		msgs = append(msgs, MessageNoLogger)
	}
	if r.HasBad {
		msgs = append(msgs, MessageBadPractice)
	}
	return msgs
}

// Compliant reports whether a scanned service uses the logger without bad practice.
// Unknown-language services are neither compliant nor failing.
func (r ClassificationRecord) Compliant() bool {
	return r.Scanned && r.HasLogger && !r.HasBad
}

// Options controls which services an audit visits and how read errors are treated
type Options struct {
	Strict     bool     // Abort on the first unreadable file
	SkipHidden bool     // Skip service directories starting with '.'
	Ignore     []string // Service names to skip
	Only       []string // When non-empty, only these services are audited
}
