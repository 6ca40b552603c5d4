package scan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// Auditor classifies every service directory under a root
type Auditor struct {
	rules *RuleSet
	opts  Options
	log   zerolog.Logger
}

// NewAuditor creates an Auditor. A nil logger disables diagnostics.
func NewAuditor(rules *RuleSet, opts Options, log *zerolog.Logger) *Auditor {
	a := &Auditor{rules: rules, opts: opts, log: zerolog.Nop()}
	if log != nil {
		a.log = *log
	}
	return a
}

type service struct {
	name string
	path string
}

// ListServices returns the names of the service directories an audit of root would visit
func (a *Auditor) ListServices(root string) ([]string, error) {
	services, err := a.services(root)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(services))
	for _, s := range services {
		names = append(names, s.name)
	}
	return names, nil
}

// Run audits each service directory under root in name order. Each record is
// passed to emit as soon as it is produced, so output for earlier services
// survives a later fatal error. The records produced so far are returned
// alongside any error.
func (a *Auditor) Run(root string, emit func(ClassificationRecord) error) ([]ClassificationRecord, error) {
	a.log.Debug().Str("root", root).Bool("strict", a.opts.Strict).Msg("audit started")

	services, err := a.services(root)
	if err != nil {
		return nil, err
	}

	records := make([]ClassificationRecord, 0, len(services))
	for _, svc := range services {
		record, err := a.Classify(svc.name, svc.path)
		if err != nil {
			a.log.Error().Err(err).Str("service", svc.name).Msg("audit aborted")
			return records, err
		}

		if emit != nil {
			if err := emit(record); err != nil {
				return records, fmt.Errorf("failed to emit record for %s: %w", svc.name, err)
			}
		}
		records = append(records, record)
	}

	a.log.Debug().Int("services", len(records)).Msg("audit finished")
	return records, nil
}

// Classify produces the record for a single service directory. The compliance
// scan only runs when a language was detected.
func (a *Auditor) Classify(name, path string) (ClassificationRecord, error) {
	record := ClassificationRecord{
		Service:  name,
		Path:     path,
		Language: LanguageUnknown,
	}

	lang, err := DetectLanguage(path, a.rules)
	if err != nil {
		return record, err
	}
	record.Language = lang

	if lang == LanguageUnknown {
		a.log.Debug().Str("service", name).Msg("no known source files")
		return record, nil
	}

	rule, _ := a.rules.Lookup(lang)
	result, err := ScanService(path, rule, a.opts.Strict)
	if err != nil {
		return record, err
	}

	record.Scanned = true
	record.HasLogger = result.HasLogger
	record.HasBad = result.HasBad
	record.BadExample = rule.BadExample
	record.LoggerFiles = result.LoggerFiles
	record.BadFiles = result.BadFiles
	for _, issue := range result.Issues {
		a.log.Warn().Err(issue.Err).Str("service", name).Str("file", issue.FilePath).Msg("file skipped")
		record.Warnings = append(record.Warnings, fmt.Sprintf("skipped %s: %v", filepath.Base(issue.FilePath), unwrapFileErr(issue.Err)))
	}

	a.log.Debug().
		Str("service", name).
		Str("language", string(lang)).
		Int("files", result.FilesScanned).
		Bool("has_logger", result.HasLogger).
		Bool("has_bad", result.HasBad).
		Msg("service scanned")

	return record, nil
}

// services lists the directories under root that pass the audit filters
func (a *Auditor) services(root string) ([]service, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, &DirectoryAccessError{Path: root, Err: err}
	}

	services := make([]service, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !a.wanted(name) {
			a.log.Debug().Str("service", name).Msg("service filtered")
			continue
		}

		path := filepath.Join(root, name)

		// Follow symlinks so linked service directories are audited too
		info, err := os.Stat(path)
		if err != nil {
			return nil, &DirectoryAccessError{Path: path, Err: err}
		}
		if !info.IsDir() {
			continue
		}

		services = append(services, service{name: name, path: path})
	}

	return services, nil
}

func (a *Auditor) wanted(name string) bool {
	if a.opts.SkipHidden && strings.HasPrefix(name, ".") {
		return false
	}
	if slices.Contains(a.opts.Ignore, name) {
		return false
	}
	if len(a.opts.Only) > 0 && !slices.Contains(a.opts.Only, name) {
		return false
	}
	return true
}

// unwrapFileErr drops the path prefix of a FileReadError for compact warnings
func unwrapFileErr(err error) error {
	var fe *FileReadError
	if errors.As(err, &fe) {
		return fe.Err
	}
	return err
}
