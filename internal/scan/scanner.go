package scan

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
)

// ScanService reads every regular file directly inside dir and tests its
// content against the rule's logger and bad patterns. A flag becomes true as
// soon as any file matches and never reverts within the scan.
//
// In strict mode the first unreadable file aborts the scan with a
// *FileReadError. Otherwise the file is recorded in ScanResult.Issues and
// the scan continues with the remaining files.
func ScanService(dir string, rule Rule, strict bool) (ScanResult, error) {
	var result ScanResult

	entries, err := os.ReadDir(dir)
	if err != nil {
		return result, &DirectoryAccessError{Path: dir, Err: err}
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		content, readErr := readTextFile(path)
		if errors.Is(readErr, errSkip) {
			continue
		}
		if readErr != nil {
			fileErr := &FileReadError{Path: path, Err: readErr}
			if strict {
				return result, fileErr
			}
			result.Issues = append(result.Issues, FileIssue{FilePath: path, Err: fileErr})
			continue
		}

		result.FilesScanned++
		if rule.Logger.Match(content) {
			result.HasLogger = true
			result.LoggerFiles = append(result.LoggerFiles, entry.Name())
		}
		if rule.Bad.Match(content) {
			result.HasBad = true
			result.BadFiles = append(result.BadFiles, entry.Name())
		}
	}

	return result, nil
}

// errSkip marks entries that are not regular files
var errSkip = errors.New("not a regular file")

// readTextFile returns the content of a regular file, following symlinks.
// Non-regular entries yield errSkip; content with a NUL byte yields ErrNotText.
func readTextFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, errSkip
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if bytes.IndexByte(content, 0) >= 0 {
		return nil, ErrNotText
	}
	return content, nil
}
