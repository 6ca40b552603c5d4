package scan

import (
	"os"
	"path/filepath"
	"strings"
)

// DetectLanguage classifies a service directory by the extensions of its
// immediate files. Rules are checked in priority order and the first match wins.
// Subdirectories, including symlinks to directories, are neither descended
// into nor counted as files.
func DetectLanguage(dir string, rules *RuleSet) (Language, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return LanguageUnknown, &DirectoryAccessError{Path: dir, Err: err}
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := os.Stat(filepath.Join(dir, entry.Name()))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, entry.Name())
	}

	for _, rule := range rules.rules {
		for _, name := range files {
			if strings.HasSuffix(name, rule.Extension) {
				return rule.Language, nil
			}
		}
	}

	return LanguageUnknown, nil
}
