package scan

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule holds the detection extension and compliance patterns for one language
type Rule struct {
	Language   Language
	Name       string         // Display name, e.g. "Python"
	Extension  string         // Canonical source extension including the dot
	Logger     *regexp.Regexp // Structured logger call
	Bad        *regexp.Regexp // Direct console/print output
	BadExample string         // Short example of the bad pattern for reports
}

// RuleSet is an immutable, ordered collection of rules.
// Order is detection priority: the first rule whose extension matches wins.
type RuleSet struct {
	rules []Rule
}

// NewRuleSet validates rules and builds a RuleSet in the given priority order
func NewRuleSet(rules ...Rule) (*RuleSet, error) {
	seen := make(map[Language]bool, len(rules))
	cp := make([]Rule, 0, len(rules))

	for _, r := range rules {
		if r.Language == "" || r.Language == LanguageUnknown {
			return nil, fmt.Errorf("invalid rule language: %q", r.Language)
		}
		if seen[r.Language] {
			return nil, fmt.Errorf("duplicate rule for language: %s", r.Language)
		}
		if !strings.HasPrefix(r.Extension, ".") || len(r.Extension) < 2 {
			return nil, fmt.Errorf("invalid extension for %s: %q", r.Language, r.Extension)
		}
		if r.Logger == nil || r.Bad == nil {
			return nil, fmt.Errorf("missing pattern for %s", r.Language)
		}
		seen[r.Language] = true
		cp = append(cp, r)
	}

	return &RuleSet{rules: cp}, nil
}

// Rules returns a copy of the rules in priority order
func (s *RuleSet) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Lookup returns the rule for a language
func (s *RuleSet) Lookup(lang Language) (Rule, bool) {
	for _, r := range s.rules {
		if r.Language == lang {
			return r, true
		}
	}
	return Rule{}, false
}

// Len returns the number of rules
func (s *RuleSet) Len() int {
	return len(s.rules)
}

// DefaultRules returns the fixed JavaScript, Python, Java rule table
func DefaultRules() *RuleSet {
	rs, err := NewRuleSet(
		Rule{
			Language:   LanguageJS,
			Name:       "JavaScript",
			Extension:  ".js",
			Logger:     regexp.MustCompile(`\blogger\.(info|warn|error|debug)\s*\(`),
			Bad:        regexp.MustCompile(`\bconsole\.log\s*\(`),
			BadExample: "console.log",
		},
		Rule{
			Language:   LanguagePython,
			Name:       "Python",
			Extension:  ".py",
			Logger:     regexp.MustCompile(`\blogger\.(info|warning|error|debug)\s*\(`),
			Bad:        regexp.MustCompile(`\bprint\s*\(`),
			BadExample: "print",
		},
		Rule{
			Language:   LanguageJava,
			Name:       "Java",
			Extension:  ".java",
			Logger:     regexp.MustCompile(`\blogger\.(info|warn|error|debug)\s*\(`),
			Bad:        regexp.MustCompile(`System\.out\.println\s*\(`),
			BadExample: "System.out.println",
		},
	)
	if err != nil {
		panic(err)
	}
	return rs
}
