package scan

import (
	"regexp"
	"testing"
)

func TestDefaultRulesOrder(t *testing.T) {
	rules := DefaultRules().Rules()

	want := []Language{LanguageJS, LanguagePython, LanguageJava}
	if len(rules) != len(want) {
		t.Fatalf("Expected %d rules, got %d", len(want), len(rules))
	}
	for i, lang := range want {
		if rules[i].Language != lang {
			t.Errorf("Rule %d: expected %s, got %s", i, lang, rules[i].Language)
		}
	}
}

func TestRuleSetIsImmutable(t *testing.T) {
	rs := DefaultRules()

	rules := rs.Rules()
	rules[0].Extension = ".ts"
	rules[0] = Rule{}

	js, ok := rs.Lookup(LanguageJS)
	if !ok {
		t.Fatal("Lookup js failed")
	}
	if js.Extension != ".js" {
		t.Errorf("RuleSet was mutated through Rules(): extension %q", js.Extension)
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := DefaultRules().Lookup(LanguageUnknown); ok {
		t.Error("Lookup should fail for unknown language")
	}
}

func TestNewRuleSetValidation(t *testing.T) {
	valid := Rule{
		Language:  "go",
		Extension: ".go",
		Logger:    regexp.MustCompile(`slog\.Info\(`),
		Bad:       regexp.MustCompile(`fmt\.Println\(`),
	}

	tests := []struct {
		name  string
		rules []Rule
	}{
		{"duplicate", []Rule{valid, valid}},
		{"empty language", []Rule{{Extension: ".go", Logger: valid.Logger, Bad: valid.Bad}}},
		{"unknown language", []Rule{{Language: LanguageUnknown, Extension: ".go", Logger: valid.Logger, Bad: valid.Bad}}},
		{"extension without dot", []Rule{{Language: "go", Extension: "go", Logger: valid.Logger, Bad: valid.Bad}}},
		{"missing logger", []Rule{{Language: "go", Extension: ".go", Bad: valid.Bad}}},
		{"missing bad", []Rule{{Language: "go", Extension: ".go", Logger: valid.Logger}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRuleSet(tt.rules...); err == nil {
				t.Error("NewRuleSet should fail")
			}
		})
	}

	rs, err := NewRuleSet(valid)
	if err != nil {
		t.Fatalf("NewRuleSet failed for valid rule: %v", err)
	}
	if rs.Len() != 1 {
		t.Errorf("Expected 1 rule, got %d", rs.Len())
	}
}
