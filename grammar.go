package keygram

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Grammar is the declarative form of a Classifier: a set of named keyword
// patterns and the terms composing them into slot sequences.
//
// Weights declared in a grammar are constants; weighting that depends on the
// input requires building the Classifier in code.
type Grammar struct {
	Keywords []KeywordSpec `yaml:"keywords"`
	Terms    []TermSpec    `yaml:"terms"`
}

// KeywordSpec declares one reusable keyword pattern.
type KeywordSpec struct {
	Name    string   `yaml:"name"`
	Pattern string   `yaml:"pattern"`
	Weight  *float64 `yaml:"weight"`
}

// TermSpec declares one term and the ordered keyword slots of its analyzer.
type TermSpec struct {
	Name      string     `yaml:"name"`
	Separator string     `yaml:"separator"`
	MatchAny  *bool      `yaml:"match_any"`
	Weight    *float64   `yaml:"weight"`
	Slots     []SlotSpec `yaml:"slots"`
}

// SlotSpec references a declared keyword and its occurrence mode. An empty
// occurrence means fixed.
type SlotSpec struct {
	Keyword    string `yaml:"keyword"`
	Occurrence string `yaml:"occurrence"`
}

// ParseGrammar decodes a YAML grammar document.
func ParseGrammar(data []byte) (*Grammar, error) {
	var g Grammar
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("keygram: parsing grammar: %w", err)
	}
	return &g, nil
}

// LoadGrammar reads and decodes a YAML grammar file.
func LoadGrammar(path string) (*Grammar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keygram: reading grammar: %w", err)
	}
	return ParseGrammar(data)
}

// Build validates the grammar and constructs the Classifier it declares.
// Terms and slots keep the declaration order of the document.
func (g *Grammar) Build(opts ...ClassifierOption) (*Classifier, error) {
	keywords := make(map[string]Keyword, len(g.Keywords))
	for _, spec := range g.Keywords {
		if spec.Name == "" {
			return nil, fmt.Errorf("keygram: grammar keyword without a name")
		}
		if _, ok := keywords[spec.Name]; ok {
			return nil, &DuplicateKeywordError{Name: spec.Name}
		}
		var kwOpts []KeywordOption
		if spec.Weight != nil {
			weight := *spec.Weight
			kwOpts = append(kwOpts, WithWeight(func(string, string) float64 { return weight }))
		}
		keywords[spec.Name] = NewKeyword(spec.Name, spec.Pattern, kwOpts...)
	}

	bindings := make([]Binding, 0, len(g.Terms))
	for _, spec := range g.Terms {
		if spec.Name == "" {
			return nil, fmt.Errorf("keygram: grammar term without a name")
		}

		slots := make([]Slot, 0, len(spec.Slots))
		for _, slotSpec := range spec.Slots {
			k, ok := keywords[slotSpec.Keyword]
			if !ok {
				return nil, fmt.Errorf("keygram: term %q references unknown keyword %q", spec.Name, slotSpec.Keyword)
			}
			occurrence, err := ParseOccurrence(slotSpec.Occurrence)
			if err != nil {
				return nil, fmt.Errorf("keygram: term %q slot %q: %w", spec.Name, slotSpec.Keyword, err)
			}
			slots = append(slots, Slot{Keyword: k, Occurrence: occurrence})
		}

		var analyzerOpts []AnalyzerOption
		if spec.Separator != "" {
			analyzerOpts = append(analyzerOpts, WithSeparator(spec.Separator))
		}
		if spec.MatchAny != nil {
			analyzerOpts = append(analyzerOpts, WithMatchAny(*spec.MatchAny))
		}
		analyzer, err := NewAnalyzer(slots, analyzerOpts...)
		if err != nil {
			return nil, fmt.Errorf("keygram: term %q: %w", spec.Name, err)
		}

		var termOpts []TermOption
		if spec.Weight != nil {
			weight := *spec.Weight
			termOpts = append(termOpts, WithTermWeight(func(string, []Segmentation) float64 { return weight }))
		}
		bindings = append(bindings, Bind(NewTerm(spec.Name, termOpts...), analyzer))
	}

	return NewClassifier(bindings, opts...)
}

// ParseOccurrence maps a grammar occurrence string to its mode. The empty
// string means Fixed.
func ParseOccurrence(s string) (Occurrence, error) {
	switch s {
	case "", "fixed":
		return Fixed, nil
	case "optional":
		return Optional, nil
	case "exclusive":
		return Exclusive, nil
	default:
		return Fixed, fmt.Errorf("keygram: unknown occurrence %q", s)
	}
}
