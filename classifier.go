package keygram

import (
	"sort"
	"sync"
)

// Binding associates a Term with the Analyzer that segments inputs for it.
type Binding struct {
	Term     Term
	Analyzer *Analyzer
}

// Bind is a convenience constructor for a Binding.
func Bind(term Term, analyzer *Analyzer) Binding {
	return Binding{Term: term, Analyzer: analyzer}
}

// Classifier fans one input out to the Analyzer of every bound term and
// ranks the terms that matched by their weight.
//
// Classifiers are immutable after construction and safe for concurrent use;
// term dispatch runs one goroutine per binding, and results are collected by
// registration index so parallelism never affects output order.
type Classifier struct {
	bindings []Binding
	index    map[string]int
}

// ClassifierOption configures a Classifier built by NewClassifier.
type ClassifierOption func(*classifierConfig)

type classifierConfig struct {
	observer func(TermEvent)
}

// WithObserver registers a callback invoked once per binding after the
// classifier is validated. Construction-time only; never called during
// analysis.
func WithObserver(observer func(TermEvent)) ClassifierOption {
	return func(c *classifierConfig) {
		c.observer = observer
	}
}

// NewClassifier builds a Classifier over the given bindings in registration
// order. Nil terms, nil analyzers and duplicate term names fail
// construction.
func NewClassifier(bindings []Binding, opts ...ClassifierOption) (*Classifier, error) {
	var cfg classifierConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	index := make(map[string]int, len(bindings))
	kept := make([]Binding, 0, len(bindings))
	for _, b := range bindings {
		if b.Term == nil {
			return nil, ErrNilTerm
		}
		if b.Analyzer == nil {
			return nil, ErrNilAnalyzer
		}
		name := b.Term.Name()
		if _, ok := index[name]; ok {
			return nil, &DuplicateTermError{Name: name}
		}
		index[name] = len(kept)
		kept = append(kept, b)
	}

	if cfg.observer != nil {
		for _, b := range kept {
			cfg.observer(TermEvent{Term: b.Term, Analyzer: b.Analyzer})
		}
	}

	return &Classifier{bindings: kept, index: index}, nil
}

// Terms returns the bound terms in registration order.
func (c *Classifier) Terms() []Term {
	terms := make([]Term, len(c.bindings))
	for i, b := range c.bindings {
		terms[i] = b.Term
	}
	return terms
}

// Matches reports whether any bound term's analyzer matches the input.
func (c *Classifier) Matches(input string) bool {
	return len(c.Matching(input)) > 0
}

// MatchesTerm reports whether the named term's analyzer matches the input.
// Referencing an unbound term is an error.
func (c *Classifier) MatchesTerm(input, term string) (bool, error) {
	i, ok := c.index[term]
	if !ok {
		return false, &UnknownTermError{Name: term}
	}
	return c.bindings[i].Analyzer.Matches(input), nil
}

// Matching returns the set of terms whose analyzers match the input, in
// registration order.
func (c *Classifier) Matching(input string) []Term {
	all := c.dispatch(input)
	matching := []Term{}
	for i, segmentations := range all {
		if len(segmentations) > 0 {
			matching = append(matching, c.bindings[i].Term)
		}
	}
	return matching
}

// Analyze dispatches the input to every bound analyzer and returns the terms
// that matched, each with its segmentations, ordered by descending term
// weight. Terms of equal weight keep registration order. An input no term
// matches yields an empty, non-nil Result.
func (c *Classifier) Analyze(input string) *Result {
	all := c.dispatch(input)
	entries := []ResultEntry{}
	for i, segmentations := range all {
		if len(segmentations) == 0 {
			continue
		}
		t := c.bindings[i].Term
		entries = append(entries, ResultEntry{
			Term:          t,
			Segmentations: segmentations,
			Weight:        t.Weight(input, segmentations),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Weight > entries[j].Weight
	})
	return &Result{entries: entries}
}

// AnalyzeTerm segments the input with the named term's analyzer alone.
// Referencing an unbound term is an error.
func (c *Classifier) AnalyzeTerm(input, term string) ([]Segmentation, error) {
	i, ok := c.index[term]
	if !ok {
		return nil, &UnknownTermError{Name: term}
	}
	return c.bindings[i].Analyzer.Analyze(input), nil
}

// dispatch evaluates every binding concurrently. Each analyzer run is
// independent and side-effect-free; results land in a registration-indexed
// slice.
func (c *Classifier) dispatch(input string) [][]Segmentation {
	out := make([][]Segmentation, len(c.bindings))
	var wg sync.WaitGroup
	for i, b := range c.bindings {
		wg.Add(1)
		go func(i int, b Binding) {
			defer wg.Done()
			out[i] = b.Analyzer.Analyze(input)
		}(i, b)
	}
	wg.Wait()
	return out
}

// ResultEntry is one matching term with its segmentations and the weight it
// was ranked by.
type ResultEntry struct {
	Term          Term
	Segmentations []Segmentation
	Weight        float64
}

// Result is the ranked outcome of Classifier.Analyze: the matching terms in
// descending weight order, each with every segmentation its analyzer found.
type Result struct {
	entries []ResultEntry
}

// Entries returns the ranked result entries. The returned slice is shared;
// callers must not modify it.
func (r *Result) Entries() []ResultEntry {
	return r.entries
}

// Terms returns the matching terms in rank order.
func (r *Result) Terms() []Term {
	terms := make([]Term, len(r.entries))
	for i, e := range r.entries {
		terms[i] = e.Term
	}
	return terms
}

// Segmentations returns the named term's segmentations, if it matched.
func (r *Result) Segmentations(term string) ([]Segmentation, bool) {
	for _, e := range r.entries {
		if e.Term.Name() == term {
			return e.Segmentations, true
		}
	}
	return nil, false
}

// Len returns the number of matching terms.
func (r *Result) Len() int {
	return len(r.entries)
}

// IsEmpty reports whether no term matched.
func (r *Result) IsEmpty() bool {
	return len(r.entries) == 0
}
