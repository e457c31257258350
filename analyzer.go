package keygram

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultSeparator is the separator used by Analyzers unless overridden.
const DefaultSeparator = " "

// slot is one keyword of the analyzer's declaration order with its occurrence
// mode and its pattern compiled for full-segment matching.
type slot struct {
	keyword    Keyword
	occurrence Occurrence
	pattern    *regexp.Regexp
}

// Analyzer segments an input against an ordered sequence of keyword slots.
//
// The input is split into tokens on the separator (regular expression split
// semantics). Analysis then runs in two phases: first every admissible
// activation vector over the slots is enumerated (Fixed slots are forced
// active, Optional slots branch, Exclusive slots either stay absent or form
// an isolated vector where they alone are active), then for each vector the
// tokens are assigned to the active slots by backtracking over every
// contiguous token run a slot's keyword accepts. A branch only yields a
// Segmentation when it consumes all tokens.
//
// Analyzers are immutable after construction and safe for concurrent use.
type Analyzer struct {
	slots     []slot
	separator string
	splitter  *regexp.Regexp
	matchAny  bool
}

// AnalyzerOption configures an Analyzer built by NewAnalyzer.
type AnalyzerOption func(*analyzerConfig)

type analyzerConfig struct {
	separator string
	matchAny  bool
	observer  func(SlotEvent)
}

// WithSeparator sets the separator the input is split by. It is interpreted
// as a regular expression when splitting and used literally when joining
// candidate token runs.
func WithSeparator(separator string) AnalyzerOption {
	return func(c *analyzerConfig) {
		c.separator = separator
	}
}

// WithMatchAny controls whether at least one keyword has to be active for the
// analyzer to match. Only relevant for all-Optional slot sequences: with
// false, the fully-inactive vector is admitted and an empty input matches
// with an empty Segmentation.
func WithMatchAny(matchAny bool) AnalyzerOption {
	return func(c *analyzerConfig) {
		c.matchAny = matchAny
	}
}

// WithSlotObserver registers a callback invoked once per slot after the
// analyzer is validated. Construction-time only; never called during
// analysis.
func WithSlotObserver(observer func(SlotEvent)) AnalyzerOption {
	return func(c *analyzerConfig) {
		c.observer = observer
	}
}

// NewAnalyzer builds an Analyzer over the given slots in declaration order.
// Keyword patterns are compiled anchored, so a candidate segment has to match
// in its entirety. Nil or duplicate keywords, invalid patterns, and empty or
// invalid separators fail construction.
func NewAnalyzer(slots []Slot, opts ...AnalyzerOption) (*Analyzer, error) {
	cfg := analyzerConfig{
		separator: DefaultSeparator,
		matchAny:  true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(slots) == 0 {
		return nil, ErrNoSlots
	}
	if cfg.separator == "" {
		return nil, ErrEmptySeparator
	}
	splitter, err := regexp.Compile(cfg.separator)
	if err != nil {
		return nil, &SeparatorError{Separator: cfg.separator, Err: err}
	}

	compiled := make([]slot, 0, len(slots))
	seen := make(map[string]struct{}, len(slots))
	for _, s := range slots {
		if s.Keyword == nil {
			return nil, ErrNilKeyword
		}
		name := s.Keyword.Name()
		if _, ok := seen[name]; ok {
			return nil, &DuplicateKeywordError{Name: name}
		}
		seen[name] = struct{}{}

		pattern, err := regexp.Compile(`\A(?:` + s.Keyword.Pattern() + `)\z`)
		if err != nil {
			return nil, &PatternError{Keyword: name, Pattern: s.Keyword.Pattern(), Err: err}
		}
		compiled = append(compiled, slot{
			keyword:    s.Keyword,
			occurrence: s.Occurrence,
			pattern:    pattern,
		})
	}

	if cfg.observer != nil {
		for _, s := range compiled {
			cfg.observer(SlotEvent{Keyword: s.keyword, Occurrence: s.occurrence})
		}
	}

	return &Analyzer{
		slots:     compiled,
		separator: cfg.separator,
		splitter:  splitter,
		matchAny:  cfg.matchAny,
	}, nil
}

// Keywords returns the analyzer's keywords in declaration order.
func (a *Analyzer) Keywords() []Keyword {
	keywords := make([]Keyword, len(a.slots))
	for i, s := range a.slots {
		keywords[i] = s.keyword
	}
	return keywords
}

// Separator returns the separator the analyzer splits and joins with.
func (a *Analyzer) Separator() string {
	return a.separator
}

// Matches reports whether the input can be segmented at all. It is exactly
// "Analyze is non-empty".
func (a *Analyzer) Matches(input string) bool {
	return len(a.Analyze(input)) > 0
}

// Analyze returns every way the input can be split into the analyzer's
// keywords, ordered by descending summed keyword weight. The sort is stable,
// so segmentations of equal weight keep depth-first enumeration order:
// Optional inactive before active, Exclusive absent branch before its solo
// vector, shorter token runs before longer ones. No deduplication is
// performed. An input that cannot be segmented yields an empty, non-nil
// result.
func (a *Analyzer) Analyze(input string) []Segmentation {
	var tokens []string
	if input != "" {
		tokens = a.splitter.Split(input, -1)
	}

	results := []Segmentation{}
	active := make([]bool, len(a.slots))
	a.enumerate(&results, tokens, active, 0)

	if len(results) < 2 {
		return results
	}
	weighted := make([]struct {
		seg    Segmentation
		weight float64
	}, len(results))
	for i, seg := range results {
		weighted[i].seg = seg
		weighted[i].weight = seg.weight(input)
	}
	sort.SliceStable(weighted, func(i, j int) bool {
		return weighted[i].weight > weighted[j].weight
	})
	for i := range weighted {
		results[i] = weighted[i].seg
	}
	return results
}

// enumerate is phase 1: it decides slot by slot whether each one is active,
// handing every completed activation vector to phase 2. Recursion depth is
// bounded by the slot count.
func (a *Analyzer) enumerate(results *[]Segmentation, tokens []string, active []bool, i int) {
	switch a.slots[i].occurrence {
	case Exclusive:
		// Absent branch: the remaining slots combine freely without it.
		a.decide(results, tokens, active, i, false)

		// Solo vector: this slot alone, every other slot forced inactive.
		solo := make([]bool, len(a.slots))
		solo[i] = true
		a.assign(results, Segmentation{}, tokens, solo, 0, 0)
	case Optional:
		a.decide(results, tokens, active, i, false)
		a.decide(results, tokens, active, i, true)
	default:
		a.decide(results, tokens, active, i, true)
	}
}

func (a *Analyzer) decide(results *[]Segmentation, tokens []string, active []bool, i int, use bool) {
	active[i] = use
	if i+1 < len(a.slots) {
		a.enumerate(results, tokens, active, i+1)
		return
	}
	if anyActive(active) {
		a.assign(results, Segmentation{}, tokens, active, 0, 0)
	} else if !a.matchAny && len(tokens) == 0 {
		// The fully-inactive vector consumes nothing, so it only matches
		// the empty input.
		*results = append(*results, Segmentation{})
	}
}

// assign is phase 2: walk the tokens left to right, trying every contiguous
// run of remaining tokens at each active slot. The run length is bounded so
// that every active slot still ahead keeps at least one token. Runs are
// joined with the literal separator and accepted on a full pattern match
// plus Verify. A branch contributes a Segmentation only when its final run
// consumes the last token; everything else is pruned silently.
func (a *Analyzer) assign(results *[]Segmentation, current Segmentation, tokens []string, active []bool, tokenIdx, slotIdx int) {
	if !active[slotIdx] {
		if slotIdx+1 < len(a.slots) {
			a.assign(results, current, tokens, active, tokenIdx, slotIdx+1)
		}
		return
	}

	ahead := 0
	for j := slotIdx + 1; j < len(active); j++ {
		if active[j] {
			ahead++
		}
	}

	s := a.slots[slotIdx]
	for end := tokenIdx + 1; end <= len(tokens)-ahead; end++ {
		segment := strings.Join(tokens[tokenIdx:end], a.separator)
		if !s.pattern.MatchString(segment) || !s.keyword.Verify(segment) {
			continue
		}
		next := current.extend(s.keyword, segment)
		if end == len(tokens) {
			*results = append(*results, next)
		} else if slotIdx+1 < len(a.slots) {
			a.assign(results, next, tokens, active, end, slotIdx+1)
		}
	}
}

func anyActive(active []bool) bool {
	for _, use := range active {
		if use {
			return true
		}
	}
	return false
}
