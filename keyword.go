package keygram

// Keyword is a named, pattern-matched segment type. A candidate segment is
// accepted only if the keyword's pattern matches it in its entirety and
// Verify returns true for it.
type Keyword interface {
	// Name identifies the keyword. It must be unique within an Analyzer.
	Name() string

	// Pattern returns the regular expression a candidate segment has to
	// fully match. Compiled once, at Analyzer construction.
	Pattern() string

	// Verify is an extra acceptance check for constraints a pattern cannot
	// express, such as calendar validity. It is only called with segments
	// that already matched the pattern.
	Verify(segment string) bool

	// Weight rates a matched segment. Segmentations are ordered by the sum
	// of their segment weights, highest first.
	Weight(input, segment string) float64
}

type keyword struct {
	name    string
	pattern string
	verify  func(segment string) bool
	weight  func(input, segment string) float64
}

// KeywordOption configures a keyword built by NewKeyword.
type KeywordOption func(*keyword)

// WithVerify sets an acceptance predicate that runs after the pattern match.
func WithVerify(verify func(segment string) bool) KeywordOption {
	return func(k *keyword) {
		k.verify = verify
	}
}

// WithWeight sets the keyword's segment weighting function.
func WithWeight(weight func(input, segment string) float64) KeywordOption {
	return func(k *keyword) {
		k.weight = weight
	}
}

// NewKeyword returns a Keyword with the given name and pattern. Without
// options, every pattern match verifies and weighs 1.0.
func NewKeyword(name, pattern string, opts ...KeywordOption) Keyword {
	k := &keyword{
		name:    name,
		pattern: pattern,
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

func (k *keyword) Name() string    { return k.name }
func (k *keyword) Pattern() string { return k.pattern }

func (k *keyword) Verify(segment string) bool {
	if k.verify == nil {
		return true
	}
	return k.verify(segment)
}

func (k *keyword) Weight(input, segment string) float64 {
	if k.weight == nil {
		return 1.0
	}
	return k.weight(input, segment)
}
