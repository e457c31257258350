package keygram

// Term is a named category an input can be classified as. Each term is backed
// by one Analyzer; the Classifier ranks matching terms by their weight.
type Term interface {
	// Name identifies the term. It must be unique within a Classifier.
	Name() string

	// Weight rates the term's full list of segmentations for an input.
	// Terms with higher weight rank first in a Result.
	Weight(input string, segmentations []Segmentation) float64
}

type term struct {
	name   string
	weight func(input string, segmentations []Segmentation) float64
}

// TermOption configures a term built by NewTerm.
type TermOption func(*term)

// WithTermWeight sets the term's weighting function.
func WithTermWeight(weight func(input string, segmentations []Segmentation) float64) TermOption {
	return func(t *term) {
		t.weight = weight
	}
}

// NewTerm returns a Term with the given name. Without options the term
// weighs 1.0 regardless of input.
func NewTerm(name string, opts ...TermOption) Term {
	t := &term{name: name}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *term) Name() string { return t.name }

func (t *term) Weight(input string, segmentations []Segmentation) float64 {
	if t.weight == nil {
		return 1.0
	}
	return t.weight(input, segmentations)
}
