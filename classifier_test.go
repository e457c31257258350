package keygram

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testFullname = "Harry James Potter"
	testNickname = "Undesirable No 1"
	testAddress  = "4 Privet Drive Little Whinging"
	testBirthday = "1980-07-30"
)

func testClassifier(t *testing.T, opts ...ClassifierOption) *Classifier {
	t.Helper()

	fullname, err := NewAnalyzer([]Slot{
		FixedSlot(testForename()),
		ExclusiveSlot(testUndesirable()),
		FixedSlot(testLastname()),
	})
	require.NoError(t, err)

	address, err := NewAnalyzer([]Slot{
		OptionalSlot(testHousenr()),
		FixedSlot(testStreet()),
		FixedSlot(testCity()),
	})
	require.NoError(t, err)

	c, err := NewClassifier([]Binding{
		Bind(NewTerm("FULLNAME"), fullname),
		Bind(NewTerm("FULLADDRESS"), address),
	}, opts...)
	require.NoError(t, err)
	return c
}

func termNames(terms []Term) []string {
	names := make([]string, len(terms))
	for i, t := range terms {
		names[i] = t.Name()
	}
	return names
}

func TestClassifier_Matches(t *testing.T) {
	c := testClassifier(t)

	assert.True(t, c.Matches(testFullname))
	assert.True(t, c.Matches(testNickname))
	assert.True(t, c.Matches(testAddress))
	assert.False(t, c.Matches("lowercase only"))
	assert.False(t, c.Matches(""))
}

func TestClassifier_MatchesTerm(t *testing.T) {
	c := testClassifier(t)

	ok, err := c.MatchesTerm(testFullname, "FULLNAME")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.MatchesTerm(testAddress, "FULLNAME")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = c.MatchesTerm(testFullname, "BIRTHDAY")
	var unknown *UnknownTermError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "BIRTHDAY", unknown.Name)
}

func TestClassifier_Matching(t *testing.T) {
	c := testClassifier(t)

	assert.Equal(t, []string{"FULLNAME", "FULLADDRESS"}, termNames(c.Matching(testFullname)))
	assert.Equal(t, []string{"FULLNAME"}, termNames(c.Matching(testNickname)))
	assert.Equal(t, []string{"FULLADDRESS"}, termNames(c.Matching(testAddress)))
	assert.Empty(t, c.Matching("lowercase only"))
}

func TestClassifier_Analyze(t *testing.T) {
	c := testClassifier(t)

	result := c.Analyze(testFullname)
	require.Equal(t, 2, result.Len())

	// Equal default weights keep registration order.
	assert.Equal(t, []string{"FULLNAME", "FULLADDRESS"}, termNames(result.Terms()))

	segs, ok := result.Segmentations("FULLNAME")
	require.True(t, ok)
	require.Len(t, segs, 1)
	forename, _ := segs[0].Segment("FORENAME")
	lastname, _ := segs[0].Segment("LASTNAME")
	assert.Equal(t, "Harry James", forename)
	assert.Equal(t, "Potter", lastname)

	segs, ok = result.Segmentations("FULLADDRESS")
	require.True(t, ok)
	assert.Len(t, segs, 2)
}

func TestClassifier_AnalyzeExclusive(t *testing.T) {
	c := testClassifier(t)

	result := c.Analyze(testNickname)
	require.Equal(t, 1, result.Len())

	segs, ok := result.Segmentations("FULLNAME")
	require.True(t, ok)
	require.Len(t, segs, 1)
	nick, _ := segs[0].Segment("UNDESIRABLE_NUMBER")
	assert.Equal(t, testNickname, nick)
}

func TestClassifier_AnalyzeNoMatch(t *testing.T) {
	c := testClassifier(t)

	result := c.Analyze("lowercase only")
	assert.True(t, result.IsEmpty())
	assert.Empty(t, result.Terms())

	_, ok := result.Segmentations("FULLNAME")
	assert.False(t, ok)
}

func TestClassifier_MatchesAgreesWithAnalyze(t *testing.T) {
	c := testClassifier(t)

	for _, input := range []string{testFullname, testNickname, testAddress, "lowercase only", ""} {
		assert.Equal(t, !c.Analyze(input).IsEmpty(), c.Matches(input), "input %q", input)
	}
}

func TestClassifier_WeightRanksTerms(t *testing.T) {
	fullname, err := NewAnalyzer([]Slot{
		FixedSlot(testForename()),
		FixedSlot(testLastname()),
	})
	require.NoError(t, err)

	address, err := NewAnalyzer([]Slot{
		FixedSlot(testStreet()),
		FixedSlot(testCity()),
	})
	require.NoError(t, err)

	// The address term outweighs the name term despite later registration.
	c, err := NewClassifier([]Binding{
		Bind(NewTerm("FULLNAME"), fullname),
		Bind(NewTerm("FULLADDRESS", WithTermWeight(func(string, []Segmentation) float64 {
			return 2.0
		})), address),
	})
	require.NoError(t, err)

	result := c.Analyze(testFullname)
	require.Equal(t, 2, result.Len())
	assert.Equal(t, []string{"FULLADDRESS", "FULLNAME"}, termNames(result.Terms()))

	entries := result.Entries()
	assert.GreaterOrEqual(t, entries[0].Weight, entries[1].Weight)
}

func TestClassifier_AnalyzeTerm(t *testing.T) {
	c := testClassifier(t)

	segs, err := c.AnalyzeTerm(testAddress, "FULLADDRESS")
	require.NoError(t, err)
	assert.Len(t, segs, 3)

	segs, err = c.AnalyzeTerm(testAddress, "FULLNAME")
	require.NoError(t, err)
	assert.Empty(t, segs)

	_, err = c.AnalyzeTerm(testAddress, "BIRTHDAY")
	var unknown *UnknownTermError
	assert.ErrorAs(t, err, &unknown)
}

func TestClassifier_ConstructionErrors(t *testing.T) {
	analyzer, err := NewAnalyzer([]Slot{FixedSlot(testLastname())})
	require.NoError(t, err)

	_, err = NewClassifier([]Binding{{Term: nil, Analyzer: analyzer}})
	assert.ErrorIs(t, err, ErrNilTerm)

	_, err = NewClassifier([]Binding{{Term: NewTerm("FULLNAME"), Analyzer: nil}})
	assert.ErrorIs(t, err, ErrNilAnalyzer)

	_, err = NewClassifier([]Binding{
		Bind(NewTerm("FULLNAME"), analyzer),
		Bind(NewTerm("FULLNAME"), analyzer),
	})
	var dup *DuplicateTermError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "FULLNAME", dup.Name)
}

func TestClassifier_Observer(t *testing.T) {
	var events []TermEvent
	c := testClassifier(t, WithObserver(func(e TermEvent) {
		events = append(events, e)
	}))

	require.Len(t, events, 2)
	assert.Equal(t, "FULLNAME", events[0].Term.Name())
	assert.Equal(t, "FULLADDRESS", events[1].Term.Name())
	assert.NotNil(t, events[0].Analyzer)
	_ = c
}

func TestClassifier_ConcurrentAnalyze(t *testing.T) {
	c := testClassifier(t)
	inputs := []string{testFullname, testNickname, testAddress, "lowercase only"}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			input := inputs[i%len(inputs)]
			want := c.Analyze(input)
			for j := 0; j < 50; j++ {
				got := c.Analyze(input)
				if got.Len() != want.Len() {
					t.Errorf("analysis of %q not stable under concurrency", input)
					return
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestClassifier_TermsRegistrationOrder(t *testing.T) {
	c := testClassifier(t)
	assert.Equal(t, []string{"FULLNAME", "FULLADDRESS"}, termNames(c.Terms()))
}

func TestClassifier_ErrorsAreNotResults(t *testing.T) {
	c := testClassifier(t)

	// A failing verify or pattern only prunes branches; it never surfaces
	// as an error from Analyze.
	result := c.Analyze("1980-13-30")
	assert.True(t, result.IsEmpty())

	ok, err := c.MatchesTerm("1980-13-30", "FULLNAME")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUnknownTermError_Message(t *testing.T) {
	err := &UnknownTermError{Name: "BIRTHDAY"}
	assert.Contains(t, err.Error(), "BIRTHDAY")
	assert.True(t, errors.As(error(err), new(*UnknownTermError)))
}
