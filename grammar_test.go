package keygram

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGrammar = `
keywords:
  - name: FORENAME
    pattern: "[A-Z][A-Za-z]*( [A-Z][A-Za-z]*)*"
  - name: LASTNAME
    pattern: "[A-Z][A-Za-z]*"
  - name: UNDESIRABLE_NUMBER
    pattern: Undesirable No \d+
  - name: HOUSENR
    pattern: \d+
  - name: STREET
    pattern: "[A-Z][A-Za-z]*( [A-Z][A-Za-z]*)*"
  - name: CITY
    pattern: "[A-Z][A-Za-z]*( [A-Z][A-Za-z]*)*"

terms:
  - name: FULLNAME
    slots:
      - keyword: FORENAME
      - keyword: UNDESIRABLE_NUMBER
        occurrence: exclusive
      - keyword: LASTNAME
  - name: FULLADDRESS
    slots:
      - keyword: HOUSENR
        occurrence: optional
      - keyword: STREET
      - keyword: CITY
`

func TestGrammar_Build(t *testing.T) {
	g, err := ParseGrammar([]byte(testGrammar))
	require.NoError(t, err)

	c, err := g.Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"FULLNAME", "FULLADDRESS"}, termNames(c.Terms()))

	result := c.Analyze("Harry James Potter")
	require.Equal(t, 2, result.Len())

	segs, ok := result.Segmentations("FULLNAME")
	require.True(t, ok)
	require.Len(t, segs, 1)
	forename, _ := segs[0].Segment("FORENAME")
	assert.Equal(t, "Harry James", forename)

	segs, err = c.AnalyzeTerm("Undesirable No 1", "FULLNAME")
	require.NoError(t, err)
	require.Len(t, segs, 1)
	nick, _ := segs[0].Segment("UNDESIRABLE_NUMBER")
	assert.Equal(t, "Undesirable No 1", nick)
}

func TestGrammar_Weights(t *testing.T) {
	g, err := ParseGrammar([]byte(`
keywords:
  - name: WORD
    pattern: "[a-z]+"
  - name: NUMBER
    pattern: \d+
terms:
  - name: TEXT
    weight: 0.5
    slots:
      - keyword: WORD
  - name: AMOUNT
    weight: 2.0
    slots:
      - keyword: NUMBER
`))
	require.NoError(t, err)

	c, err := g.Build()
	require.NoError(t, err)

	result := c.Analyze("42")
	require.Equal(t, 1, result.Len())
	assert.Equal(t, "AMOUNT", result.Entries()[0].Term.Name())
	assert.Equal(t, 2.0, result.Entries()[0].Weight)
}

func TestGrammar_SeparatorAndMatchAny(t *testing.T) {
	g, err := ParseGrammar([]byte(`
keywords:
  - name: FIELD
    pattern: "[a-z]+"
terms:
  - name: CSV
    separator: ", "
    match_any: false
    slots:
      - keyword: FIELD
        occurrence: optional
`))
	require.NoError(t, err)

	c, err := g.Build()
	require.NoError(t, err)

	assert.True(t, c.Matches("field"))
	assert.True(t, c.Matches(""), "match_any false admits the empty input")
}

func TestGrammar_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		grammar string
		wantErr string
	}{
		{
			name:    "not yaml",
			grammar: "{{{",
			wantErr: "parsing grammar",
		},
		{
			name: "unnamed keyword",
			grammar: `
keywords:
  - pattern: \d+
`,
			wantErr: "keyword without a name",
		},
		{
			name: "duplicate keyword",
			grammar: `
keywords:
  - name: WORD
    pattern: "[a-z]+"
  - name: WORD
    pattern: \d+
`,
			wantErr: "declared twice",
		},
		{
			name: "unknown keyword reference",
			grammar: `
keywords:
  - name: WORD
    pattern: "[a-z]+"
terms:
  - name: TEXT
    slots:
      - keyword: NUMBER
`,
			wantErr: "unknown keyword",
		},
		{
			name: "bad occurrence",
			grammar: `
keywords:
  - name: WORD
    pattern: "[a-z]+"
terms:
  - name: TEXT
    slots:
      - keyword: WORD
        occurrence: sometimes
`,
			wantErr: "unknown occurrence",
		},
		{
			name: "bad pattern",
			grammar: `
keywords:
  - name: WORD
    pattern: "[unclosed"
terms:
  - name: TEXT
    slots:
      - keyword: WORD
`,
			wantErr: "invalid pattern",
		},
		{
			name: "unnamed term",
			grammar: `
keywords:
  - name: WORD
    pattern: "[a-z]+"
terms:
  - slots:
      - keyword: WORD
`,
			wantErr: "term without a name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParseGrammar([]byte(tt.grammar))
			if err == nil {
				_, err = g.Build()
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadGrammar(t *testing.T) {
	path := filepath.Join("testdata", "names.yaml")
	g, err := LoadGrammar(path)
	require.NoError(t, err)

	c, err := g.Build()
	require.NoError(t, err)
	assert.True(t, c.Matches("Harry Potter"))

	_, err = LoadGrammar(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)
}

func TestParseOccurrence(t *testing.T) {
	for s, want := range map[string]Occurrence{
		"":          Fixed,
		"fixed":     Fixed,
		"optional":  Optional,
		"exclusive": Exclusive,
	} {
		got, err := ParseOccurrence(s)
		require.NoError(t, err)
		assert.Equal(t, want, got, "occurrence %q", s)
	}

	_, err := ParseOccurrence("sometimes")
	assert.Error(t, err)
}
