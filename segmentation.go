package keygram

import (
	"fmt"
	"strings"
)

// SegmentEntry is one keyword's matched segment within a Segmentation.
type SegmentEntry struct {
	Keyword Keyword
	Segment string
}

// Segmentation is one complete, valid assignment of input segments to active
// keywords, ordered by slot declaration. Keywords that were inactive for the
// underlying activation vector carry no entry.
type Segmentation struct {
	entries []SegmentEntry
}

// Entries returns the keyword/segment pairs in slot-declaration order. The
// returned slice is shared; callers must not modify it.
func (s Segmentation) Entries() []SegmentEntry {
	return s.entries
}

// Len returns the number of active keywords.
func (s Segmentation) Len() int {
	return len(s.entries)
}

// Segment returns the segment matched by the named keyword, if any.
func (s Segmentation) Segment(keyword string) (string, bool) {
	for _, e := range s.entries {
		if e.Keyword.Name() == keyword {
			return e.Segment, true
		}
	}
	return "", false
}

// Keywords returns the active keywords in slot-declaration order.
func (s Segmentation) Keywords() []Keyword {
	keywords := make([]Keyword, len(s.entries))
	for i, e := range s.entries {
		keywords[i] = e.Keyword
	}
	return keywords
}

// Join concatenates the active segments with the given separator. Joining
// with the Analyzer's separator reconstructs the consumed token sequence.
func (s Segmentation) Join(separator string) string {
	parts := make([]string, len(s.entries))
	for i, e := range s.entries {
		parts[i] = e.Segment
	}
	return strings.Join(parts, separator)
}

func (s Segmentation) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range s.entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%q", e.Keyword.Name(), e.Segment)
	}
	sb.WriteByte('}')
	return sb.String()
}

// weight sums the keyword weights of all entries for the given input.
func (s Segmentation) weight(input string) float64 {
	var total float64
	for _, e := range s.entries {
		total += e.Keyword.Weight(input, e.Segment)
	}
	return total
}

// extend copies the segmentation and appends one entry. The copy keeps
// sibling branches of the backtracker independent.
func (s Segmentation) extend(k Keyword, segment string) Segmentation {
	entries := make([]SegmentEntry, len(s.entries), len(s.entries)+1)
	copy(entries, s.entries)
	return Segmentation{entries: append(entries, SegmentEntry{Keyword: k, Segment: segment})}
}
