package keygram

// Occurrence describes how a keyword may appear within an Analyzer's slot
// sequence.
type Occurrence int

const (
	// Fixed keywords have to occur exactly once.
	Fixed Occurrence = iota

	// Optional keywords occur once or not at all.
	Optional

	// Exclusive keywords either consume the whole input alone, with every
	// other keyword absent, or do not occur at all.
	Exclusive
)

func (o Occurrence) String() string {
	switch o {
	case Fixed:
		return "fixed"
	case Optional:
		return "optional"
	case Exclusive:
		return "exclusive"
	default:
		return "unknown"
	}
}

// Slot is a keyword's position within an Analyzer's declaration order,
// together with its occurrence mode.
type Slot struct {
	Keyword    Keyword
	Occurrence Occurrence
}

// FixedSlot declares a slot whose keyword must occur exactly once.
func FixedSlot(k Keyword) Slot { return Slot{Keyword: k, Occurrence: Fixed} }

// OptionalSlot declares a slot whose keyword may be absent.
func OptionalSlot(k Keyword) Slot { return Slot{Keyword: k, Occurrence: Optional} }

// ExclusiveSlot declares a slot whose keyword matches alone or not at all.
func ExclusiveSlot(k Keyword) Slot { return Slot{Keyword: k, Occurrence: Exclusive} }
