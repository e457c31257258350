package keygram

// AnalyzerStats describes an Analyzer's slot sequence.
type AnalyzerStats struct {
	Slots          int   // Total keyword slots
	FixedSlots     int   // Slots that must always be active
	OptionalSlots  int   // Slots that branch into absent/present
	ExclusiveSlots int   // Slots that match alone or not at all
	VectorBound    int64 // Upper bound on activation vectors explored per input
}

// Stats returns the analyzer's slot statistics. The vector bound is the
// worst-case activation vector count: Optional slots double it, Exclusive
// slots add their solo vector on top.
func (a *Analyzer) Stats() AnalyzerStats {
	stats := AnalyzerStats{Slots: len(a.slots)}
	bound := int64(1)
	solos := int64(0)
	for _, s := range a.slots {
		switch s.occurrence {
		case Optional:
			stats.OptionalSlots++
			bound *= 2
		case Exclusive:
			stats.ExclusiveSlots++
			solos++
		default:
			stats.FixedSlots++
		}
	}
	stats.VectorBound = bound + solos
	return stats
}

// ClassifierStats aggregates slot statistics across every bound term.
type ClassifierStats struct {
	Terms          int   // Bound terms
	Keywords       int   // Keyword slots across all analyzers
	OptionalSlots  int   // Optional slots across all analyzers
	ExclusiveSlots int   // Exclusive slots across all analyzers
	VectorBound    int64 // Summed per-analyzer activation vector bounds
}

// Stats returns aggregate statistics over the classifier's bindings.
func (c *Classifier) Stats() ClassifierStats {
	stats := ClassifierStats{Terms: len(c.bindings)}
	for _, b := range c.bindings {
		s := b.Analyzer.Stats()
		stats.Keywords += s.Slots
		stats.OptionalSlots += s.OptionalSlots
		stats.ExclusiveSlots += s.ExclusiveSlots
		stats.VectorBound += s.VectorBound
	}
	return stats
}
