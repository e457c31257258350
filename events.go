package keygram

// Registration events are emitted once, during construction, through
// callbacks injected via WithSlotObserver and WithObserver. The query-time
// structures hold no subscriber state and emit nothing during analysis.

// SlotEvent notifies that a keyword slot was accepted into an Analyzer.
type SlotEvent struct {
	Keyword    Keyword
	Occurrence Occurrence
}

// TermEvent notifies that a term was bound to an Analyzer on a Classifier.
type TermEvent struct {
	Term     Term
	Analyzer *Analyzer
}
