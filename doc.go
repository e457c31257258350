// Package keygram segments short structured strings (names, addresses,
// dates) into named keyword segments according to a declared grammar, and
// ranks every syntactically valid segmentation and every candidate term the
// input could belong to.
//
// Grammars are built once, either in code (NewKeyword, NewAnalyzer,
// NewClassifier) or from a YAML document (LoadGrammar), and are immutable
// afterwards, so a single Classifier can serve concurrent Analyze calls
// without locking.
//
// The cost of Analyze is exponential in the number of Optional and Exclusive
// slots and polynomial in token count. That is the intended trade-off for
// short single-field inputs; keygram is not a tokenizer for free-form text.
package keygram
