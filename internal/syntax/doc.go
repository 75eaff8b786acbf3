// Package syntax holds the static operator model of check expressions:
// precedence tiers, bracket pairs, digraph and alternative-spelling
// normalisation, the operator sets the highlighter cares about, literal
// format detection and type-name prettifying.
//
// A Model is built once with NewModel and is read-only afterwards, so one
// value can be shared by every resolver and highlighter in the process.
package syntax
