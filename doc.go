// Package instability (module github.com/katalvlaran/instability) is a
// small, self-contained library for computing stable matchings in
// two-sided markets, including markets where some applicants are couples
// with joint preferences.
//
// The single importable package is matching/, which implements the
// instability-chaining algorithm of Roth & Vande Vate (1990): a
// deferred-acceptance loop extended with a repair loop that reacts to
// withdrawals caused by couples being bumped, and a cycle detector that
// reports failure rather than looping forever when couples make no
// stable matching reachable.
//
//	go get github.com/katalvlaran/instability/matching
//
// See matching/doc.go for the full API reference.
package instability
