// Package engine implements the classification pipeline: answer normalization,
// primary and supplementary axis scoring, macro-cell banding, boundary tiebreaker
// selection and nearest-ideology matching.
//
// Every function here is pure. Inputs are never mutated and each stage returns
// a new value for the next, so calls are safe to repeat, memoize or run in
// parallel across sessions.
package engine
