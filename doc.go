// Package boundscheck implements a static analyzer that proves, using
// interval abstract interpretation over a function's SSA form, that some
// index expressions into fixed-size arrays can never fall inside the
// array's bounds at any reachable program point.
//
// The analyzer runs a fixed point computation per function: it propagates
// a rangemap.Map along every control-flow edge, refining it across
// conditional branches and widening it across loop back edges to
// guarantee termination, then checks every array index instruction's
// final interval against the array's static length.
package boundscheck
