package engine

import "errors"

// ErrContradiction is raised when a candidate removal or value placement
// would leave a cell with zero candidates. It propagates unchanged from
// Cell through House/Field, through the technique that triggered it, up
// to the Resolver, which never retries it -- the engine never backtracks.
var ErrContradiction = errors.New("sudoku: contradiction")

// ErrOutOfRange is raised when a Cell mutator (SetValue, RemoveCandidate)
// is given a value outside 1..N. It indicates a programming bug, not a
// puzzle pathology. CandidateMask methods never raise it: they treat an
// out-of-range value as absent and leave the mask unchanged.
var ErrOutOfRange = errors.New("sudoku: value out of range")

// ErrNotPerfectSquare is raised when a Field is constructed with a size N
// whose square root is not an integer.
var ErrNotPerfectSquare = errors.New("sudoku: grid size is not a perfect square")
