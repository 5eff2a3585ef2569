// Package core holds the transport-facing data types the solving engine
// explains itself with. These types carry no behavior and no dependency
// on internal/engine -- they are the stable wire format consumed by
// internal/transport/http and any other external collaborator (CLI,
// visualizer) that wants to render what the solver just did.
package core

// Move represents a single step the solver took or could take next: a
// value assignment, a candidate elimination, or a contradiction report.
type Move struct {
	StepIndex    int          `json:"step_index"`
	Technique    string       `json:"technique"`
	Action       string       `json:"action"` // "assign", "eliminate", or "contradiction"
	Digit        int          `json:"digit"`
	Targets      []CellRef    `json:"targets"`
	Eliminations []Candidate  `json:"eliminations,omitempty"`
	Explanation  string       `json:"explanation"`
	Refs         TechniqueRef `json:"refs"`
	Highlights   Highlights   `json:"highlights"`
}

// CellRef is a 1-indexed row/column pair, the wire form of engine.Coord.
type CellRef struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Candidate names one eliminated (row, col, digit) triple.
type Candidate struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Digit int `json:"digit"`
}

// TechniqueRef identifies which technique produced a Move, for UI linking.
type TechniqueRef struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
	URL   string `json:"url,omitempty"`
}

// Highlights separates the cells central to a move (Primary) from
// supporting context cells (Secondary), for rendering.
type Highlights struct {
	Primary   []CellRef `json:"primary"`
	Secondary []CellRef `json:"secondary,omitempty"`
}

// Outcome is the terminal state of a solving run.
type Outcome string

const (
	OutcomeSolved  Outcome = "solved"
	OutcomeStuck   Outcome = "stuck"
	OutcomeInvalid Outcome = "invalid"
)
