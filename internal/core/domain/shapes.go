package domain

import "time"

// ShapesGraph identifies a parsed SHACL constraint document. It is immutable
// once loaded and keyed process-wide by its absolute path.
type ShapesGraph struct {
	// Path is the absolute path of the rules file the graph was parsed from.
	Path string
	// Triples is the number of triples in the parsed graph.
	Triples int
	// LoadedAt is when the graph was parsed.
	LoadedAt time.Time
}

// ValidationResult is the outcome of running the validation engine over a data file.
type ValidationResult struct {
	// Conforms is true when the file satisfies its constraint graph.
	Conforms bool
	// Report is the engine's textual validation report.
	Report string
}
