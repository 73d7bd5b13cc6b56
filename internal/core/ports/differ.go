package ports

// Differ defines the interface for producing unified diffs between two files.
//
//go:generate mockgen -source=differ.go -destination=mocks/mock_differ.go -package=mocks
type Differ interface {
	// Unified returns a unified diff of the two files, with the file paths as
	// the from/to headers. Identical contents yield an empty string.
	Unified(leftPath, rightPath string) (string, error)
}
