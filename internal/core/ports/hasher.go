package ports

// Hasher defines the interface for computing file content hashes.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeFileHash computes the content hash of the file at the given path.
	ComputeFileHash(path string) (uint64, error)
}
