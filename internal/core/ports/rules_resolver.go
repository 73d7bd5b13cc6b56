package ports

// RulesResolver defines the interface for locating the constraint document
// that governs a data file.
//
//go:generate mockgen -source=rules_resolver.go -destination=mocks/mock_rules_resolver.go -package=mocks
type RulesResolver interface {
	// Resolve walks ancestor directories of the data file looking for a rules
	// file. It returns the absolute path of the nearest one, or "" when none
	// is found within the configured depth.
	Resolve(dataFile string) (string, error)
}
