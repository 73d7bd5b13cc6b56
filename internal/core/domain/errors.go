package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrNotAbsolutePath is returned when a shapes graph is requested by a relative path.
	ErrNotAbsolutePath = zerr.New("shapes path is not absolute")

	// ErrShapesReadFailed is returned when a shapes file cannot be read.
	ErrShapesReadFailed = zerr.New("failed to read shapes file")

	// ErrShapesParseFailed is returned when a shapes file is not valid Turtle.
	ErrShapesParseFailed = zerr.New("failed to parse shapes file as turtle")

	// ErrEngineNotConfigured is returned when the validation engine command is empty.
	ErrEngineNotConfigured = zerr.New("no validation engine command configured")

	// ErrEngineFailed is returned when the validation engine itself fails, as
	// opposed to reporting a non-conforming file.
	ErrEngineFailed = zerr.New("validation engine failed")

	// ErrValidationFailed is returned when a data file does not conform to its shapes.
	ErrValidationFailed = zerr.New("shacl validation failed")

	// ErrDriftDetected is returned when the latest snapshot differs from the
	// newest versioned directory.
	ErrDriftDetected = zerr.New("latest snapshot drift detected")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrDiffReadFailed is returned when a file cannot be read for diffing.
	ErrDiffReadFailed = zerr.New("failed to read file for diff")
)
