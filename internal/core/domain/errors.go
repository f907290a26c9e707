package domain

import "errors"

// ============================================================================
// Artifact Errors (startup-time, fatal to serving)
// ============================================================================

var (
	ErrArtifactNotFound = errors.New("artifact not found")
	ErrArtifactCorrupt  = errors.New("artifact corrupt")
)

// ============================================================================
// Prediction Errors
// ============================================================================

var (
	ErrEmptyInput       = errors.New("input text is required")
	ErrInferenceFailure = errors.New("inference failure")
	ErrModelNotLoaded   = errors.New("model is not loaded")
)
