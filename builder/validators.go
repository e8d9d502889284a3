package builder

// validateMin returns ErrTooFewVertices (wrapped with method context) when
// got < min.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewVertices, "n=%d < min=%d", got, min)
	}

	return nil
}
