package builder

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns "<Method>: <name> must be ≥ <min>, got <got>: <sentinel>" otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method, name string, got, min int, sentinel error) error {
	if got < min {
		return builderErrorf(method, sentinel, "%s must be ≥ %d, got %d", name, min, got)
	}

	return nil
}
