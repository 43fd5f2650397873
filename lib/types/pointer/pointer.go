package pointer

// To returns a pointer to v. Convenient for optional fields in literals.
func To[T any](v T) *T { return &v }
