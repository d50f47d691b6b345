package sanitizer

// Apply feeds value through each transform, left to right, and returns the
// final result. With no transforms value is returned unchanged.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, fn := range transforms {
		value = fn(value)
	}
	return value
}

// Compose binds transforms into a single function, e.g. a package-level
// pipeline shared by many calls.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
