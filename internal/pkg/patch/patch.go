package patch

// Coalesce merges an optional update field over its current value: a nil
// pointer means "keep fallback".
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}
