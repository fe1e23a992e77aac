package curveviz

// EnsureSize returns a slice of exactly n elements, reusing buf's backing
// array when it is large enough. Contents are not cleared; callers overwrite
// every element.
func EnsureSize[T any](buf []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(buf) == n {
		return buf
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]T, n)
}
