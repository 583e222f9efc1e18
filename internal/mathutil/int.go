package mathutil

// IntMin returns the smaller of two ints (search: int-math).
func IntMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// IntMax returns the larger of two ints (search: int-math).
func IntMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// IntClamp limits x to the closed range [lo, hi] (search: int-math).
func IntClamp(x, lo, hi int) int {
	return IntMax(lo, IntMin(x, hi))
}

// IsPowerOfTwo reports whether x is a positive power of two (search: int-math).
func IsPowerOfTwo(x int) bool {
	return x > 0 && x&(x-1) == 0
}
