package core

// Sample is the set of element types the pipeline moves around: raw 16-bit
// PCM and the float64 working unit.
type Sample interface {
	~int16 | ~float64
}

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen[T Sample](buf []T, n int) []T {
	if n <= 0 {
		return buf[:0]
	}

	if cap(buf) >= n {
		return buf[:n]
	}

	return make([]T, n)
}

// Zero sets all values in buf to 0.
func Zero[T Sample](buf []T) {
	for i := range buf {
		buf[i] = 0
	}
}

// CopyInto copies src into dst, zero-fills the remainder of dst and returns
// the number of copied elements.
func CopyInto[T Sample](dst, src []T) int {
	n := copy(dst, src)
	Zero(dst[n:])

	return n
}
