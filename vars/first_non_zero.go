package vars

// FirstNonZero returns the first non-zero value, so earlier arguments take precedence.
func FirstNonZero[T comparable](values ...T) (ret T) {
	for _, value := range values {
		if value != ret {
			return value
		}
	}
	return
}
