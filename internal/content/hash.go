package content

// rollingHash is the 32-bit signed multiply-by-31 rotation hash: for each
// rune, h = h*31 + codepoint with int32 wraparound, then the absolute value
// taken in 64-bit space so MinInt32 cannot overflow. Not the runtime's
// string hash: bank indexes must reproduce across restarts and
// implementations.
func rollingHash(s string) int64 {
	var h int32
	for _, r := range s {
		h = h*31 + int32(r)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}

// bankIndex picks the day's slot in a bank of length n, keyed on the
// calendar day plus the bank name. A nonpositive n maps to 0 so an empty
// bank cannot panic the caller.
func bankIndex(day, bank string, n int) int {
	if n <= 0 {
		return 0
	}
	return int(rollingHash(day+bank) % int64(n))
}
