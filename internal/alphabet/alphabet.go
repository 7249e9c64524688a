package alphabet

// Token returns the n-th (0-indexed) token of the infinite alphabet
// sequence: A, B, ..., Z, AA, AB, ..., ZZ, AAA, ...
//
// The sequence is the bijective base-26 numeral system over 'A'..'Z',
// so tokens are recomputable from the index alone.
func Token(n int) string {
	if n < 0 {
		return ""
	}

	// Bijective base-26 works on 1-indexed values
	n++

	// 16 digits of base 26 exceed the int64 range, so the buffer can
	// hold the token for any index
	var buf [16]byte
	i := len(buf)
	for n > 0 {
		n--
		i--
		buf[i] = byte('A' + n%26)
		n /= 26
	}

	return string(buf[i:])
}
