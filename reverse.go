package kata

// Reverse returns s with its characters in reverse order. It operates
// on runes rather than bytes so multi-byte characters come out intact.
// The empty string and single-character strings reverse to themselves.
func Reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
