package shell

// isDelim reports whether c separates tokens. The set matches the original
// console shell: space, tab, carriage return, newline and bell.
func isDelim(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\a':
		return true
	}
	return false
}

// SplitLine tokenizes line in place. Delimiter bytes are overwritten with
// NUL and every returned token is a sub-slice of line's backing array, so
// tokens are valid only while the line buffer is. Runs of delimiters
// collapse; a line with no non-delimiter content yields an empty vector.
func SplitLine(line []byte) [][]byte {
	tokens := make([][]byte, 0, tokenBufSize)

	start := -1
	for i, c := range line {
		if !isDelim(c) {
			if start < 0 {
				start = i
			}
			continue
		}

		line[i] = 0
		if start >= 0 {
			tokens = appendToken(tokens, line[start:i])
			start = -1
		}
	}
	if start >= 0 {
		tokens = appendToken(tokens, line[start:])
	}

	return tokens
}

// appendToken grows the token vector by a fixed increment, mirroring the
// line reader's growth contract.
func appendToken(tokens [][]byte, tok []byte) [][]byte {
	if len(tokens) == cap(tokens) {
		grown := make([][]byte, len(tokens), cap(tokens)+tokenBufSize)
		copy(grown, tokens)
		tokens = grown
	}
	return append(tokens, tok)
}
