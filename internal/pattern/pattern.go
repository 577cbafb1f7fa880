// Package pattern matches transition patterns against raw input.
//
// A pattern is a byte string evaluated left to right. Most bytes stand for
// themselves; the following are special:
//
//	a  one ASCII alphanumeric byte
//	A  one ASCII alphanumeric byte or a body-start punctuation byte
//	S  exactly one whitespace byte
//	s  a run of zero or more whitespace bytes, matched greedily
//	0  the end of the input; consumes nothing
package pattern

// bodyStartChars are the punctuation bytes that element bodies, attribute
// values, and comment bodies may start with, in addition to alphanumerics.
const bodyStartChars = `!@#$%^&*()-_=+[{]}\/|;:,.?`

// Match reports whether pat matches input starting at pos, and the number
// of input bytes the whole pattern consumed. The consumed count can differ
// from the pattern length because s consumes any number of bytes.
func Match(input []byte, pos int, pat string) (int, bool) {
	cur := pos
	for i := 0; i < len(pat); i++ {
		c := byteAt(input, cur)
		switch pat[i] {
		case 'A':
			if !isAlnum(c) && !isBodyStart(c) {
				return 0, false
			}
			cur++
		case 'a':
			if !isAlnum(c) {
				return 0, false
			}
			cur++
		case 'S':
			if !isSpace(c) {
				return 0, false
			}
			cur++
		case 's':
			for isSpace(byteAt(input, cur)) {
				cur++
			}
		case '0':
			if cur != len(input) {
				return 0, false
			}
		default:
			if c != pat[i] {
				return 0, false
			}
			cur++
		}
	}
	return cur - pos, true
}

// byteAt reads input at pos, treating positions past the end as a zero
// byte so mid-pattern overruns fail the class tests.
func byteAt(input []byte, pos int) byte {
	if pos >= len(input) {
		return 0
	}
	return input[pos]
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isBodyStart(c byte) bool {
	if c == 0 {
		return false
	}
	for i := 0; i < len(bodyStartChars); i++ {
		if bodyStartChars[i] == c {
			return true
		}
	}
	return false
}
