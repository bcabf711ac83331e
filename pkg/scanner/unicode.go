package scanner

import (
	"strings"
	"unicode/utf8"
)

func isHighSurrogate(r rune) bool {
	return r >= 0xD800 && r <= 0xDBFF
}

func isLowSurrogate(r rune) bool {
	return r >= 0xDC00 && r <= 0xDFFF
}

func combineSurrogates(hi, lo rune) rune {
	return ((hi & 0x3FF) << 10) + (lo & 0x3FF) + 0x10000
}

// CheckUnicodeEscapeChar validates a UESCAPE character.
func CheckUnicodeEscapeChar(esc string) bool {
	if len(esc) != 1 {
		return false
	}
	c := esc[0]
	return !isHexDigit(c) && c != '+' && c != '\'' && c != '"' && !isSpace(c)
}

// DecodeUnicodeEscapes decodes the body of a U&'...' literal or U&"..."
// identifier.
// An escape is the escape character followed by four hex digits, or by '+'
// and six hex digits; a doubled escape character stands for itself. The
// returned offset on error is relative to body.
func DecodeUnicodeEscapes(body string, esc byte) (string, int, error) {
	if strings.IndexByte(body, esc) < 0 {
		return body, 0, nil
	}
	var b strings.Builder
	var pendingHigh rune
	pendingAt := -1
	for i := 0; i < len(body); {
		c := body[i]
		if c != esc {
			if pendingAt >= 0 {
				return "", pendingAt, &LexError{Message: ErrInvalidUnicodeSurrogate, Offset: pendingAt}
			}
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 < len(body) && body[i+1] == esc {
			b.WriteByte(esc)
			i += 2
			continue
		}
		n, skip := 4, 1
		if i+1 < len(body) && body[i+1] == '+' {
			n, skip = 6, 2
		}
		if i+skip+n > len(body) {
			return "", i, &LexError{Message: ErrInvalidUnicodeEscapeSeq, Offset: i}
		}
		var v uint32
		for _, h := range []byte(body[i+skip : i+skip+n]) {
			if !isHexDigit(h) {
				return "", i, &LexError{Message: ErrInvalidUnicodeEscapeSeq, Offset: i}
			}
			v = v*16 + uint32(hexValue(h))
		}
		if v == 0 || v > utf8.MaxRune {
			return "", i, &LexError{Message: ErrInvalidUnicodeEscape, Offset: i}
		}
		r := rune(v)
		switch {
		case pendingAt >= 0:
			if !isLowSurrogate(r) {
				return "", pendingAt, &LexError{Message: ErrInvalidUnicodeSurrogate, Offset: pendingAt}
			}
			b.WriteRune(combineSurrogates(pendingHigh, r))
			pendingAt = -1
		case isHighSurrogate(r):
			pendingHigh, pendingAt = r, i
		case isLowSurrogate(r):
			return "", i, &LexError{Message: ErrInvalidUnicodeSurrogate, Offset: i}
		default:
			b.WriteRune(r)
		}
		i += skip + n
	}
	if pendingAt >= 0 {
		return "", pendingAt, &LexError{Message: ErrInvalidUnicodeSurrogate, Offset: pendingAt}
	}
	return b.String(), 0, nil
}
