package sorting

import (
	"strconv"
	"strings"
)

// ExtractKey derives the sort name and the size of a member. The size is the
// byte length of the member itself, independent of the name.
func ExtractKey(src []byte, m *Member) (string, int) {
	size := m.Len()

	var name string
	switch m.Key {
	case KeyIdentifier:
		name = string(src[m.KeySpan.Start:m.KeySpan.End])
	case KeyLiteral:
		name = LiteralValue(string(src[m.KeySpan.Start:m.KeySpan.End]))
	case KeyRaw:
		name = rawKey(src, m)
	case KeyExplicit:
		name = m.KeyText
	}

	if name == "" {
		// Adapters must name every member; fall back to the source text
		// rather than sorting an empty key.
		name = strings.TrimSpace(string(src[m.Start:m.End]))
	}
	return name, size
}

// rawKey slices the member source up to the first annotation, dropping an
// optional marker when there is none.
func rawKey(src []byte, m *Member) string {
	end := m.KeySpan.End
	cut := false
	if m.TypeAnnotation != nil && m.TypeAnnotation.Start < end {
		end = m.TypeAnnotation.Start
		cut = true
	}
	if m.ReturnType != nil && m.ReturnType.Start < end {
		end = m.ReturnType.Start
		cut = true
	}
	if !cut && m.Optional && end > m.KeySpan.Start && src[end-1] == '?' {
		end--
	}
	if end < m.KeySpan.Start {
		end = m.KeySpan.Start
	}

	key := strings.TrimSpace(string(src[m.KeySpan.Start:end]))
	key = strings.TrimSuffix(key, ":")
	key = strings.TrimSuffix(key, "?")
	return strings.TrimSpace(key)
}

// LiteralValue returns the value of a string or number literal as text.
// Quotes are removed from strings; numbers are normalised so that 0x10,
// 1_6 and 16.0 all name the same key.
func LiteralValue(text string) string {
	text = strings.TrimSpace(text)
	if len(text) >= 2 {
		switch q := text[0]; q {
		case '"', '\'', '`':
			if text[len(text)-1] == q {
				return text[1 : len(text)-1]
			}
		}
	}

	num := strings.ReplaceAll(text, "_", "")
	if i, err := strconv.ParseInt(num, 0, 64); err == nil {
		return strconv.FormatInt(i, 10)
	}
	if f, err := strconv.ParseFloat(num, 64); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return text
}
