package patch

import "bytes"

// This file is a minimal byte-level JSON object scanner. The manifest
// patch edits package.json by splicing bytes instead of re-marshalling,
// so user formatting, key order and comments-by-convention (exact
// whitespace) survive the patch.

// member is one key/value pair of a scanned JSON object.
type member struct {
	key        string
	keyStart   int
	valueStart int
	valueEnd   int
}

// skipSpace advances i past JSON whitespace.
func skipSpace(b []byte, i int) int {
	for i < len(b) {
		switch b[i] {
		case ' ', '\t', '\r', '\n':
			i++
		default:
			return i
		}
	}
	return i
}

// scanString scans a JSON string starting at b[i] == '"' and returns the
// index after the closing quote.
func scanString(b []byte, i int) (end int, ok bool) {
	if i >= len(b) || b[i] != '"' {
		return 0, false
	}
	i++
	for i < len(b) {
		switch b[i] {
		case '\\':
			i += 2
		case '"':
			return i + 1, true
		default:
			i++
		}
	}
	return 0, false
}

// scanValue scans any JSON value starting at or after b[i] and returns
// the index just past it.
func scanValue(b []byte, i int) (end int, ok bool) {
	i = skipSpace(b, i)
	if i >= len(b) {
		return 0, false
	}
	switch b[i] {
	case '"':
		return scanString(b, i)
	case '{':
		return scanBalanced(b, i, '{', '}')
	case '[':
		return scanBalanced(b, i, '[', ']')
	case 't':
		if bytes.HasPrefix(b[i:], []byte("true")) {
			return i + 4, true
		}
	case 'f':
		if bytes.HasPrefix(b[i:], []byte("false")) {
			return i + 5, true
		}
	case 'n':
		if bytes.HasPrefix(b[i:], []byte("null")) {
			return i + 4, true
		}
	default:
		if (b[i] >= '0' && b[i] <= '9') || b[i] == '-' {
			j := i + 1
			for j < len(b) {
				c := b[j]
				if (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-' {
					j++
					continue
				}
				break
			}
			return j, true
		}
	}
	return 0, false
}

// scanBalanced scans a brace- or bracket-delimited value, tracking string
// context so delimiters inside strings do not count.
func scanBalanced(b []byte, i int, open, close byte) (end int, ok bool) {
	if i >= len(b) || b[i] != open {
		return 0, false
	}
	depth := 0
	inString := false
	escaped := false
	for ; i < len(b); i++ {
		c := b[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}
	return 0, false
}

// objectMembers scans the object starting at b[objStart] == '{' and
// returns the index past its closing brace plus its direct members.
func objectMembers(b []byte, objStart int) (objEnd int, members []member, ok bool) {
	if objStart >= len(b) || b[objStart] != '{' {
		return 0, nil, false
	}
	objEnd, ok = scanBalanced(b, objStart, '{', '}')
	if !ok {
		return 0, nil, false
	}

	i := objStart + 1
	for {
		i = skipSpace(b, i)
		if i >= objEnd {
			return 0, nil, false
		}
		if b[i] == '}' {
			break
		}
		if b[i] == ',' {
			i++
			continue
		}

		keyStart := i
		keyEnd, ok := scanString(b, i)
		if !ok {
			return 0, nil, false
		}
		i = skipSpace(b, keyEnd)
		if i >= objEnd || b[i] != ':' {
			return 0, nil, false
		}
		valueStart := skipSpace(b, i+1)
		valueEnd, ok := scanValue(b, valueStart)
		if !ok {
			return 0, nil, false
		}
		i = valueEnd

		members = append(members, member{
			key:        string(bytes.Trim(b[keyStart:keyEnd], `"`)),
			keyStart:   keyStart,
			valueStart: valueStart,
			valueEnd:   valueEnd,
		})
	}

	return objEnd, members, true
}

// deleteMember removes a member from the object at objStart, taking the
// trailing comma when there is one and the preceding comma otherwise.
func deleteMember(b []byte, objStart, objEnd int, m member) []byte {
	delStart := m.keyStart
	delEnd := m.valueEnd

	after := skipSpace(b, delEnd)
	if after < objEnd && b[after] == ',' {
		delEnd = skipSpace(b, after+1)
	} else {
		before := delStart
		for before > objStart+1 {
			c := b[before-1]
			if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
				before--
				continue
			}
			if c == ',' {
				delStart = before - 1
			}
			break
		}
		if delStart == m.keyStart {
			// Sole member: collapse the surrounding whitespace too, so
			// the object is left as a clean {}.
			delStart = objStart + 1
			delEnd = after
		}
	}

	out := append([]byte(nil), b[:delStart]...)
	return append(out, b[delEnd:]...)
}

// insertMember appends a new member at the tail of the object spanning
// [objStart, objEnd), mirroring the object's existing newline and indent
// style.
func insertMember(b []byte, objStart, objEnd int, key string, value []byte) []byte {
	_, members, _ := objectMembers(b, objStart)
	newline, indent := detectIndent(b, objStart, objEnd)
	insertPos := trailingSpaceStart(b, objStart, objEnd)

	var ins []byte
	if len(members) > 0 {
		ins = append(ins, ',')
	}
	if newline != nil {
		ins = append(ins, newline...)
		ins = append(ins, indent...)
	} else {
		ins = append(ins, ' ')
	}
	ins = append(ins, '"')
	ins = append(ins, key...)
	ins = append(ins, `": `...)
	ins = append(ins, value...)
	if newline == nil && len(members) == 0 {
		ins = append(ins, ' ')
	}

	out := append([]byte(nil), b[:insertPos]...)
	out = append(out, ins...)
	return append(out, b[insertPos:]...)
}

// detectIndent finds the newline and per-member indent used inside the
// object. A nil newline means the object is single-line.
func detectIndent(b []byte, objStart, objEnd int) (newline, indent []byte) {
	region := b[objStart:objEnd]
	nl := bytes.IndexByte(region, '\n')
	if nl < 0 {
		return nil, nil
	}
	newline = []byte{'\n'}
	i := objStart + nl + 1
	start := i
	for i < objEnd && (b[i] == ' ' || b[i] == '\t') {
		i++
	}
	if i < objEnd && b[i] == '"' {
		indent = b[start:i]
	}
	return newline, indent
}

// trailingSpaceStart returns the index where the whitespace run before the
// object's closing brace begins.
func trailingSpaceStart(b []byte, objStart, objEnd int) int {
	i := objEnd - 1 // the closing brace
	for i > objStart+1 {
		c := b[i-1]
		if c != ' ' && c != '\t' && c != '\r' && c != '\n' {
			break
		}
		i--
	}
	return i
}
