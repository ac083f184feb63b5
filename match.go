package pathglob

import "strings"

// Match reports whether name matches a single glob pattern segment.
//
// '*' matches zero or more characters but never crosses a separator,
// since segments are matched one at a time. '\' makes the following
// character literal, including '*' and '\' themselves; a trailing '\'
// stands for itself. Matching is case-sensitive and byte-wise.
//
// A leading unescaped '*' never matches a name beginning with '.', so
// "*.txt" does not match ".txt"; a dotfile must be named with an
// explicit leading dot in the pattern.
func Match(name, pattern string) bool {
	if pattern == "" {
		return name == ""
	}
	if pattern[0] == '*' && name != "" && name[0] == '.' {
		return false
	}
	return matchSegment(name, pattern)
}

func matchSegment(name, pattern string) bool {
	// Literal prefix up to the first unescaped star.
	i := 0
	for i < len(pattern) {
		c := pattern[i]
		if c == '*' {
			break
		}
		if c == '\\' && i+1 < len(pattern) {
			i++
			c = pattern[i]
		}
		if name == "" || name[0] != c {
			return false
		}
		name = name[1:]
		i++
	}
	if i == len(pattern) {
		return name == ""
	}
	// A run of consecutive stars collapses into one.
	for i < len(pattern) && pattern[i] == '*' {
		i++
	}
	if i == len(pattern) {
		return true
	}
	// Backtrack: try every split point until the rest of the pattern
	// matches the rest of the name.
	rest := pattern[i:]
	for k := 0; k <= len(name); k++ {
		if matchSegment(name[k:], rest) {
			return true
		}
	}
	return false
}

// hasWildcard reports whether the segment contains an unescaped star.
func hasWildcard(seg string) bool {
	for i := 0; i < len(seg); i++ {
		switch seg[i] {
		case '\\':
			i++
		case '*':
			return true
		}
	}
	return false
}

// unescape resolves backslash escapes in a literal pattern segment so it
// can be compared with, or joined as, a real filename.
func unescape(seg string) string {
	if !strings.ContainsRune(seg, '\\') {
		return seg
	}
	var b strings.Builder
	b.Grow(len(seg))
	for i := 0; i < len(seg); i++ {
		if seg[i] == '\\' && i+1 < len(seg) {
			i++
		}
		b.WriteByte(seg[i])
	}
	return b.String()
}
