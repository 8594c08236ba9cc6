package scraper

import "strings"

// locate returns the byte offsets of the first occurrence of marker in text.
func locate(text, marker string) (start, end int, ok bool) {
	start = strings.Index(text, marker)
	if start < 0 {
		return 0, 0, false
	}
	return start, start + len(marker), true
}

// Between returns the text between the first occurrence of start and the
// first occurrence of end that follows it, together with everything after
// end. The search for end begins where start finishes, so equal markers
// delimit successive occurrences.
func Between(text, start, end string) (match, rest string, ok bool) {
	_, from, ok := locate(text, start)
	if !ok {
		return "", "", false
	}
	zone := text[from:]
	to, after, ok := locate(zone, end)
	if !ok {
		return "", "", false
	}
	return zone[:to], zone[after:], true
}

// SkipPast returns what follows the first occurrence of marker.
func SkipPast(text, marker string) (rest string, ok bool) {
	_, after, ok := locate(text, marker)
	if !ok {
		return "", false
	}
	return text[after:], true
}

// SkipWhile drops the leading runes of text for which pred holds.
func SkipWhile(text string, pred func(rune) bool) string {
	i := strings.IndexFunc(text, func(r rune) bool { return !pred(r) })
	if i < 0 {
		return text[len(text):]
	}
	return text[i:]
}

func isDecimalDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
