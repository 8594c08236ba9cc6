package utils

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var unsafeFileChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1F]`)

// CleanFileName replaces characters that are not allowed in file names on
// common file systems.
func CleanFileName(input string) string {
	cleaned := norm.NFC.String(input)
	cleaned = unsafeFileChars.ReplaceAllString(cleaned, "_")

	cleaned = strings.TrimSpace(cleaned)

	return cleaned
}

// BookFileName returns "[author] title.ext".
func BookFileName(author, title, ext string) string {
	return "[" + CleanFileName(author) + "] " + CleanFileName(title) + "." + ext
}
