package utils

import "strings"

// NormalizeContent canonicalizes cleaned message text into the key used for
// dedup and ban matching: trim, collapse whitespace runs, lowercase.
func NormalizeContent(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// CollapseSpaces renormalizes whitespace after a directive stripping pass so
// later passes never see directive fragments as ordinary tokens.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
