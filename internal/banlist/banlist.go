package banlist

import "strings"

// Lists holds the moderation data loaded once at startup: banned keywords,
// banned mentions, and the user-tag icon map. Lookups are read-only and
// side-effect free.
type Lists struct {
	words    []string
	mentions []string
	icons    map[string]string
}

func New(words, mentions []string, icons map[string]string) *Lists {
	l := &Lists{icons: map[string]string{}}
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			l.words = append(l.words, w)
		}
	}
	for _, m := range mentions {
		if m = strings.ToLower(strings.TrimSpace(m)); m != "" {
			l.mentions = append(l.mentions, m)
		}
	}
	for tag, icon := range icons {
		if tag = strings.ToLower(strings.TrimSpace(tag)); tag != "" {
			l.icons[tag] = icon
		}
	}
	return l
}

// IsBanned reports whether normalized content contains any banned keyword or
// mention. Content is expected to be lowercase already.
func (l *Lists) IsBanned(content string) bool {
	for _, w := range l.words {
		if strings.Contains(content, w) {
			return true
		}
	}
	for _, m := range l.mentions {
		if strings.Contains(content, m) {
			return true
		}
	}
	return false
}

// TryGetIcon looks up the icon glyph for a user tag, case-insensitively.
func (l *Lists) TryGetIcon(tag string) (string, bool) {
	icon, ok := l.icons[strings.ToLower(tag)]
	return icon, ok
}
