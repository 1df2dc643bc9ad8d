package parser

import "strings"

// Block is one scraped message split into its raw fields.
type Block struct {
	User    string
	Content string
	RawTime string
	ReplyTo string
}

const delimiter = "\n\n"

// ParseBlock splits a raw scraped block shaped "<user>\n\n<content>\n\n<time>".
// Empty segments are kept so a blank segment cannot shift field alignment.
// The time segment may be absent. Returns ok=false when user or content is
// empty after trimming; malformed input is a non-accept, never an error.
func ParseBlock(raw string) (Block, bool) {
	segs := strings.Split(raw, delimiter)
	if len(segs) < 2 {
		return Block{}, false
	}

	var b Block
	b.User = strings.TrimSpace(segs[0])
	content := segs[1]
	if len(segs) >= 3 {
		b.RawTime = strings.TrimSpace(segs[2])
	}

	// The page renders a quoted reply as a leading "> " line above the
	// message body; lift it out so it never pollutes dedup keys.
	if first, rest, found := strings.Cut(content, "\n"); found {
		if quoted := strings.TrimSpace(first); strings.HasPrefix(quoted, "> ") {
			b.ReplyTo = strings.TrimSpace(strings.TrimPrefix(quoted, "> "))
			content = rest
		}
	}

	b.Content = strings.TrimSpace(content)
	if b.User == "" || b.Content == "" {
		return Block{}, false
	}
	return b, true
}
