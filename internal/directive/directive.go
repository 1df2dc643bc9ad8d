package directive

import (
	"regexp"
	"strings"

	"github.com/pump-ai-fun/kind-of-stop-spam/internal/chat"
	"github.com/pump-ai-fun/kind-of-stop-spam/internal/utils"
)

// Extraction is message content with its inline display directives stripped
// out and returned as structured data.
type Extraction struct {
	Text    string
	Colors  []string
	Effects []chat.Effect
}

var colorRE = regexp.MustCompile(`#[0-9a-fA-F]+`)

// Extract strips color and effect directives from content. Order matters:
// colors first, then the shake token, then named effects, with whitespace
// renormalized between passes.
func Extract(content string) Extraction {
	text, colors := stripColors(content)
	text, shaken := stripShake(text)
	text, effects := stripEffects(text)
	if shaken {
		effects = append([]chat.Effect{chat.EffectShake}, effects...)
	}
	return Extraction{Text: text, Colors: colors, Effects: effects}
}

type colorSpan struct {
	start, end int
	norm       string
}

// stripColors captures up to two distinct highlight colors in order of first
// appearance and removes every literal token matching a captured color.
// Color-looking tokens that were not captured stay in the text untouched.
func stripColors(s string) (string, []string) {
	var spans []colorSpan
	for _, m := range colorRE.FindAllStringIndex(s, -1) {
		// A color may not sit directly after another hex digit.
		if m[0] > 0 && isHexDigit(s[m[0]-1]) {
			continue
		}
		norm, ok := normalizeHex(s[m[0]+1 : m[1]])
		if !ok {
			continue
		}
		spans = append(spans, colorSpan{start: m[0], end: m[1], norm: norm})
	}

	var captured []string
	for _, sp := range spans {
		if containsColor(captured, sp.norm) {
			continue
		}
		if len(captured) < 2 {
			captured = append(captured, sp.norm)
		}
	}
	if len(captured) == 0 {
		return utils.CollapseSpaces(s), nil
	}

	var b strings.Builder
	last := 0
	for _, sp := range spans {
		if !containsColor(captured, sp.norm) {
			continue
		}
		b.WriteString(s[last:sp.start])
		last = sp.end
	}
	b.WriteString(s[last:])
	return utils.CollapseSpaces(b.String()), captured
}

// stripShake removes standalone "!shake" tokens, case-insensitively.
func stripShake(s string) (string, bool) {
	fields := strings.Fields(s)
	kept := fields[:0]
	found := false
	for _, tok := range fields {
		if strings.EqualFold(tok, "!shake") {
			found = true
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " "), found
}

// stripEffects removes "!<name>" tokens in the closed effect vocabulary,
// collecting them deduplicated in order of first appearance.
func stripEffects(s string) (string, []chat.Effect) {
	fields := strings.Fields(s)
	kept := fields[:0]
	var effects []chat.Effect
	seen := map[chat.Effect]bool{}
	for _, tok := range fields {
		name, isDirective := strings.CutPrefix(tok, "!")
		if isDirective {
			if eff, ok := chat.ParseEffect(name); ok {
				if !seen[eff] {
					seen[eff] = true
					effects = append(effects, eff)
				}
				continue
			}
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " "), effects
}

// normalizeHex lowers a 3/4/6/8 digit hex run to "#rrggbb". Short forms
// expand by doubling each digit; alpha digits are dropped.
func normalizeHex(digits string) (string, bool) {
	d := strings.ToLower(digits)
	switch len(d) {
	case 3, 4:
		var b strings.Builder
		b.WriteByte('#')
		for i := 0; i < 3; i++ {
			b.WriteByte(d[i])
			b.WriteByte(d[i])
		}
		return b.String(), true
	case 6:
		return "#" + d, true
	case 8:
		return "#" + d[:6], true
	default:
		return "", false
	}
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func containsColor(colors []string, c string) bool {
	for _, v := range colors {
		if v == c {
			return true
		}
	}
	return false
}
