package chat

import "strings"

// Effect is a display animation requested inline by the message author.
// The vocabulary is closed so the renderer never sees an unvalidated class name.
type Effect string

const (
	EffectShake    Effect = "shake"
	EffectWiggle   Effect = "wiggle"
	EffectGlow     Effect = "glow"
	EffectWave     Effect = "wave"
	EffectScramble Effect = "scramble"
	EffectType     Effect = "type"
	EffectGlitch   Effect = "glitch"
	EffectExplode  Effect = "explode"
	EffectMatrix   Effect = "matrix"
	EffectFade     Effect = "fade"
	EffectSlide    Effect = "slide"
)

// namedEffects are the effects addressable through the "!<name>" directive.
// Shake has its own directive and is not part of this set.
var namedEffects = map[string]Effect{
	"wiggle":   EffectWiggle,
	"glow":     EffectGlow,
	"wave":     EffectWave,
	"scramble": EffectScramble,
	"type":     EffectType,
	"glitch":   EffectGlitch,
	"explode":  EffectExplode,
	"matrix":   EffectMatrix,
	"fade":     EffectFade,
	"slide":    EffectSlide,
}

// ParseEffect resolves a directive name, case-insensitively, against the
// closed effect vocabulary.
func ParseEffect(name string) (Effect, bool) {
	eff, ok := namedEffects[strings.ToLower(name)]
	return eff, ok
}

func (e Effect) String() string {
	return string(e)
}
