package directive

import (
	"reflect"
	"testing"

	"github.com/pump-ai-fun/kind-of-stop-spam/internal/chat"
)

func TestExtractColors(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantText   string
		wantColors []string
	}{
		{
			name:       "two colors stripped",
			content:    "#ff8800 #2200ff hello",
			wantText:   "hello",
			wantColors: []string{"#ff8800", "#2200ff"},
		},
		{
			name:       "short form expands",
			content:    "#abc hi",
			wantText:   "hi",
			wantColors: []string{"#aabbcc"},
		},
		{
			name:       "four digit drops alpha",
			content:    "#abcf hi",
			wantText:   "hi",
			wantColors: []string{"#aabbcc"},
		},
		{
			name:       "eight digit drops alpha byte",
			content:    "#ff8800cc hi",
			wantText:   "hi",
			wantColors: []string{"#ff8800"},
		},
		{
			name:       "uppercase normalized",
			content:    "#FF8800 hi",
			wantText:   "hi",
			wantColors: []string{"#ff8800"},
		},
		{
			name:       "third distinct color not captured",
			content:    "#111111 #222222 #333333 hi",
			wantText:   "#333333 hi",
			wantColors: []string{"#111111", "#222222"},
		},
		{
			name:       "repeat of captured color removed",
			content:    "#abc hello #AABBCC world",
			wantText:   "hello world",
			wantColors: []string{"#aabbcc"},
		},
		{
			name:       "invalid length left untouched",
			content:    "#abcde hi",
			wantText:   "#abcde hi",
			wantColors: nil,
		},
		{
			name:       "preceded by hex digit not a color",
			content:    "deadbeef#123456 hi",
			wantText:   "deadbeef#123456 hi",
			wantColors: nil,
		},
		{
			name:       "no colors",
			content:    "just   text",
			wantText:   "just text",
			wantColors: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.content)
			if got.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", got.Text, tt.wantText)
			}
			if !reflect.DeepEqual(got.Colors, tt.wantColors) {
				t.Errorf("Colors = %v, want %v", got.Colors, tt.wantColors)
			}
		})
	}
}

func TestExtractEffects(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantText    string
		wantEffects []chat.Effect
	}{
		{
			name:        "dedup keeps first appearance order",
			content:     "hi !glow !wave !glow",
			wantText:    "hi",
			wantEffects: []chat.Effect{chat.EffectGlow, chat.EffectWave},
		},
		{
			name:        "shake always first",
			content:     "!wave boo !shake !glitch",
			wantText:    "boo",
			wantEffects: []chat.Effect{chat.EffectShake, chat.EffectWave, chat.EffectGlitch},
		},
		{
			name:        "case insensitive",
			content:     "hi !GLOW !Shake",
			wantText:    "hi",
			wantEffects: []chat.Effect{chat.EffectShake, chat.EffectGlow},
		},
		{
			name:     "unknown effect stays in text",
			content:  "hi !sparkle",
			wantText: "hi !sparkle",
		},
		{
			name:     "embedded token is not a directive",
			content:  "say hello!glow now",
			wantText: "say hello!glow now",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.content)
			if got.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", got.Text, tt.wantText)
			}
			if !reflect.DeepEqual(got.Effects, tt.wantEffects) {
				t.Errorf("Effects = %v, want %v", got.Effects, tt.wantEffects)
			}
		})
	}
}

func TestExtractMixedDirectives(t *testing.T) {
	got := Extract("#2f4F8b pump it !shake   !matrix")
	if got.Text != "pump it" {
		t.Errorf("Text = %q, want %q", got.Text, "pump it")
	}
	if !reflect.DeepEqual(got.Colors, []string{"#2f4f8b"}) {
		t.Errorf("Colors = %v", got.Colors)
	}
	if !reflect.DeepEqual(got.Effects, []chat.Effect{chat.EffectShake, chat.EffectMatrix}) {
		t.Errorf("Effects = %v", got.Effects)
	}
}
