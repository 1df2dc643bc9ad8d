package parser

import "testing"

func TestParseBlock(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   Block
		wantOK bool
	}{
		{
			name:   "user content and time",
			raw:    "alice\n\nhello there\n\n12:34",
			want:   Block{User: "alice", Content: "hello there", RawTime: "12:34"},
			wantOK: true,
		},
		{
			name:   "time absent",
			raw:    "bob\n\nhi",
			want:   Block{User: "bob", Content: "hi"},
			wantOK: true,
		},
		{
			name:   "missing content segment",
			raw:    "alice",
			wantOK: false,
		},
		{
			name:   "empty content keeps alignment",
			raw:    "alice\n\n\n\n12:34",
			wantOK: false,
		},
		{
			name:   "whitespace only user",
			raw:    "   \n\nhello",
			wantOK: false,
		},
		{
			name:   "whitespace only content",
			raw:    "alice\n\n   \n\n12:34",
			wantOK: false,
		},
		{
			name:   "fields trimmed",
			raw:    "  alice \n\n  hello  \n\n 12:34 ",
			want:   Block{User: "alice", Content: "hello", RawTime: "12:34"},
			wantOK: true,
		},
		{
			name:   "quoted reply lifted out",
			raw:    "alice\n\n> gm everyone\nright back at you\n\n12:34",
			want:   Block{User: "alice", Content: "right back at you", RawTime: "12:34", ReplyTo: "gm everyone"},
			wantOK: true,
		},
		{
			name:   "quote line alone is empty content",
			raw:    "alice\n\n> gm everyone\n",
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseBlock(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("ParseBlock() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got != tt.want {
				t.Errorf("ParseBlock() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
