package reader

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		offset int
		width  int
		want   string
	}{
		{"start", "hello world", 0, 5, "hello"},
		{"shifted", "hello world", 6, 5, "world"},
		{"padded", "hello", 3, 5, "lo   "},
		{"past end", "ab", 5, 3, "   "},
		{"newlines", "a\nb", 0, 3, "a b"},
		{"wide runes", "日本語", 2, 4, "本語"},
		{"wide rune cut", "日本語", 1, 4, " 本 "},
		{"zero width", "abc", 0, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Strip(tt.body, tt.offset, tt.width)
			if got != tt.want {
				t.Errorf("Strip(%q, %d, %d) = %q, want %q", tt.body, tt.offset, tt.width, got, tt.want)
			}
		})
	}
}

func TestStripKeepsWidth(t *testing.T) {
	body := DefaultTexts()[0].Body
	for offset := 0; offset < 40; offset++ {
		if w := runewidth.StringWidth(Strip(body, offset, 30)); w != 30 {
			t.Fatalf("offset %d: strip width %d, want 30", offset, w)
		}
	}
}

func TestWrap(t *testing.T) {
	got := Wrap("the quick brown fox jumps", 10)
	want := "the quick\nbrown fox\njumps"
	if got != want {
		t.Errorf("Wrap = %q, want %q", got, want)
	}

	for _, line := range strings.Split(Wrap(DefaultTexts()[1].Body, 20), "\n") {
		if runewidth.StringWidth(line) > 20 && !strings.Contains(line, " ") {
			continue // single long word
		}
		if runewidth.StringWidth(line) > 20 {
			t.Errorf("line %q exceeds width", line)
		}
	}
}

func TestScrollLength(t *testing.T) {
	tests := []struct {
		body string
		want int
	}{
		{"hello world", 11},
		{"мир", 3},
		{"a\nb", 3},
		{"a\u200bb", 2},
		{"e\u0301", 1},
		{"日本", 2},
		{"", 0},
	}
	for _, tt := range tests {
		if got := ScrollLength(tt.body); got != tt.want {
			t.Errorf("ScrollLength(%q) = %d, want %d", tt.body, got, tt.want)
		}
	}
}
