package extract

import "testing"

func TestSentenceAt(t *testing.T) {
	tests := []struct {
		name string
		text string
		idx  int
		want string
	}{
		{
			name: "middle sentence",
			text: "First thing. I prefer dark mode. Last thing.",
			idx:  15,
			want: "I prefer dark mode.",
		},
		{
			name: "no terminators at all",
			text: "just one fragment without punctuation",
			idx:  9,
			want: "just one fragment without punctuation",
		},
		{
			name: "start of text",
			text: "I always use tabs. Second sentence here.",
			idx:  0,
			want: "I always use tabs.",
		},
		{
			name: "end of text without terminator",
			text: "Intro! The tail has no period",
			idx:  10,
			want: "The tail has no period",
		},
		{
			name: "newline bounded",
			text: "line one\nI like soup a lot\nline three",
			idx:  12,
			want: "I like soup a lot",
		},
		{
			name: "exclamation and question terminators",
			text: "Wow! Is that true? Yes it is.",
			idx:  8,
			want: "Is that true?",
		},
		{
			name: "empty text",
			text: "",
			idx:  0,
			want: "",
		},
		{
			name: "negative index clamps to start",
			text: "Only sentence here.",
			idx:  -5,
			want: "Only sentence here.",
		},
		{
			name: "out of range index clamps to end",
			text: "First. Second sentence.",
			idx:  999,
			want: "Second sentence.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sentenceAt(tt.text, tt.idx)
			if got != tt.want {
				t.Errorf("sentenceAt(%q, %d) = %q, want %q", tt.text, tt.idx, got, tt.want)
			}
		})
	}
}
