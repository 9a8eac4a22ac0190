package extract

import "strings"

// sentenceTerminators are the characters that end a sentence for the
// purposes of this pipeline. Newlines count so that list items and
// shell-style messages are split sensibly.
const sentenceTerminators = ".!?\n"

// sentenceAt returns the trimmed sentence of text that encloses the byte
// offset idx. It scans backward from idx for the nearest terminator
// (exclusive) and forward for the nearest terminator (inclusive), falling
// back to the text boundaries when none is found. It is total: any input,
// including out-of-range offsets, yields a non-nil string.
func sentenceAt(text string, idx int) string {
	if text == "" {
		return ""
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(text) {
		idx = len(text) - 1
	}

	start := 0
	for i := idx - 1; i >= 0; i-- {
		if strings.IndexByte(sentenceTerminators, text[i]) >= 0 {
			start = i + 1
			break
		}
	}

	end := len(text)
	for i := idx; i < len(text); i++ {
		if strings.IndexByte(sentenceTerminators, text[i]) >= 0 {
			end = i + 1
			break
		}
	}

	return strings.TrimSpace(text[start:end])
}
