package generator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// FillerSentence is appended three times to sections that come out too short.
	FillerSentence = " 이에 대해 더 깊이 있게 살펴보면, 다양한 관점에서 접근할 수 있다. "
	fillerRepeat   = 3

	shortRatio    = 0.7
	refillLimit   = 1.3
	longRatio     = 1.5
	truncateRatio = 1.2
)

// PostProcess applies keyword insertion, exclusion removal and length
// shaping to raw model output, in that order.
func PostProcess(raw string, keywords, excluded []string, target int) string {
	content := EnsureKeywords(raw, keywords)
	content = RemoveExcluded(content, excluded)
	return AdjustLength(content, target)
}

// EnsureKeywords appends one sentence naming every keyword that does not
// already occur in content.
func EnsureKeywords(content string, keywords []string) string {
	var missing []string
	for _, kw := range keywords {
		if !strings.Contains(content, kw) {
			missing = append(missing, kw)
		}
	}
	if len(missing) == 0 {
		return content
	}
	return content + fmt.Sprintf(" 또한, %s에 대해서도 고려할 필요가 있다.", strings.Join(missing, ", "))
}

// RemoveExcluded deletes every literal occurrence of each phrase. It is not
// word-boundary aware.
func RemoveExcluded(content string, excluded []string) string {
	for _, phrase := range excluded {
		if phrase == "" {
			continue
		}
		content = strings.ReplaceAll(content, phrase, "")
	}
	return content
}

// AdjustLength pads short content with filler and cuts long content to 1.2x
// the target. Cuts are plain rune slices and may split a sentence.
func AdjustLength(content string, target int) string {
	n := utf8.RuneCountInString(content)
	t := float64(target)
	limit := int(t * truncateRatio)
	switch {
	case float64(n) < t*shortRatio:
		content += strings.Repeat(FillerSentence, fillerRepeat)
		if float64(utf8.RuneCountInString(content)) > t*refillLimit {
			content = truncateRunes(content, limit)
		}
	case float64(n) > t*longRatio:
		content = truncateRunes(content, limit)
	}
	return content
}

// truncateRunes returns the first n runes of s.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
