package moderation

import "github.com/abadojack/whatlanggo"

// minReliableRunes below which detection is mostly noise.
const minReliableRunes = 12

// DetectLanguage returns the ISO 639-1 code of the content, or "" when unsure.
func DetectLanguage(content string) string {
	if len([]rune(content)) < minReliableRunes {
		return ""
	}
	info := whatlanggo.Detect(content)
	if !info.IsReliable() {
		return ""
	}
	return info.Lang.Iso6391()
}
