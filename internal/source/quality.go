package source

import "strings"

// Quality is the resolution class of a release
type Quality string

const (
	Quality720  Quality = "720p"
	Quality1080 Quality = "1080p"
	Quality4K   Quality = "4K"
	QualitySD   Quality = "SD"
)

// Resolutions lists every quality class, highest first. The order is
// significant: AcceptedResolutions slices it to build the accepted window.
var Resolutions = []Quality{Quality4K, Quality1080, Quality720, QualitySD}

// Token lists per resolution. The "o"-for-zero spellings exist because
// uploaders obfuscate digits to evade tracker-side filters.
var (
	tokens720  = []string{"720", "72o"}
	tokens1080 = []string{"1080", "1o80", "108o", "1o8o"}
	tokens2160 = []string{"2160", "216o"}
)

// GetQuality identifies the resolution of a source from its release
// title. Checks run in fixed precedence order (720p, 1080p, 2160/4K
// token forms, then a "4k" adjacency check) and the first hit wins;
// titles matching nothing classify as SD.
func GetQuality(releaseTitle string) Quality {
	title := strings.ToLower(releaseTitle)

	if containsAny(title, tokens720) {
		return Quality720
	}
	if containsAny(title, tokens1080) {
		return Quality1080
	}
	if containsAny(title, tokens2160) {
		return Quality4K
	}

	// "4k" counts only when it ends the title or the next character is
	// non-alphanumeric, so tokens like "4kids" don't classify as 4K.
	if idx := strings.Index(title, "4k"); idx >= 0 {
		rest := title[idx+2:]
		if rest == "" || !isAlphanumeric(rest[0]) {
			return Quality4K
		}
	}

	return QualitySD
}

// AcceptedResolutions returns the window of quality classes between max
// and min inclusive. Unknown bounds fall back to the widest window.
func AcceptedResolutions(maxRes, minRes Quality) map[Quality]bool {
	maxIdx := resolutionIndex(maxRes)
	minIdx := resolutionIndex(minRes)
	if maxIdx < 0 {
		maxIdx = 0
	}
	if minIdx < 0 || minIdx < maxIdx {
		minIdx = len(Resolutions) - 1
	}

	accepted := make(map[Quality]bool, minIdx-maxIdx+1)
	for _, q := range Resolutions[maxIdx : minIdx+1] {
		accepted[q] = true
	}
	return accepted
}

// resolutionIndex returns the position of q in Resolutions, or -1
func resolutionIndex(q Quality) int {
	for i, r := range Resolutions {
		if r == q {
			return i
		}
	}
	return -1
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func isAlphanumeric(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}
