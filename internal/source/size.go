package source

import (
	"strconv"
	"strings"
)

// ParseSize converts a human-formatted size string ("1.5GB", "700 MB",
// "345MiB") to megabytes. Sizes come from scraped listings, so an
// unrecognized unit returns ok=false rather than an error; callers use
// this best-effort value only for filtering and sorting.
func ParseSize(size string) (mb int, ok bool) {
	switch {
	case strings.Contains(size, "GiB"):
		return scaleFloat(strings.Replace(size, "GiB", "", 1), 1024)
	case strings.Contains(size, "MiB"):
		return wholeMegabytes(strings.Replace(size, "MiB", "", 1))
	case strings.Contains(size, "KiB"):
		return scaleFloat(strings.Replace(size, "KiB", "", 1), 0.001024)
	case strings.Contains(size, "GB"):
		return scaleFloat(strings.Replace(size, "GB", "", 1), 1024)
	case strings.Contains(size, "MB"):
		return wholeMegabytes(strings.Replace(size, "MB", "", 1))
	case strings.Contains(size, "KB"):
		return scaleFloat(strings.Replace(size, "KB", "", 1), 0.001)
	}
	return 0, false
}

// scaleFloat parses a float quantity and scales it to megabytes
func scaleFloat(s string, factor float64) (int, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return int(v * factor), true
}

// wholeMegabytes parses a megabyte quantity, discarding any fraction
func wholeMegabytes(s string) (int, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
