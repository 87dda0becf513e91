package source

import (
	"sort"
	"strings"
)

// InfoSet is a set of codec/source tags extracted from a release title
type InfoSet map[string]struct{}

// Has reports whether the tag is present
func (s InfoSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// HasAll reports whether every given tag is present
func (s InfoSet) HasAll(tags ...string) bool {
	for _, tag := range tags {
		if !s.Has(tag) {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one of the given tags is present
func (s InfoSet) HasAny(tags ...string) bool {
	for _, tag := range tags {
		if s.Has(tag) {
			return true
		}
	}
	return false
}

// Add inserts a tag
func (s InfoSet) Add(tag string) { s[tag] = struct{}{} }

// Remove deletes a tag
func (s InfoSet) Remove(tag string) { delete(s, tag) }

// Sorted returns the tags in lexical order
func (s InfoSet) Sorted() []string {
	tags := make([]string, 0, len(s))
	for tag := range s {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// infoCategories groups tags by the property they describe. Read-only.
var infoCategories = map[string][]string{
	"videocodec":    {"AVC", "HEVC", "XVID", "DIVX", "WMV", "MP4", "MPEG", "VP9", "AV1"},
	"hdrcodec":      {"DV", "HDR", "HYBRID", "SDR"},
	"audiocodec":    {"AAC", "DTS", "DTS-HD", "DTS-HDHR", "DTS-HDMA", "DTS-X", "ATMOS", "TRUEHD", "DD+", "DD", "MP3", "WMA", "OPUS"},
	"audiochannels": {"2.0", "5.1", "7.1"},
	"misc":          {"CAM", "HDTV", "PDTV", "REMUX", "HD-RIP", "BLURAY", "DVDRIP", "WEB", "HC", "SCR", "3D"},
}

// infoKeywords maps each tag to the phrases that indicate it in a cleaned
// release title. Phrases with leading/trailing spaces are boundary checks;
// GetInfo appends a trailing space to the title so they also hit at the
// string end. Read-only.
var infoKeywords = map[string][]string{
	"AVC":   {"x264", "x 264", "h264", "h 264", "avc"},
	"HEVC":  {"x265", "x 265", "h265", "h 265", "hevc"},
	"XVID":  {"xvid"},
	"DIVX":  {"divx"},
	"MP4":   {"mp4"},
	"WMV":   {"wmv"},
	"MPEG":  {"mpeg"},
	"VP9":   {"vp9"},
	"AV1":   {"av1"},
	"REMUX": {"remux", "bdremux"},
	"DV":    {" dv ", "dovi", "dolby vision", "dolbyvision"},
	"HDR": {
		" hdr ", "hdr10", "hdr 10", "uhd bluray 2160p", "uhd blu ray 2160p",
		"2160p uhd bluray", "2160p uhd blu ray", "2160p bluray hevc truehd",
		"2160p bluray hevc dts", "2160p bluray hevc lpcm", "2160p us bluray hevc truehd",
		"2160p us bluray hevc dts",
	},
	"SDR":      {" sdr"},
	"AAC":      {"aac"},
	"DTS-HDMA": {"hd ma", "hdma"},
	"DTS-HDHR": {"hd hr", "hdhr", "dts hr", "dtshr"},
	"DTS-X":    {"dtsx", " dts x"},
	"ATMOS":    {"atmos"},
	"TRUEHD":   {"truehd", "true hd"},
	"DD+":      {"ddp", "eac3", " e ac3", " e ac 3", "dd+", "digital plus", "digitalplus"},
	"DD":       {" dd ", "dd2", "dd5", "dd7", " ac3", " ac 3", "dolby digital", "dolbydigital", "dolby5"},
	"MP3":      {"mp3"},
	"WMA":      {" wma"},
	"2.0":      {"2 0 ", "2 0ch", "2ch"},
	"5.1":      {"5 1 ", "5 1ch", "6ch"},
	"7.1":      {"7 1 ", "7 1ch", "8ch"},
	"BLURAY":   {"bluray", "blu ray", "bdrip", "bd rip", "brrip", "br rip", "bdmux"},
	"WEB":      {" web ", "webrip", "webdl", "web rip", "web dl", "webmux", "dlmux"},
	"HD-RIP":   {" hdrip", " hd rip"},
	"DVDRIP":   {"dvdrip", "dvd rip"},
	"HDTV":     {"hdtv"},
	"PDTV":     {"pdtv"},
	"CAM": {
		" cam ", "camrip", "cam rip", "hdcam", "hd cam", " ts ", " ts1", " ts7", "hd ts", "hdts",
		"telesync", " tc ", " tc1", " tc7", "hd tc", "hdtc", "telecine", "xbet", "hcts", "hc ts",
		"hctc", "hc tc", "hqcam", "hq cam",
	},
	"SCR": {"scr ", "screener"},
	"HC": {
		"korsub", " kor ", " hc ", "hcsub", "hcts", "hctc", "hchdrip", "hardsub", "hard sub", "sub hard",
		"hardcode", "hard code", "vostfr", "vo stfr",
	},
	"3D": {" 3d"},
}

// GetInfo extracts the set of codec/source tags encoded in a release
// title. Keyword detection runs over the cleaned title, then a fixed
// sequence of corrections resolves the ambiguities of real-world naming
// (HDR vs SDR vs Dolby Vision, DD vs DD+, the DTS family). The rules are
// empirically tuned and order-sensitive.
func GetInfo(releaseTitle string) InfoSet {
	title := Clean(releaseTitle, ApostropheDefault) + " "

	info := make(InfoSet)
	for tag, words := range infoKeywords {
		if containsAny(title, words) {
			info.Add(tag)
		}
	}

	// SDR stated explicitly beats a keyword-derived HDR hit; otherwise a
	// 2160p remux with no dynamic-range statement is assumed HDR, as is a
	// Dolby Vision release that calls itself a hybrid.
	if info.HasAll("SDR", "HDR") {
		info.Remove("HDR")
	} else if strings.Contains(title, "2160p") && strings.Contains(title, "remux") && !info.HasAny("HDR", "SDR") {
		info.Add("HDR")
	} else if info.Has("DV") && strings.Contains(title, "hybrid") && !info.HasAny("HDR", "SDR") {
		info.Add("HDR")
	}

	// DV alone is not a hybrid release: drop the HDR hit unless the title
	// states either "hybrid" or a standalone hdr token.
	if info.HasAll("HDR", "DV") && !strings.Contains(title, "hybrid") && !strings.Contains(title, " hdr") {
		info.Remove("HDR")
	}

	// DV together with HDR collapses to the HYBRID marker.
	if info.HasAll("HDR", "DV") {
		info.Add("HYBRID")
		info.Remove("HDR")
	}

	// HDR and DV releases are overwhelmingly HEVC-encoded.
	if info.HasAny("HDR", "DV") && !info.HasAny("HEVC", "AVC", "AV1", "VP9") {
		info.Add("HEVC")
	}

	// DD+ subsumes DD; an unqualified dts-hd token becomes the generic
	// DTS-HD tag, and a bare dts with no variant becomes plain DTS.
	if info.HasAll("DD", "DD+") {
		info.Remove("DD")
	} else if (strings.Contains(title, "dtshd") || strings.Contains(title, "dts hd")) && !info.HasAny("DTS-HDMA", "DTS-HDHR") {
		info.Add("DTS-HD")
	} else if strings.Contains(title, " dts") && !info.HasAny("DTS-HDMA", "DTS-HDHR", "DTS-X", "DTS-HD") {
		info.Add("DTS")
	}

	if strings.Contains(title, "sub") && strings.Contains(title, "forced") {
		info.Add("HC")
	}

	if strings.Contains(title, "opus") && info.Has("AV1") {
		info.Add("OPUS")
	}

	return info
}

// InfoByCategory splits an info set into the fixed tag categories, each
// sorted lexically. Tags outside the known categories are dropped.
func InfoByCategory(info InfoSet) map[string][]string {
	out := make(map[string][]string, len(infoCategories))
	for category, tags := range infoCategories {
		var hits []string
		for _, tag := range tags {
			if info.Has(tag) {
				hits = append(hits, tag)
			}
		}
		sort.Strings(hits)
		out[category] = hits
	}
	return out
}
