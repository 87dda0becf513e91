package ui

import "github.com/charmbracelet/lipgloss"

// FormatBanner renders the sourcesift name with RAMA theme
func FormatBanner() string {
	bannerStyle := lipgloss.NewStyle().
		Foreground(RAMARed).
		Bold(true)

	return bannerStyle.Render("sourcesift")
}

// FormatBannerWithSubtext renders the banner with a muted subtitle
func FormatBannerWithSubtext(subtext string) string {
	banner := FormatBanner()

	subtitle := lipgloss.NewStyle().
		Foreground(RAMAMuted).
		Render(subtext)

	return banner + " " + subtitle
}
