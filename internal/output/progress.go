package output

import (
	"fmt"
	"strings"
)

// ProgressBar renders a badge or rank progress fraction in [0, 1].
// Example: "███████░░░ 70%"
func ProgressBar(fraction float64, width int) string {
	if width <= 0 {
		width = 10
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * float64(width))
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var styled string
	switch {
	case fraction >= 1:
		styled = StyleSuccess.Render(bar)
	case fraction >= 0.5:
		styled = StyleWarning.Render(bar)
	default:
		styled = StyleMuted.Render(bar)
	}

	return fmt.Sprintf("%s %s", styled, StyleMuted.Render(fmt.Sprintf("%.0f%%", fraction*100)))
}

// TierBadge renders a tier name in its ladder color.
func TierBadge(tier int, name string) string {
	return TierStyle(tier).Render(name)
}

// XPLine renders an XP total with rank placement.
// Example: "12,340 XP · Rank 87 (Silver)"
func XPLine(totalXP int64, rank int, bracket string) string {
	return fmt.Sprintf("%s %s",
		StyleBold.Render(fmt.Sprintf("%s XP", Comma(totalXP))),
		StyleMuted.Render(fmt.Sprintf("· Rank %d (%s)", rank, bracket)))
}

// Comma formats an integer with thousands separators.
func Comma(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
