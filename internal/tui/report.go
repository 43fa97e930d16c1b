package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/arnaudbellemare/sunexposure/internal/services/synthesis"
	"github.com/arnaudbellemare/sunexposure/internal/util"
)

// Sentinels for the positive-infinity outputs. Infinity is the contract
// for unreachable conditions (spec'd at UV index 0); it must never leak
// to the user as a bare "inf".
const (
	sentinelNotAchievable = "not achievable under current conditions"
	sentinelNoBurnRisk    = "no burn risk at current UV"
)

// FormatMinutes renders a minute quantity at 1 decimal place, or the
// sentinel when the value is positive infinity.
func FormatMinutes(minutes float64, sentinel string) string {
	if math.IsInf(minutes, 1) {
		return sentinel
	}
	return fmt.Sprintf("%.1f minutes", minutes)
}

// FormatRate renders the synthesis rate at 2 decimal places.
func FormatRate(rate float64) string {
	return fmt.Sprintf("%.2f IU/hour", rate)
}

// RenderPlain renders the full report as unstyled text. This is the
// one-shot CLI output and the basis of the styled calculator panel.
func RenderPlain(r *synthesis.Report, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Current time: %s\n", util.FormatDateTime(now))
	fmt.Fprintf(&b, "%s\n\n", r.QualityNote)

	fmt.Fprintf(&b, "Vitamin D rate:            %s\n", FormatRate(r.RateIUPerHour))
	fmt.Fprintf(&b, "Time to %.0f IU:          %s\n", r.TargetDoseIU, FormatMinutes(r.TimeToTargetMinutes, sentinelNotAchievable))
	fmt.Fprintf(&b, "Technical burn time (1 MED): %s\n", FormatMinutes(r.BurnTimeMinutes, sentinelNoBurnRisk))
	fmt.Fprintf(&b, "Safety warning threshold:  %s\n\n", FormatMinutes(r.SafetyWarningMinutes, sentinelNoBurnRisk))

	b.WriteString(r.Supplement.Note)
	b.WriteString("\n\n")

	b.WriteString("Formula breakdown:\n")
	b.WriteString(renderBreakdownLines(r, "  "))

	return b.String()
}

// renderBreakdownLines lists every intermediate factor of the pipeline.
func renderBreakdownLines(r *synthesis.Report, indent string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%sBase Rate:         %.0f IU/hour\n", indent, r.BaseRateIU)
	fmt.Fprintf(&b, "%sUV Factor:         %.2f = (%.1f × 3) / (4 + %.1f)\n", indent, r.UVFactor, r.UVIndex, r.UVIndex)
	fmt.Fprintf(&b, "%sClothing Factor:   %.2f (%s)\n", indent, r.ClothingFactor, r.Clothing)
	fmt.Fprintf(&b, "%sSkin Type Factor:  %.2f\n", indent, r.SkinTypeFactor)
	fmt.Fprintf(&b, "%sAge Factor:        %.2f\n", indent, r.AgeFactor)
	fmt.Fprintf(&b, "%sQuality Factor:    %.2f\n", indent, r.QualityFactor)
	fmt.Fprintf(&b, "%sAdaptation Factor: %.2f\n", indent, r.Adaptation)
	fmt.Fprintf(&b, "%sBMI:               %.1f\n", indent, r.BMI)

	return b.String()
}

// renderReportPanel renders the styled results for the calculator view.
func (a *App) renderReportPanel(r *synthesis.Report, now time.Time) string {
	var b strings.Builder

	b.WriteString(a.theme.Label.Render("Current time: "))
	b.WriteString(a.theme.Value.Render(util.FormatDateTime(now)))
	b.WriteString("\n")
	b.WriteString(a.theme.Muted.Render(r.QualityNote))
	b.WriteString("\n\n")

	b.WriteString(a.theme.Subtitle.Render("SYNTHESIS"))
	b.WriteString("\n")
	b.WriteString("  " + a.theme.Label.Render("Vitamin D rate:       "))
	b.WriteString(a.theme.Accent.Render(FormatRate(r.RateIUPerHour)))
	b.WriteString("\n")

	target := FormatMinutes(r.TimeToTargetMinutes, sentinelNotAchievable)
	b.WriteString("  " + a.theme.Label.Render(fmt.Sprintf("Time to %.0f IU:     ", r.TargetDoseIU)))
	if r.TargetAchievable() {
		b.WriteString(a.theme.Value.Render(target))
	} else {
		b.WriteString(a.theme.Muted.Render(target))
	}
	b.WriteString("\n\n")

	b.WriteString(a.theme.Subtitle.Render("BURN RISK"))
	b.WriteString("\n")
	burn := FormatMinutes(r.BurnTimeMinutes, sentinelNoBurnRisk)
	warn := FormatMinutes(r.SafetyWarningMinutes, sentinelNoBurnRisk)
	b.WriteString("  " + a.theme.Label.Render("Technical burn time:  "))
	if r.BurnRisk() {
		b.WriteString(a.theme.Warning.Render(burn))
	} else {
		b.WriteString(a.theme.Muted.Render(burn))
	}
	b.WriteString("\n")
	b.WriteString("  " + a.theme.Label.Render("Safety threshold:     "))
	if r.BurnRisk() {
		b.WriteString(a.theme.Error.Render(warn))
	} else {
		b.WriteString(a.theme.Muted.Render(warn))
	}
	b.WriteString("\n\n")

	if r.Supplement.InWinterWindow {
		b.WriteString(a.theme.Warning.Render(wrapText(r.Supplement.Note, 76)))
	} else {
		b.WriteString(a.theme.Muted.Render(wrapText(r.Supplement.Note, 76)))
	}
	b.WriteString("\n\n")

	b.WriteString(a.theme.Subtitle.Render("FORMULA BREAKDOWN"))
	b.WriteString("\n")
	b.WriteString(a.theme.Secondary.Render(renderBreakdownLines(r, "  ")))

	return b.String()
}

// wrapText folds text at word boundaries to the given width.
func wrapText(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		if lineLen > 0 && lineLen+1+len(word) > width {
			b.WriteString("\n")
			lineLen = 0
		} else if i > 0 {
			b.WriteString(" ")
			lineLen++
		}
		b.WriteString(word)
		lineLen += len(word)
	}

	return b.String()
}
