package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	jsoniter "github.com/json-iterator/go"
	"github.com/lox/blendrand/internal/batch"
	"github.com/muesli/termenv"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func colorCapable() bool {
	return termenv.EnvColorProfile() != termenv.Ascii
}

func renderJSON(w io.Writer, report *batch.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func renderText(w io.Writer, report *batch.Report, styled bool) error {
	r := lipgloss.NewRenderer(w)
	if !styled {
		r.SetColorProfile(termenv.Ascii)
	}
	header := r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	label := r.NewStyle().Foreground(lipgloss.Color("#626262")).Width(20)
	value := r.NewStyle().Foreground(lipgloss.Color("#96CEB4"))

	s := report.Summary
	rows := []struct {
		name string
		val  string
	}{
		{"samples", fmt.Sprintf("%d", s.Count)},
		{"start seed", fmt.Sprintf("%d", report.StartSeed)},
		{"clock (ms)", fmt.Sprintf("%d", report.Clock)},
		{"mean", fmt.Sprintf("%.6f", s.Mean)},
		{"std dev", fmt.Sprintf("%.6f", s.StdDev)},
		{"95% CI", fmt.Sprintf("[%.6f, %.6f]", s.CI95Low, s.CI95High)},
		{"min / median / max", fmt.Sprintf("%.6f / %.6f / %.6f", s.Min, s.Median, s.Max)},
		{"p05 / p95", fmt.Sprintf("%.6f / %.6f", s.P05, s.P95)},
		{"chi-square", fmt.Sprintf("%.4f (%d buckets)", s.ChiSquare, len(s.Buckets))},
		{"lag-1 autocorr", fmt.Sprintf("%.6f", s.Autocorrelation)},
		{"digest", report.Digest},
	}

	var b strings.Builder
	b.WriteString(header.Render("Blended batch"))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(label.Render(row.name))
		b.WriteString(value.Render(row.val))
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
