package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/unitix/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func (m model) renderResult() string {
	text := clampString(m.resultText(), max(8, m.pickerW-4))
	if m.convErr != nil || m.conv.Outcome.Status == domain.OutcomeInvalid {
		return m.theme.Invalid.Render(text)
	}
	return m.theme.Result.Render(text)
}

func (m model) renderFormula() string {
	f := m.formulaText()
	if f == "" {
		return ""
	}
	return m.theme.Formula.Render(m.theme.Label.Render("Formula:") + " " + f)
}
