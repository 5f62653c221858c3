// Package classifier assigns report categories and severities from free
// text. It never fails: anything it cannot resolve becomes the General
// Issues category or Medium severity.
package classifier

import (
	"strings"

	"github.com/chinmayjoshi03/CivicConnect/models"
)

// categoryKeywords drives description-based classification. Entries are
// checked top to bottom in the category enumeration order and the first
// matching keyword wins, so text matching several categories resolves to the
// earliest one in this table, not the most specific. Keep the order in sync
// with models.Categories.
var categoryKeywords = []struct {
	category models.ReportCategory
	keywords []string
}{
	{models.WaterSupply, []string{"water", "pipeline", "leakage", "leak", "supply", "tap", "borewell", "tanker"}},
	{models.RoadsInfra, []string{"road", "pothole", "bridge", "footpath", "pavement", "divider", "speed breaker"}},
	{models.WasteSanitation, []string{"garbage", "trash", "waste", "dump", "litter", "debris", "sanitation"}},
	{models.ElectricityPower, []string{"electricity", "power", "transformer", "wire", "voltage", "outage"}},
	{models.StreetLighting, []string{"streetlight", "street light", "street lamp", "lamp post"}},
	{models.PublicSafety, []string{"fire", "accident", "hazard", "unsafe", "danger", "stray"}},
	{models.DrainageSewerage, []string{"drain", "sewer", "manhole", "gutter", "flood"}},
	{models.ParksPublicSpaces, []string{"park", "playground", "garden", "tree", "bench", "encroachment"}},
}

// labelHints resolves external category labels that are not exact enum
// values. Applied in order after the exact match pass; first hit wins.
var labelHints = []struct {
	category models.ReportCategory
	hints    []string
}{
	{models.WaterSupply, []string{"water"}},
	{models.RoadsInfra, []string{"road", "infra", "pothole"}},
	{models.WasteSanitation, []string{"waste", "garbage", "sanit"}},
	{models.ElectricityPower, []string{"electric", "power"}},
	{models.StreetLighting, []string{"light"}},
	{models.PublicSafety, []string{"safety", "hazard"}},
	{models.DrainageSewerage, []string{"drain", "sewer"}},
	{models.ParksPublicSpaces, []string{"park", "garden"}},
}

// CategorizeDescription maps free-form issue text to a category via
// case-insensitive substring matching against the keyword table. Text
// matching nothing falls back to General Issues.
func CategorizeDescription(description string) models.ReportCategory {
	text := strings.ToLower(description)
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				return entry.category
			}
		}
	}
	return models.GeneralIssues
}

// ReconcileLabel maps a category label proposed by an external service onto
// the enum. An exact case-insensitive enum match wins; otherwise the
// substring hints are applied in table order; anything still unresolved
// becomes General Issues. The label is untrusted free text and this function
// never rejects it.
func ReconcileLabel(label string) models.ReportCategory {
	normalized := strings.ToLower(strings.TrimSpace(label))
	if normalized == "" {
		return models.GeneralIssues
	}

	for _, c := range models.Categories() {
		if normalized == strings.ToLower(string(c)) {
			return c
		}
	}

	for _, entry := range labelHints {
		for _, hint := range entry.hints {
			if strings.Contains(normalized, hint) {
				return entry.category
			}
		}
	}

	return models.GeneralIssues
}

// NormalizeSeverity validates a severity label. Only the exact,
// case-sensitive values Low, Medium and High pass through; everything else,
// including empty input, becomes Medium.
func NormalizeSeverity(s string) models.Severity {
	switch models.Severity(s) {
	case models.Low, models.Medium, models.High:
		return models.Severity(s)
	default:
		return models.Medium
	}
}
