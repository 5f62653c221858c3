package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chinmayjoshi03/CivicConnect/models"
)

func TestCategorizeDescription(t *testing.T) {
	t.Run("unmatched text defaults to General Issues", func(t *testing.T) {
		assert.Equal(t, models.GeneralIssues, CategorizeDescription("xyz"))
		assert.Equal(t, models.GeneralIssues, CategorizeDescription(""))
	})

	t.Run("matching is case insensitive", func(t *testing.T) {
		assert.Equal(t, models.RoadsInfra, CategorizeDescription("Huge POTHOLE near the school"))
		assert.Equal(t, models.WaterSupply, CategorizeDescription("WATER pipeline burst"))
	})

	t.Run("first declared category wins over later ones", func(t *testing.T) {
		// Roads & Infrastructure is declared before Public Safety & Hazards,
		// so a description matching both resolves to roads regardless of
		// which word is "more specific".
		assert.Equal(t, models.RoadsInfra, CategorizeDescription("pothole caused a fire"))
		assert.Equal(t, models.RoadsInfra, CategorizeDescription("fire hydrant next to a pothole"))

		// Water & Supply Management precedes Roads & Infrastructure.
		assert.Equal(t, models.WaterSupply, CategorizeDescription("pothole flooded by a broken water main"))
	})

	t.Run("each category is reachable", func(t *testing.T) {
		cases := map[string]models.ReportCategory{
			"tap running dry since monday":   models.WaterSupply,
			"footpath tiles broken":          models.RoadsInfra,
			"garbage piling up":              models.WasteSanitation,
			"transformer sparking at night":  models.ElectricityPower,
			"streetlight not working":        models.StreetLighting,
			"stray dogs chasing children":    models.PublicSafety,
			"manhole cover missing":          models.DrainageSewerage,
			"playground swing broken":        models.ParksPublicSpaces,
			"something unclassifiable here!": models.GeneralIssues,
		}
		for desc, want := range cases {
			assert.Equal(t, want, CategorizeDescription(desc), "description: %s", desc)
		}
	})
}

func TestReconcileLabel(t *testing.T) {
	t.Run("exact enum match wins, case insensitive", func(t *testing.T) {
		assert.Equal(t, models.RoadsInfra, ReconcileLabel("Roads & Infrastructure"))
		assert.Equal(t, models.RoadsInfra, ReconcileLabel("roads & infrastructure"))
		assert.Equal(t, models.GeneralIssues, ReconcileLabel("GENERAL ISSUES"))
	})

	t.Run("substring hints resolve loose labels", func(t *testing.T) {
		assert.Equal(t, models.WaterSupply, ReconcileLabel("water logging on street"))
		assert.Equal(t, models.StreetLighting, ReconcileLabel("broken lighting"))
		assert.Equal(t, models.WasteSanitation, ReconcileLabel("Garbage Dump"))
		assert.Equal(t, models.DrainageSewerage, ReconcileLabel("open sewer line"))
	})

	t.Run("unresolved labels default to General Issues", func(t *testing.T) {
		assert.Equal(t, models.GeneralIssues, ReconcileLabel("graffiti"))
		assert.Equal(t, models.GeneralIssues, ReconcileLabel(""))
		assert.Equal(t, models.GeneralIssues, ReconcileLabel("   "))
	})

	t.Run("hints apply in declaration order", func(t *testing.T) {
		// "water" is hinted before "drain", so a label carrying both words
		// reconciles to Water & Supply Management.
		assert.Equal(t, models.WaterSupply, ReconcileLabel("drain water overflow"))
	})
}

func TestNormalizeSeverity(t *testing.T) {
	t.Run("exact values pass through", func(t *testing.T) {
		assert.Equal(t, models.Low, NormalizeSeverity("Low"))
		assert.Equal(t, models.Medium, NormalizeSeverity("Medium"))
		assert.Equal(t, models.High, NormalizeSeverity("High"))
	})

	t.Run("anything else becomes Medium", func(t *testing.T) {
		for _, in := range []string{"", "urgent", "high", "LOW", "medium ", "Critical"} {
			assert.Equal(t, models.Medium, NormalizeSeverity(in), "input: %q", in)
		}
	})
}
