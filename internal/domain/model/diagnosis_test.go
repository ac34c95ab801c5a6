package model

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDiagnosis(t *testing.T) {
	t.Parallel()

	t.Run("full payload", func(t *testing.T) {
		t.Parallel()

		raw := `{
			"mostLikelyIssue": "  Worn   serpentine belt ",
			"confidenceLevel": 82,
			"probableCauses": [
				{"title": "Belt wear", "likelihood": "high", "explanation": "Cracks visible"},
				{"title": "", "likelihood": "high", "explanation": "dropped, no title"},
				{"title": "Tensioner failure", "likelihood": "bogus", "explanation": ""}
			],
			"partsNeeded": [
				{"partName": "Serpentine belt", "oemOrAftermarket": "OEM", "urgency": "required_before_release", "notes": "6PK1880"},
				{"partName": "", "urgency": "optional"},
				{"partName": "Tensioner", "oemOrAftermarket": "whatever", "urgency": "someday"}
			],
			"estimatedLaborHours": 1.5,
			"additionalMechanicNotes": "model chatter that must be dropped",
			"estimatedPickupDate": "2026-09-01"
		}`

		d, err := ParseDiagnosis(raw)
		require.NoError(t, err)

		assert.Equal(t, "Worn serpentine belt", d.MostLikelyIssue)
		assert.Equal(t, 82.0, d.ConfidenceLevel)
		assert.Equal(t, 1.5, d.EstimatedLaborHours)
		assert.Equal(t, "2026-09-01", d.EstimatedPickupDate)
		assert.Empty(t, d.AdditionalMechanicNotes, "mechanic notes are never taken from generation output")

		require.Len(t, d.ProbableCauses, 2, "empty-title cause dropped")
		assert.Equal(t, LikelihoodHigh, d.ProbableCauses[0].Likelihood)
		assert.Equal(t, LikelihoodMedium, d.ProbableCauses[1].Likelihood, "unknown likelihood defaults to medium")

		require.Len(t, d.PartsNeeded, 2, "empty-name part dropped")
		assert.Equal(t, PartSourcingOEM, d.PartsNeeded[0].OEMOrAftermarket)
		assert.Equal(t, PartUrgencyRequired, d.PartsNeeded[0].Urgency)
		assert.Equal(t, PartSourcingUnspecified, d.PartsNeeded[1].OEMOrAftermarket)
		assert.Equal(t, PartUrgencyOptional, d.PartsNeeded[1].Urgency)
	})

	t.Run("unparseable", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"", "I think it is the alternator.", "[1,2,3"} {
			_, err := ParseDiagnosis(raw)
			assert.ErrorIs(t, err, ErrUnparseableDiagnosis, raw)
		}
	})

	t.Run("missing fields default", func(t *testing.T) {
		t.Parallel()

		d, err := ParseDiagnosis(`{}`)
		require.NoError(t, err)
		assert.Empty(t, d.MostLikelyIssue)
		assert.Zero(t, d.ConfidenceLevel)
		assert.Zero(t, d.EstimatedLaborHours)
		assert.Empty(t, d.ProbableCauses)
		assert.Empty(t, d.PartsNeeded)
		assert.Empty(t, d.EstimatedPickupDate)
	})

	t.Run("wrong field types default", func(t *testing.T) {
		t.Parallel()

		d, err := ParseDiagnosis(`{
			"mostLikelyIssue": 42,
			"confidenceLevel": "eighty",
			"probableCauses": "not a list",
			"partsNeeded": [17, "belt"],
			"estimatedPickupDate": "tomorrow"
		}`)
		require.NoError(t, err)
		assert.Empty(t, d.MostLikelyIssue)
		assert.Zero(t, d.ConfidenceLevel)
		assert.Empty(t, d.ProbableCauses)
		assert.Empty(t, d.PartsNeeded)
		assert.Empty(t, d.EstimatedPickupDate)
	})

	t.Run("clamps and list caps", func(t *testing.T) {
		t.Parallel()

		var causes, parts []string
		for i := 0; i < 20; i++ {
			causes = append(causes, fmt.Sprintf(`{"title":"cause %d"}`, i))
		}
		for i := 0; i < 50; i++ {
			parts = append(parts, fmt.Sprintf(`{"partName":"part %d"}`, i))
		}
		raw := fmt.Sprintf(`{
			"confidenceLevel": 250,
			"estimatedLaborHours": -4,
			"probableCauses": [%s],
			"partsNeeded": [%s]
		}`, strings.Join(causes, ","), strings.Join(parts, ","))

		d, err := ParseDiagnosis(raw)
		require.NoError(t, err)
		assert.Equal(t, 100.0, d.ConfidenceLevel)
		assert.Equal(t, 0.0, d.EstimatedLaborHours)
		assert.Len(t, d.ProbableCauses, MaxProbableCauses)
		assert.Len(t, d.PartsNeeded, MaxPartsNeeded)
	})

	t.Run("cause cap applies before title filter", func(t *testing.T) {
		t.Parallel()

		// 13 causes, one untitled inside the cap. The cap takes the first 12,
		// then the untitled entry drops, so cause 12 never gets promoted in.
		var causes []string
		for i := 0; i < 13; i++ {
			title := fmt.Sprintf("cause %d", i)
			if i == 2 {
				title = ""
			}
			causes = append(causes, fmt.Sprintf(`{"title":%q}`, title))
		}

		d, err := ParseDiagnosis(fmt.Sprintf(`{"probableCauses": [%s]}`, strings.Join(causes, ",")))
		require.NoError(t, err)
		require.Len(t, d.ProbableCauses, MaxProbableCauses-1)
		assert.Equal(t, "cause 11", d.ProbableCauses[len(d.ProbableCauses)-1].Title)
	})
}

func TestDiagnosisSanitizedIdempotent(t *testing.T) {
	t.Parallel()

	dirty := DiagnosisResult{
		MostLikelyIssue:     "  Failing   water pump  ",
		ConfidenceLevel:     180,
		EstimatedLaborHours: -2,
		ProbableCauses: []ProbableCause{
			{Title: " Pump bearing ", Likelihood: "certain", Explanation: "  whine under load "},
			{Title: "", Likelihood: LikelihoodLow},
		},
		PartsNeeded: []PartNeeded{
			{PartName: " Water pump ", OEMOrAftermarket: "oem??", Urgency: "asap", Notes: " includes gasket "},
			{PartName: ""},
		},
		AdditionalMechanicNotes: "  pressure test  first ",
		EstimatedPickupDate:     "next week",
	}

	once := dirty.Sanitized()
	twice := once.Sanitized()
	assert.Equal(t, once, twice, "sanitizing twice must be a fixpoint")

	assert.Equal(t, "Failing water pump", once.MostLikelyIssue)
	assert.Equal(t, 100.0, once.ConfidenceLevel)
	assert.Equal(t, 0.0, once.EstimatedLaborHours)
	assert.Equal(t, "pressure test first", once.AdditionalMechanicNotes, "edits keep mechanic notes")
	assert.Empty(t, once.EstimatedPickupDate)
	require.Len(t, once.ProbableCauses, 1)
	assert.Equal(t, LikelihoodMedium, once.ProbableCauses[0].Likelihood)
	require.Len(t, once.PartsNeeded, 1)
	assert.Equal(t, PartSourcingUnspecified, once.PartsNeeded[0].OEMOrAftermarket)
	assert.Equal(t, PartUrgencyOptional, once.PartsNeeded[0].Urgency)
}

func TestDiagnosisSanitizedCausesCapBeforeFilter(t *testing.T) {
	t.Parallel()

	var d DiagnosisResult
	for i := 0; i < 13; i++ {
		title := fmt.Sprintf("cause %d", i)
		if i == 2 {
			title = ""
		}
		d.ProbableCauses = append(d.ProbableCauses, ProbableCause{Title: title})
	}

	got := d.Sanitized().ProbableCauses
	require.Len(t, got, MaxProbableCauses-1)
	assert.Equal(t, "cause 11", got[len(got)-1].Title)
}
