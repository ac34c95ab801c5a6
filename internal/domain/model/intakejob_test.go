package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateIntakeTransition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current IntakeStatus
		next    IntakeStatus
		wantErr string
	}{
		{"in progress to completed", IntakeStatusInProgress, IntakeStatusCompleted, ""},
		{"in progress to cancelled", IntakeStatusInProgress, IntakeStatusCancelled, ""},
		{"self transition is a no-op", IntakeStatusCompleted, IntakeStatusCompleted, ""},
		{"cancelled self transition", IntakeStatusCancelled, IntakeStatusCancelled, ""},
		{"completed to cancelled", IntakeStatusCompleted, IntakeStatusCancelled, "status is final"},
		{"cancelled to completed", IntakeStatusCancelled, IntakeStatusCompleted, "status is final"},
		{"cancelled back to in progress", IntakeStatusCancelled, IntakeStatusInProgress, "status is final"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateIntakeTransition(tt.current, tt.next)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestPreferencesSanitize(t *testing.T) {
	t.Parallel()

	t.Run("known values kept", func(t *testing.T) {
		t.Parallel()
		p := Preferences{DetailLevel: "Brief", Language: "Spanish", Tone: "Balanced"}
		p.Sanitize()
		assert.Equal(t, Preferences{DetailLevel: "Brief", Language: "Spanish", Tone: "Balanced"}, p)
	})

	t.Run("unknown values fall back silently", func(t *testing.T) {
		t.Parallel()
		p := Preferences{DetailLevel: "verbose", Language: "Klingon", Tone: "sarcastic"}
		p.Sanitize()
		assert.Equal(t, Preferences{DetailLevel: DefaultDetailLevel, Language: DefaultLanguage, Tone: DefaultTone}, p)
	})

	t.Run("empty values default", func(t *testing.T) {
		t.Parallel()
		var p Preferences
		p.Sanitize()
		assert.Equal(t, Preferences{DetailLevel: "Detailed", Language: "English", Tone: "More Technical"}, p)
	})
}

func TestCreateIntakeRequestValidate(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	valid := func() CreateIntakeRequest {
		return CreateIntakeRequest{
			Customer:   CustomerInput{FullName: "Maria Santos", Phone: "0917 123 4567"},
			Vehicle:    VehicleInput{VIN: "1hgcm82633a004352", Year: "2019"},
			Diagnostic: DiagnosticInput{Symptoms: "Engine rattling"},
		}
	}

	t.Run("valid payload", func(t *testing.T) {
		t.Parallel()
		r := valid()
		r.Sanitize()
		assert.Empty(t, r.Validate(now))
		assert.Equal(t, "09171234567", r.Customer.Phone)
		assert.Equal(t, "1HGCM82633A004352", r.Vehicle.VIN)
	})

	t.Run("symptoms too short", func(t *testing.T) {
		t.Parallel()
		r := valid()
		r.Diagnostic.Symptoms = "short"
		r.Sanitize()
		details := r.Validate(now)
		require.Len(t, details, 1)
		assert.Contains(t, details[0], "at least 6 characters")
	})

	t.Run("missing phone", func(t *testing.T) {
		t.Parallel()
		r := valid()
		r.Customer.Phone = ""
		r.Sanitize()
		assert.Contains(t, r.Validate(now), "customer.phone is required.")
	})

	t.Run("unsafe media URL fails whole payload", func(t *testing.T) {
		t.Parallel()
		r := valid()
		r.Diagnostic.Media = []string{"/uploads/ok.jpg", "javascript:alert(1)"}
		r.Sanitize()
		assert.Contains(t, r.Validate(now), "diagnostic.media contains an invalid URL.")
	})

	t.Run("media list capped", func(t *testing.T) {
		t.Parallel()
		r := valid()
		for i := 0; i < 40; i++ {
			r.Diagnostic.Media = append(r.Diagnostic.Media, "/uploads/x.jpg")
		}
		r.Sanitize()
		assert.Len(t, r.Diagnostic.Media, MaxMediaURLs)
	})

	t.Run("problems accumulate across blocks", func(t *testing.T) {
		t.Parallel()
		r := CreateIntakeRequest{
			Customer:   CustomerInput{Phone: "123", Email: "bad"},
			Vehicle:    VehicleInput{VIN: "SHORT", Year: "1800"},
			Diagnostic: DiagnosticInput{},
		}
		r.Sanitize()
		details := r.Validate(now)
		assert.GreaterOrEqual(t, len(details), 4)
	})
}

func TestPatchIntakeRequestSanitizedMedia(t *testing.T) {
	t.Parallel()

	t.Run("nil means untouched", func(t *testing.T) {
		t.Parallel()
		r := PatchIntakeRequest{}
		list, err := r.SanitizedMedia()
		require.NoError(t, err)
		assert.Nil(t, list)
	})

	t.Run("invalid url rejects whole list", func(t *testing.T) {
		t.Parallel()
		media := []string{"/uploads/a.jpg", "../etc/passwd"}
		r := PatchIntakeRequest{Media: &media}
		_, err := r.SanitizedMedia()
		assert.Error(t, err)
	})

	t.Run("empties dropped and list truncated", func(t *testing.T) {
		t.Parallel()
		media := []string{"", "  "}
		for i := 0; i < 30; i++ {
			media = append(media, "https://cdn.example.com/clip.mp4")
		}
		r := PatchIntakeRequest{Media: &media}
		list, err := r.SanitizedMedia()
		require.NoError(t, err)
		assert.Len(t, list, MaxMediaURLs)
	})
}

func TestPatchDiagnosisApply(t *testing.T) {
	t.Parallel()

	base := DiagnosisResult{
		MostLikelyIssue: "Worn belt",
		ConfidenceLevel: 70,
		PartsNeeded:     []PartNeeded{{PartName: "Belt", OEMOrAftermarket: PartSourcingOEM, Urgency: PartUrgencyRequired}},
	}

	notes := "  replace tensioner too  "
	conf := 260.0
	patch := PatchDiagnosisRequest{
		AdditionalMechanicNotes: &notes,
		ConfidenceLevel:         &conf,
	}

	got := patch.Apply(base)
	assert.Equal(t, "replace tensioner too", got.AdditionalMechanicNotes)
	assert.Equal(t, 100.0, got.ConfidenceLevel, "clamped")
	assert.Equal(t, "Worn belt", got.MostLikelyIssue, "untouched fields survive")
	require.Len(t, got.PartsNeeded, 1)
}

func TestPatchDiagnosisCausesNotEditable(t *testing.T) {
	t.Parallel()

	base := DiagnosisResult{
		MostLikelyIssue: "Worn belt",
		ProbableCauses:  []ProbableCause{{Title: "Belt wear", Likelihood: LikelihoodHigh}},
	}

	// the patch surface carries no causes field, so a full patch of every
	// editable field leaves the generated causes intact
	issue := "Tensioner failure"
	patch := PatchDiagnosisRequest{MostLikelyIssue: &issue}
	got := patch.Apply(base)
	assert.Equal(t, "Tensioner failure", got.MostLikelyIssue)
	require.Len(t, got.ProbableCauses, 1)
	assert.Equal(t, "Belt wear", got.ProbableCauses[0].Title)
}
