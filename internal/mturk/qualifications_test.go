package mturk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildQualifications_AllPresent(t *testing.T) {
	quals := buildQualifications(95, 100, 840)

	assert.Len(t, quals, 3)
	assert.Equal(t, qualApprovalPercent, quals[0].QualificationTypeId)
	assert.Equal(t, "GreaterThanOrEqualTo", quals[0].Comparator)
	assert.Equal(t, 95, quals[0].IntegerValue)
	assert.Equal(t, qualApprovedCount, quals[1].QualificationTypeId)
	assert.Equal(t, "GreaterThanOrEqualTo", quals[1].Comparator)
	assert.Equal(t, 100, quals[1].IntegerValue)
	assert.Equal(t, qualLocale, quals[2].QualificationTypeId)
	assert.Equal(t, "EqualTo", quals[2].Comparator)
	assert.Equal(t, 840, quals[2].IntegerValue)
}

func TestBuildQualifications_Combinations(t *testing.T) {
	tests := []struct {
		name                    string
		percent, count, country int
		wantTypes               []string
	}{
		{"none", 0, 0, 0, nil},
		{"percent only", 90, 0, 0, []string{qualApprovalPercent}},
		{"count only", 0, 50, 0, []string{qualApprovedCount}},
		{"country only", 0, 0, 840, []string{qualLocale}},
		{"percent and country", 90, 0, 840, []string{qualApprovalPercent, qualLocale}},
		{"count and country", 0, 50, 840, []string{qualApprovedCount, qualLocale}},
		{"percent and count", 90, 50, 0, []string{qualApprovalPercent, qualApprovedCount}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quals := buildQualifications(tt.percent, tt.count, tt.country)
			var types []string
			for _, q := range quals {
				types = append(types, q.QualificationTypeId)
			}
			assert.Equal(t, tt.wantTypes, types)
		})
	}
}

// A zero threshold means "no filter at all"; callers cannot express
// "minimum approved count of at least 0".
func TestBuildQualifications_ZeroCountMeansAbsent(t *testing.T) {
	quals := buildQualifications(95, 0, 0)

	assert.Len(t, quals, 1)
	for _, q := range quals {
		assert.NotEqual(t, qualApprovedCount, q.QualificationTypeId)
	}
}
