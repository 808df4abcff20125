package mturk

// Well-known system qualification type IDs.
const (
	qualApprovalPercent = "000000000000000000L0"
	qualApprovedCount   = "00000000000000000040"
	qualLocale          = "00000000000000000071"
)

type QualificationRequirement struct {
	QualificationTypeId string `json:"QualificationTypeId"`
	Comparator          string `json:"Comparator"`
	IntegerValue        int    `json:"IntegerValue"`
}

// buildQualifications assembles the filter list in fixed order: approval
// percentage, approved count, country. A zero threshold means the filter is
// absent entirely; callers cannot express "at least 0". That quirk is
// inherited from the original tool and kept on purpose.
func buildQualifications(minApprovedPercent, minApprovedCount, countryCode int) []QualificationRequirement {
	var quals []QualificationRequirement

	if minApprovedPercent != 0 {
		quals = append(quals, QualificationRequirement{
			QualificationTypeId: qualApprovalPercent,
			Comparator:          "GreaterThanOrEqualTo",
			IntegerValue:        minApprovedPercent,
		})
	}

	if minApprovedCount != 0 {
		quals = append(quals, QualificationRequirement{
			QualificationTypeId: qualApprovedCount,
			Comparator:          "GreaterThanOrEqualTo",
			IntegerValue:        minApprovedCount,
		})
	}

	if countryCode != 0 {
		quals = append(quals, QualificationRequirement{
			QualificationTypeId: qualLocale,
			Comparator:          "EqualTo",
			IntegerValue:        countryCode,
		})
	}

	return quals
}
