package models

// Rejection reason codes accepted when declining a booking.
const (
	ReasonVaccinationMissing    = "vaccination-missing"
	ReasonIncompleteInformation = "incomplete-information"
	ReasonCapacityFull          = "capacity-full"
	ReasonUnsuitablePet         = "unsuitable-pet"
	ReasonBehaviorConcerns      = "behavior-concerns"
	ReasonHealthIssues          = "health-issues"
	ReasonOwnerCompliance       = "owner-compliance"
	ReasonPaymentIssues         = "payment-issues"
	ReasonScheduleConflict      = "schedule-conflict"
	ReasonPolicyViolation       = "policy-violation"
	ReasonOther                 = "other"
)

var rejectionReasons = map[string]string{
	ReasonVaccinationMissing:    "Missing or Invalid Vaccination Record",
	ReasonIncompleteInformation: "Incomplete Booking Information",
	ReasonCapacityFull:          "Facility at Full Capacity",
	ReasonUnsuitablePet:         "Pet Not Suitable for Our Services",
	ReasonBehaviorConcerns:      "Pet Behavior Concerns",
	ReasonHealthIssues:          "Pet Health Issues",
	ReasonOwnerCompliance:       "Owner Policy Compliance Issues",
	ReasonPaymentIssues:         "Payment or Deposit Issues",
	ReasonScheduleConflict:      "Schedule Conflict",
	ReasonPolicyViolation:       "Policy Violation",
	ReasonOther:                 "Other",
}

// RejectionReasonText resolves a reason code to its display text.
// The second return is false for unknown codes.
func RejectionReasonText(code string) (string, bool) {
	text, ok := rejectionReasons[code]
	return text, ok
}

// RejectionNote formats the note recorded on a rejected booking:
// the reason text, with any free-text detail appended.
func RejectionNote(reasonText, detail string) string {
	if detail == "" {
		return reasonText
	}
	return reasonText + " - " + detail
}
