package workflow

import "github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"

// displayTable maps each derived status to its label and severity. Static
// data, not logic: presentation can change without touching the derivation.
var displayTable = map[domain.DrawingStatus]domain.StatusDisplay{
	domain.StatusNotApplicable:   {Label: "N/A", Severity: domain.SeverityNeutral},
	domain.StatusIssued:          {Label: "Issued", Severity: domain.SeveritySuccess},
	domain.StatusReadyToIssue:    {Label: "Ready to Issue", Severity: domain.SeverityInfo},
	domain.StatusPendingApproval: {Label: "Pending Approval", Severity: domain.SeverityWarning},
	domain.StatusRevisionNeeded:  {Label: "Revision Needed", Severity: domain.SeverityDanger},
	domain.StatusPendingUpload:   {Label: "Pending Upload", Severity: domain.SeverityNeutral},
	domain.StatusInProgress:      {Label: "In Progress", Severity: domain.SeverityInfo},
}

// ResolveStatus derives the single lifecycle status of a drawing.
//
// The lifecycle booleans are not mutually exclusive by construction (a
// backend bug could leave is_approved and under_review both set), so the
// rules below are evaluated in a fixed priority order and the first match
// wins. Reordering any rule changes observable behavior.
func ResolveStatus(d domain.Drawing) domain.DrawingStatus {
	switch {
	case d.IsNotApplicable:
		return domain.StatusNotApplicable
	case d.IsIssued:
		return domain.StatusIssued
	case d.IsApproved:
		return domain.StatusReadyToIssue
	case d.UnderReview:
		return domain.StatusPendingApproval
	case d.HasPendingRevision:
		return domain.StatusRevisionNeeded
	case d.FileURL == "":
		return domain.StatusPendingUpload
	default:
		return domain.StatusInProgress
	}
}

// Display returns the label and severity for a status. Unknown statuses fall
// back to the In Progress display rather than panicking.
func Display(s domain.DrawingStatus) domain.StatusDisplay {
	if d, ok := displayTable[s]; ok {
		return d
	}
	return displayTable[domain.StatusInProgress]
}
