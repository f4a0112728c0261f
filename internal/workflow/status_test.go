package workflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/workflow"
)

// drawingFromBits builds a drawing from the five lifecycle booleans plus
// file presence, matching the bit order used by the exhaustive tests.
func drawingFromBits(na, issued, approved, review, revision, hasFile bool) domain.Drawing {
	d := domain.Drawing{
		IsNotApplicable:    na,
		IsIssued:           issued,
		IsApproved:         approved,
		UnderReview:        review,
		HasPendingRevision: revision,
	}
	if hasFile {
		d.FileURL = "https://files.example.com/d.pdf"
	}
	return d
}

func TestResolveStatus_ExhaustiveTotal(t *testing.T) {
	valid := map[domain.DrawingStatus]bool{
		domain.StatusNotApplicable:   true,
		domain.StatusIssued:          true,
		domain.StatusReadyToIssue:    true,
		domain.StatusPendingApproval: true,
		domain.StatusRevisionNeeded:  true,
		domain.StatusPendingUpload:   true,
		domain.StatusInProgress:      true,
	}

	// All 2^5 boolean combinations x file present/absent must map to
	// exactly one member of the status enum.
	for bits := 0; bits < 32; bits++ {
		for _, hasFile := range []bool{false, true} {
			d := drawingFromBits(bits&1 != 0, bits&2 != 0, bits&4 != 0, bits&8 != 0, bits&16 != 0, hasFile)
			status := workflow.ResolveStatus(d)
			assert.True(t, valid[status], "bits=%05b hasFile=%v produced %q", bits, hasFile, status)
		}
	}
}

func TestResolveStatus_PriorityOrder(t *testing.T) {
	tests := []struct {
		name string
		d    domain.Drawing
		want domain.DrawingStatus
	}{
		{
			name: "not applicable beats issued",
			d:    drawingFromBits(true, true, false, false, false, true),
			want: domain.StatusNotApplicable,
		},
		{
			name: "not applicable beats everything",
			d:    drawingFromBits(true, true, true, true, true, true),
			want: domain.StatusNotApplicable,
		},
		{
			name: "issued beats pending revision",
			d:    drawingFromBits(false, true, false, false, true, true),
			want: domain.StatusIssued,
		},
		{
			name: "issued beats approved",
			d:    drawingFromBits(false, true, true, false, false, true),
			want: domain.StatusIssued,
		},
		{
			name: "approved beats under review",
			d:    drawingFromBits(false, false, true, true, false, true),
			want: domain.StatusReadyToIssue,
		},
		{
			name: "under review beats pending revision",
			d:    drawingFromBits(false, false, false, true, true, true),
			want: domain.StatusPendingApproval,
		},
		{
			name: "pending revision beats missing file",
			d:    drawingFromBits(false, false, false, false, true, false),
			want: domain.StatusRevisionNeeded,
		},
		{
			name: "no file means pending upload",
			d:    drawingFromBits(false, false, false, false, false, false),
			want: domain.StatusPendingUpload,
		},
		{
			name: "file and no flags means in progress",
			d:    drawingFromBits(false, false, false, false, false, true),
			want: domain.StatusInProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, workflow.ResolveStatus(tt.d))
		})
	}
}

func TestResolveStatus_Idempotent(t *testing.T) {
	d := drawingFromBits(false, false, true, true, false, true)
	first := workflow.ResolveStatus(d)
	second := workflow.ResolveStatus(d)
	assert.Equal(t, first, second)
}

func TestDisplay_Table(t *testing.T) {
	tests := []struct {
		status   domain.DrawingStatus
		label    string
		severity domain.Severity
	}{
		{domain.StatusNotApplicable, "N/A", domain.SeverityNeutral},
		{domain.StatusIssued, "Issued", domain.SeveritySuccess},
		{domain.StatusReadyToIssue, "Ready to Issue", domain.SeverityInfo},
		{domain.StatusPendingApproval, "Pending Approval", domain.SeverityWarning},
		{domain.StatusRevisionNeeded, "Revision Needed", domain.SeverityDanger},
		{domain.StatusPendingUpload, "Pending Upload", domain.SeverityNeutral},
		{domain.StatusInProgress, "In Progress", domain.SeverityInfo},
	}

	for _, tt := range tests {
		got := workflow.Display(tt.status)
		assert.Equal(t, tt.label, got.Label)
		assert.Equal(t, tt.severity, got.Severity)
	}
}

func TestDisplay_UnknownFallsBack(t *testing.T) {
	got := workflow.Display(domain.DrawingStatus("bogus"))
	assert.Equal(t, "In Progress", got.Label)
}
