package workflow

import (
	"math"
	"time"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
)

// Aggregate computes per-project progress over a set of drawings. Categories
// come from ResolveStatus so the numbers can never disagree with the cards.
//
// N/A drawings are excluded from the applicable pool and from the completion
// percentage. A drawing counts as overdue when its due date is before now,
// it is not issued, and it is not N/A; drawings without a due date are never
// overdue. The caller supplies now so the function stays deterministic.
func Aggregate(drawings []domain.Drawing, now time.Time) domain.Progress {
	p := domain.Progress{Total: len(drawings)}

	for i := range drawings {
		d := drawings[i]
		switch ResolveStatus(d) {
		case domain.StatusNotApplicable:
			p.NotApplicable++
		case domain.StatusIssued:
			p.Issued++
		case domain.StatusReadyToIssue:
			p.Approved++
		case domain.StatusPendingApproval:
			p.UnderReview++
		default:
			p.Pending++
		}

		if Overdue(d, now) {
			p.Overdue++
		}
	}

	p.Applicable = p.Total - p.NotApplicable
	if p.Applicable > 0 {
		p.Percent = int(math.Round(100 * float64(p.Issued+p.Approved) / float64(p.Applicable)))
	}
	return p
}

// Overdue reports whether a drawing is past due: due date set and before
// now, not issued, not N/A.
func Overdue(d domain.Drawing, now time.Time) bool {
	return d.DueDate != nil && d.DueDate.Before(now) && !d.IsIssued && !d.IsNotApplicable
}

// View assembles the full render record for one drawing: derived status, its
// display entry, the viewer's enabled actions, and the overdue flag.
func View(tier domain.Tier, d domain.Drawing, now time.Time) domain.DrawingView {
	status := ResolveStatus(d)
	return domain.DrawingView{
		Drawing: d,
		Status:  status,
		Display: Display(status),
		Actions: ResolveActions(tier, d),
		Overdue: Overdue(d, now),
	}
}

// Views maps View over a drawing slice, preserving order.
func Views(tier domain.Tier, drawings []domain.Drawing, now time.Time) []domain.DrawingView {
	views := make([]domain.DrawingView, 0, len(drawings))
	for i := range drawings {
		views = append(views, View(tier, drawings[i], now))
	}
	return views
}
