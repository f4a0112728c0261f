package workflow

import "github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"

// ResolveActions returns the set of actions enabled for a viewer tier on a
// drawing, in the stable order of domain.AllActions. Each action is an
// independent predicate; several may be enabled at once.
//
// External tiers never receive Upload, Approve, Issue, MarkNA, or
// RequestRevision regardless of drawing state. That guarantee is the one
// security-relevant invariant of this package and is enforced here, not in
// handlers.
func ResolveActions(tier domain.Tier, d domain.Drawing) []domain.Action {
	internal := Internal(tier)
	hasFile := d.FileURL != ""

	var actions []domain.Action
	for _, a := range domain.AllActions {
		if actionEnabled(a, internal, hasFile, d) {
			actions = append(actions, a)
		}
	}
	return actions
}

// Allowed reports whether a single action is enabled for the tier and
// drawing.
func Allowed(action domain.Action, tier domain.Tier, d domain.Drawing) bool {
	return actionEnabled(action, Internal(tier), d.FileURL != "", d)
}

func actionEnabled(a domain.Action, internal, hasFile bool, d domain.Drawing) bool {
	switch a {
	case domain.ActionView, domain.ActionDownload:
		return hasFile
	case domain.ActionComment:
		return !d.IsNotApplicable
	case domain.ActionUpload:
		// An open revision unlocks re-upload even while the drawing still
		// reads as issued (the issued-with-open-revision case); otherwise
		// upload is only offered before first issuance when no file exists.
		return internal && !d.IsNotApplicable &&
			(d.HasPendingRevision || (!d.IsIssued && !hasFile))
	case domain.ActionApprove:
		return internal && d.UnderReview && !d.IsApproved && !d.IsNotApplicable
	case domain.ActionIssue:
		return internal && d.IsApproved && !d.IsIssued && hasFile && !d.IsNotApplicable
	case domain.ActionMarkNA:
		return internal && !d.IsIssued && !d.IsNotApplicable
	case domain.ActionRequestRevision:
		return internal && d.IsIssued
	case domain.ActionToggleHistory:
		return len(d.RevisionHistory) > 0
	default:
		return false
	}
}
