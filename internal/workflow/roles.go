// Package workflow derives everything the UI shows about a drawing: its
// lifecycle status, the actions a viewer may take on it, and per-project
// progress. Every surface (cards, dashboards, exports) goes through this
// package so no two views can disagree about a drawing's state.
//
// All functions are pure: no I/O, no clock reads, no state between calls.
package workflow

import "github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"

// Classify maps a raw role string and owner flag to a capability tier.
// Precedence is External > Owner > TeamLead: an external role classifies as
// external even if the owner flag is set, since external is the most
// restrictive tier. Unrecognized non-external roles classify as TeamLead.
func Classify(role string, isOwner bool) domain.Tier {
	if domain.ExternalRoles[role] {
		return domain.TierExternal
	}
	if isOwner {
		return domain.TierOwner
	}
	return domain.TierTeamLead
}

// ClassifyViewer derives the tier for a viewer.
func ClassifyViewer(v domain.Viewer) domain.Tier {
	return Classify(v.Role, v.IsOwner)
}

// Internal reports whether a tier may perform lifecycle mutations
// (upload, approve, issue, mark N/A, request revision).
func Internal(tier domain.Tier) bool {
	return tier == domain.TierTeamLead || tier == domain.TierOwner
}
