package domain

// Tier is the coarse capability class derived from a viewer's role.
type Tier string

const (
	TierExternal Tier = "external"
	TierTeamLead Tier = "team_lead"
	TierOwner    Tier = "owner"
)

// ExternalRoles is the set of role strings that classify as TierExternal.
var ExternalRoles = map[string]bool{
	"client":     true,
	"contractor": true,
	"consultant": true,
	"vendor":     true,
}

// DrawingStatus is the derived lifecycle state of a drawing. A drawing is in
// exactly one status at any time; see workflow.ResolveStatus for the
// derivation order.
type DrawingStatus string

const (
	StatusNotApplicable   DrawingStatus = "not_applicable"
	StatusIssued          DrawingStatus = "issued"
	StatusReadyToIssue    DrawingStatus = "ready_to_issue"
	StatusPendingApproval DrawingStatus = "pending_approval"
	StatusRevisionNeeded  DrawingStatus = "revision_needed"
	StatusPendingUpload   DrawingStatus = "pending_upload"
	StatusInProgress      DrawingStatus = "in_progress"
)

// Severity is a presentation hint attached to a status label.
type Severity string

const (
	SeverityNeutral Severity = "neutral"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeveritySuccess Severity = "success"
	SeverityDanger  Severity = "danger"
)

// Action is a user-facing operation on a drawing.
type Action string

const (
	ActionView            Action = "view"
	ActionDownload        Action = "download"
	ActionComment         Action = "comment"
	ActionUpload          Action = "upload"
	ActionApprove         Action = "approve"
	ActionIssue           Action = "issue"
	ActionMarkNA          Action = "mark_na"
	ActionRequestRevision Action = "request_revision"
	ActionToggleHistory   Action = "toggle_history"
)

// AllActions lists every action in stable display order.
var AllActions = []Action{
	ActionView,
	ActionDownload,
	ActionComment,
	ActionUpload,
	ActionApprove,
	ActionIssue,
	ActionMarkNA,
	ActionRequestRevision,
	ActionToggleHistory,
}

// NotificationKind categorizes a notification for icon/grouping purposes.
type NotificationKind string

const (
	NotificationDrawing  NotificationKind = "drawing"
	NotificationComment  NotificationKind = "comment"
	NotificationApproval NotificationKind = "approval"
	NotificationGeneral  NotificationKind = "general"
)

// DirectoryKind selects one of the three directory collections.
type DirectoryKind string

const (
	DirectoryVendors   DirectoryKind = "vendors"
	DirectoryResources DirectoryKind = "resources"
	DirectoryClients   DirectoryKind = "clients"
)
