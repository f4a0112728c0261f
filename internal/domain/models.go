package domain

import (
	"time"

	"github.com/google/uuid"
)

// Viewer identifies the caller for a single request. It is built by the
// viewer middleware from bearer-token claims and passed explicitly to every
// service call; nothing reads it from ambient state.
type Viewer struct {
	UserID  uuid.UUID `json:"user_id"`
	Name    string    `json:"name"`
	Role    string    `json:"role"`
	IsOwner bool      `json:"is_owner"`
}

// Drawing is the central entity of the drawing lifecycle. The five lifecycle
// booleans are not mutually exclusive by construction; derived status is
// computed by workflow.ResolveStatus in a fixed priority order.
type Drawing struct {
	ID                 uuid.UUID       `json:"id"`
	ProjectID          uuid.UUID       `json:"project_id"`
	Name               string          `json:"name"`
	Category           string          `json:"category"`
	FileURL            string          `json:"file_url"`
	CurrentRevision    int             `json:"current_revision"`
	IsNotApplicable    bool            `json:"is_not_applicable"`
	UnderReview        bool            `json:"under_review"`
	IsApproved         bool            `json:"is_approved"`
	IsIssued           bool            `json:"is_issued"`
	HasPendingRevision bool            `json:"has_pending_revision"`
	RevisionHistory    []RevisionEntry `json:"revision_history"`
	UploadedBy         *uuid.UUID      `json:"uploaded_by"`
	DueDate            *time.Time      `json:"due_date"`
	IssuedDate         *time.Time      `json:"issued_date"`
	UpdatedAt          *time.Time      `json:"updated_at"`
}

// RevisionEntry records one past issuance of a drawing. The history is
// append-only.
type RevisionEntry struct {
	Revision   int        `json:"revision"`
	IssuedDate *time.Time `json:"issued_date"`
}

// StatusDisplay pairs a human-readable label with a presentation severity.
type StatusDisplay struct {
	Label    string   `json:"label"`
	Severity Severity `json:"severity"`
}

// DrawingView is a drawing decorated with everything a card needs to render:
// derived status, its display record, and the actions enabled for the viewer.
type DrawingView struct {
	Drawing Drawing       `json:"drawing"`
	Status  DrawingStatus `json:"status"`
	Display StatusDisplay `json:"display"`
	Actions []Action      `json:"actions"`
	Overdue bool          `json:"overdue"`
}

// Progress is the per-project aggregate computed over a drawing set.
// Applicable excludes N/A drawings; Percent is issued+approved over
// applicable, rounded, and zero when there is nothing applicable.
type Progress struct {
	Total         int `json:"total"`
	Applicable    int `json:"applicable"`
	Issued        int `json:"issued"`
	Approved      int `json:"approved"`
	UnderReview   int `json:"under_review"`
	Pending       int `json:"pending"`
	NotApplicable int `json:"not_applicable"`
	Overdue       int `json:"overdue"`
	Percent       int `json:"percent"`
}

// Project is a project header as returned by the upstream API.
type Project struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	ClientRef string     `json:"client_ref"`
	Location  string     `json:"location"`
	IsActive  bool       `json:"is_active"`
	StartDate *time.Time `json:"start_date"`
	CreatedAt time.Time  `json:"created_at"`
}

// ProjectSummary is a project with its derived progress, as shown on
// dashboards.
type ProjectSummary struct {
	Project  Project  `json:"project"`
	Progress Progress `json:"progress"`
}

// Comment is one entry of a drawing's discussion thread. Comments are
// append-only; attachments and voice notes are URL references owned upstream.
type Comment struct {
	ID            uuid.UUID `json:"id"`
	DrawingID     uuid.UUID `json:"drawing_id"`
	AuthorID      uuid.UUID `json:"author_id"`
	AuthorName    string    `json:"author_name"`
	Text          string    `json:"text"`
	AttachmentURL string    `json:"attachment_url,omitempty"`
	VoiceNoteURL  string    `json:"voice_note_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Notification is a single inbox entry for a viewer.
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	Kind      NotificationKind `json:"kind"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	ProjectID *uuid.UUID       `json:"project_id"`
	DrawingID *uuid.UUID       `json:"drawing_id"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}

// NotificationCount is the unread counter shown in the navigation bar.
type NotificationCount struct {
	Unread    int       `json:"unread"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Vendor is an entry in the vendor directory.
type Vendor struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Trade     string    `json:"trade"`
	Contact   string    `json:"contact"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	City      string    `json:"city"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// Resource is an entry in the internal resource directory (staff and
// equipment the firm schedules across projects).
type Resource struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	Contact   string    `json:"contact"`
	Phone     string    `json:"phone"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// ClientAccount is an external client account visible in the client
// directory.
type ClientAccount struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Company   string    `json:"company"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// RegistrationRequest is a self-service signup submitted to the backend for
// owner approval.
type RegistrationRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Role    string `json:"role"`
	Company string `json:"company"`
}

// Profile is the viewer's own account record as returned by the upstream
// API.
type Profile struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Role     string    `json:"role"`
	IsOwner  bool      `json:"is_owner"`
	Company  string    `json:"company"`
	JoinedAt time.Time `json:"joined_at"`
}

// Dashboard is the role-shaped landing payload. External viewers receive
// only projects and notifications; internal tiers also get the action
// shortlists.
type Dashboard struct {
	Viewer           Viewer           `json:"viewer"`
	Tier             Tier             `json:"tier"`
	Projects         []ProjectSummary `json:"projects"`
	Notifications    []Notification   `json:"notifications"`
	PendingApprovals []DrawingView    `json:"pending_approvals,omitempty"`
	PendingUploads   []DrawingView    `json:"pending_uploads,omitempty"`
}
