package application

import (
	"time"

	"jobhub/internal/common"
)

type Status string

const (
	StatusApplied     Status = "applied"
	StatusInterviewed Status = "interviewed"
	StatusRejected    Status = "rejected"
	StatusAccepted    Status = "accepted"
	// Richer recruiter-pipeline stages.
	StatusDocumentation Status = "documentation"
	StatusOffer         Status = "offer"
	StatusHired         Status = "hired"
)

func KnownStatus(status Status) bool {
	switch status {
	case StatusApplied, StatusInterviewed, StatusRejected, StatusAccepted,
		StatusDocumentation, StatusOffer, StatusHired:
		return true
	default:
		return false
	}
}

// Application references one job and one account. CompanyID is denormalized
// from the job at creation time. ApplicantName/Email are a snapshot of the
// submitter, ResumeURL is an opaque artifact reference, and AppliedDate is
// set at creation and never mutated. Invalidated is set when the referenced
// job is deleted; the record itself is kept.
type Application struct {
	ID             common.UUID `json:"id"`
	JobID          common.UUID `json:"job_id"`
	UserID         common.UUID `json:"user_id"`
	CompanyID      common.UUID `json:"company_id,omitempty"`
	Status         Status      `json:"status"`
	ApplicantName  string      `json:"applicant_name"`
	ApplicantEmail string      `json:"applicant_email"`
	ResumeURL      string      `json:"resume_url,omitempty"`
	Invalidated    bool        `json:"invalidated,omitempty"`
	AppliedDate    time.Time   `json:"applied_date"`
	UpdatedAt      time.Time   `json:"updated_at"`
}
