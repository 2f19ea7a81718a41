package company

import (
	"time"

	"jobhub/internal/common"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusBanned   Status = "banned"
	StatusRejected Status = "rejected"
)

func KnownStatus(status Status) bool {
	switch status {
	case StatusActive, StatusBanned, StatusRejected:
		return true
	default:
		return false
	}
}

// Company holds reference lists kept consistent by paired updates: every id
// in Jobs names a job whose CompanyID equals this company, and every id in
// Recruiters names a recruiter account pointing back here (eventually).
type Company struct {
	ID            common.UUID   `json:"id"`
	Name          string        `json:"name"`
	Logo          string        `json:"logo,omitempty"`
	Industry      string        `json:"industry,omitempty"`
	Website       string        `json:"website,omitempty"`
	Location      string        `json:"location,omitempty"`
	EmployeeCount int           `json:"employee_count,omitempty"`
	Status        Status        `json:"status"`
	Verified      bool          `json:"verified"`
	Jobs          []common.UUID `json:"jobs,omitempty"`
	Recruiters    []common.UUID `json:"recruiters,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Snapshot is the read-only projection joined onto job search results at
// query time; it is never persisted with the job.
type Snapshot struct {
	Name          string `json:"name"`
	Logo          string `json:"logo,omitempty"`
	Industry      string `json:"industry,omitempty"`
	Website       string `json:"website,omitempty"`
	Location      string `json:"location,omitempty"`
	EmployeeCount int    `json:"employee_count,omitempty"`
}

func (c Company) Snapshot() Snapshot {
	return Snapshot{
		Name:          c.Name,
		Logo:          c.Logo,
		Industry:      c.Industry,
		Website:       c.Website,
		Location:      c.Location,
		EmployeeCount: c.EmployeeCount,
	}
}
