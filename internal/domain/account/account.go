package account

import (
	"time"

	"jobhub/internal/common"
)

type Role string

const (
	RoleJobseeker Role = "jobseeker"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

func KnownRole(role Role) bool {
	switch role {
	case RoleJobseeker, RoleRecruiter, RoleAdmin:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusActive Status = "active"
	StatusBanned Status = "banned"
)

type Resume struct {
	URL       string    `json:"url,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

type EducationEntry struct {
	School    string `json:"school"`
	Degree    string `json:"degree"`
	Field     string `json:"field,omitempty"`
	StartYear int    `json:"start_year,omitempty"`
	EndYear   int    `json:"end_year,omitempty"`
}

// Profile is the jobseeker side of an account. SavedJobs and Applications
// are reference lists maintained by paired updates; every id in Applications
// names an application whose UserID equals the owning account.
type Profile struct {
	Skills         []string          `json:"skills,omitempty"`
	Experience     []ExperienceEntry `json:"experience,omitempty"`
	Education      []EducationEntry  `json:"education,omitempty"`
	Certifications []string          `json:"certifications,omitempty"`
	Resume         Resume            `json:"resume,omitempty"`
	SavedJobs      []common.UUID     `json:"saved_jobs,omitempty"`
	Applications   []common.UUID     `json:"applications,omitempty"`
}

type Account struct {
	ID        common.UUID   `json:"id"`
	Role      Role          `json:"role"`
	Status    Status        `json:"status"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	CompanyID *common.UUID  `json:"company_id,omitempty"`
	JobPosts  []common.UUID `json:"job_posts,omitempty"`
	Profile   Profile       `json:"profile"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
