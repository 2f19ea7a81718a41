package job

import (
	"strings"
	"time"

	"jobhub/internal/common"
	"jobhub/internal/domain/company"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusClosed   Status = "closed"
	StatusArchived Status = "archived"
	// Moderation states, reachable only through an administrative transition.
	StatusPending  Status = "pending"
	StatusRejected Status = "rejected"
)

func KnownStatus(status Status) bool {
	switch status {
	case StatusActive, StatusClosed, StatusArchived, StatusPending, StatusRejected:
		return true
	default:
		return false
	}
}

func ModerationStatus(status Status) bool {
	return status == StatusPending || status == StatusRejected
}

// Job belongs to exactly one company. Applicants is a reference list kept
// consistent by paired updates: every id in it names an application whose
// JobID equals this job. PostedBy records the recruiter that created the
// posting so deletion can retract the id from that account's JobPosts.
type Job struct {
	ID          common.UUID   `json:"id"`
	CompanyID   common.UUID   `json:"company_id"`
	PostedBy    *common.UUID  `json:"posted_by,omitempty"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Location    string        `json:"location"`
	Type        string        `json:"type"`
	Experience  string        `json:"experience,omitempty"`
	Salary      float64       `json:"salary"`
	Status      Status        `json:"status"`
	Applicants  []common.UUID `json:"applicants,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Listing is a search result: the job denormalized with a read-only company
// projection joined at query time.
type Listing struct {
	Job
	Company company.Snapshot `json:"company"`
}

// Page is a bounded, ordered slice of the full result set. Page numbers are
// 1-indexed; a page beyond range carries empty Items with accurate totals.
type Page struct {
	Items     []Listing `json:"items"`
	Total     int       `json:"total"`
	Page      int       `json:"page"`
	PageCount int       `json:"page_count"`
}

type SalaryBucket string

const (
	BucketBelow3 SalaryBucket = "below-3"
	Bucket3To6   SalaryBucket = "3-6"
	Bucket6To10  SalaryBucket = "6-10"
	Bucket10Plus SalaryBucket = "10-plus"
)

// BucketBounds returns the half-open salary range [min, max) for a bucket.
// A negative max means unbounded above. All buckets share one unit.
func BucketBounds(bucket SalaryBucket) (min, max float64, ok bool) {
	switch bucket {
	case BucketBelow3:
		return 0, 3, true
	case Bucket3To6:
		return 3, 6, true
	case Bucket6To10:
		return 6, 10, true
	case Bucket10Plus:
		return 10, -1, true
	default:
		return 0, 0, false
	}
}

// Filters are conjunctive: a job matches only if it satisfies every
// supplied predicate. Empty fields are ignored.
type Filters struct {
	Status     Status
	Search     string
	Location   string
	Type       string
	Experience string
	Salary     SalaryBucket
}

// Match is the reference predicate for the search engine. The SQL store
// mirrors it clause for clause; in-memory stores and tests use it directly.
func (f Filters) Match(j Job) bool {
	if f.Status != "" && j.Status != f.Status {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(j.Title), strings.ToLower(f.Search)) {
		return false
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(j.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.Type != "" && j.Type != f.Type {
		return false
	}
	if f.Experience != "" && j.Experience != f.Experience {
		return false
	}
	if f.Salary != "" {
		min, max, ok := BucketBounds(f.Salary)
		if !ok {
			return false
		}
		if j.Salary < min {
			return false
		}
		if max >= 0 && j.Salary >= max {
			return false
		}
	}
	return true
}
