package app

import (
	"context"
	"sort"
	"time"

	"jobhub/internal/common"
	"jobhub/internal/domain/account"
	"jobhub/internal/domain/application"
)

// Candidate is one distinct applicant across a recruiter's company, carrying
// the status and date of that person's most recent application.
type Candidate struct {
	Account      account.Account    `json:"account"`
	Status       application.Status `json:"status"`
	AppliedDate  time.Time          `json:"applied_date"`
	Applications int                `json:"applications"`
}

type CandidatePool struct {
	Count      int         `json:"count"`
	Candidates []Candidate `json:"candidates"`
}

type CandidateService struct {
	accounts     account.Repository
	applications application.Repository
}

func NewCandidateService(accounts account.Repository, applications application.Repository) *CandidateService {
	return &CandidateService{accounts: accounts, applications: applications}
}

// UniqueCandidates derives the distinct set of people who have ever applied
// to the recruiter's company. Applications are deduplicated by submitter
// first, keeping the latest AppliedDate per person; accounts are resolved in
// a second pass over the already-deduplicated id set, never join-then-dedupe.
// Output is ordered latest application first.
func (s *CandidateService) UniqueCandidates(ctx context.Context, recruiterID common.UUID) (*CandidatePool, error) {
	recruiter, err := s.accounts.GetByID(ctx, recruiterID)
	if err != nil {
		return nil, err
	}
	if recruiter.Role != account.RoleRecruiter || recruiter.CompanyID == nil {
		return nil, common.NewValidationError("invalid recruiter", map[string]string{"account_id": "account is not a recruiter with a company"})
	}

	apps, err := s.applications.ListByCompany(ctx, *recruiter.CompanyID)
	if err != nil {
		return nil, err
	}

	latest := make(map[common.UUID]application.Application)
	counts := make(map[common.UUID]int)
	for _, a := range apps {
		counts[a.UserID]++
		current, seen := latest[a.UserID]
		if !seen || a.AppliedDate.After(current.AppliedDate) {
			latest[a.UserID] = a
		}
	}
	if len(latest) == 0 {
		return &CandidatePool{Count: 0, Candidates: []Candidate{}}, nil
	}

	ids := make([]common.UUID, 0, len(latest))
	for id := range latest {
		ids = append(ids, id)
	}
	accounts, err := s.accounts.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(accounts))
	for _, acct := range accounts {
		a := latest[acct.ID]
		candidates = append(candidates, Candidate{
			Account:      acct,
			Status:       a.Status,
			AppliedDate:  a.AppliedDate,
			Applications: counts[acct.ID],
		})
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].AppliedDate.After(candidates[j].AppliedDate)
	})
	return &CandidatePool{Count: len(candidates), Candidates: candidates}, nil
}
