package app

import (
	"context"

	"jobhub/internal/common"
	"jobhub/internal/domain/job"
)

const DefaultPageSize = 10

type SearchService struct {
	jobs            job.Repository
	defaultPageSize int
	maxPageSize     int
}

func NewSearchService(jobs job.Repository, defaultPageSize, maxPageSize int) *SearchService {
	if defaultPageSize <= 0 {
		defaultPageSize = DefaultPageSize
	}
	if maxPageSize <= 0 {
		maxPageSize = 100
	}
	return &SearchService{jobs: jobs, defaultPageSize: defaultPageSize, maxPageSize: maxPageSize}
}

// ListJobs resolves the public job listing. The status filter is pinned to
// active regardless of caller input so pending or closed postings never
// leak. Ordering is creation time descending; a page beyond range returns
// empty items with accurate totals.
func (s *SearchService) ListJobs(ctx context.Context, f job.Filters, page, pageSize int) (*job.Page, error) {
	f.Status = job.StatusActive
	if f.Salary != "" {
		if _, _, ok := job.BucketBounds(f.Salary); !ok {
			return nil, common.NewValidationError("invalid salary filter", map[string]string{"salary": "salary must be below-3, 3-6, 6-10, or 10-plus"})
		}
	}
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = s.defaultPageSize
	}
	if pageSize > s.maxPageSize {
		pageSize = s.maxPageSize
	}

	items, total, err := s.jobs.Search(ctx, f, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []job.Listing{}
	}
	pageCount := (total + pageSize - 1) / pageSize
	return &job.Page{Items: items, Total: total, Page: page, PageCount: pageCount}, nil
}
