package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"jobhub/internal/app"
	"jobhub/internal/common"
	"jobhub/internal/domain/job"
	"jobhub/internal/http/response"
)

type JobHandler struct {
	jobs     *app.JobService
	workflow *app.WorkflowService
	search   *app.SearchService
	adminKey string
}

func NewJobHandler(jobs *app.JobService, workflow *app.WorkflowService, search *app.SearchService, adminKey string) *JobHandler {
	return &JobHandler{jobs: jobs, workflow: workflow, search: search, adminKey: adminKey}
}

type jobRequest struct {
	CompanyID   string  `json:"company_id"`
	RecruiterID string  `json:"recruiter_id,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Location    string  `json:"location"`
	Type        string  `json:"type"`
	Experience  string  `json:"experience,omitempty"`
	Salary      float64 `json:"salary"`
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	companyID, err := common.ParseUUID(req.CompanyID)
	if err != nil {
		response.Error(w, common.NewValidationError("invalid job", map[string]string{"company_id": "invalid uuid"}))
		return
	}
	var recruiterID *common.UUID
	if strings.TrimSpace(req.RecruiterID) != "" {
		parsed, err := common.ParseUUID(req.RecruiterID)
		if err != nil {
			response.Error(w, common.NewValidationError("invalid job", map[string]string{"recruiter_id": "invalid uuid"}))
			return
		}
		recruiterID = &parsed
	}
	created, err := h.jobs.Create(r.Context(), job.Job{
		CompanyID:   companyID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Type:        req.Type,
		Experience:  req.Experience,
		Salary:      req.Salary,
	}, recruiterID)
	if err != nil {
		if common.Is(err, common.CodeConflictRisk) && created != nil {
			response.EntityWithRepair(w, http.StatusCreated, created, err)
			return
		}
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	item, err := h.jobs.Get(r.Context(), jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}

func (h *JobHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.workflow.TransitionJob(r.Context(), jobID, job.Status(req.Status))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

// Moderate is the administrative transition into pending/rejected.
func (h *JobHandler) Moderate(w http.ResponseWriter, r *http.Request) {
	if !requireAdminKey(w, r, h.adminKey) {
		return
	}
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.workflow.ModerateJob(r.Context(), jobID, job.Status(req.Status))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.jobs.Delete(r.Context(), jobID); err != nil {
		if common.Is(err, common.CodeConflictRisk) {
			response.EntityWithRepair(w, http.StatusOK, map[string]string{"id": jobID.String()}, err)
			return
		}
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// List is the public listing endpoint; the search service pins status to
// active regardless of query input.
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filters := job.Filters{
		Search:     query.Get("search"),
		Location:   query.Get("location"),
		Type:       query.Get("type"),
		Experience: query.Get("experience"),
		Salary:     job.SalaryBucket(query.Get("salary")),
	}
	page := 1
	pageSize := 0
	if value := query.Get("page"); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			page = parsed
		}
	}
	if value := query.Get("page_size"); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			pageSize = parsed
		}
	}
	result, err := h.search.ListJobs(r.Context(), filters, page, pageSize)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}
