package handlers

import (
	"net/http"
	"time"

	"jobhub/internal/app"
	"jobhub/internal/common"
	"jobhub/internal/domain/application"
	"jobhub/internal/http/middleware"
	"jobhub/internal/http/response"
)

type ApplicationHandler struct {
	applications *app.ApplicationService
	workflow     *app.WorkflowService
	limiter      middleware.Limiter
}

func NewApplicationHandler(applications *app.ApplicationService, workflow *app.WorkflowService, limiter middleware.Limiter) *ApplicationHandler {
	return &ApplicationHandler{applications: applications, workflow: workflow, limiter: limiter}
}

type applicationRequest struct {
	JobID          string `json:"job_id"`
	UserID         string `json:"user_id"`
	ApplicantName  string `json:"applicant_name,omitempty"`
	ApplicantEmail string `json:"applicant_email,omitempty"`
	ResumeURL      string `json:"resume_url,omitempty"`
}

func (h *ApplicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req applicationRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	jobID, err := common.ParseUUID(req.JobID)
	if err != nil {
		response.Error(w, common.NewValidationError("invalid application", map[string]string{"job_id": "invalid uuid"}))
		return
	}
	userID, err := common.ParseUUID(req.UserID)
	if err != nil {
		response.Error(w, common.NewValidationError("invalid application", map[string]string{"user_id": "invalid uuid"}))
		return
	}
	if h.limiter != nil {
		key := "apply:" + jobID.String() + ":" + userID.String()
		if !h.limiter.Allow(key, 3, time.Minute) {
			response.Error(w, common.NewError(common.CodeRateLimited, "apply rate limit exceeded", nil))
			return
		}
	}
	created, err := h.applications.Create(r.Context(), application.Application{
		JobID:          jobID,
		UserID:         userID,
		ApplicantName:  req.ApplicantName,
		ApplicantEmail: req.ApplicantEmail,
		ResumeURL:      req.ResumeURL,
	})
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

func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	applicationID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	item, err := h.applications.Get(r.Context(), applicationID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}

func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	applicationID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.workflow.TransitionApplication(r.Context(), applicationID, application.Status(req.Status))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *ApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	applicationID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.applications.Delete(r.Context(), applicationID); err != nil {
		if common.Is(err, common.CodeConflictRisk) {
			response.EntityWithRepair(w, http.StatusOK, map[string]string{"id": applicationID.String()}, err)
			return
		}
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
