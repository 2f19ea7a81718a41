package handlers

import (
	"net/http"

	"jobhub/internal/app"
	"jobhub/internal/domain/company"
	"jobhub/internal/http/response"
)

type CompanyHandler struct {
	companies *app.CompanyService
	workflow  *app.WorkflowService
	adminKey  string
}

func NewCompanyHandler(companies *app.CompanyService, workflow *app.WorkflowService, adminKey string) *CompanyHandler {
	return &CompanyHandler{companies: companies, workflow: workflow, adminKey: adminKey}
}

type companyRequest struct {
	Name          string `json:"name"`
	Logo          string `json:"logo,omitempty"`
	Industry      string `json:"industry,omitempty"`
	Website       string `json:"website,omitempty"`
	Location      string `json:"location,omitempty"`
	EmployeeCount int    `json:"employee_count,omitempty"`
}

func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req companyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.companies.Create(r.Context(), company.Company{
		Name:          req.Name,
		Logo:          req.Logo,
		Industry:      req.Industry,
		Website:       req.Website,
		Location:      req.Location,
		EmployeeCount: req.EmployeeCount,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	companyID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	item, err := h.companies.Get(r.Context(), companyID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}

// Approve is the admin transition that sets verified and active atomically.
func (h *CompanyHandler) Approve(w http.ResponseWriter, r *http.Request) {
	if !requireAdminKey(w, r, h.adminKey) {
		return
	}
	companyID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	approved, err := h.workflow.ApproveCompany(r.Context(), companyID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, approved)
}

func (h *CompanyHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if !requireAdminKey(w, r, h.adminKey) {
		return
	}
	companyID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.workflow.TransitionCompany(r.Context(), companyID, company.Status(req.Status))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}
