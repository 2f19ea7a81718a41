package handlers

import (
	"net/http"
	"strings"

	"jobhub/internal/app"
	"jobhub/internal/common"
	"jobhub/internal/domain/account"
	"jobhub/internal/http/response"
)

type AccountHandler struct {
	accounts *app.AccountService
}

func NewAccountHandler(accounts *app.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

type accountRequest struct {
	Role      string          `json:"role"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	CompanyID string          `json:"company_id,omitempty"`
	Profile   account.Profile `json:"profile,omitempty"`
}

func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req accountRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	a := account.Account{
		Role:    account.Role(req.Role),
		Name:    req.Name,
		Email:   req.Email,
		Profile: req.Profile,
	}
	if strings.TrimSpace(req.CompanyID) != "" {
		companyID, err := common.ParseUUID(req.CompanyID)
		if err != nil {
			response.Error(w, common.NewValidationError("invalid account", map[string]string{"company_id": "invalid uuid"}))
			return
		}
		a.CompanyID = &companyID
	}
	created, err := h.accounts.Create(r.Context(), a)
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

func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	accountID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	item, err := h.accounts.Get(r.Context(), accountID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}

type saveJobRequest struct {
	JobID string `json:"job_id"`
}

func (h *AccountHandler) SaveJob(w http.ResponseWriter, r *http.Request) {
	accountID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req saveJobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	jobID, err := common.ParseUUID(req.JobID)
	if err != nil {
		response.Error(w, common.NewValidationError("invalid request", map[string]string{"job_id": "invalid uuid"}))
		return
	}
	if err := h.accounts.SaveJob(r.Context(), accountID, jobID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

func (h *AccountHandler) UnsaveJob(w http.ResponseWriter, r *http.Request) {
	accountID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	jobID, err := idFromPath(r, 3)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.accounts.UnsaveJob(r.Context(), accountID, jobID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"status": "removed"})
}
