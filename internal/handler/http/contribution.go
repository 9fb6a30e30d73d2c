package http

import (
	"encoding/json"
	"net/http"

	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/contribution"
	"github.com/suweldo-hr/suweldo-backend-go/internal/handler/http/response"
)

type ContributionHandler interface {
	PublishBracketTable(w http.ResponseWriter, r *http.Request)
	PublishTaxTable(w http.ResponseWriter, r *http.Request)
	ListBracketTables(w http.ResponseWriter, r *http.Request)
	ListTaxTables(w http.ResponseWriter, r *http.Request)
}

type contributionHandlerImpl struct {
	adminService contribution.AdminService
}

func NewContributionHandler(adminService contribution.AdminService) ContributionHandler {
	return &contributionHandlerImpl{adminService: adminService}
}

func (h *contributionHandlerImpl) PublishBracketTable(w http.ResponseWriter, r *http.Request) {
	var req contribution.CreateBracketTableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.adminService.PublishBracketTable(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Contribution table published", result)
}

func (h *contributionHandlerImpl) PublishTaxTable(w http.ResponseWriter, r *http.Request) {
	var req contribution.CreateTaxTableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.adminService.PublishTaxTable(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Tax table published", result)
}

func (h *contributionHandlerImpl) ListBracketTables(w http.ResponseWriter, r *http.Request) {
	kind := contribution.Kind(r.URL.Query().Get("kind"))
	if !kind.Valid() {
		response.BadRequest(w, "kind must be one of sss, philhealth, pagibig", nil)
		return
	}

	result, err := h.adminService.ListBracketTables(r.Context(), kind)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *contributionHandlerImpl) ListTaxTables(w http.ResponseWriter, r *http.Request) {
	frequency := contribution.PayFrequency(r.URL.Query().Get("frequency"))
	if !frequency.Valid() {
		response.BadRequest(w, "frequency must be one of daily, weekly, semi_monthly, monthly", nil)
		return
	}

	result, err := h.adminService.ListTaxTables(r.Context(), frequency)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
