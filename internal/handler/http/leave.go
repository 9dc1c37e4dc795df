package http

import (
	"net/http"

	"github.com/atlashr/timesheet-backend-go/internal/handler/http/response"
	leaveService "github.com/atlashr/timesheet-backend-go/internal/service/leave"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	Balance(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService *leaveService.LeaveService
}

func NewLeaveHandler(service *leaveService.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: service}
}

// Balance implements LeaveHandler. The backend's figures are authoritative;
// locally recomputed totals only back the summary endpoint.
func (h *leaveHandlerImpl) Balance(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Path param 'employeeID' is required", nil)
		return
	}

	balance, err := h.leaveService.Balance(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, balance)
}
