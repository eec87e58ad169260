package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"event-admission-platform/internal/models"
	"event-admission-platform/internal/services"
)

// TicketHandler handles ticket issuance and validation endpoints
type TicketHandler struct {
	ticketService services.TicketServiceInterface
}

// NewTicketHandler creates a new ticket handler
func NewTicketHandler(ticketService services.TicketServiceInterface) *TicketHandler {
	return &TicketHandler{ticketService: ticketService}
}

// PurchaseResponse is the body returned after a successful purchase
type PurchaseResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Tickets []*models.Ticket `json:"tickets"`
}

// ValidateRequest is the body accepted by the validation endpoint
type ValidateRequest struct {
	QRPayload string `json:"qr_payload"`
}

// PurchaseTickets handles POST /api/tickets/purchase
func (h *TicketHandler) PurchaseTickets(w http.ResponseWriter, r *http.Request) {
	var req models.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	tickets, err := h.ticketService.IssueTickets(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, PurchaseResponse{
		Success: true,
		Message: fmt.Sprintf("%d ticket(s) purchased successfully", len(tickets)),
		Tickets: tickets,
	})
}

// ValidateTicket handles POST /api/tickets/validate
func (h *TicketHandler) ValidateTicket(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if req.QRPayload == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "qr_payload is required"})
		return
	}

	result, err := h.ticketService.RedeemTicket(req.QRPayload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// BuyerTickets handles GET /api/tickets/buyer/{email}
func (h *TicketHandler) BuyerTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.ticketService.GetTicketsByBuyer(chi.URLParam(r, "email"))
	if err != nil {
		writeError(w, err)
		return
	}

	if tickets == nil {
		tickets = []*models.Ticket{}
	}

	writeJSON(w, http.StatusOK, tickets)
}
