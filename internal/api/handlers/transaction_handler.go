package handlers

import (
	"net/http"

	"github.com/DevFolio/go-client-referral/internal/serviceimpl"
	"github.com/DevFolio/go-client-referral/request"
	"github.com/DevFolio/go-client-referral/service"
	"gorm.io/gorm"
)

type TransactionHandler struct {
	transactions service.TransactionService
}

func NewTransactionHandler(db *gorm.DB) *TransactionHandler {
	return &TransactionHandler{
		transactions: serviceimpl.NewTransactionService(db),
	}
}

// ListTransactions handles GET /transactions
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	req := request.GetTransactionsRequest{
		ReferrerCode:         queryString(r, "referrerCode"),
		InvoiceStatus:        queryString(r, "invoiceStatus"),
		EmailSent:            queryBool(r, "emailSent"),
		PaginationConditions: paginationFromQuery(r),
	}

	transactions, count, err := h.transactions.GetTransactions(req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"transactions": transactions,
		"total":        count,
	})
}

// TotalEarnings handles GET /transactions/earnings
func (h *TransactionHandler) TotalEarnings(w http.ResponseWriter, r *http.Request) {
	req := request.GetTransactionsRequest{
		ReferrerCode: queryString(r, "referrerCode"),
	}

	total, err := h.transactions.GetTotalEarnings(req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"totalEarnings": total})
}

// MarkInvoiceSent handles POST /transactions/{id}/invoice-sent
func (h *TransactionHandler) MarkInvoiceSent(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid transaction id"})
		return
	}

	txn, err := h.transactions.MarkInvoiceSent(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, txn)
}

// MarkEmailSent handles POST /transactions/{id}/email-sent
func (h *TransactionHandler) MarkEmailSent(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid transaction id"})
		return
	}

	txn, err := h.transactions.MarkEmailSent(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, txn)
}
