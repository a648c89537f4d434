package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/DevFolio/go-client-referral/internal/serviceimpl"
	"github.com/DevFolio/go-client-referral/request"
	"github.com/DevFolio/go-client-referral/service"
	"gorm.io/gorm"
)

type CustomerHandler struct {
	customers  service.CustomerService
	aggregator service.AggregatorService
}

func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{
		customers:  serviceimpl.NewCustomerService(db),
		aggregator: serviceimpl.NewAggregatorService(db),
	}
}

// CreateCustomer handles POST /customers
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_body"})
		return
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "firstName, lastName and email are required"})
		return
	}

	customer, err := h.customers.CreateCustomer(req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, customer)
}

// ListCustomers handles GET /customers
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	req := request.GetCustomersRequest{
		ID:                   queryUint(r, "id"),
		ReferenceID:          queryString(r, "referenceID"),
		Email:                queryString(r, "email"),
		ReferralCode:         queryString(r, "referralCode"),
		Reference:            queryString(r, "reference"),
		City:                 queryString(r, "city"),
		Search:               queryString(r, "search"),
		IsReferred:           queryBool(r, "isReferred"),
		MinReferralCount:     queryInt64(r, "minReferralCount"),
		PaginationConditions: paginationFromQuery(r),
	}

	customers, count, err := h.customers.GetCustomers(req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"customers": customers,
		"total":     count,
	})
}

// UpdateCustomer handles PUT /customers/{id}
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid customer id"})
		return
	}

	var req request.UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_body"})
		return
	}

	customer, err := h.customers.UpdateCustomer(id, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

// DeleteCustomer handles DELETE /customers/{id}
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid customer id"})
		return
	}

	if err := h.customers.DeleteCustomer(id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "customer deleted"})
}

// CustomerStats handles GET /customers/stats
func (h *CustomerHandler) CustomerStats(w http.ResponseWriter, r *http.Request) {
	req := request.GetCustomersRequest{
		ReferralCode:         queryString(r, "referralCode"),
		IsReferred:           queryBool(r, "isReferred"),
		PaginationConditions: paginationFromQuery(r),
	}

	stats, count, err := h.aggregator.GetCustomerStats(req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"stats": stats,
		"total": count,
	})
}
