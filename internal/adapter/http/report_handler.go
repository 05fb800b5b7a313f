package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"order-reports/internal/adapter/logger"
	"order-reports/internal/domain"
	"order-reports/internal/interfaces"
)

const dateLayout = "2006-01-02"

type ReportHandler struct {
	service interfaces.ReportService
	logger  logger.Logger
}

func NewReportHandler(service interfaces.ReportService, logger logger.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		logger:  logger,
	}
}

type SentToStoreOrderResponse struct {
	ID         uuid.UUID       `json:"id"`
	CreatedAt  time.Time       `json:"created_at"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type StoreStatisticResponse struct {
	StoreID        uuid.UUID `json:"store_id"`
	CompletedCount int64     `json:"completed_count"`
	CanceledCount  int64     `json:"canceled_count"`
	RejectedCount  int64     `json:"rejected_count"`
}

type OrderShortInfoResponse struct {
	ID      uuid.UUID     `json:"id"`
	StoreID uuid.UUID     `json:"store_id"`
	Status  domain.Status `json:"status"`
}

type OrderWithTotalPriceResponse struct {
	ShortInfo  OrderShortInfoResponse `json:"short_info"`
	TotalPrice decimal.Decimal        `json:"total_price"`
}

type OrderDayStatisticResponse struct {
	Day         string           `json:"day"`
	TotalAmount decimal.Decimal  `json:"total_amount"`
	Percentage  decimal.Decimal  `json:"percentage"`
	Diff        *decimal.Decimal `json:"diff,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error  string            `json:"error"`
	Errors []ValidationError `json:"errors,omitempty"`
}

func (h *ReportHandler) SentInStoreOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.respondError(w, "Method not allowed", http.StatusMethodNotAllowed, nil)
		return
	}

	storeID, err := uuid.Parse(r.URL.Query().Get("storeId"))
	if err != nil {
		h.respondError(w, "Validation failed", http.StatusBadRequest, []ValidationError{
			{Field: "storeId", Message: "storeId must be a valid UUID"},
		})
		return
	}

	result, err := h.service.SentToStoreOrders(r.Context(), storeID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	resp := make([]SentToStoreOrderResponse, 0, len(result))
	for _, row := range result {
		resp = append(resp, SentToStoreOrderResponse{
			ID:         row.ID,
			CreatedAt:  row.CreatedAt,
			TotalPrice: row.TotalPrice,
		})
	}

	h.respondJSON(w, resp)
}

func (h *ReportHandler) StoreStatistic(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.respondError(w, "Method not allowed", http.StatusMethodNotAllowed, nil)
		return
	}

	var validationErrors []ValidationError

	lowerBound, err := decimal.NewFromString(r.URL.Query().Get("lowerBound"))
	if err != nil {
		validationErrors = append(validationErrors, ValidationError{
			Field:   "lowerBound",
			Message: "lowerBound must be a decimal number",
		})
	}
	upperBound, err := decimal.NewFromString(r.URL.Query().Get("upperBound"))
	if err != nil {
		validationErrors = append(validationErrors, ValidationError{
			Field:   "upperBound",
			Message: "upperBound must be a decimal number",
		})
	}

	if len(validationErrors) > 0 {
		h.respondError(w, "Validation failed", http.StatusBadRequest, validationErrors)
		return
	}

	result, err := h.service.StoreStatistic(r.Context(), lowerBound, upperBound)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	resp := make([]StoreStatisticResponse, 0, len(result))
	for _, row := range result {
		resp = append(resp, StoreStatisticResponse{
			StoreID:        row.StoreID,
			CompletedCount: row.CompletedCount,
			CanceledCount:  row.CanceledCount,
			RejectedCount:  row.RejectedCount,
		})
	}

	h.respondJSON(w, resp)
}

func (h *ReportHandler) OrdersWithProductInCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.respondError(w, "Method not allowed", http.StatusMethodNotAllowed, nil)
		return
	}

	categoryNames := r.URL.Query()["categoryName"]

	result, err := h.service.OrdersWithProductInCategories(r.Context(), categoryNames)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	resp := make([]OrderShortInfoResponse, 0, len(result))
	for _, row := range result {
		resp = append(resp, shortInfoResponse(row))
	}

	h.respondJSON(w, resp)
}

func (h *ReportHandler) OrdersWithProductCategory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.respondError(w, "Method not allowed", http.StatusMethodNotAllowed, nil)
		return
	}

	name := r.URL.Query().Get("categoryName")
	if name == "" {
		h.respondError(w, "Validation failed", http.StatusBadRequest, []ValidationError{
			{Field: "categoryName", Message: "categoryName is required"},
		})
		return
	}

	result, err := h.service.OrdersWithProductInCategoryTree(r.Context(), name)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	resp := make([]OrderWithTotalPriceResponse, 0, len(result))
	for _, row := range result {
		resp = append(resp, OrderWithTotalPriceResponse{
			ShortInfo:  shortInfoResponse(row.ShortInfo),
			TotalPrice: row.TotalPrice,
		})
	}

	h.respondJSON(w, resp)
}

func (h *ReportHandler) OrderDayStatistic(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.respondError(w, "Method not allowed", http.StatusMethodNotAllowed, nil)
		return
	}

	var validationErrors []ValidationError

	startDate, err := time.Parse(dateLayout, r.URL.Query().Get("startDate"))
	if err != nil {
		validationErrors = append(validationErrors, ValidationError{
			Field:   "startDate",
			Message: "startDate must be a date in YYYY-MM-DD format",
		})
	}
	endDate, err := time.Parse(dateLayout, r.URL.Query().Get("endDate"))
	if err != nil {
		validationErrors = append(validationErrors, ValidationError{
			Field:   "endDate",
			Message: "endDate must be a date in YYYY-MM-DD format",
		})
	}

	if len(validationErrors) > 0 {
		h.respondError(w, "Validation failed", http.StatusBadRequest, validationErrors)
		return
	}

	result, err := h.service.OrderDayStatistic(r.Context(), startDate, endDate)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	resp := make([]OrderDayStatisticResponse, 0, len(result))
	for _, row := range result {
		entry := OrderDayStatisticResponse{
			Day:         row.Day.Format(dateLayout),
			TotalAmount: row.TotalAmount,
			Percentage:  row.Percentage,
		}
		if row.Diff.Valid {
			diff := row.Diff.Decimal
			entry.Diff = &diff
		}
		resp = append(resp, entry)
	}

	h.respondJSON(w, resp)
}

func (h *ReportHandler) CategoryDescendants(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.respondError(w, "Method not allowed", http.StatusMethodNotAllowed, nil)
		return
	}

	name := r.URL.Query().Get("categoryName")
	if name == "" {
		h.respondError(w, "Validation failed", http.StatusBadRequest, []ValidationError{
			{Field: "categoryName", Message: "categoryName is required"},
		})
		return
	}

	result, err := h.service.CategoryDescendants(r.Context(), name)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	if result == nil {
		result = []uuid.UUID{}
	}

	h.respondJSON(w, result)
}

func shortInfoResponse(info domain.OrderShortInfo) OrderShortInfoResponse {
	return OrderShortInfoResponse{
		ID:      info.ID,
		StoreID: info.StoreID,
		Status:  info.Status,
	}
}

func (h *ReportHandler) respondJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

func (h *ReportHandler) respondServiceError(w http.ResponseWriter, err error) {
	h.logger.Error("report_request_failed", "Report request failed", "", nil, err)
	h.respondError(w, "Report execution failed", http.StatusInternalServerError, nil)
}

func (h *ReportHandler) respondError(w http.ResponseWriter, message string, statusCode int, validationErrors []ValidationError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errResp := ErrorResponse{
		Error:  message,
		Errors: validationErrors,
	}

	json.NewEncoder(w).Encode(errResp)
}
