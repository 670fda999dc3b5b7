package handlers

import (
	"errors"
	"net/http"

	"medicare/models"
	"medicare/services/payment"
	"medicare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler serves the payment endpoints.
type PaymentHandler struct {
	Service payment.PaymentService
	Logger  *zap.Logger
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(svc payment.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Service: svc, Logger: logger}
}

// IntentRequest is the validated POST /create-payment-intent body.
type IntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// CreateIntent handles POST /create-payment-intent. The client confirms
// the payment with Stripe using the returned secret.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req IntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	clientSecret, err := h.Service.CreateIntent(req.Price)
	if err != nil {
		h.Logger.Error("payment intent failed", zap.Error(err))
		utils.SendFailure(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

// PaymentRequest is the validated POST /payments body.
type PaymentRequest struct {
	BookingID     string  `json:"bookingId" binding:"required"`
	TransactionID string  `json:"transactionId" binding:"required"`
	Email         string  `json:"email"`
	Amount        float64 `json:"amount"`
}

// RecordPayment handles POST /payments: it stores the payment and marks
// the booking paid in one store transaction.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	p := &models.Payment{
		BookingID:     req.BookingID,
		TransactionID: req.TransactionID,
		Email:         req.Email,
		Amount:        req.Amount,
	}

	if err := h.Service.Record(c.Request.Context(), p); err != nil {
		switch {
		case payment.IsDuplicate(err):
			utils.SendFailure(c, err.Error())
		case errors.Is(err, payment.ErrNotCompleted):
			utils.SendFailure(c, "Something went wrong, please try again")
		default:
			h.Logger.Error("payment record failed", zap.String("booking", req.BookingID), zap.Error(err))
			utils.SendFailure(c, err.Error())
		}
		return
	}
	utils.SendMessage(c, "Payment successfully completed")
}

// GetPayments handles GET /payments/:bookingId.
func (h *PaymentHandler) GetPayments(c *gin.Context) {
	bookingID := c.Param("bookingId")

	payments, err := h.Service.History(bookingID)
	if err != nil {
		h.Logger.Error("payment lookup failed", zap.String("booking", bookingID), zap.Error(err))
		utils.SendFailure(c, err.Error())
		return
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	utils.SendData(c, payments)
}
