// payment.go - Handles payment-intent creation and the payment record log

package handlers // Declares the package name

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PaymentIntentInput struct { // Struct for payment-intent input
	Price float64 `json:"price" binding:"required"` // Amount in major currency units
}

// PaymentHandler - Payment bridge plus the append-only payment record log
type PaymentHandler struct {
	Intents IntentCreator // External payment processor
	Store   DocumentStore // payments collection
}

// CreateIntent - Handler for POST /create-payment-intent
// Converts the price to integer cents and returns the processor's
// client secret. There is no link between the intent created here and
// whatever the client later records via POST /payments.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var input PaymentIntentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	amount := int64(math.Round(input.Price * 100)) // Minor units; rounded so 19.99 -> 1999
	secret, err := h.Intents.CreateIntent(c.Request.Context(), amount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

// List - Handler for GET /payments (token required)
func (h *PaymentHandler) List(c *gin.Context) {
	docs, err := h.Store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, docs)
}

// Record - Handler for POST /payments (open)
// Stores whatever payment record the client submits.
func (h *PaymentHandler) Record(c *gin.Context) {
	var input map[string]any
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.Store.Insert(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, res)
}
