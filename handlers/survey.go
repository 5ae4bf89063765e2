// survey.go - Handles survey reads, creation, and upsert updates

package handlers // Declares the package name

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-survey-backend/models"
)

// SurveyHandler - Survey resource handlers over an injected store
type SurveyHandler struct {
	Store SurveyStore
}

// List - Handler for GET /survey (public)
func (h *SurveyHandler) List(c *gin.Context) {
	surveys, err := h.Store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, surveys)
}

// Get - Handler for GET /survey/:id and GET /survey/update/:id
// A miss returns a null body, matching the raw find-one result.
func (h *SurveyHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	survey, err := h.Store.FindByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, survey)
}

// Create - Handler for POST /survey
// The creation timestamp is server-assigned; client values are ignored.
func (h *SurveyHandler) Create(c *gin.Context) {
	var input models.Survey
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.ID = primitive.NilObjectID // Store assigns the id
	input.Timestamp = time.Now()
	res, err := h.Store.Insert(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// Update - Handler for PUT /survey/update/:id
// Full-field replace with upsert: an unknown id creates the document.
func (h *SurveyHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var input models.Survey
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.Store.Upsert(c.Request.Context(), id, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, res)
}
