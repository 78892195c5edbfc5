package controllers

import (
	"context"
	"encoding/json"

	"goodsoil/models"

	"github.com/gin-gonic/gin"
)

type GardenPlanController struct{}

func NewGardenPlanController() *GardenPlanController {
	return &GardenPlanController{}
}

// Submit godoc
// @Summary Submit garden plan questionnaire
// @Description Store a custom garden plan request from the storefront questionnaire
// @Tags GardenPlans
// @Accept json
// @Produce json
// @Param request body models.GardenPlanRequest true "Questionnaire answers"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /garden-plan-submission [post]
func (ctrl *GardenPlanController) Submit(c *gin.Context) {
	var req models.GardenPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid garden plan submission."})
		return
	}
	if req.Name == "" || req.Email == "" || len(req.Space) == 0 || len(req.Grow) == 0 || req.Experience == "" {
		c.JSON(400, gin.H{"success": false, "message": "Name, email, space, grow and experience are required."})
		return
	}

	// Multi-select answers are stored as JSON arrays in text columns.
	spaceJSON, _ := json.Marshal(req.Space)
	growJSON, _ := json.Marshal(req.Grow)

	var id int
	err := models.DB.QueryRow(context.Background(),
		`INSERT INTO garden_plans (name, email, phone, space, grow, experience, specific_plants, seeds, fertilizer, mixes, pots, guidance)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`,
		req.Name, req.Email, req.Phone, string(spaceJSON), string(growJSON), req.Experience,
		req.SpecificPlants, req.Seeds, req.Fertilizer, req.Mixes, req.Pots, req.Guidance).Scan(&id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to submit garden plan"})
		return
	}

	c.JSON(201, gin.H{
		"success":      true,
		"message":      "Garden plan submitted successfully! We'll be in touch soon.",
		"submissionId": id,
	})
}
