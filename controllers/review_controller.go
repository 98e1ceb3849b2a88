package controllers

import (
	"github.com/gin-gonic/gin"

	"shopmart/models"
	"shopmart/services"
)

type ReviewController struct {
	reviewService *services.ReviewService
}

func NewReviewController(reviewService *services.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// GetMyReviews godoc
// @Summary List own reviews
// @Description Get all reviews written by the caller
// @Tags Reviews
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /reviews [get]
func (ctrl *ReviewController) GetMyReviews(c *gin.Context) {
	reviews, err := ctrl.reviewService.ListByUser(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Reviews retrieved", Data: reviews})
}

// AddReview godoc
// @Summary Add review
// @Description Add a review for an existing product
// @Tags Reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateReviewRequest true "Review"
// @Success 201 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /reviews [post]
func (ctrl *ReviewController) AddReview(c *gin.Context) {
	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	review, err := ctrl.reviewService.Add(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(201, models.Response{Success: true, Message: "Review added successfully", Data: review})
}

// UpdateReview godoc
// @Summary Update review
// @Description Update a review written by the caller
// @Tags Reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Param request body models.UpdateReviewRequest true "Review"
// @Success 200 {object} models.Response
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /reviews/{id} [put]
func (ctrl *ReviewController) UpdateReview(c *gin.Context) {
	var req models.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	review, err := ctrl.reviewService.Update(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Review updated successfully", Data: review})
}

// DeleteReview godoc
// @Summary Delete review
// @Description Delete a review written by the caller
// @Tags Reviews
// @Security BearerAuth
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} models.Response
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /reviews/{id} [delete]
func (ctrl *ReviewController) DeleteReview(c *gin.Context) {
	if err := ctrl.reviewService.Delete(c.Request.Context(), c.Param("id"), c.GetString("user_id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Review deleted successfully"})
}
