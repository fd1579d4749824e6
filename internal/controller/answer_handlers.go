package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/gooodforeal/que-ans-api/internal/dto"
)

// CreateAnswerHandler godoc
// @Summary Add an answer to a question
// @Tags answers
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param answer body dto.CreateAnswerRequest true "Answer data"
// @Success 201 {object} dto.Response[dto.AnswerResponse]
// @Failure 404 {object} dto.Response[any] "Question not found"
// @Failure 422 {object} dto.Response[dto.ValidationErrorData] "Validation failure"
// @Router /questions/{id}/answers [post]
func (ctrl *Controller) CreateAnswerHandler(c *gin.Context) {
	questionID, ok := parsePathID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateAnswerRequest")
		respondBindingError(c, err)
		return
	}

	answer, err := ctrl.answerSvc.CreateAnswer(questionID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Answer created successfully", answer)
}

// GetAnswerHandler godoc
// @Summary Get an answer by ID
// @Tags answers
// @Produce json
// @Param id path int true "Answer ID"
// @Success 200 {object} dto.Response[dto.AnswerResponse]
// @Failure 404 {object} dto.Response[any] "Answer not found"
// @Failure 422 {object} dto.Response[dto.ValidationErrorData] "Invalid ID"
// @Router /answers/{id} [get]
func (ctrl *Controller) GetAnswerHandler(c *gin.Context) {
	id, ok := parsePathID(c, "id")
	if !ok {
		return
	}

	answer, err := ctrl.answerSvc.GetAnswerByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Answer retrieved successfully", answer)
}

// DeleteAnswerHandler godoc
// @Summary Delete an answer
// @Tags answers
// @Produce json
// @Param id path int true "Answer ID"
// @Success 200 {object} dto.Response[dto.DeleteResponse]
// @Failure 404 {object} dto.Response[any] "Answer not found"
// @Failure 422 {object} dto.Response[dto.ValidationErrorData] "Invalid ID"
// @Router /answers/{id} [delete]
func (ctrl *Controller) DeleteAnswerHandler(c *gin.Context) {
	id, ok := parsePathID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.answerSvc.DeleteAnswer(id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Answer deleted successfully", dto.DeleteResponse{ID: id})
}
