package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/gooodforeal/que-ans-api/internal/dto"
)

// GetAllQuestionsHandler godoc
// @Summary List all questions
// @Description Retrieve all questions ordered by creation time, newest first
// @Tags questions
// @Produce json
// @Success 200 {object} dto.Response[[]dto.QuestionResponse]
// @Failure 503 {object} dto.Response[any] "Database unavailable"
// @Router /questions [get]
func (ctrl *Controller) GetAllQuestionsHandler(c *gin.Context) {
	questions, err := ctrl.questionSvc.GetAllQuestions()
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Questions retrieved successfully", questions)
}

// CreateQuestionHandler godoc
// @Summary Create a new question
// @Tags questions
// @Accept json
// @Produce json
// @Param question body dto.CreateQuestionRequest true "Question data"
// @Success 201 {object} dto.Response[dto.QuestionResponse]
// @Failure 422 {object} dto.Response[dto.ValidationErrorData] "Validation failure"
// @Failure 400 {object} dto.Response[any] "Integrity violation"
// @Router /questions [post]
func (ctrl *Controller) CreateQuestionHandler(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateQuestionRequest")
		respondBindingError(c, err)
		return
	}

	question, err := ctrl.questionSvc.CreateQuestion(req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Question created successfully", question)
}

// GetQuestionHandler godoc
// @Summary Get a question with its answers
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.Response[dto.QuestionWithAnswersResponse]
// @Failure 404 {object} dto.Response[any] "Question not found"
// @Failure 422 {object} dto.Response[dto.ValidationErrorData] "Invalid ID"
// @Router /questions/{id} [get]
func (ctrl *Controller) GetQuestionHandler(c *gin.Context) {
	id, ok := parsePathID(c, "id")
	if !ok {
		return
	}

	question, err := ctrl.questionSvc.GetQuestionByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Question retrieved successfully", question)
}

// DeleteQuestionHandler godoc
// @Summary Delete a question and all of its answers
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.Response[dto.DeleteResponse]
// @Failure 404 {object} dto.Response[any] "Question not found"
// @Failure 422 {object} dto.Response[dto.ValidationErrorData] "Invalid ID"
// @Router /questions/{id} [delete]
func (ctrl *Controller) DeleteQuestionHandler(c *gin.Context) {
	id, ok := parsePathID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.questionSvc.DeleteQuestion(id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Question deleted successfully", dto.DeleteResponse{ID: id})
}
