package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gooodforeal/que-ans-api/config"
	"github.com/gooodforeal/que-ans-api/internal/dto"
	"github.com/gooodforeal/que-ans-api/internal/service"
)

type Controller struct {
	questionSvc service.QuestionService
	answerSvc   service.AnswerService
	cfg         *config.Config
}

func NewController(qSvc service.QuestionService, aSvc service.AnswerService, cfg *config.Config) *Controller {
	return &Controller{
		questionSvc: qSvc,
		answerSvc:   aSvc,
		cfg:         cfg,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	router.GET("/", ctrl.RootHandler)
	router.GET("/health", ctrl.HealthHandler)

	apiV1 := router.Group("/api/v1")
	{
		questions := apiV1.Group("/questions")
		questions.GET("", ctrl.GetAllQuestionsHandler)
		questions.POST("", ctrl.CreateQuestionHandler)
		questions.GET("/:id", ctrl.GetQuestionHandler)
		questions.DELETE("/:id", ctrl.DeleteQuestionHandler)
		questions.POST("/:id/answers", ctrl.CreateAnswerHandler)

		answers := apiV1.Group("/answers")
		answers.GET("/:id", ctrl.GetAnswerHandler)
		answers.DELETE("/:id", ctrl.DeleteAnswerHandler)
	}
}

// RootHandler godoc
// @Summary Service information
// @Tags system
// @Produce json
// @Success 200 {object} dto.Response[map[string]string]
// @Router / [get]
func (ctrl *Controller) RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, dto.Response[gin.H]{
		Message: ctrl.cfg.ProjectName,
		Data: gin.H{
			"version": ctrl.cfg.APIVersion,
			"docs":    "/swagger/index.html",
		},
	})
}

// HealthHandler godoc
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} dto.Response[map[string]string]
// @Router /health [get]
func (ctrl *Controller) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, dto.Response[gin.H]{
		Message: "Service is healthy",
		Data:    gin.H{"status": "healthy"},
	})
}
