package controller

import (
	"exam_coach_backend/internal/model"
	"exam_coach_backend/internal/repository"
	"exam_coach_backend/internal/util"
	"exam_coach_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ExamController struct {
	Repo *repository.ExamRepository
}

func NewExamController(repo *repository.ExamRepository) *ExamController {
	return &ExamController{Repo: repo}
}

// @Summary List exam definitions
// @Tags coach
// @Produce json
// @Success 200 {object} util.Response
// @Router /coach/exams [get]
func (c *ExamController) ListExams(ctx *gin.Context) {
	exams, err := c.Repo.FindAll()
	if err != nil {
		// Listing degrades to empty rather than failing the page.
		logger.Log.Warn("exam list unavailable", zap.Error(err))
		util.Success(ctx, []model.Exam{})
		return
	}
	util.Success(ctx, exams)
}
