package controller

import (
	"errors"
	"strconv"
	"strings"

	"exam_coach_backend/internal/model"
	"exam_coach_backend/internal/service"
	"exam_coach_backend/internal/util"
	"exam_coach_backend/pkg/logger"
	"exam_coach_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PracticeController struct {
	Service *service.PracticeService
}

func NewPracticeController(svc *service.PracticeService) *PracticeController {
	return &PracticeController{Service: svc}
}

// @Summary Build a timed practice session
// @Tags coach
// @Produce json
// @Param examCode path string true "Exam code"
// @Param count query int false "Question count (defaults to the exam's outline count)"
// @Success 200 {object} util.Response
// @Router /coach/exams/{examCode}/practice-session [get]
func (c *PracticeController) GetPracticeSession(ctx *gin.Context) {
	examCode := ctx.Param("examCode")

	count := 0
	if countStr := ctx.Query("count"); countStr != "" {
		n, err := strconv.Atoi(countStr)
		if err != nil || n <= 0 {
			util.BadRequest(ctx, "invalid count")
			return
		}
		count = n
	}
	if count > 200 {
		count = 200
	}

	session, err := c.Service.BuildSession(examCode, count)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUnknownExam):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrNoQuestionsAvailable):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, session)
}

// @Summary Check one answer without recording progress
// @Tags coach
// @Produce json
// @Param examCode path string true "Exam code"
// @Param questionId query int true "Question id"
// @Param selectedLetter query string true "Chosen letter A-D"
// @Success 200 {object} util.Response
// @Router /coach/exams/{examCode}/check [get]
func (c *PracticeController) CheckAnswer(ctx *gin.Context) {
	examCode := ctx.Param("examCode")

	questionID, err := strconv.ParseUint(ctx.Query("questionId"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid questionId")
		return
	}

	letter, ok := model.ParseChoiceLetter(ctx.Query("selectedLetter"))
	if !ok {
		util.BadRequest(ctx, util.ErrInvalidChoice.Error())
		return
	}

	result, err := c.Service.CheckAnswer(examCode, uint(questionID), letter)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUnknownExam):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrQuestionNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}

// @Summary Draw one random active question
// @Tags coach
// @Produce json
// @Param examCode path string true "Exam code"
// @Param excludeIds query string false "Comma-separated question ids to skip"
// @Success 200 {object} util.Response
// @Router /coach/questions/{examCode} [get]
func (c *PracticeController) GetRandomQuestion(ctx *gin.Context) {
	examCode := ctx.Param("examCode")

	var excludeIDs []uint
	if raw := ctx.Query("excludeIds"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
			if err != nil {
				continue
			}
			excludeIDs = append(excludeIDs, uint(id))
		}
	}

	question, err := c.Service.RandomQuestion(examCode, excludeIDs)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUnknownExam):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrNoQuestionsAvailable):
			util.NotFound(ctx)
		default:
			logger.Log.Warn("random question unavailable", zap.Error(err))
			util.NotFound(ctx)
		}
		return
	}

	util.Success(ctx, question)
}

type ScoreRequest struct {
	Answers []service.ScoreAnswer `json:"answers" binding:"required"`
	Save    bool                  `json:"save"`
}

// @Summary Score a submitted answer set, optionally saving the attempt
// @Tags coach
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param examCode path string true "Exam code"
// @Param body body ScoreRequest true "Submitted answers"
// @Success 200 {object} util.Response
// @Router /coach/exams/{examCode}/score [post]
func (c *PracticeController) ScoreExam(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	examCode := ctx.Param("examCode")

	var req ScoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	score, err := c.Service.Score(examCode, req.Answers)
	if err != nil {
		if errors.Is(err, util.ErrUnknownExam) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	if req.Save {
		// A save that fails must fail loudly; dropped attempts are data loss.
		if err := c.Service.SaveResult(user.UserID, examCode, score); err != nil {
			util.LogInternalError(ctx, err)
			return
		}
	}

	monitoring.ExamsScored.WithLabelValues(examCode, strconv.FormatBool(score.Passed)).Inc()

	util.Success(ctx, score)
}

// @Summary Attempt history, newest first
// @Tags coach
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /coach/history [get]
func (c *PracticeController) GetHistory(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	attempts, err := c.Service.History(user.UserID)
	if err != nil {
		logger.Log.Warn("attempt history unavailable", zap.Error(err))
		util.Success(ctx, []model.ExamAttempt{})
		return
	}
	util.Success(ctx, attempts)
}

// @Summary Attempt history for one exam, newest first
// @Tags coach
// @Produce json
// @Security BearerAuth
// @Param examCode path string true "Exam code"
// @Success 200 {object} util.Response
// @Router /coach/exams/{examCode}/history [get]
func (c *PracticeController) GetExamHistory(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	attempts, err := c.Service.HistoryByExam(user.UserID, ctx.Param("examCode"))
	if err != nil {
		if errors.Is(err, util.ErrUnknownExam) {
			util.BadRequest(ctx, err.Error())
			return
		}
		logger.Log.Warn("attempt history unavailable", zap.Error(err))
		util.Success(ctx, []model.ExamAttempt{})
		return
	}
	util.Success(ctx, attempts)
}
