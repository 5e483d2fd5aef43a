package controller

import (
	"errors"
	"strconv"

	"exam_coach_backend/internal/model"
	"exam_coach_backend/internal/service"
	"exam_coach_backend/internal/util"
	"exam_coach_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	Service *service.ProgressService
}

func NewProgressController(svc *service.ProgressService) *ProgressController {
	return &ProgressController{Service: svc}
}

type RecordAnswerRequest struct {
	QuestionID     uint   `json:"questionId" binding:"required"`
	SelectedLetter string `json:"selectedLetter" binding:"required"`
}

type RecordAnswerResponse struct {
	Correct bool `json:"correct"`
}

// @Summary Record one answered question into the user's progress
// @Tags coach
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param examCode path string true "Exam code"
// @Param body body RecordAnswerRequest true "Answered question"
// @Success 200 {object} util.Response
// @Router /coach/answers/{examCode} [post]
func (c *ProgressController) RecordAnswer(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	examCode, ok := resolveExamParam(c.Service.Policies, ctx)
	if !ok {
		return
	}

	var req RecordAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	letter, ok := model.ParseChoiceLetter(req.SelectedLetter)
	if !ok {
		util.BadRequest(ctx, util.ErrInvalidChoice.Error())
		return
	}

	correct, err := c.Service.RecordAnswer(user.UserID, req.QuestionID, letter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	monitoring.AnswersRecorded.WithLabelValues(examCode, strconv.FormatBool(correct)).Inc()

	util.Success(ctx, RecordAnswerResponse{Correct: correct})
}

// @Summary Running progress for one exam
// @Tags coach
// @Produce json
// @Security BearerAuth
// @Param examCode path string true "Exam code"
// @Success 200 {object} util.Response
// @Router /coach/progress/{examCode} [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	progress, err := c.Service.GetProgress(user.UserID, ctx.Param("examCode"))
	if err != nil {
		if errors.Is(err, util.ErrUnknownExam) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}

// resolveExamParam validates the examCode path segment, writing the 400
// itself so handlers can bail with a bare return.
func resolveExamParam(policies *service.PolicyTable, ctx *gin.Context) (string, bool) {
	code, _, ok := policies.Resolve(ctx.Param("examCode"))
	if !ok {
		util.BadRequest(ctx, util.ErrUnknownExam.Error())
		return "", false
	}
	return code, true
}
