package controller

import (
	"ai_interview_backend/internal/service"
	"ai_interview_backend/internal/util"
	"io"

	"github.com/gin-gonic/gin"
)

type AttemptController struct {
	InterviewService *service.InterviewService
}

func NewAttemptController(interviewService *service.InterviewService) *AttemptController {
	return &AttemptController{InterviewService: interviewService}
}

// Analyze 上传录音并生成AI点评
// @Summary 分析口述回答
// @Description 存录音、转写、大模型点评并落库；点评失败时analysis带error字段
// @Tags 回答
// @Accept mpfd
// @Produce json
// @Param file formData file true "录音文件"
// @Param question_text formData string true "题目内容"
// @Param job_title formData string true "岗位名称"
// @Param resume_text formData string false "简历全文"
// @Param question_id formData string true "题目ID"
// @Param attempt_id formData string true "回答ID（前端生成）"
// @Success 200 {object} service.AnalyzeResult
// @Failure 500 {object} util.ErrorDetail
// @Router /analyze [post]
func (c *AttemptController) Analyze(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	in := &service.AnalyzeInput{
		QuestionText: ctx.PostForm("question_text"),
		JobTitle:     ctx.PostForm("job_title"),
		ResumeText:   ctx.PostForm("resume_text"),
		QuestionID:   ctx.PostForm("question_id"),
		AttemptID:    ctx.PostForm("attempt_id"),
		Filename:     fileHeader.Filename,
	}
	if in.QuestionID == "" || in.AttemptID == "" || in.QuestionText == "" || in.JobTitle == "" {
		util.BadRequest(ctx, "question_text, job_title, question_id and attempt_id are required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.InternalError(ctx, err)
		return
	}
	defer file.Close()

	in.Audio, err = io.ReadAll(file)
	if err != nil {
		util.InternalError(ctx, err)
		return
	}

	result, err := c.InterviewService.AnalyzeAnswer(ctx.Request.Context(), in)
	if err != nil {
		util.InternalError(ctx, err)
		return
	}
	util.OK(ctx, result)
}

// ListAttempts 题目的回答历史
// @Summary 回答历史
// @Description 按创建时间正序，无评分的回答 analysis 为 null
// @Tags 回答
// @Produce json
// @Param question_id query string true "题目ID"
// @Success 200 {object} map[string][]service.AttemptView
// @Router /attempts [get]
func (c *AttemptController) ListAttempts(ctx *gin.Context) {
	questionID := ctx.Query("question_id")
	if questionID == "" {
		util.BadRequest(ctx, "question_id is required")
		return
	}

	attempts, err := c.InterviewService.ListAttempts(questionID)
	if err != nil {
		util.InternalError(ctx, err)
		return
	}
	util.OK(ctx, gin.H{"attempts": attempts})
}
