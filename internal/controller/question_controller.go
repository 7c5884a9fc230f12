package controller

import (
	"ai_interview_backend/internal/service"
	"ai_interview_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	InterviewService *service.InterviewService
}

func NewQuestionController(interviewService *service.InterviewService) *QuestionController {
	return &QuestionController{InterviewService: interviewService}
}

// CreateQuestion 手动添加题目
// @Summary 手动添加题目
// @Description 会话不存在时返回 status=error 的软错误
// @Tags 题目
// @Accept mpfd
// @Produce json
// @Param session_id formData string true "会话ID"
// @Param text formData string true "题目内容"
// @Param type formData string true "题目类别"
// @Success 200 {object} map[string]string
// @Router /question/create [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	sessionID := ctx.PostForm("session_id")
	text := ctx.PostForm("text")
	qType := ctx.PostForm("type")

	if sessionID == "" || text == "" || qType == "" {
		util.BadRequest(ctx, "session_id, text and type are required")
		return
	}

	id, err := c.InterviewService.CreateQuestion(sessionID, text, qType)
	if err != nil {
		// 保持原前端约定：落库失败不走HTTP错误码
		util.OK(ctx, gin.H{"status": "error", "msg": err.Error()})
		return
	}
	util.OK(ctx, gin.H{"status": "success", "id": id})
}

// DeleteQuestion 删除题目
// @Summary 删除题目
// @Description 级联删除名下所有回答；id不存在也返回成功
// @Tags 题目
// @Produce json
// @Param question_id query string true "题目ID"
// @Success 200 {object} util.StatusResponse
// @Router /question/delete [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	id := ctx.Query("question_id")
	if id == "" {
		util.BadRequest(ctx, "question_id is required")
		return
	}

	if err := c.InterviewService.DeleteQuestion(id); err != nil {
		util.InternalError(ctx, err)
		return
	}
	util.StatusSuccess(ctx)
}

// Generate AI生成面试题
// @Summary AI生成面试题
// @Description 大模型出题并落库；模型调用失败时返回空列表
// @Tags 题目
// @Accept json
// @Produce json
// @Param request body service.GenerateRequest true "出题参数"
// @Success 200 {object} map[string][]service.QuestionView
// @Router /generate [post]
func (c *QuestionController) Generate(ctx *gin.Context) {
	var req service.GenerateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	questions, err := c.InterviewService.GenerateQuestions(ctx.Request.Context(), &req)
	if err != nil {
		util.InternalError(ctx, err)
		return
	}
	util.OK(ctx, gin.H{"questions": questions})
}

// ListQuestions 会话题目列表
// @Summary 会话题目列表
// @Description 按创建时间正序
// @Tags 题目
// @Produce json
// @Param session_id query string true "会话ID"
// @Success 200 {object} map[string][]service.QuestionView
// @Router /questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	sessionID := ctx.Query("session_id")
	if sessionID == "" {
		util.BadRequest(ctx, "session_id is required")
		return
	}

	questions, err := c.InterviewService.ListQuestions(sessionID)
	if err != nil {
		util.InternalError(ctx, err)
		return
	}
	util.OK(ctx, gin.H{"questions": questions})
}
