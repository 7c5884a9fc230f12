package controller

import (
	"ai_interview_backend/internal/service"
	"ai_interview_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	SessionService *service.SessionService
}

func NewSessionController(sessionService *service.SessionService) *SessionController {
	return &SessionController{SessionService: sessionService}
}

// CreateSession 创建或更新练习会话
// @Summary 创建练习会话
// @Description 按id幂等创建：title总是覆盖，resume_text仅在非空时覆盖
// @Tags 会话
// @Accept mpfd
// @Produce json
// @Param id formData string true "会话ID（前端生成）"
// @Param title formData string true "岗位名称"
// @Param resume_text formData string false "简历全文"
// @Success 200 {object} util.StatusResponse
// @Router /session/create [post]
func (c *SessionController) CreateSession(ctx *gin.Context) {
	id := ctx.PostForm("id")
	title := ctx.PostForm("title")
	resumeText := ctx.PostForm("resume_text")

	if id == "" || title == "" {
		util.BadRequest(ctx, "id and title are required")
		return
	}

	if err := c.SessionService.Upsert(ctx.Request.Context(), id, title, resumeText); err != nil {
		util.InternalError(ctx, err)
		return
	}
	util.StatusSuccess(ctx)
}

// ListSessions 全部会话列表
// @Summary 会话列表
// @Description 按创建时间倒序，createdAt为毫秒时间戳
// @Tags 会话
// @Produce json
// @Success 200 {object} map[string][]service.SessionView
// @Router /sessions [get]
func (c *SessionController) ListSessions(ctx *gin.Context) {
	sessions, err := c.SessionService.List(ctx.Request.Context())
	if err != nil {
		util.InternalError(ctx, err)
		return
	}
	util.OK(ctx, gin.H{"sessions": sessions})
}
