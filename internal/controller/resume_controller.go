package controller

import (
	"ai_interview_backend/internal/service"
	"ai_interview_backend/internal/util"
	"io"

	"github.com/gin-gonic/gin"
)

type ResumeController struct {
	ResumeService *service.ResumeService
}

func NewResumeController(resumeService *service.ResumeService) *ResumeController {
	return &ResumeController{ResumeService: resumeService}
}

// ParseResume 解析简历文件
// @Summary 解析简历文件
// @Description 支持 docx/pdf，解析出的正文为空视为失败
// @Tags 简历
// @Accept mpfd
// @Produce json
// @Param file formData file true "简历文件"
// @Success 200 {object} map[string]string
// @Failure 400 {object} util.ErrorDetail
// @Router /parse_resume [post]
func (c *ResumeController) ParseResume(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.InternalError(ctx, err)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		util.InternalError(ctx, err)
		return
	}

	text := c.ResumeService.ExtractText(content, fileHeader.Filename)
	if text == "" {
		util.BadRequest(ctx, util.ErrEmptyResume.Error())
		return
	}
	util.OK(ctx, gin.H{"text": text})
}
