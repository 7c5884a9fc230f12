package util

import (
	"ai_interview_backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StatusResponse 写接口的最小应答
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorDetail 4xx/5xx 应答体，键名与原前端约定保持一致
type ErrorDetail struct {
	Detail string `json:"detail"`
}

func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func StatusSuccess(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{Status: "success"})
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorDetail{Detail: message})
}

func InternalError(c *gin.Context, err error) {
	logger.Log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorDetail{Detail: err.Error()})
}
