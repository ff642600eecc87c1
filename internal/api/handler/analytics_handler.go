package handler

import (
	"Lucky99/internal/pkg/response"
	"Lucky99/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsSvc service.AnalyticsService
}

func NewAnalyticsHandler(analyticsSvc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsSvc: analyticsSvc,
	}
}

func (s *AnalyticsHandler) Global(c *gin.Context) {
	result, err := s.analyticsSvc.Global(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *AnalyticsHandler) User(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.Fail(c, response.BadRequest, "缺少 email 参数")
		return
	}

	result, err := s.analyticsSvc.User(c.Request.Context(), email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
