package handler

import (
	"Lucky99/internal/pkg/response"
	"Lucky99/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	lbSvc service.LeaderboardService
}

func NewLeaderboardHandler(lbSvc service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{
		lbSvc: lbSvc,
	}
}

func (s *LeaderboardHandler) Top(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	rows, err := s.lbSvc.Top(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rows)
}
