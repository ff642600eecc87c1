package handler

import (
	"Lucky99/internal/api/dto"
	"Lucky99/internal/pkg/response"
	"Lucky99/internal/service"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	gameSvc service.GameService
}

func NewGameHandler(gameSvc service.GameService) *GameHandler {
	return &GameHandler{
		gameSvc: gameSvc,
	}
}

func (s *GameHandler) StartSession(c *gin.Context) {
	sess, err := s.gameSvc.StartSession(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, sess)
}

func (s *GameHandler) GetSession(c *gin.Context) {
	sessionID := c.Param("session_id")
	sess, err := s.gameSvc.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, sess)
}

func (s *GameHandler) Draw(c *gin.Context) {
	sessionID := c.Param("session_id")

	var req dto.DrawDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	sess, err := s.gameSvc.Draw(c.Request.Context(), sessionID, req.Predictions)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, sess)
}

func (s *GameHandler) SubmitIdentity(c *gin.Context) {
	sessionID := c.Param("session_id")

	var req dto.IdentityDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.gameSvc.SubmitIdentity(c.Request.Context(), sessionID, req.Name, req.Email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *GameHandler) Replay(c *gin.Context) {
	sessionID := c.Param("session_id")
	sess, err := s.gameSvc.Replay(c.Request.Context(), sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, sess)
}
