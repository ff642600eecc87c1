package handler

import (
	"Lucky99/internal/api/dto"
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubAnalyticsService struct {
	global   *dto.GlobalAnalyticsDTO
	user     *dto.UserAnalyticsDTO
	gotEmail string
}

func (s *stubAnalyticsService) Global(_ context.Context) (*dto.GlobalAnalyticsDTO, error) {
	return s.global, nil
}

func (s *stubAnalyticsService) User(_ context.Context, email string) (*dto.UserAnalyticsDTO, error) {
	s.gotEmail = email
	return s.user, nil
}

func newAnalyticsRouter(stub *stubAnalyticsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAnalyticsHandler(stub)
	r := gin.New()
	r.GET("/api/analytics/global", h.Global)
	r.GET("/api/analytics/user", h.User)
	return r
}

func TestGlobalAnalyticsEndpoint(t *testing.T) {
	stub := &stubAnalyticsService{global: &dto.GlobalAnalyticsDTO{TotalGames: 3}}
	r := newAnalyticsRouter(stub)

	_, resp := doJSON(t, r, http.MethodGet, "/api/analytics/global", "")
	assert.Equal(t, 200, resp.Code)
}

func TestUserAnalyticsRequiresEmail(t *testing.T) {
	stub := &stubAnalyticsService{user: &dto.UserAnalyticsDTO{}}
	r := newAnalyticsRouter(stub)

	_, resp := doJSON(t, r, http.MethodGet, "/api/analytics/user", "")
	assert.Equal(t, 400, resp.Code)
	assert.Equal(t, "缺少 email 参数", resp.Message)
}

func TestUserAnalyticsPassesEmail(t *testing.T) {
	stub := &stubAnalyticsService{user: &dto.UserAnalyticsDTO{TotalGames: 2}}
	r := newAnalyticsRouter(stub)

	_, resp := doJSON(t, r, http.MethodGet, "/api/analytics/user?email=Alice@Demo.COM", "")
	assert.Equal(t, 200, resp.Code)
	assert.Equal(t, "Alice@Demo.COM", stub.gotEmail)
}
