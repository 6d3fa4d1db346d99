package handler

import (
	"Minbar/internal/pkg/response"
	"Minbar/internal/pkg/util"
	"Minbar/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultActivityLimit = 10
	maxActivityLimit     = 50
)

type StatsHandler struct {
	statsSvc service.StatsService
}

func NewStatsHandler(statsSvc service.StatsService) *StatsHandler {
	return &StatsHandler{statsSvc: statsSvc}
}

func (s *StatsHandler) GetTotals(c *gin.Context) {
	totals, err := s.statsSvc.Totals(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, totals)
}

func (s *StatsHandler) GetLatest(c *gin.Context) {
	latest, err := s.statsSvc.Latest(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, latest)
}

func (s *StatsHandler) GetRecentActivity(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	limit = util.ClampLimit(limit, defaultActivityLimit, maxActivityLimit)

	items, err := s.statsSvc.RecentActivity(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}
