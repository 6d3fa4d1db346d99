package handler

import (
	"Minbar/internal/pkg/consts"
	"Minbar/internal/pkg/response"
	"Minbar/internal/service"

	"github.com/gin-gonic/gin"
)

// EngagementHandler serves the anonymous like/view endpoints. The
// route layer binds each instance to one target kind.
type EngagementHandler struct {
	engagementSvc service.EngagementService
	metricSvc     service.EngagementMetricService
}

func NewEngagementHandler(
	engagementSvc service.EngagementService,
	metricSvc service.EngagementMetricService,
) *EngagementHandler {
	return &EngagementHandler{
		engagementSvc: engagementSvc,
		metricSvc:     metricSvc,
	}
}

func (s *EngagementHandler) RecordView(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			response.Error(c, err)
			return
		}

		result, err := s.engagementSvc.RecordView(
			c.Request.Context(), kind, id,
			c.GetString(consts.AnonHashKey), c.Request.UserAgent())
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, result)
	}
}

func (s *EngagementHandler) Like(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			response.Error(c, err)
			return
		}

		state, err := s.engagementSvc.Like(
			c.Request.Context(), kind, id, c.GetString(consts.AnonHashKey))
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, state)
	}
}

func (s *EngagementHandler) Unlike(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			response.Error(c, err)
			return
		}

		state, err := s.engagementSvc.Unlike(
			c.Request.Context(), kind, id, c.GetString(consts.AnonHashKey))
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, state)
	}
}

func (s *EngagementHandler) LikeStatus(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			response.Error(c, err)
			return
		}

		state, err := s.engagementSvc.LikeStatus(
			c.Request.Context(), kind, id, c.GetString(consts.AnonHashKey))
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, state)
	}
}

func (s *EngagementHandler) GetCounts(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			response.Error(c, err)
			return
		}

		counts, err := s.engagementSvc.GetCounts(c.Request.Context(), kind, id)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, counts)
	}
}

// Recount rebuilds the cached counters for one target from the event
// rows. Exposed for operators; the nightly job covers the normal case.
func (s *EngagementHandler) Recount(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			response.Error(c, err)
			return
		}

		likes, views, err := s.engagementSvc.Recount(c.Request.Context(), kind, id)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, gin.H{"likes": likes, "views": views})
	}
}

func (s *EngagementHandler) Trend7Days(kind string) gin.HandlerFunc {
	return s.trend(kind, 7)
}

func (s *EngagementHandler) Trend30Days(kind string) gin.HandlerFunc {
	return s.trend(kind, 30)
}

func (s *EngagementHandler) trend(kind string, days int) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			response.Error(c, err)
			return
		}

		var points interface{}
		if days == 7 {
			points, err = s.metricSvc.GetTrend7Days(c.Request.Context(), kind, id)
		} else {
			points, err = s.metricSvc.GetTrend30Days(c.Request.Context(), kind, id)
		}
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, points)
	}
}
