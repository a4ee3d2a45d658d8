package analytics

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skillswap/skillswap/config"
	"github.com/skillswap/skillswap/internal/middleware"
	"github.com/skillswap/skillswap/pkg/responses"
)

const defaultTopLimit = 10

// AnalyticsController serves platform-wide skill analytics and per-user stats.
type AnalyticsController struct {
	repo   AnalyticsRepository
	cache  *Cache
	config *config.Config
}

// NewAnalyticsController creates a new AnalyticsController.
func NewAnalyticsController(repo AnalyticsRepository, cache *Cache, cfg *config.Config) *AnalyticsController {
	return &AnalyticsController{
		repo:   repo,
		cache:  cache,
		config: cfg,
	}
}

// GetSkillAnalytics godoc
// @Summary Platform-wide skill analytics
// @Description Per-skill teach/learn/request counts. With top=teach|learn|popular only the highest-ranking skills on that column are returned, controlled by limit.
// @Tags Analytics
// @Produce json
// @Param top query string false "Ranking column" Enums(teach, learn, popular)
// @Param limit query int false "Max entries for a ranking (default 10)"
// @Success 200 {object} responses.SuccessResponse{data=[]SkillAnalytics}
// @Failure 400 {object} responses.ErrorResponse "Unknown ranking"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /analytics/skills [get]
// @Security BearerAuth
func (ac *AnalyticsController) GetSkillAnalytics(c *gin.Context) {
	kind := RankKind(c.Query("top"))
	if kind != "" && !ValidRankKind(kind) {
		responses.SendError(c, http.StatusBadRequest, "Unknown ranking, use teach, learn or popular", nil)
		return
	}

	entries, err := ac.cache.GetSkillRollup(c.Request.Context())
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			log.Printf("analytics cache read failed: %v", err)
		}
		entries, err = ac.repo.SkillRollup()
		if err != nil {
			responses.SendError(c, http.StatusInternalServerError, "Failed to compute skill analytics", err.Error())
			return
		}
		ac.cache.SetSkillRollup(c.Request.Context(), entries)
	}

	if kind != "" {
		limit := defaultTopLimit
		if raw := c.Query("limit"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
				limit = parsed
			}
		}
		entries = TopSkills(entries, kind, limit)
	}
	if entries == nil {
		entries = []SkillAnalytics{}
	}

	responses.SendSuccess(c, http.StatusOK, "Skill analytics retrieved successfully", entries)
}

// GetMyStats godoc
// @Summary The logged-in user's activity stats
// @Tags Analytics
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=UserStats}
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /analytics/me [get]
// @Security BearerAuth
func (ac *AnalyticsController) GetMyStats(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized", err.Error())
		return
	}

	stats, err := ac.cache.GetUserStats(c.Request.Context(), userID)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			log.Printf("analytics cache read failed: %v", err)
		}
		stats, err = ac.repo.StatsForUser(userID)
		if err != nil {
			responses.SendError(c, http.StatusInternalServerError, "Failed to compute user stats", err.Error())
			return
		}
		ac.cache.SetUserStats(c.Request.Context(), userID, stats)
	}

	responses.SendSuccess(c, http.StatusOK, "User stats retrieved successfully", stats)
}
