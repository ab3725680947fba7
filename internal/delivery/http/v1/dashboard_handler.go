package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kodig3618/Job-Tracker/internal/delivery/http/response"
	"github.com/kodig3618/Job-Tracker/internal/domain"
)

// DashboardHandler serves the derived views recomputed after every mutation:
// status tallies, upcoming deadlines, and the recent-activity feed.
type DashboardHandler struct {
	queryUC domain.QueryUsecase
}

func NewDashboardHandler(protected *gin.RouterGroup, queryUC domain.QueryUsecase) {
	handler := &DashboardHandler{queryUC: queryUC}

	dashboard := protected.Group("/dashboard")
	{
		dashboard.GET("/stats", handler.Stats)
		dashboard.GET("/deadlines", handler.Deadlines)
		dashboard.GET("/activity", handler.Activity)
	}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	counts, err := h.queryUC.StatusCounts(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Status counts", counts)
}

func (h *DashboardHandler) Deadlines(c *gin.Context) {
	entries, err := h.queryUC.UpcomingDeadlines(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Upcoming deadlines", entries)
}

func (h *DashboardHandler) Activity(c *gin.Context) {
	views, err := h.queryUC.RecentActivity(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recent activity", views)
}
