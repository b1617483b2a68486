package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reportsvc "alanshor-pos/internal/service/report"
)

func dailyReportHandler(svc *reportsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := svc.Daily(c.Request.Context(), c.Query("date"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"rows": rows, "total": len(rows)})
	}
}

func weeklyReportHandler(svc *reportsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		points, err := svc.Weekly(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"points": points})
	}
}

func dashboardHandler(svc *reportsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, weekly, err := svc.Dashboard(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"stats": stats, "weeklySales": weekly})
	}
}
