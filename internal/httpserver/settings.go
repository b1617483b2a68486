package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	settingssvc "alanshor-pos/internal/service/settings"
)

func storeProfileHandler(svc *settingssvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := svc.StoreProfile(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

func updateStoreProfileHandler(svc *settingssvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in settingssvc.StoreProfileInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		profile, err := svc.UpdateStoreProfile(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

func listUsersHandler(svc *settingssvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := svc.Users(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"users": users, "total": len(users)})
	}
}
