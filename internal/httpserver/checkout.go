package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"alanshor-pos/internal/checkout"
	"alanshor-pos/internal/domain"
)

var transactionsConfirmed = promauto.NewCounter(prometheus.CounterOpts{
	Name: "pos_transactions_confirmed_total",
	Help: "Number of checkout confirmations accepted.",
})

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type scanRequest struct {
	Barcode string `json:"barcode" binding:"required"`
}

type selectPaymentRequest struct {
	Method       domain.PaymentMethod `json:"method" binding:"required"`
	CashReceived int64                `json:"cashReceived"`
}

func openSessionHandler(mgr *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusCreated, mgr.Open())
	}
}

func sessionHandler(mgr *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := mgr.Snapshot(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

func closeSessionHandler(mgr *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := mgr.Close(c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func addItemHandler(mgr *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId required"})
			return
		}
		if err := mgr.AddItem(c.Request.Context(), c.Param("id"), req.ProductID); err != nil {
			respondError(c, err)
			return
		}
		respondSession(c, mgr)
	}
}

func setQuantityHandler(mgr *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req setQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity required"})
			return
		}
		if err := mgr.SetQuantity(c.Param("id"), c.Param("productId"), req.Quantity); err != nil {
			respondError(c, err)
			return
		}
		respondSession(c, mgr)
	}
}

func removeItemHandler(mgr *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := mgr.RemoveItem(c.Param("id"), c.Param("productId")); err != nil {
			respondError(c, err)
			return
		}
		respondSession(c, mgr)
	}
}

func scanHandler(mgr *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req scanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "barcode required"})
			return
		}
		matched, err := mgr.Scan(c.Request.Context(), c.Param("id"), req.Barcode)
		if err != nil {
			respondError(c, err)
			return
		}
		view, err := mgr.Snapshot(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"matched": matched, "session": view})
	}
}

func payHandler(mgr *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := mgr.Pay(c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		respondSession(c, mgr)
	}
}

func selectPaymentHandler(mgr *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req selectPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "method required"})
			return
		}
		if err := mgr.SelectPayment(c.Param("id"), req.Method, req.CashReceived); err != nil {
			respondError(c, err)
			return
		}
		respondSession(c, mgr)
	}
}

func confirmHandler(mgr *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := mgr.Confirm(c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		transactionsConfirmed.Inc()
		respondSession(c, mgr)
	}
}

func cancelPaymentHandler(mgr *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := mgr.CancelPayment(c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		respondSession(c, mgr)
	}
}

func respondSession(c *gin.Context, mgr *checkout.Manager) {
	view, err := mgr.Snapshot(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
