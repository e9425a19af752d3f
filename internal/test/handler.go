package test

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"omnixius-ai/internal/router"
	pkgLog "omnixius-ai/pkg/log"
	"omnixius-ai/pkg/response"
)

type handler struct {
	l      pkgLog.Logger
	router router.Router
}

// HandleClassify runs the intent router without touching the backend
// @Summary Classify a message
// @Description Shows which intent, product id and language the router picks for a message. Disabled in production.
// @Tags test
// @Accept json
// @Produce json
// @Param request body ClassifyRequest true "Message to classify"
// @Success 200 {object} ClassifyResponse
// @Failure 400 {object} response.Resp
// @Router /test/classify [post]
func (h *handler) HandleClassify(c *gin.Context) {
	ctx := c.Request.Context()

	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	verdict := h.router.Classify(ctx, req.Text)

	h.l.Infof(ctx, "internal.test.HandleClassify: intent=%s product_id=%d language=%s",
		verdict.Intent, verdict.ProductID, verdict.Language)

	c.JSON(http.StatusOK, ClassifyResponse{
		Intent:     string(verdict.Intent),
		ProductID:  verdict.ProductID,
		Language:   verdict.Language,
		Normalized: router.Normalize(req.Text),
	})
}

// HandleHealthCheck returns the health status of test endpoints
// @Summary Test health check
// @Description Check if test endpoints are available
// @Tags test
// @Produce json
// @Success 200 {object} HealthCheckResponse
// @Router /test/health [get]
func (h *handler) HandleHealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthCheckResponse{
		Status:  "ok",
		Message: "Test endpoints are available",
	})
}
