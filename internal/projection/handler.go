package projection

import (
	"errors"
	"net/http"

	httperr "github.com/aevon-lab/rental-analytics/internal/core/errors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all projection API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/analytics", s.HandleQueryAnalytics)
	r.GET("/v1/analytics/summary", s.HandleQuerySummary)
	r.GET("/v1/users/:user_id/bookings", s.HandleQueryUserBookings)
}

// HandleQueryAnalytics handles GET /v1/analytics
// Query parameters: at (RFC3339, optional)
func (s *Service) HandleQueryAnalytics(c *gin.Context) {
	req, ok := bindAnalyticsRequest(c)
	if !ok {
		return
	}

	resp, err := s.QueryAnalytics(c.Request.Context(), req)
	if err != nil {
		writeQueryError(c, err, "Failed to compute analytics")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleQuerySummary handles GET /v1/analytics/summary
func (s *Service) HandleQuerySummary(c *gin.Context) {
	req, ok := bindAnalyticsRequest(c)
	if !ok {
		return
	}

	resp, err := s.QuerySummary(c.Request.Context(), req)
	if err != nil {
		writeQueryError(c, err, "Failed to compute analytics summary")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleQueryUserBookings handles GET /v1/users/:user_id/bookings
func (s *Service) HandleQueryUserBookings(c *gin.Context) {
	resp, err := s.QueryUserBookings(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		writeQueryError(c, err, "Failed to list user bookings")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func bindAnalyticsRequest(c *gin.Context) (AnalyticsRequest, bool) {
	var req AnalyticsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidQueryError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
		return req, false
	}
	return req, true
}

func writeQueryError(c *gin.Context, err error, message string) {
	if errors.Is(err, ErrInvalidQuery) {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidQueryError,
			Message:   "Invalid analytics query",
			Details:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
		ErrorType: httperr.HttpInternalError,
		Message:   message,
		Details:   err.Error(),
	})
}
