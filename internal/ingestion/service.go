package ingestion

import (
	"github.com/aevon-lab/rental-analytics/internal/core/storage"
	"github.com/gin-gonic/gin"
)

type Service struct {
	store            storage.FleetStore
	maxBodySizeBytes int
}

func NewService(repo storage.FleetStore, maxBodySizeMB int) *Service {
	if repo == nil {
		panic("ingestion: store must not be nil")
	}
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1 // default to 1MB
	}
	return &Service{
		store:            repo,
		maxBodySizeBytes: maxBodySizeMB * 1024 * 1024,
	}
}

// RegisterRoutes registers the ingestion service routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/v1/bookings", s.IngestBookingHandler)
	r.POST("/v1/vehicles", s.IngestVehicleHandler)
	r.POST("/v1/users", s.IngestUserHandler)
}
