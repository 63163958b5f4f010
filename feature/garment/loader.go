package garment

import (
	"garment-geek/feature/session"

	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new garment catalog feature.
func NewFeature(service *Service, sessions *session.Store) *Feature {
	return &Feature{service: service, handler: NewHandler(service, sessions)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "garment"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.service != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
