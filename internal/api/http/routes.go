package httpapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Koushikkd07/Soil-Buddy/internal/chat"
	"github.com/Koushikkd07/Soil-Buddy/internal/learning"
	"github.com/Koushikkd07/Soil-Buddy/internal/soil"
	"github.com/Koushikkd07/Soil-Buddy/internal/store"
)

var validate = validator.New()

// gardenLister reports the gardens that have data.
type gardenLister interface {
	Gardens() []string
}

// Services bundles what the handlers depend on.
type Services struct {
	Soil      *soil.Service
	Gardens   gardenLister
	Assistant *chat.Assistant
	Catalog   *learning.Catalog
	Tracker   *learning.Tracker
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, svc Services) {
	v1 := app.Group("/api/v1")

	registerGardenRoutes(v1, svc)
	registerChatRoutes(v1, svc)
	registerLearningRoutes(v1, svc)
}

// gardenParam identifies a garden from the route.
type gardenParam struct {
	Garden string `validate:"required,max=64,hostname_rfc1123"`
}

func parseGarden(c *fiber.Ctx) (string, error) {
	p := gardenParam{Garden: c.Params("garden")}
	if err := validate.Struct(p); err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "invalid garden id")
	}
	return p.Garden, nil
}

// notFoundOr maps store misses to 404 and anything else to a generic 500.
func notFoundOr(err error, notFoundMsg, failMsg string) error {
	if errors.Is(err, store.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, notFoundMsg)
	}
	return fiber.NewError(fiber.StatusInternalServerError, failMsg)
}
