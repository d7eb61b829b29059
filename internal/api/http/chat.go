package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Koushikkd07/Soil-Buddy/internal/chat"
	"github.com/Koushikkd07/Soil-Buddy/internal/soil"
)

// chatBody is the POST /chat payload. The soil context comes either from
// soilData or from the latest sample of garden.
type chatBody struct {
	Message  string        `json:"message" validate:"required,max=2000"`
	UserType string        `json:"userType" validate:"required,oneof=child elder"`
	Garden   string        `json:"garden" validate:"omitempty,max=64,hostname_rfc1123"`
	SoilData *soil.Reading `json:"soilData"`
	History  []chat.Turn   `json:"conversationHistory" validate:"max=50,dive"`
}

func registerChatRoutes(v1 fiber.Router, svc Services) {
	v1.Post("/chat", func(c *fiber.Ctx) error {
		var body chatBody
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid chat body")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		reading, err := chatReading(svc, body)
		if err != nil {
			return err
		}

		persona, err := chat.ParsePersona(body.UserType)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		resp := svc.Assistant.Send(c.UserContext(), chat.Request{
			Message: body.Message,
			Reading: reading,
			Persona: persona,
			History: body.History,
		})
		return c.JSON(resp)
	})
}

func chatReading(svc Services, body chatBody) (soil.Reading, error) {
	if body.SoilData != nil {
		return *body.SoilData, nil
	}
	if body.Garden == "" {
		return soil.Reading{}, fiber.NewError(fiber.StatusBadRequest, "soilData or garden is required")
	}

	latest, err := svc.Soil.GetLatest(body.Garden)
	if err != nil {
		return soil.Reading{}, notFoundOr(err, "no soil data for requested garden", "failed to fetch soil data")
	}
	return latest.Reading, nil
}
