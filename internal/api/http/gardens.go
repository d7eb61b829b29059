package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Koushikkd07/Soil-Buddy/internal/soil"
)

func registerGardenRoutes(v1 fiber.Router, svc Services) {
	v1.Get("/gardens", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"gardens": svc.Gardens.Gardens()})
	})

	g := v1.Group("/gardens/:garden")

	g.Get("/readings/latest", func(c *fiber.Ctx) error {
		garden, err := parseGarden(c)
		if err != nil {
			return err
		}

		sample, err := svc.Soil.GetLatest(garden)
		if err != nil {
			return notFoundOr(err, "no soil data for requested garden", "failed to fetch soil data")
		}
		return c.JSON(sample)
	})

	g.Get("/readings", func(c *fiber.Ctx) error {
		garden, period, err := parseGardenPeriod(c)
		if err != nil {
			return err
		}

		samples, err := svc.Soil.History(garden, period)
		if err != nil {
			return notFoundOr(err, "no soil history for requested period", "failed to fetch soil history")
		}

		return c.JSON(fiber.Map{
			"garden":  garden,
			"period":  period,
			"samples": samples,
		})
	})

	g.Post("/readings", func(c *fiber.Ctx) error {
		garden, err := parseGarden(c)
		if err != nil {
			return err
		}

		var r soil.Reading
		if err := c.BodyParser(&r); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid reading body")
		}
		if err := validate.Struct(r); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		sample := svc.Soil.Record(garden, r)
		return c.Status(fiber.StatusCreated).JSON(sample)
	})

	g.Get("/trends", func(c *fiber.Ctx) error {
		garden, period, err := parseGardenPeriod(c)
		if err != nil {
			return err
		}

		trends, err := svc.Soil.Trends(garden, period)
		if err != nil {
			return notFoundOr(err, "no soil history for requested period", "failed to compute trends")
		}

		return c.JSON(fiber.Map{
			"garden": garden,
			"period": period,
			"trends": trends,
		})
	})

	g.Get("/alerts", func(c *fiber.Ctx) error {
		garden, err := parseGarden(c)
		if err != nil {
			return err
		}

		alerts, err := svc.Soil.Alerts(garden)
		if err != nil {
			return notFoundOr(err, "no soil data for requested garden", "failed to evaluate alerts")
		}
		return c.JSON(fiber.Map{"alerts": alerts})
	})

	g.Post("/alerts/:id/ack", func(c *fiber.Ctx) error {
		garden, err := parseGarden(c)
		if err != nil {
			return err
		}

		if err := svc.Soil.Acknowledge(garden, c.Params("id")); err != nil {
			if errors.Is(err, soil.ErrUnknownAlert) {
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to acknowledge alert")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	g.Get("/report", func(c *fiber.Ctx) error {
		garden, err := parseGarden(c)
		if err != nil {
			return err
		}

		report, err := svc.Soil.Report(garden)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to build weekly report")
		}
		return c.JSON(report)
	})
}

func parseGardenPeriod(c *fiber.Ctx) (string, soil.Period, error) {
	garden, err := parseGarden(c)
	if err != nil {
		return "", "", err
	}

	period, err := soil.ParsePeriod(c.Query("period"))
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return garden, period, nil
}
