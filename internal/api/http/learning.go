package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Koushikkd07/Soil-Buddy/internal/learning"
)

// learnerBody identifies the learner for actions without other input.
type learnerBody struct {
	UserID string `json:"userId" validate:"required,max=64"`
}

// quizBody is the POST /lessons/:id/quiz payload; answers are keyed by question id.
type quizBody struct {
	UserID  string            `json:"userId" validate:"required,max=64"`
	Answers map[string]string `json:"answers" validate:"required"`
}

func registerLearningRoutes(v1 fiber.Router, svc Services) {
	v1.Get("/categories", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"categories": svc.Catalog.Categories})
	})

	v1.Get("/badges", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"badges": svc.Catalog.Badges})
	})

	v1.Get("/lessons", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"lessons": svc.Catalog.Lessons(c.Query("category"))})
	})

	v1.Get("/lessons/:id", func(c *fiber.Ctx) error {
		lesson, err := svc.Catalog.Lesson(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return c.JSON(lesson)
	})

	v1.Post("/lessons/:id/quiz", func(c *fiber.Ctx) error {
		var body quizBody
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid quiz body")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		res, err := svc.Tracker.SubmitQuiz(body.UserID, c.Params("id"), body.Answers)
		switch {
		case err == nil:
			return c.JSON(res)
		case errors.Is(err, learning.ErrLessonNotFound), errors.Is(err, learning.ErrNoQuiz):
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		case errors.Is(err, learning.ErrLocked):
			return fiber.NewError(fiber.StatusConflict, err.Error())
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "failed to grade quiz")
		}
	})

	v1.Post("/lessons/:id/complete", func(c *fiber.Ctx) error {
		var body learnerBody
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid completion body")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		progress, err := svc.Tracker.CompleteLesson(body.UserID, c.Params("id"))
		switch {
		case err == nil:
			return c.JSON(progress)
		case errors.Is(err, learning.ErrLessonNotFound):
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		case errors.Is(err, learning.ErrLocked), errors.Is(err, learning.ErrQuizRequired):
			return fiber.NewError(fiber.StatusConflict, err.Error())
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "failed to complete lesson")
		}
	})

	v1.Get("/learners/:user/progress", func(c *fiber.Ctx) error {
		return c.JSON(svc.Tracker.Progress(c.Params("user")))
	})

	v1.Get("/facts", func(c *fiber.Ctx) error {
		garden := c.Query("garden")
		if garden == "" {
			return c.JSON(fiber.Map{"facts": svc.Catalog.Facts})
		}

		latest, err := svc.Soil.GetLatest(garden)
		if err != nil {
			return notFoundOr(err, "no soil data for requested garden", "failed to fetch soil data")
		}
		return c.JSON(fiber.Map{"facts": svc.Catalog.FactsFor(latest.Reading)})
	})
}
