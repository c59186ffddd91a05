package web

import (
	"github.com/gofiber/fiber/v3"
	"github.com/moogar0880/problems"
)

// NotFoundHandler is mounted after all routes and answers unknown paths
// with an RFC 7807 problem document.
func NotFoundHandler(c fiber.Ctx) error {
	problem := problems.NewStatusProblem(404).
		WithInstance(c.Path()).
		WithType("not_found").
		WithDetail("unknown path")

	return c.Status(fiber.StatusNotFound).JSON(problem)
}
