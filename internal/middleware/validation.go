package middleware

import (
	"strings"

	"compass-quiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateSessionID rejects malformed :id path parameters before any lookup.
func (vm *ValidationMiddleware) ValidateSessionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if errors := vm.validator.ValidateSessionID(c.Params("id")); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}
		return c.Next()
	}
}

// ValidateMacroCell normalizes the :cell path parameter to upper case.
func (vm *ValidationMiddleware) ValidateMacroCell() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cell := c.Params("cell")
		if errors := vm.validator.ValidateMacroCell(cell); len(errors) > 0 {
			return errors
		}
		c.Locals("validated_cell", strings.ToUpper(cell))
		return c.Next()
	}
}
