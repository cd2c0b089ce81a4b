package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/workout-tracker/internal/services"
	"github.com/localnerve/workout-tracker/internal/types"
	"github.com/localnerve/workout-tracker/internal/utils"
	"github.com/sirupsen/logrus"
)

// ErrorHandler maps returned errors to the JSON error envelope
func ErrorHandler(c *fiber.Ctx, err error) error {
	var verr *types.ValidationError
	if errors.As(err, &verr) {
		return utils.ValidationErrorResponse(c, verr)
	}

	var ce *types.CustomError
	if errors.As(err, &ce) {
		return utils.ErrorResponse(c, ce.Message, ce.Code, ce.Type)
	}

	if errors.Is(err, services.ErrNotFound) {
		return utils.NotFoundResponse(c, err.Error())
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return utils.ErrorResponse(c, fe.Message, fe.Code, "http")
	}

	logrus.WithFields(logrus.Fields{
		"method": c.Method(),
		"url":    c.OriginalURL(),
	}).Errorf("request failed: %v", err)

	return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "internal")
}

// NotFound is the fallback for unmatched routes
func NotFound(c *fiber.Ctx) error {
	return utils.NotFoundResponse(c, "[404] Resource Not Found")
}
