package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/nexushq/nexus-chat-api/internal/middleware"
	"github.com/nexushq/nexus-chat-api/internal/service"
	"github.com/nexushq/nexus-chat-api/internal/utils"
)

// parseStrict decodes the request body rejecting unknown fields, so a patch
// can only ever touch the fields its type enumerates.
func parseStrict(c *fiber.Ctx, out interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}
	return nil
}

func parseIDParam(c *fiber.Ctx, key string) (int, error) {
	value := strings.TrimSpace(c.Params(key))
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return parsed, nil
}

func parseQueryInt(c *fiber.Ctx, key string) (*int, error) {
	value := strings.TrimSpace(c.Query(key))
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return nil, fmt.Errorf("invalid %s", key)
	}
	return &parsed, nil
}

func isValidationError(err error) bool {
	var validationErrors validator.ValidationErrors
	return errors.As(err, &validationErrors)
}

func isNotFound(err error) bool {
	return errors.Is(err, service.ErrUserNotFound) ||
		errors.Is(err, service.ErrChannelNotFound) ||
		errors.Is(err, service.ErrMessageNotFound) ||
		errors.Is(err, service.ErrGroupNotFound)
}

// sendServiceError maps the domain error taxonomy onto HTTP statuses:
// NotFound → 404, validation → 400/422, version conflict → 409, anything
// else → 500 with the fallback message.
func sendServiceError(c *fiber.Ctx, logger zerolog.Logger, err error, fallback string) error {
	switch {
	case isNotFound(err):
		return utils.SendError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEmptyContent):
		return utils.SendError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrVersionConflict):
		return utils.SendError(c, fiber.StatusConflict, err.Error())
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	default:
		logger.Error().Err(err).Str("correlation_id", middleware.GetCorrelationID(c)).Msg(fallback)
		return utils.SendError(c, fiber.StatusInternalServerError, fallback)
	}
}
