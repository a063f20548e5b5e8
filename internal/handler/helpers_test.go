package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/nexushq/nexus-chat-api/internal/config"
	"github.com/nexushq/nexus-chat-api/internal/handler"
	"github.com/nexushq/nexus-chat-api/internal/latency"
	"github.com/nexushq/nexus-chat-api/internal/middleware"
	"github.com/nexushq/nexus-chat-api/internal/router"
	"github.com/nexushq/nexus-chat-api/internal/service"
	"github.com/nexushq/nexus-chat-api/internal/store"
)

// envelope mirrors the JSON response wrapper with the data left raw so each
// test decodes it into the shape it expects.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// newTestApp wires a fiber application over a freshly seeded store with
// instant delays, the way main does, minus the listener.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	logger := zerolog.New(io.Discard)
	st := store.New()
	st.SeedDemo()

	delays := latency.Instant()
	validate := validator.New()

	messages := service.NewMessageService(st, delays, validate, nil, time.Minute, logger)
	channels := service.NewChannelService(st, delays, validate, logger)
	users := service.NewUserService(st, delays, validate, logger)
	groups := service.NewGroupConversationService(st, delays, validate, logger)
	emojis := service.NewEmojiCatalogService(delays, logger)

	cfg := config.Config{AppName: "nexus-chat-api", AppEnv: "test", DefaultUserID: 1}

	app := fiber.New()
	app.Use(middleware.Session(cfg.DefaultUserID))

	router.Register(app, cfg, router.Dependencies{
		UserHandler:    handler.NewUserHandler(users, groups, logger),
		ChannelHandler: handler.NewChannelHandler(channels, logger),
		MessageHandler: handler.NewMessageHandler(messages, logger),
		GroupHandler:   handler.NewGroupHandler(groups, logger),
		EmojiHandler:   handler.NewEmojiHandler(emojis, logger),
		ScreenHandler:  handler.NewScreenHandler(users, channels, messages, groups, logger),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, target, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp.StatusCode, env
}
