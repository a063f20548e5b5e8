package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/nexushq/nexus-chat-api/internal/config"
	"github.com/nexushq/nexus-chat-api/internal/database"
	"github.com/nexushq/nexus-chat-api/internal/handler"
	"github.com/nexushq/nexus-chat-api/internal/latency"
	"github.com/nexushq/nexus-chat-api/internal/middleware"
	"github.com/nexushq/nexus-chat-api/internal/router"
	"github.com/nexushq/nexus-chat-api/internal/service"
	"github.com/nexushq/nexus-chat-api/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	st := store.New()
	if cfg.SeedDemoData {
		st.SeedDemo()
	}

	cache, err := database.NewInProcessRedis()
	if err != nil {
		log.Fatalf("failed to start in-process redis: %v", err)
	}
	defer cache.Close()

	validate := validator.New(validator.WithRequiredStructEnabled())
	delays := latency.New(latency.DefaultProfile(), cfg.LatencyScale)

	userService := service.NewUserService(st, delays, validate, logger)
	channelService := service.NewChannelService(st, delays, validate, logger)
	messageService := service.NewMessageService(st, delays, validate, cache.Client, cfg.SearchCacheTTL, logger)
	groupService := service.NewGroupConversationService(st, delays, validate, logger)
	emojiService := service.NewEmojiCatalogService(delays, logger)

	userHandler := handler.NewUserHandler(userService, groupService, logger)
	channelHandler := handler.NewChannelHandler(channelService, logger)
	messageHandler := handler.NewMessageHandler(messageService, logger)
	groupHandler := handler.NewGroupHandler(groupService, logger)
	emojiHandler := handler.NewEmojiHandler(emojiService, logger)
	screenHandler := handler.NewScreenHandler(userService, channelService, messageService, groupService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{
		Logger:        &logger,
		DefaultUserID: cfg.DefaultUserID,
	})
	router.Register(app, cfg, router.Dependencies{
		UserHandler:    userHandler,
		ChannelHandler: channelHandler,
		MessageHandler: messageHandler,
		GroupHandler:   groupHandler,
		EmojiHandler:   emojiHandler,
		ScreenHandler:  screenHandler,
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
