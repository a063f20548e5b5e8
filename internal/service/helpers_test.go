package service

import (
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/nexushq/nexus-chat-api/internal/latency"
	"github.com/nexushq/nexus-chat-api/internal/store"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func testValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func seededStore() *store.Store {
	st := store.New()
	st.SeedDemo()
	return st
}

func instant() *latency.Simulator {
	return latency.Instant()
}
