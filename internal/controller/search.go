package controller

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nexushq/nexus-chat-api/internal/models"
	"github.com/nexushq/nexus-chat-api/internal/service"
)

// SearchController drives the search screen.
type SearchController struct {
	viewState
	messages service.MessageService
	logger   zerolog.Logger

	query   string
	results []models.Message
}

// NewSearchController constructs the search screen controller.
func NewSearchController(messages service.MessageService, logger zerolog.Logger) *SearchController {
	return &SearchController{
		viewState: newViewState(),
		messages:  messages,
		logger:    logger.With().Str("component", "search_controller").Logger(),
	}
}

// Search runs a query, optionally scoped to one conversation. A blank query
// clears the results without calling the service at all: the screen resets
// to its empty prompt rather than listing everything. The service-level
// empty-query passthrough still exists for callers that want it.
func (c *SearchController) Search(ctx context.Context, query string, channelID *int) error {
	if strings.TrimSpace(query) == "" {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.closed {
			return ErrStale
		}
		c.gen++
		c.query = ""
		c.results = nil
		c.phase = PhaseReady
		c.errMsg = ""
		return nil
	}

	gen, err := c.begin()
	if err != nil {
		return err
	}

	results, searchErr := c.messages.Search(ctx, query, channelID)
	if searchErr != nil {
		c.logger.Warn().Err(searchErr).Str("query", query).Msg("search failed")
		if err := c.complete(gen, "failed to search messages", nil); err != nil {
			return err
		}
		return searchErr
	}

	return c.complete(gen, "", func() {
		c.query = query
		c.results = results
	})
}

// Query returns the last executed query.
func (c *SearchController) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// Results returns a copy of the current result list.
func (c *SearchController) Results() []models.Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.Message, 0, len(c.results))
	for _, m := range c.results {
		out = append(out, m.Clone())
	}
	return out
}
