package store

import (
	"sync"
	"sync/atomic"

	"github.com/nexushq/nexus-chat-api/internal/models"
)

// Store owns the in-memory collections for every entity type. It is always
// an explicitly constructed instance handed to the services that need it,
// never a package-level singleton, so tests stay isolated and parallel-safe.
type Store struct {
	Users    *Collection[models.User]
	Channels *Collection[models.Channel]
	Messages *Collection[models.Message]
	Groups   *Collection[models.GroupConversation]

	// Group identifiers come from a private monotonic counter advanced when
	// groups are seeded, so a deleted group id is never handed out again.
	// The other collections assign max(live)+1 from the live sequence
	// instead.
	groupMu     sync.Mutex
	nextGroupID int

	revision atomic.Int64
}

// New constructs an empty store.
func New() *Store {
	s := &Store{
		Users: NewCollection(
			func(u models.User) int { return u.ID },
			func(u *models.User, id int) { u.ID = id },
			models.User.Clone,
		),
		Channels: NewCollection(
			func(c models.Channel) int { return c.ID },
			func(c *models.Channel, id int) { c.ID = id },
			models.Channel.Clone,
		),
		Messages: NewCollection(
			func(m models.Message) int { return m.ID },
			func(m *models.Message, id int) { m.ID = id },
			models.Message.Clone,
		),
		Groups: NewCollection(
			func(g models.GroupConversation) int { return g.ID },
			func(g *models.GroupConversation, id int) { g.ID = id },
			models.GroupConversation.Clone,
		),
	}
	s.nextGroupID = 1
	return s
}

// SeedGroups loads the group collection and advances the id counter past the
// highest seeded identifier. Seeding must go through here rather than the
// collection directly, otherwise a seeded group deleted before the first
// create would get its id handed out again.
func (s *Store) SeedGroups(groups []models.GroupConversation) {
	s.Groups.Seed(groups)

	s.groupMu.Lock()
	defer s.groupMu.Unlock()
	if next := s.Groups.MaxID() + 1; next > s.nextGroupID {
		s.nextGroupID = next
	}
}

// NextGroupID hands out the next group identifier.
func (s *Store) NextGroupID() int {
	s.groupMu.Lock()
	defer s.groupMu.Unlock()

	id := s.nextGroupID
	s.nextGroupID++
	return id
}

// BumpRevision marks the message collection as changed. Cached derived data
// (search results) keys on the revision, so bumping it invalidates every
// cached entry without touching the cache itself.
func (s *Store) BumpRevision() {
	s.revision.Add(1)
}

// Revision returns the current message revision.
func (s *Store) Revision() int64 {
	return s.revision.Load()
}
