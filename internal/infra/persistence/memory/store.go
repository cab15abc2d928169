// Package memory keeps users, roles and posts in process memory. It backs the
// "memory" storage driver and the HTTP scenario tests. Data is lost on restart.
package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"bulletin/internal/domain/entity"

	"github.com/google/uuid"
)

// Store holds every record behind one RWMutex. Reads and writes copy values so
// callers never share memory with the store.
type Store struct {
	mu    sync.RWMutex
	users map[uuid.UUID]entity.User
	roles map[uuid.UUID]entity.Role
	posts map[uuid.UUID]entity.Post

	// txMu serializes transactions so a check-then-write sequence is atomic
	// with respect to other transactions.
	txMu sync.Mutex

	now func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		users: map[uuid.UUID]entity.User{},
		roles: map[uuid.UUID]entity.Role{},
		posts: map[uuid.UUID]entity.Post{},
		now:   time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func sortUsers(users []*entity.User) {
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
}

func sortPosts(posts []*entity.Post) {
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}
