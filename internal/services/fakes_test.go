package services

import (
	"context"
	"time"

	"github.com/pkamenev/go-task-manager/internal/models"
	"github.com/pkamenev/go-task-manager/internal/storage"
)

// In-memory store and cache fakes. Slices keep iteration order
// deterministic; err fields inject infrastructure failures.

type memTaskStore struct {
	items     []models.Task
	insertErr error
	findErr   error
}

func (m *memTaskStore) Insert(_ context.Context, task *models.Task) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	for i := range m.items {
		if m.items[i].ID == task.ID {
			return storage.ErrDuplicateKey
		}
	}
	m.items = append(m.items, *task)
	return nil
}

func (m *memTaskStore) FindByID(_ context.Context, id string) (*models.Task, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	for i := range m.items {
		if m.items[i].ID == id {
			task := m.items[i]
			return &task, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memTaskStore) FindAll(_ context.Context) ([]models.Task, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	tasks := make([]models.Task, len(m.items))
	copy(tasks, m.items)
	return tasks, nil
}

func (m *memTaskStore) FindByListID(_ context.Context, listID string) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	for i := range m.items {
		if m.items[i].ListID == listID {
			tasks = append(tasks, m.items[i])
		}
	}
	return tasks, nil
}

func (m *memTaskStore) Update(_ context.Context, task *models.Task) (bool, error) {
	for i := range m.items {
		if m.items[i].ID == task.ID {
			created := m.items[i].CreatedAt
			m.items[i] = *task
			m.items[i].CreatedAt = created
			return true, nil
		}
	}
	return false, nil
}

func (m *memTaskStore) Delete(_ context.Context, id string) (bool, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type memListStore struct {
	items   []models.List
	pushErr error
}

func (m *memListStore) Insert(_ context.Context, list *models.List) error {
	for i := range m.items {
		if m.items[i].ID == list.ID {
			return storage.ErrDuplicateKey
		}
	}
	m.items = append(m.items, *list)
	return nil
}

func (m *memListStore) FindByID(_ context.Context, id string) (*models.List, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			list := m.items[i]
			return &list, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memListStore) FindAll(_ context.Context) ([]models.List, error) {
	lists := make([]models.List, len(m.items))
	copy(lists, m.items)
	return lists, nil
}

func (m *memListStore) Update(_ context.Context, list *models.List) (bool, error) {
	for i := range m.items {
		if m.items[i].ID == list.ID {
			created := m.items[i].CreatedAt
			m.items[i] = *list
			m.items[i].CreatedAt = created
			return true, nil
		}
	}
	return false, nil
}

func (m *memListStore) Delete(_ context.Context, id string) (bool, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memListStore) PushTaskID(_ context.Context, listID, taskID string) (bool, error) {
	if m.pushErr != nil {
		return false, m.pushErr
	}
	for i := range m.items {
		if m.items[i].ID == listID {
			m.items[i].TaskIDs = append(m.items[i].TaskIDs, taskID)
			return true, nil
		}
	}
	return false, nil
}

type memGroupStore struct {
	items []models.Group
}

func (m *memGroupStore) Insert(_ context.Context, group *models.Group) error {
	for i := range m.items {
		if m.items[i].ID == group.ID {
			return storage.ErrDuplicateKey
		}
	}
	m.items = append(m.items, *group)
	return nil
}

func (m *memGroupStore) FindByID(_ context.Context, id string) (*models.Group, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			group := m.items[i]
			return &group, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memGroupStore) FindAll(_ context.Context) ([]models.Group, error) {
	groups := make([]models.Group, len(m.items))
	copy(groups, m.items)
	return groups, nil
}

func (m *memGroupStore) Update(_ context.Context, group *models.Group) (bool, error) {
	for i := range m.items {
		if m.items[i].ID == group.ID {
			created := m.items[i].CreatedAt
			m.items[i] = *group
			m.items[i].CreatedAt = created
			return true, nil
		}
	}
	return false, nil
}

func (m *memGroupStore) Delete(_ context.Context, id string) (bool, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type memUserStore struct {
	items []models.User
}

func (m *memUserStore) Insert(_ context.Context, user *models.User) error {
	for i := range m.items {
		if m.items[i].ID == user.ID {
			return storage.ErrDuplicateKey
		}
	}
	m.items = append(m.items, *user)
	return nil
}

func (m *memUserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	for i := range m.items {
		if m.items[i].Username == username {
			user := m.items[i]
			return &user, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memUserStore) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	for i := range m.items {
		if m.items[i].Username == username || m.items[i].Email == email {
			return true, nil
		}
	}
	return false, nil
}

type memCacheEntry struct {
	data []byte
	ttl  time.Duration
}

type memCache struct {
	entries map[string]memCacheEntry
	getErr  error
	sets    int
	deletes int
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string]memCacheEntry)}
}

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	entry, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	return entry.data, true, nil
}

func (c *memCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	data := make([]byte, len(value))
	copy(data, value)
	c.entries[key] = memCacheEntry{data: data, ttl: ttl}
	c.sets++
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	delete(c.entries, key)
	c.deletes++
	return nil
}

// expire simulates the TTL lapsing for a key.
func (c *memCache) expire(key string) {
	delete(c.entries, key)
}
