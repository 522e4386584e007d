// Package inventory содержит хранилище аккаунтов сессии, переходы жизненного
// цикла аккаунта и производные представления инвентаря.
package inventory

import (
	"errors"
	"fmt"
	"sync"

	"github.com/mmeshcher/accountbot/internal/model"
)

var (
	// ErrAccountNotFound возвращается, если аккаунт с указанным идентификатором отсутствует.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateID возвращается при попытке добавить аккаунт с уже занятым идентификатором.
	ErrDuplicateID = errors.New("duplicate account id")
)

// Store хранит аккаунты сессии в индексе по идентификатору и отдаёт
// потребителям только копии записей.
//
// Порядок отображения: новые партии впереди, внутри партии порядок сохраняется.
// Поля-указатели записей никогда не изменяются на месте, поэтому копии
// безопасно разделяют их.
type Store struct {
	mu      sync.RWMutex
	byID    map[string]model.Account
	order   []string // от старых к новым; партии добавляются в обратном порядке
	version uint64
}

// NewStore создаёт пустое хранилище.
func NewStore() *Store {
	return &Store{
		byID: make(map[string]model.Account),
	}
}

// Replace целиком заменяет содержимое хранилища списком в порядке отображения.
func (s *Store) Replace(accounts []model.Account) error {
	byID := make(map[string]model.Account, len(accounts))
	order := make([]string, 0, len(accounts))

	for i := len(accounts) - 1; i >= 0; i-- {
		a := accounts[i]
		if _, exists := byID[a.ID]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateID, a.ID)
		}
		byID[a.ID] = a
		order = append(order, a.ID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID = byID
	s.order = order
	s.version++
	return nil
}

// Prepend добавляет партию аккаунтов перед существующими записями.
func (s *Store) Prepend(batch []model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(batch))
	for _, a := range batch {
		if _, exists := s.byID[a.ID]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateID, a.ID)
		}
		if _, exists := seen[a.ID]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateID, a.ID)
		}
		seen[a.ID] = struct{}{}
	}

	for i := len(batch) - 1; i >= 0; i-- {
		s.byID[batch[i].ID] = batch[i]
		s.order = append(s.order, batch[i].ID)
	}
	s.version++
	return nil
}

// Update применяет функцию перехода к одной записи. Если fn возвращает ошибку,
// хранилище не изменяется.
func (s *Store) Update(id string, fn func(model.Account) (model.Account, error)) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.byID[id]
	if !ok {
		return model.Account{}, ErrAccountNotFound
	}

	next, err := fn(current)
	if err != nil {
		return current, err
	}
	next.ID = id

	s.byID[id] = next
	s.version++
	return next, nil
}

// Get возвращает копию записи по идентификатору.
func (s *Store) Get(id string) (model.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.byID[id]
	return a, ok
}

// Snapshot возвращает копию всех записей в порядке отображения.
func (s *Store) Snapshot() []model.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Account, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		out = append(out, s.byID[s.order[i]])
	}
	return out
}

// Len возвращает количество записей.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Version возвращает номер версии содержимого, увеличивающийся при каждом изменении.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}
