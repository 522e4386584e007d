package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/mmeshcher/accountbot/internal/generator"
	"github.com/mmeshcher/accountbot/internal/inventory"
	"github.com/mmeshcher/accountbot/internal/model"
)

var (
	// ErrGenerationInProgress возвращается при запуске генерации, пока предыдущая не завершена.
	ErrGenerationInProgress = errors.New("generation already in progress")
	// ErrConfirmationRequired возвращается при отзыве аккаунта без подтверждения.
	ErrConfirmationRequired = errors.New("revoke requires confirmation")
)

// AccountList содержит результат поиска по инвентарю сессии.
type AccountList struct {
	Accounts []model.Account `json:"accounts"`
	Total    int             `json:"total"`
	Version  uint64          `json:"version"`
}

// ChartPoint описывает точку недельного графика продаж.
type ChartPoint struct {
	Name  string `json:"name"`
	Sales int    `json:"sales"`
}

// Dashboard содержит сводку для главной страницы панели.
type Dashboard struct {
	Stats   model.Stats     `json:"stats"`
	Chart   []ChartPoint    `json:"chart"`
	History []model.Account `json:"history"`
	Visible int             `json:"visible"`
	HasMore bool            `json:"hasMore"`
}

var weeklySales = []ChartPoint{
	{Name: "Mon", Sales: 12},
	{Name: "Tue", Sales: 19},
	{Name: "Wed", Sales: 15},
	{Name: "Thu", Sales: 25},
	{Name: "Fri", Sales: 32},
	{Name: "Sat", Sales: 45},
	{Name: "Sun", Sales: 38},
}

// Generate выпускает партию аккаунтов и добавляет её в начало инвентаря сессии.
// Одновременно в сессии может выполняться только одна генерация.
func (s *Service) Generate(ctx context.Context, sessionID string, req generator.Request) ([]model.Account, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	if sess.generating {
		sess.mu.Unlock()
		return nil, ErrGenerationInProgress
	}
	sess.generating = true
	sess.mu.Unlock()

	defer func() {
		sess.mu.Lock()
		sess.generating = false
		sess.mu.Unlock()
	}()

	batch, err := s.generator.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := sess.store.Prepend(batch); err != nil {
		return nil, err
	}

	n := int64(len(batch))
	sess.mu.Lock()
	sess.stats.TotalGenerated += n
	sess.stats.ActiveStock += n
	sess.mu.Unlock()

	s.logger.Info("accounts generated",
		zap.String("session_id", sess.ID),
		zap.String("service", req.Service),
		zap.Int("quantity", len(batch)),
	)
	return batch, nil
}

// Accounts возвращает инвентарь сессии, отфильтрованный по query.
func (s *Service) Accounts(sessionID, query string) (AccountList, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return AccountList{}, err
	}

	// версия читается до снимка, чтобы ETag не опережал содержимое
	version := sess.store.Version()
	all := sess.store.Snapshot()
	found := inventory.Search(all, query)

	return AccountList{Accounts: found, Total: len(all), Version: version}, nil
}

// InventoryVersion возвращает текущую версию инвентаря сессии.
func (s *Service) InventoryVersion(sessionID string) (uint64, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return 0, err
	}
	return sess.store.Version(), nil
}

// Pause приостанавливает аккаунт.
func (s *Service) Pause(sessionID, accountID string) (model.Account, error) {
	return s.transition(sessionID, accountID, func(a model.Account) (model.Account, inventory.Action, error) {
		next, err := inventory.Pause(a, s.now())
		return next, inventory.ActionPause, err
	})
}

// Resume возобновляет приостановленный аккаунт.
func (s *Service) Resume(sessionID, accountID string) (model.Account, error) {
	return s.transition(sessionID, accountID, func(a model.Account) (model.Account, inventory.Action, error) {
		next, err := inventory.Resume(a, s.now(), s.newPassword)
		return next, inventory.ActionResume, err
	})
}

// Toggle приостанавливает активный аккаунт или возобновляет приостановленный.
func (s *Service) Toggle(sessionID, accountID string) (model.Account, error) {
	return s.transition(sessionID, accountID, func(a model.Account) (model.Account, inventory.Action, error) {
		return inventory.Toggle(a, s.now(), s.newPassword)
	})
}

// Revoke необратимо отзывает аккаунт. Без явного подтверждения ничего не меняется.
func (s *Service) Revoke(sessionID, accountID string, confirmed bool) (model.Account, error) {
	if !confirmed {
		return model.Account{}, ErrConfirmationRequired
	}
	return s.transition(sessionID, accountID, func(a model.Account) (model.Account, inventory.Action, error) {
		next, err := inventory.Revoke(a)
		return next, inventory.ActionRevoke, err
	})
}

func (s *Service) transition(sessionID, accountID string, fn func(model.Account) (model.Account, inventory.Action, error)) (model.Account, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return model.Account{}, err
	}

	var action inventory.Action
	updated, err := sess.store.Update(accountID, func(a model.Account) (model.Account, error) {
		next, act, err := fn(a)
		action = act
		return next, err
	})
	if err != nil {
		return model.Account{}, err
	}

	sess.notifier.NotifyAction(action)
	s.metrics.LifecycleTransition(string(action))
	return updated, nil
}

// Notification возвращает действующее уведомление сессии, если оно есть.
func (s *Service) Notification(sessionID string) (model.Notification, bool, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return model.Notification{}, false, err
	}
	note, ok := sess.notifier.Current()
	return note, ok, nil
}

// Dashboard возвращает счётчики, недельный график и окно истории последних аккаунтов.
func (s *Service) Dashboard(sessionID string) (Dashboard, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return Dashboard{}, err
	}
	return s.dashboard(sess), nil
}

// LoadMoreHistory расширяет окно истории, если в инвентаре есть ещё не показанные записи.
func (s *Service) LoadMoreHistory(sessionID string) (Dashboard, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return Dashboard{}, err
	}
	sess.pager.LoadMore(sess.store.Len())
	return s.dashboard(sess), nil
}

func (s *Service) dashboard(sess *Session) Dashboard {
	history, hasMore := sess.pager.Window(sess.store.Snapshot())

	sess.mu.Lock()
	stats := sess.stats
	sess.mu.Unlock()

	chart := make([]ChartPoint, len(weeklySales))
	copy(chart, weeklySales)

	return Dashboard{
		Stats:   stats,
		Chart:   chart,
		History: history,
		Visible: sess.pager.Visible(),
		HasMore: hasMore,
	}
}
