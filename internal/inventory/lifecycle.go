package inventory

import (
	"errors"
	"fmt"
	"time"

	"github.com/mmeshcher/accountbot/internal/model"
)

var (
	// ErrAccountRevoked возвращается при любом действии над отозванным аккаунтом.
	ErrAccountRevoked = errors.New("account is revoked")
	// ErrInvalidTransition возвращается, если действие недопустимо в текущем статусе.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Action описывает действие пользователя над аккаунтом.
type Action string

const (
	ActionPause  Action = "pause"
	ActionResume Action = "resume"
	ActionRevoke Action = "revoke"
)

// Pause приостанавливает активный аккаунт: сохраняет неотрицательный остаток
// срока и прячет пароль за маской.
func Pause(a model.Account, now time.Time) (model.Account, error) {
	if a.Status == model.AccountStatusRevoked {
		return a, ErrAccountRevoked
	}
	if a.Status != model.AccountStatusActive {
		return a, fmt.Errorf("%w: pause from %s", ErrInvalidTransition, a.Status)
	}

	remaining := a.ExpiresAt.Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	remainingMs := remaining.Milliseconds()
	password := a.Password

	a.Status = model.AccountStatusPaused
	a.RemainingTimeMs = &remainingMs
	a.OriginalPassword = &password
	a.Password = model.MaskedPassword
	return a, nil
}

// Resume возобновляет приостановленный аккаунт: срок отсчитывается заново от now,
// пароль восстанавливается из сохранённого. Если сохранённого пароля нет,
// выдаётся новый от newPassword.
func Resume(a model.Account, now time.Time, newPassword func() string) (model.Account, error) {
	if a.Status == model.AccountStatusRevoked {
		return a, ErrAccountRevoked
	}
	if a.Status != model.AccountStatusPaused {
		return a, fmt.Errorf("%w: resume from %s", ErrInvalidTransition, a.Status)
	}

	a.ExpiresAt = now.Add(a.Remaining())
	if a.OriginalPassword != nil && *a.OriginalPassword != "" {
		a.Password = *a.OriginalPassword
	} else {
		a.Password = newPassword()
	}

	a.Status = model.AccountStatusActive
	a.RemainingTimeMs = nil
	a.OriginalPassword = nil
	return a, nil
}

// Revoke необратимо отзывает активный или приостановленный аккаунт.
func Revoke(a model.Account) (model.Account, error) {
	switch a.Status {
	case model.AccountStatusRevoked:
		return a, ErrAccountRevoked
	case model.AccountStatusActive:
	case model.AccountStatusPaused:
		// вне паузы пароль должен быть настоящим
		if a.OriginalPassword != nil {
			a.Password = *a.OriginalPassword
		}
		a.RemainingTimeMs = nil
		a.OriginalPassword = nil
	default:
		return a, fmt.Errorf("%w: revoke from %s", ErrInvalidTransition, a.Status)
	}

	a.Status = model.AccountStatusRevoked
	return a, nil
}

// Toggle приостанавливает активный аккаунт или возобновляет приостановленный.
func Toggle(a model.Account, now time.Time, newPassword func() string) (model.Account, Action, error) {
	if a.Status == model.AccountStatusPaused {
		next, err := Resume(a, now, newPassword)
		return next, ActionResume, err
	}
	next, err := Pause(a, now)
	return next, ActionPause, err
}
