// Package repository содержит справочник пользователей панели: статическую
// таблицу в памяти и её вариант в PostgreSQL.
package repository

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/mmeshcher/accountbot/internal/model"
)

// ErrInvalidCredentials возвращается при неверной паре email/пароль.
var ErrInvalidCredentials = errors.New("invalid credentials")

// FixedPassword задаёт общий пароль всех пользователей демонстрационной таблицы.
const FixedPassword = "password"

// DefaultUsers возвращает фиксированную таблицу пользователей панели.
func DefaultUsers() []model.User {
	return []model.User{
		{ID: "u_1", Name: "Demo Reseller", Email: "reseller@accountbot.shop", Role: model.RoleReseller},
		{ID: "u_2", Name: "Admin User", Email: "admin@accountbot.shop", Role: model.RoleAdmin},
	}
}

// StaticDirectory проверяет учётные данные по таблице в памяти.
type StaticDirectory struct {
	users    map[string]model.User
	password string
}

// NewStaticDirectory создаёт справочник из списка пользователей с общим паролем.
func NewStaticDirectory(users []model.User, password string) *StaticDirectory {
	byEmail := make(map[string]model.User, len(users))
	for _, u := range users {
		byEmail[strings.ToLower(u.Email)] = u
	}
	return &StaticDirectory{users: byEmail, password: password}
}

// Authenticate возвращает пользователя, если email известен и пароль совпадает.
func (d *StaticDirectory) Authenticate(_ context.Context, email, password string) (*model.User, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(d.password)) != 1 {
		return nil, ErrInvalidCredentials
	}

	u, ok := d.users[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}

// Close ничего не делает; нужен для единообразия с PostgresDirectory.
func (d *StaticDirectory) Close() error {
	return nil
}
