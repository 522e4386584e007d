package repository

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmeshcher/accountbot/internal/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// PostgresDirectory хранит пользователей панели в PostgreSQL.
type PostgresDirectory struct {
	pool *pgxpool.Pool
}

// NewPostgresDirectory создаёт справочник и инициализирует схему БД через миграции.
func NewPostgresDirectory(dsn string) (*PostgresDirectory, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	d := &PostgresDirectory{pool: pool}

	if err := d.runMigrations(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return d, nil
}

func (d *PostgresDirectory) runMigrations(ctx context.Context) error {
	db := stdlib.OpenDBFromPool(d.pool)
	defer db.Close()

	goose.SetBaseFS(migrationsFS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

// Seed добавляет пользователей с общим паролем. Уже существующие записи не меняются.
func (d *PostgresDirectory) Seed(ctx context.Context, users []model.User, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	for _, u := range users {
		err := d.withRetry(ctx, func() error {
			_, err := d.pool.Exec(ctx,
				`INSERT INTO users (id, name, email, role, password_hash)
				 VALUES ($1, $2, $3, $4, $5)
				 ON CONFLICT DO NOTHING`,
				u.ID, u.Name, strings.ToLower(u.Email), string(u.Role), hash,
			)
			return err
		})
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.ID, err)
		}
	}

	return nil
}

// Authenticate находит пользователя по email и сверяет пароль с хешем.
func (d *PostgresDirectory) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	var (
		u    model.User
		role string
		hash []byte
	)

	err := d.withRetry(ctx, func() error {
		return d.pool.QueryRow(ctx,
			`SELECT id, name, email, role, password_hash FROM users WHERE email = $1`,
			strings.ToLower(strings.TrimSpace(email)),
		).Scan(&u.ID, &u.Name, &u.Email, &role, &hash)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	u.Role = model.Role(role)
	return &u, nil
}

func (d *PostgresDirectory) withRetry(ctx context.Context, fn func() error) error {
	var err error
	delays := []time.Duration{1 * time.Second, 3 * time.Second, 5 * time.Second}

	for i := 0; i <= len(delays); i++ {
		err = fn()
		if err == nil || !isRetryable(err) || i == len(delays) {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delays[i]):
		}
	}
	return err
}

// isRetryable сообщает, стоит ли повторить запрос после ошибки.
func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.SerializationFailure || pgErr.Code == pgerrcode.DeadlockDetected
	}

	return isConnectionError(err)
}

func isConnectionError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "connection reset by peer")
}

// Close закрывает пул соединений с БД.
func (d *PostgresDirectory) Close() error {
	d.pool.Close()
	return nil
}
