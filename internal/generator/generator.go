// Package generator выпускает партии демонстрационных аккаунтов: небольшие
// партии запрашиваются у генеративной модели, остальное синтезируется локально.
package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mmeshcher/accountbot/internal/catalog"
	"github.com/mmeshcher/accountbot/internal/genai"
	"github.com/mmeshcher/accountbot/internal/metrics"
	"github.com/mmeshcher/accountbot/internal/model"
	"github.com/mmeshcher/accountbot/internal/validation"
)

const (
	// MaxQuantity ограничивает размер партии.
	MaxQuantity = 10000
	// aiSampleSize ограничивает число аккаунтов, запрашиваемых у модели.
	aiSampleSize = 5

	passwordLength   = 10
	passwordAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

	sourceAI        = "ai"
	sourceSynthetic = "synthetic"
)

// ErrInvalidRequest возвращается, если параметры генерации не прошли проверку.
var ErrInvalidRequest = errors.New("invalid generation request")

// CredentialSource описывает внешний генератор учётных данных.
type CredentialSource interface {
	GenerateCredentials(ctx context.Context, prompt string) ([]genai.Credential, error)
}

// Request описывает параметры партии.
type Request struct {
	Quantity int            `json:"quantity" validate:"required,min=1,max=10000"`
	Region   string         `json:"region" validate:"required,region"`
	Plan     string         `json:"plan" validate:"required,service_plan=Service"`
	Duration model.Duration `json:"duration" validate:"required,duration"`
	Service  string         `json:"service" validate:"required,service"`
}

type credential struct {
	email    string
	password string
	source   string
}

type producer func(ctx context.Context, req Request) ([]credential, error)

// Generator выпускает партии аккаунтов.
type Generator struct {
	source  CredentialSource
	logger  *zap.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// New создаёт генератор. source может быть nil: тогда все аккаунты синтезируются локально.
func New(source CredentialSource, logger *zap.Logger, m *metrics.Metrics) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		source:  source,
		logger:  logger,
		metrics: m,
		now:     time.Now,
	}
}

// Generate возвращает ровно req.Quantity активных аккаунтов с общими датами
// генерации и окончания. Ошибки внешнего генератора не возвращаются: партия
// в этом случае целиком синтезируется локально. Ошибка возможна только при
// некорректных параметрах. Пустой тариф заменяется тарифом сервиса по умолчанию.
func (g *Generator) Generate(ctx context.Context, req Request) ([]model.Account, error) {
	if strings.TrimSpace(req.Plan) == "" {
		req.Plan = catalog.DefaultPlan(req.Service)
	}
	if err := validation.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	req.Region = strings.ToUpper(req.Region)

	now := g.now()
	expiresAt := req.Duration.Expiry(now)

	produce := withFallback(g.fromSource, synthesize, func(err error) {
		g.logger.Warn("credential generation failed, using local synthesis",
			zap.Error(err),
			zap.String("service", req.Service),
			zap.Int("quantity", req.Quantity),
		)
		g.metrics.GenerationFallback()
	})

	creds, err := produce(ctx, req)
	if err != nil {
		return nil, err
	}

	accounts := make([]model.Account, 0, len(creds))
	bySource := make(map[string]int, 2)
	for _, c := range creds {
		accounts = append(accounts, model.Account{
			ID:          uuid.NewString(),
			Service:     req.Service,
			Email:       c.email,
			Password:    c.password,
			Plan:        req.Plan,
			Region:      req.Region,
			Duration:    req.Duration,
			GeneratedAt: now,
			ExpiresAt:   expiresAt,
			Status:      model.AccountStatusActive,
		})
		bySource[c.source]++
	}

	for source, n := range bySource {
		g.metrics.AccountsGenerated(source, n)
	}

	return accounts, nil
}

// withFallback возвращает производителя, который при любой ошибке primary
// сообщает о ней через onFailure и целиком отдаёт запрос fallback.
func withFallback(primary, fallback producer, onFailure func(error)) producer {
	return func(ctx context.Context, req Request) ([]credential, error) {
		creds, err := primary(ctx, req)
		if err == nil {
			return creds, nil
		}
		onFailure(err)
		return fallback(ctx, req)
	}
}

// fromSource запрашивает у модели до aiSampleSize аккаунтов для небольших партий
// и дополняет недостающее локальным синтезом.
func (g *Generator) fromSource(ctx context.Context, req Request) ([]credential, error) {
	out := make([]credential, 0, req.Quantity)

	if g.source != nil && req.Quantity <= aiSampleSize {
		raw, err := g.source.GenerateCredentials(ctx, prompt(req))
		if err != nil {
			return nil, err
		}
		for _, c := range raw {
			if len(out) == req.Quantity {
				break
			}
			if c.Email == "" || c.Password == "" {
				continue
			}
			out = append(out, credential{
				email:    normalizeEmail(c.Email),
				password: c.Password,
				source:   sourceAI,
			})
		}
	}

	for len(out) < req.Quantity {
		out = append(out, syntheticCredential(req.Service))
	}
	return out, nil
}

func synthesize(_ context.Context, req Request) ([]credential, error) {
	out := make([]credential, 0, req.Quantity)
	for i := 0; i < req.Quantity; i++ {
		out = append(out, syntheticCredential(req.Service))
	}
	return out, nil
}

func syntheticCredential(service string) credential {
	local := strings.ToLower(strings.Join(strings.Fields(service), ""))
	return credential{
		email:    fmt.Sprintf("%s.%d%s", local, rand.IntN(1000000), model.EmailDomain),
		password: RandomPassword(),
		source:   sourceSynthetic,
	}
}

func normalizeEmail(email string) string {
	if strings.HasSuffix(email, model.EmailDomain) {
		return email
	}
	local, _, _ := strings.Cut(email, "@")
	return local + model.EmailDomain
}

func prompt(req Request) string {
	return fmt.Sprintf(`Generate %d fictional, realistic-looking user accounts for a mock dashboard demo.
  Service: %s. Region: %s. Plan: %s.
  Fields required: email (must end with %s), password (random alphanumeric string, 8-12 chars).
  DO NOT use real credentials. These are for a UI simulation only.`,
		min(req.Quantity, aiSampleSize), req.Service, req.Region, req.Plan, model.EmailDomain)
}

// RandomPassword возвращает случайный пароль из 10 строчных латинских букв и цифр.
func RandomPassword() string {
	b := make([]byte, passwordLength)
	for i := range b {
		b[i] = passwordAlphabet[rand.IntN(len(passwordAlphabet))]
	}
	return string(b)
}
