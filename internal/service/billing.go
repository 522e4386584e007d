package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mmeshcher/accountbot/internal/model"
	"github.com/mmeshcher/accountbot/internal/validation"
)

var (
	// ErrUnknownPackage возвращается при покупке несуществующего пакета.
	ErrUnknownPackage = errors.New("unknown credit package")
	// ErrPurchaseInProgress возвращается, если предыдущая покупка ещё не завершена.
	ErrPurchaseInProgress = errors.New("purchase already in progress")
	// ErrInvalidPurchase возвращается, если параметры покупки не прошли проверку.
	ErrInvalidPurchase = errors.New("invalid purchase request")
)

// PurchaseRequest описывает покупку пакета кредитов.
type PurchaseRequest struct {
	PackageID string              `json:"packageId" validate:"required"`
	Method    model.PaymentMethod `json:"method" validate:"required,payment_method"`
}

// Billing содержит баланс кредитов, доступные пакеты и историю платежей.
type Billing struct {
	Credits      int64                 `json:"credits"`
	Packages     []model.CreditPackage `json:"packages"`
	Transactions []model.Transaction   `json:"transactions"`
}

// CreditPackages возвращает пакеты кредитов в порядке отображения.
func CreditPackages() []model.CreditPackage {
	return []model.CreditPackage{
		{ID: "starter", Name: "Starter Pack", Credits: 100, Price: decimal.NewFromInt(15)},
		{ID: "pro", Name: "Reseller Pro", Credits: 500, Price: decimal.NewFromInt(50), Popular: true},
		{ID: "biz", Name: "Enterprise", Credits: 2000, Price: decimal.NewFromInt(150)},
	}
}

func findPackage(id string) (model.CreditPackage, bool) {
	for _, p := range CreditPackages() {
		if p.ID == id {
			return p, true
		}
	}
	return model.CreditPackage{}, false
}

func seedTransactions(now time.Time) []model.Transaction {
	return []model.Transaction{
		{
			ID:      "tx_1",
			Date:    now,
			Amount:  decimal.RequireFromString("49.99"),
			Credits: 500,
			Status:  model.TransactionCompleted,
			Method:  model.PaymentCreditCard,
		},
		{
			ID:      "tx_2",
			Date:    now.Add(-24 * time.Hour),
			Amount:  decimal.RequireFromString("19.99"),
			Credits: 150,
			Status:  model.TransactionCompleted,
			Method:  model.PaymentPayPal,
		},
	}
}

// Billing возвращает баланс кредитов и историю платежей сессии.
func (s *Service) Billing(sessionID string) (Billing, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return Billing{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	return Billing{
		Credits:      sess.stats.Credits,
		Packages:     CreditPackages(),
		Transactions: slices.Clone(sess.transactions),
	}, nil
}

// Purchase покупает пакет кредитов: после задержки платёжного шлюза
// записывает завершённый платёж и увеличивает кредиты и выручку сессии.
func (s *Service) Purchase(ctx context.Context, sessionID string, req PurchaseRequest) (model.Transaction, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return model.Transaction{}, err
	}

	if req.Method == "" {
		req.Method = model.PaymentCreditCard
	}
	if err := validation.Struct(req); err != nil {
		return model.Transaction{}, fmt.Errorf("%w: %w", ErrInvalidPurchase, err)
	}

	pkg, ok := findPackage(req.PackageID)
	if !ok {
		return model.Transaction{}, fmt.Errorf("%w: %s", ErrUnknownPackage, req.PackageID)
	}

	sess.mu.Lock()
	if sess.purchasing {
		sess.mu.Unlock()
		return model.Transaction{}, ErrPurchaseInProgress
	}
	sess.purchasing = true
	sess.mu.Unlock()

	defer func() {
		sess.mu.Lock()
		sess.purchasing = false
		sess.mu.Unlock()
	}()

	if err := sleep(ctx, s.paymentDelay); err != nil {
		return model.Transaction{}, err
	}

	tx := model.Transaction{
		ID:      "tx_" + uuid.NewString(),
		Date:    s.now(),
		Amount:  pkg.Price,
		Credits: pkg.Credits,
		Status:  model.TransactionCompleted,
		Method:  req.Method,
	}

	sess.mu.Lock()
	sess.transactions = append([]model.Transaction{tx}, sess.transactions...)
	sess.stats.Credits += pkg.Credits
	sess.stats.Revenue = sess.stats.Revenue.Add(pkg.Price)
	sess.mu.Unlock()

	s.logger.Info("credits purchased",
		zap.String("session_id", sess.ID),
		zap.String("package", pkg.ID),
		zap.String("amount", pkg.Price.StringFixed(2)),
	)
	return tx, nil
}
