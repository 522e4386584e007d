// Package model содержит доменные сущности сервиса AccountBot.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmailDomain задаёт домен, которым оканчиваются адреса всех сгенерированных аккаунтов.
const EmailDomain = "@accountbot.shop"

// MaskedPassword подставляется вместо пароля приостановленного аккаунта.
const MaskedPassword = "••••••••"

// AccountStatus описывает состояние жизненного цикла аккаунта.
type AccountStatus string

const (
	AccountStatusActive  AccountStatus = "Active"
	AccountStatusSold    AccountStatus = "Sold"
	AccountStatusRevoked AccountStatus = "Revoked"
	AccountStatusExpired AccountStatus = "Expired"
	AccountStatusPaused  AccountStatus = "Paused"
)

// Duration описывает срок подписки аккаунта.
type Duration string

const (
	DurationOneMonth    Duration = "1 Month"
	DurationThreeMonths Duration = "3 Months"
	DurationSixMonths   Duration = "6 Months"
	DurationOneYear     Duration = "1 Year"
)

// Durations возвращает допустимые сроки подписки в порядке отображения.
func Durations() []Duration {
	return []Duration{DurationOneMonth, DurationThreeMonths, DurationSixMonths, DurationOneYear}
}

// Valid сообщает, входит ли срок в список допустимых.
func (d Duration) Valid() bool {
	switch d {
	case DurationOneMonth, DurationThreeMonths, DurationSixMonths, DurationOneYear:
		return true
	}
	return false
}

// Expiry вычисляет дату окончания подписки, начинающейся в момент from.
// Неизвестный срок считается одним месяцем.
func (d Duration) Expiry(from time.Time) time.Time {
	switch d {
	case DurationThreeMonths:
		return from.AddDate(0, 3, 0)
	case DurationSixMonths:
		return from.AddDate(0, 6, 0)
	case DurationOneYear:
		return from.AddDate(1, 0, 0)
	default:
		return from.AddDate(0, 1, 0)
	}
}

// Account описывает сгенерированную учётную запись стримингового сервиса.
type Account struct {
	ID               string        `json:"id"`
	Service          string        `json:"service"`
	Email            string        `json:"email"`
	Password         string        `json:"password"`
	Plan             string        `json:"plan"`
	Region           string        `json:"region"`
	Duration         Duration      `json:"duration"`
	GeneratedAt      time.Time     `json:"generatedAt"`
	ExpiresAt        time.Time     `json:"expiresAt"`
	Status           AccountStatus `json:"status"`
	RemainingTimeMs  *int64        `json:"remainingTimeMs,omitempty"`
	OriginalPassword *string       `json:"originalPassword,omitempty"`
}

// Remaining возвращает сохранённый при паузе остаток срока; отсутствие остатка равно нулю.
func (a Account) Remaining() time.Duration {
	if a.RemainingTimeMs == nil {
		return 0
	}
	return time.Duration(*a.RemainingTimeMs) * time.Millisecond
}

// Stats содержит накопительные счётчики панели. Счётчики только увеличиваются
// и не пересчитываются по фактическому содержимому инвентаря.
type Stats struct {
	TotalGenerated int64           `json:"totalGenerated"`
	ActiveStock    int64           `json:"activeStock"`
	Credits        int64           `json:"credits"`
	Revenue        decimal.Decimal `json:"revenue"`
}

// InitialStats возвращает значения счётчиков новой сессии.
func InitialStats() Stats {
	return Stats{
		TotalGenerated: 1250,
		ActiveStock:    45,
		Credits:        999999,
		Revenue:        decimal.NewFromInt(4200),
	}
}

// Role описывает роль пользователя панели.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleReseller Role = "reseller"
)

// User представляет пользователя панели реселлера.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// ChatRole описывает автора сообщения в чате поддержки.
type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

// ChatMessage описывает одно сообщение чата поддержки.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      ChatRole  `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// TransactionStatus описывает состояние платежа.
type TransactionStatus string

const (
	TransactionCompleted TransactionStatus = "Completed"
	TransactionFailed    TransactionStatus = "Failed"
	TransactionPending   TransactionStatus = "Pending"
)

// PaymentMethod описывает способ оплаты.
type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "Credit Card"
	PaymentPayPal     PaymentMethod = "PayPal"
	PaymentCrypto     PaymentMethod = "Crypto"
)

// Valid сообщает, поддерживается ли способ оплаты.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCreditCard, PaymentPayPal, PaymentCrypto:
		return true
	}
	return false
}

// Transaction описывает покупку пакета кредитов.
type Transaction struct {
	ID      string            `json:"id"`
	Date    time.Time         `json:"date"`
	Amount  decimal.Decimal   `json:"amount"`
	Credits int64             `json:"credits"`
	Status  TransactionStatus `json:"status"`
	Method  PaymentMethod     `json:"method"`
}

// CreditPackage описывает пакет кредитов, доступный для покупки.
type CreditPackage struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Credits int64           `json:"credits"`
	Price   decimal.Decimal `json:"price"`
	Popular bool            `json:"popular"`
}

// NotificationType описывает вид временного уведомления.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
)

// Notification описывает временное уведомление, показываемое после действий с аккаунтом.
type Notification struct {
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	ExpiresAt time.Time        `json:"expiresAt"`
}
