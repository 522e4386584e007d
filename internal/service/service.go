// Package service реализует бизнес-логику панели реселлера AccountBot:
// сессии пользователей, инвентарь аккаунтов, чат поддержки и покупку кредитов.
package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/mmeshcher/accountbot/internal/generator"
	"github.com/mmeshcher/accountbot/internal/genai"
	"github.com/mmeshcher/accountbot/internal/inventory"
	"github.com/mmeshcher/accountbot/internal/metrics"
	"github.com/mmeshcher/accountbot/internal/model"
)

const (
	// DefaultAuthDelay задаёт имитируемую задержку проверки учётных данных.
	DefaultAuthDelay = 800 * time.Millisecond
	// DefaultPaymentDelay задаёт имитируемую задержку платёжного шлюза.
	DefaultPaymentDelay = 1500 * time.Millisecond
	// DefaultSessionTTL совпадает со сроком жизни cookie сессии.
	DefaultSessionTTL = 7 * 24 * time.Hour
	// DefaultMaxSessionsPerUser ограничивает число одновременных сессий одного пользователя.
	DefaultMaxSessionsPerUser = 10
)

// ErrSessionNotFound возвращается, если сессия отсутствует или завершена.
var ErrSessionNotFound = errors.New("session not found")

// UserDirectory проверяет учётные данные пользователей панели.
type UserDirectory interface {
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
	Close() error
}

// AccountGenerator выпускает партии аккаунтов.
type AccountGenerator interface {
	Generate(ctx context.Context, req generator.Request) ([]model.Account, error)
}

// ChatClient отвечает на сообщения чата поддержки.
type ChatClient interface {
	Chat(ctx context.Context, systemInstruction string, history []genai.Message, message string) (string, error)
}

// Options задаёт имитируемые задержки и ограничения сессий. Нулевые задержки
// отключают ожидание, нулевые ограничения заменяются значениями по умолчанию.
type Options struct {
	AuthDelay          time.Duration
	PaymentDelay       time.Duration
	SessionTTL         time.Duration
	MaxSessionsPerUser int
}

// Service содержит бизнес-логику панели и реестр активных сессий.
type Service struct {
	users     UserDirectory
	generator AccountGenerator
	chat      ChatClient
	logger    *zap.Logger
	metrics   *metrics.Metrics

	authDelay    time.Duration
	paymentDelay time.Duration
	sessionTTL   time.Duration
	maxPerUser   int

	now         func() time.Time
	newPassword func() string

	mu       sync.RWMutex
	sessions map[string]*Session

	done      chan struct{}
	closeOnce sync.Once
}

// NewService создаёт сервис. chat может быть nil: тогда чат поддержки
// принимает сообщения, но не получает ответов.
func NewService(users UserDirectory, gen AccountGenerator, chat ChatClient, logger *zap.Logger, m *metrics.Metrics, opts Options) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = DefaultSessionTTL
	}
	if opts.MaxSessionsPerUser <= 0 {
		opts.MaxSessionsPerUser = DefaultMaxSessionsPerUser
	}
	return &Service{
		users:        users,
		generator:    gen,
		chat:         chat,
		logger:       logger,
		metrics:      m,
		authDelay:    opts.AuthDelay,
		paymentDelay: opts.PaymentDelay,
		sessionTTL:   opts.SessionTTL,
		maxPerUser:   opts.MaxSessionsPerUser,
		now:          time.Now,
		newPassword:  generator.RandomPassword,
		sessions:     make(map[string]*Session),
		done:         make(chan struct{}),
	}
}

// Session хранит состояние одного входа пользователя. Всё состояние живёт
// в памяти процесса и пропадает при выходе, простое дольше SessionTTL или перезапуске.
type Session struct {
	ID        string
	User      model.User
	CreatedAt time.Time

	// lastSeen хранит время последнего обращения в наносекундах Unix.
	lastSeen atomic.Int64

	store    *inventory.Store
	pager    *inventory.Pager
	notifier *inventory.Notifier

	mu           sync.Mutex
	stats        model.Stats
	chat         []model.ChatMessage
	transactions []model.Transaction
	generating   bool
	chatting     bool
	purchasing   bool
}

func (s *Service) newSession(u model.User) *Session {
	now := s.now()
	sess := &Session{
		ID:           uuid.NewString(),
		User:         u,
		CreatedAt:    now,
		store:        inventory.NewStore(),
		pager:        inventory.NewPager(),
		notifier:     inventory.NewNotifier(s.now),
		stats:        model.InitialStats(),
		chat:         []model.ChatMessage{greeting(now)},
		transactions: seedTransactions(now),
	}
	sess.lastSeen.Store(now.UnixNano())
	return sess
}

// LastSeen возвращает время последнего обращения к сессии.
func (sess *Session) LastSeen() time.Time {
	return time.Unix(0, sess.lastSeen.Load())
}

func (s *Service) expired(sess *Session, now time.Time) bool {
	return now.Sub(sess.LastSeen()) > s.sessionTTL
}

// Close закрывает ресурсы сервиса, останавливает очистку и завершает все сессии.
func (s *Service) Close() error {
	s.closeOnce.Do(func() { close(s.done) })

	s.mu.Lock()
	s.sessions = make(map[string]*Session)
	s.mu.Unlock()

	var err error
	if s.users != nil {
		err = multierr.Append(err, s.users.Close())
	}
	return err
}

// Login проверяет учётные данные и открывает новую сессию.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	if err := sleep(ctx, s.authDelay); err != nil {
		return nil, err
	}

	u, err := s.users.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	sess := s.newSession(*u)

	s.mu.Lock()
	evicted := s.evictOldest(u.ID)
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	for _, id := range evicted {
		s.logger.Info("session evicted", zap.String("user_id", u.ID), zap.String("session_id", id))
	}
	s.logger.Info("session opened", zap.String("user_id", u.ID), zap.String("session_id", sess.ID))
	return sess, nil
}

// evictOldest освобождает место для новой сессии пользователя, удаляя самые
// старые. Вызывается под s.mu.
func (s *Service) evictOldest(userID string) []string {
	var own []*Session
	for _, sess := range s.sessions {
		if sess.User.ID == userID {
			own = append(own, sess)
		}
	}
	if len(own) < s.maxPerUser {
		return nil
	}

	slices.SortFunc(own, func(a, b *Session) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	excess := own[:len(own)-s.maxPerUser+1]
	ids := make([]string, 0, len(excess))
	for _, sess := range excess {
		delete(s.sessions, sess.ID)
		ids = append(ids, sess.ID)
	}
	return ids
}

// Sweep удаляет сессии, простаивающие дольше SessionTTL, и возвращает их число.
func (s *Service) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// RunSweeper периодически удаляет простаивающие сессии, пока не отменён ctx
// или не вызван Close.
func (s *Service) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.done:
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.logger.Info("expired sessions removed", zap.Int("count", n))
			}
		}
	}
}

// Logout завершает сессию и удаляет всё её состояние.
func (s *Service) Logout(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}

// User возвращает пользователя сессии.
func (s *Service) User(sessionID string) (*model.User, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	u := sess.User
	return &u, nil
}

func (s *Service) session(id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	now := s.now()
	if s.expired(sess, now) {
		s.mu.Lock()
		if cur, ok := s.sessions[id]; ok && cur == sess {
			delete(s.sessions, id)
		}
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	sess.lastSeen.Store(now.UnixNano())
	return sess, nil
}

// sleep ждёт d или отмены контекста.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
