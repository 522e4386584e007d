package inventory

import (
	"sync"
	"time"

	"github.com/mmeshcher/accountbot/internal/model"
)

// NotificationTTL задаёт время жизни уведомления.
const NotificationTTL = 5 * time.Second

const (
	pausedMessage  = "Account paused. Password has been changed for security and will be provided once resumed."
	resumedMessage = "Account resumed. Access credentials have been restored."
)

// Notifier хранит единственное временное уведомление; новое заменяет предыдущее.
type Notifier struct {
	mu      sync.Mutex
	current *model.Notification
	now     func() time.Time
}

// NewNotifier создаёт уведомитель с указанным источником времени.
func NewNotifier(now func() time.Time) *Notifier {
	if now == nil {
		now = time.Now
	}
	return &Notifier{now: now}
}

// Notify показывает уведомление вместо текущего.
func (n *Notifier) Notify(message string, typ model.NotificationType) model.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	note := model.Notification{
		Message:   message,
		Type:      typ,
		ExpiresAt: n.now().Add(NotificationTTL),
	}
	n.current = &note
	return note
}

// NotifyAction показывает уведомление, соответствующее действию. Для действий
// без уведомления ничего не делает.
func (n *Notifier) NotifyAction(action Action) {
	switch action {
	case ActionPause:
		n.Notify(pausedMessage, model.NotificationInfo)
	case ActionResume:
		n.Notify(resumedMessage, model.NotificationSuccess)
	}
}

// Current возвращает уведомление, если срок его показа ещё не истёк.
func (n *Notifier) Current() (model.Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == nil {
		return model.Notification{}, false
	}
	if !n.now().Before(n.current.ExpiresAt) {
		n.current = nil
		return model.Notification{}, false
	}
	return *n.current, true
}
