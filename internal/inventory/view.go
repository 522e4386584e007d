package inventory

import (
	"slices"
	"strings"
	"sync"

	"github.com/mmeshcher/accountbot/internal/model"
)

// PageStep задаёт начальный размер и шаг роста окна истории.
const PageStep = 5

// Search возвращает записи, у которых email, регион или сервис содержат query
// без учёта регистра. Порядок записей сохраняется.
func Search(accounts []model.Account, query string) []model.Account {
	q := strings.ToLower(query)

	out := make([]model.Account, 0, len(accounts))
	for _, a := range accounts {
		if strings.Contains(strings.ToLower(a.Email), q) ||
			strings.Contains(strings.ToLower(a.Region), q) ||
			strings.Contains(strings.ToLower(a.Service), q) {
			out = append(out, a)
		}
	}
	return out
}

// Recent возвращает копию записей, отсортированную по времени генерации от новых к старым.
func Recent(accounts []model.Account) []model.Account {
	out := slices.Clone(accounts)
	slices.SortStableFunc(out, func(a, b model.Account) int {
		return b.GeneratedAt.Compare(a.GeneratedAt)
	})
	return out
}

// Pager хранит размер окна истории последних сгенерированных аккаунтов.
// Окно только растёт; сбросить его можно лишь созданием нового Pager.
type Pager struct {
	mu      sync.Mutex
	visible int
}

// NewPager создаёт окно истории начального размера.
func NewPager() *Pager {
	return &Pager{visible: PageStep}
}

// Visible возвращает текущий размер окна.
func (p *Pager) Visible() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible
}

// LoadMore увеличивает окно на PageStep, если в коллекции из total записей
// есть ещё не показанные. Возвращает новый размер окна.
func (p *Pager) LoadMore(total int) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if total > p.visible {
		p.visible += PageStep
	}
	return p.visible
}

// Window возвращает не более Visible() самых свежих записей и признак наличия
// следующих.
func (p *Pager) Window(accounts []model.Account) ([]model.Account, bool) {
	visible := p.Visible()
	sorted := Recent(accounts)
	if len(sorted) <= visible {
		return sorted, false
	}
	return sorted[:visible], true
}
