package accountrepo

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/GlebRadaev/kudos/internal/domain"
)

type entry struct {
	mu      sync.Mutex
	account *domain.Account
}

// Repository keeps accounts in memory. The map is guarded by mu, every account
// by the mutex of its entry; account callbacks always run under that mutex.
type Repository struct {
	mu       sync.RWMutex
	accounts map[string]*entry
}

func New() *Repository {
	return &Repository{
		accounts: make(map[string]*entry),
	}
}

func (r *Repository) lookup(id string) (*entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.accounts[id]
	return e, ok
}

func (r *Repository) Create(ctx context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.ID]; ok {
		return fmt.Errorf("%w: %s", domain.ErrAccountAlreadyExists, account.ID)
	}
	r.accounts[account.ID] = &entry{account: account}
	return nil
}

// Upsert runs fn on the account with the given id. A missing account is built
// with create and only stored when fn succeeds on it.
func (r *Repository) Upsert(ctx context.Context, id string, create func() *domain.Account, fn func(*domain.Account) error) error {
	if e, ok := r.lookup(id); ok {
		return e.apply(fn)
	}

	r.mu.Lock()
	e, ok := r.accounts[id]
	if !ok {
		defer r.mu.Unlock()
		account := create()
		if err := fn(account); err != nil {
			return err
		}
		r.accounts[id] = &entry{account: account}
		return nil
	}
	r.mu.Unlock()

	return e.apply(fn)
}

func (r *Repository) Update(ctx context.Context, id string, fn func(*domain.Account) error) error {
	e, ok := r.lookup(id)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id)
	}
	return e.apply(fn)
}

// View is Update for callers that only read; fn must not mutate the account.
func (r *Repository) View(ctx context.Context, id string, fn func(*domain.Account) error) error {
	return r.Update(ctx, id, fn)
}

// UpdatePair locks both accounts, in id order, and runs fn with them in the
// order they were requested.
func (r *Repository) UpdatePair(ctx context.Context, firstID, secondID string, fn func(first, second *domain.Account) error) error {
	first, ok := r.lookup(firstID)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrAccountNotFound, firstID)
	}
	second, ok := r.lookup(secondID)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrAccountNotFound, secondID)
	}
	if firstID == secondID {
		return fmt.Errorf("%w: same account on both sides", domain.ErrInvalidTransaction)
	}

	if firstID < secondID {
		first.mu.Lock()
		second.mu.Lock()
	} else {
		second.mu.Lock()
		first.mu.Lock()
	}
	defer first.mu.Unlock()
	defer second.mu.Unlock()

	return fn(first.account, second.account)
}

// ForEach visits every account known when the call started, each under its
// own lock. Accounts are visited in id order.
func (r *Repository) ForEach(ctx context.Context, fn func(*domain.Account)) {
	for _, e := range r.snapshot() {
		e.mu.Lock()
		fn(e.account)
		e.mu.Unlock()
	}
}

func (r *Repository) List(ctx context.Context) []domain.AccountSummary {
	entries := r.snapshot()
	summaries := make([]domain.AccountSummary, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		summaries = append(summaries, e.account.Summary())
		e.mu.Unlock()
	}
	return summaries
}

func (r *Repository) snapshot() []*entry {
	r.mu.RLock()
	ids := make([]string, 0, len(r.accounts))
	for id := range r.accounts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	entries := make([]*entry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, r.accounts[id])
	}
	r.mu.RUnlock()
	return entries
}

func (e *entry) apply(fn func(*domain.Account) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.account)
}
