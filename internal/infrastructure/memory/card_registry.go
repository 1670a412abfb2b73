package memory

import (
	"sync"
	"time"

	"pcshop/internal/domain/payment"
)

// CardRegistry deduplicates credit cards by number. Registration is
// first-writer-wins: a second call with an already registered number returns
// the stored card unchanged and its expiry/holder arguments are discarded.
type CardRegistry struct {
	mu    sync.Mutex
	cards map[string]*payment.CreditCard
}

func NewCardRegistry() *CardRegistry {
	return &CardRegistry{
		cards: make(map[string]*payment.CreditCard),
	}
}

// Lookup returns the card registered under number, if any.
func (r *CardRegistry) Lookup(number string) (*payment.CreditCard, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cards[number]
	return c, ok
}

func (r *CardRegistry) GetCreditCard(number string, expiry time.Time, holder string) (*payment.CreditCard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.cards[number]; ok {
		return c, nil
	}
	c, err := payment.NewCreditCard(number, expiry, holder)
	if err != nil {
		return nil, err
	}
	r.cards[number] = c
	return c, nil
}
