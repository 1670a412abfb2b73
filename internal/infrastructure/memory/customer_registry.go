package memory

import (
	"sync"

	"pcshop/internal/domain/customer"
)

// CustomerRegistry deduplicates customers by normalized name. Lookup-or-create
// is atomic: concurrent first-time lookups of the same name observe a single
// stored instance.
type CustomerRegistry struct {
	mu        sync.Mutex
	customers map[customer.Name]*customer.Customer
}

func NewCustomerRegistry() *CustomerRegistry {
	return &CustomerRegistry{
		customers: make(map[customer.Name]*customer.Customer),
	}
}

// GetCustomer normalizes the given name components and returns the canonical
// customer instance for that name, creating and storing it on first use.
func (r *CustomerRegistry) GetCustomer(first, last string) (*customer.Customer, error) {
	name, err := customer.NewName(first, last)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.customers[name]; ok {
		return c, nil
	}
	c, err := customer.New(name)
	if err != nil {
		return nil, err
	}
	r.customers[name] = c
	return c, nil
}
