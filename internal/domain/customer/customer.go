package customer

import (
	"fmt"

	"pcshop/internal/domain"
)

// Customer wraps one canonical Name. Instances are created and shared by the
// customer registry so that exactly one object exists per distinct
// normalized name; holders reference that instance, never a copy.
type Customer struct {
	name Name
}

func New(name Name) (*Customer, error) {
	if name == (Name{}) {
		return nil, fmt.Errorf("customer: %w: name is required", domain.ErrValidation)
	}
	return &Customer{name: name}, nil
}

func (c *Customer) Name() Name { return c.name }

func (c *Customer) FirstName() string { return c.name.First() }

func (c *Customer) LastName() string { return c.name.Last() }

func (c *Customer) String() string { return c.name.String() }

// Equal reports whether both customers carry the same normalized name.
func (c *Customer) Equal(other *Customer) bool {
	return other != nil && c.name == other.name
}
