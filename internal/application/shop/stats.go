package shop

import (
	"pcshop/internal/domain/customer"
	"pcshop/internal/domain/pc"
)

// CustomerStats reports the winner of the largest-customer query.
type CustomerStats struct {
	Customer *customer.Customer
	Orders   int
}

// ModelStats reports the winner of the most-ordered-model query.
type ModelStats struct {
	Model  *pc.PresetModel
	Orders int
}

// PartsStats reports the winner of the most-ordered-part query.
type PartsStats struct {
	Part   string
	Orders int
}
