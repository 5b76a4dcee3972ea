package models

// OrderStatus represents where an order is in the checkout flow
type OrderStatus string

const (
	// StatusDraft is a cart still being built.
	StatusDraft OrderStatus = "draft"
	// StatusValidated means the admission check passed.
	StatusValidated OrderStatus = "validated"
	// StatusCommitted means stock was deducted and the order exists.
	StatusCommitted OrderStatus = "committed"
	// StatusRejected means the admission check failed; nothing changed.
	StatusRejected OrderStatus = "rejected"
)
