package domain

import "errors"

var (
	ErrTransferNotFound        = errors.New("transfer not found")
	ErrOrderNotFound           = errors.New("order not found")
	ErrTransferAlreadyResolved = errors.New("transfer already resolved")
	ErrGatewayUnconfigured     = errors.New("payment gateway not configured")
	ErrGatewayUnavailable      = errors.New("payment gateway unavailable")
	ErrMalformedMovement       = errors.New("malformed movement payload")
	ErrInvalidPageParams       = errors.New("invalid page parameters")
)
