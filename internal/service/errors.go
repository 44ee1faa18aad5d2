package service

import "errors"

// Business error kinds surfaced by the transit core. Store failures are not
// sentinels; they arrive wrapped via %w and anything that is not one of these
// (or a repository sentinel) is a store/system failure for the caller.
var (
	ErrInvalidInterval   = errors.New("exit time must be after entry time")
	ErrTariffUnavailable = errors.New("no tariff matches the lot, vehicle type and instant")
	ErrGateDirection     = errors.New("gate does not allow this direction of travel")
	ErrGateLotMismatch   = errors.New("exit gate belongs to a different lot than the transit")
)
