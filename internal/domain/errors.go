package domain

import "errors"

// Workflow error taxonomy. Every error crossing a component boundary is one
// of these sentinels (possibly wrapped); the HTTP layer maps each to a
// deterministic status code.
var (
	ErrNotFound              = errors.New("not found")
	ErrInvalidState          = errors.New("invalid request state for transition")
	ErrInsufficientInventory = errors.New("insufficient available inventory")
	ErrInvalidAssetType      = errors.New("asset type is not returnable")
	ErrConflict              = errors.New("conditional update lost the race")
	ErrStorageUnavailable    = errors.New("storage unavailable")
)
