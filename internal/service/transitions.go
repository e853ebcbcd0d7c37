package service

import "hrassets-backend/internal/domain"

var transitionMap = map[string][]domain.RequestStatus{
	"approve": {domain.RequestStatusPending},
	"reject":  {domain.RequestStatusPending},
	"return":  {domain.RequestStatusApproved},
}

// ValidTransition reports whether the action may fire from the given status.
// REJECTED and RETURNED are terminal; APPROVED is terminal for
// non-returnable assets (enforced separately via the asset-type snapshot).
func ValidTransition(action string, from domain.RequestStatus) bool {
	allowed, ok := transitionMap[action]
	if !ok {
		return false
	}
	for _, status := range allowed {
		if status == from {
			return true
		}
	}
	return false
}
