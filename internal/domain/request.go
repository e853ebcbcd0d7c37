package domain

import "time"

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusRejected RequestStatus = "REJECTED"
	RequestStatusReturned RequestStatus = "RETURNED"
)

type Request struct {
	ID        int32  `json:"id"`
	Reference string `json:"reference"` // uuid quoted in notification emails
	AssetID   int32  `json:"asset_id"`
	// Snapshot fields — captured from the asset at request creation time.
	// Request history stays intact if the asset is edited or deleted later.
	AssetName   string        `json:"asset_name"`
	AssetType   AssetType     `json:"asset_type"`
	AssetImage  string        `json:"asset_image"`
	Company     string        `json:"company"`
	Requester   string        `json:"requester"`
	Note        string        `json:"note"`
	Status      RequestStatus `json:"status"`
	RequestDate time.Time     `json:"request_date"`
	ProcessDate *time.Time    `json:"process_date,omitempty"`
	ReturnDate  *time.Time    `json:"return_date,omitempty"`
	ProcessedBy *string       `json:"processed_by,omitempty"`
}

// Returnable reports whether the request's snapshotted asset type allows
// the APPROVED -> RETURNED transition.
func (r *Request) Returnable() bool {
	return r.AssetType == AssetTypeReturnable
}
