package domain

type AssetType string

const (
	AssetTypeReturnable    AssetType = "RETURNABLE"
	AssetTypeNonReturnable AssetType = "NON_RETURNABLE"
)

func (t AssetType) Valid() bool {
	return t == AssetTypeReturnable || t == AssetTypeNonReturnable
}

type Asset struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"image_url"`
	Type      AssetType `json:"type"`
	Quantity  int32     `json:"quantity"`
	Available int32     `json:"available"`
	Company   string    `json:"company"`
	CreatedBy string    `json:"created_by"` // HR email that registered the asset
	CreatedOn string    `json:"created_on"`
}
