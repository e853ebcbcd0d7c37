package http

import (
	"encoding/json"
	"net/http"

	"hrassets-backend/internal/domain"
	"hrassets-backend/internal/service"
)

type AssetHandler struct {
	assets service.AssetService
}

func NewAssetHandler(assets service.AssetService) *AssetHandler {
	return &AssetHandler{assets: assets}
}

type assetBody struct {
	Name     string           `json:"name"`
	ImageURL string           `json:"image_url"`
	Type     domain.AssetType `json:"type"`
	Quantity int32            `json:"quantity"`
}

func (b *assetBody) validate() string {
	if b.Name == "" {
		return "name is required"
	}
	if !b.Type.Valid() {
		return "type must be RETURNABLE or NON_RETURNABLE"
	}
	if b.Quantity < 0 {
		return "quantity must be non-negative"
	}
	return ""
}

func (h *AssetHandler) Add(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())

	var body assetBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if msg := body.validate(); msg != "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
		return
	}

	// The owning company is resolved from the caller's user record.
	asset := &domain.Asset{
		Name:     body.Name,
		ImageURL: body.ImageURL,
		Type:     body.Type,
		Quantity: body.Quantity,
	}
	if err := h.assets.AddAsset(r.Context(), claims.Email, asset); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, asset)
}

func (h *AssetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	asset, err := h.assets.GetAsset(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, asset)
}

func (h *AssetHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var body assetBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if msg := body.validate(); msg != "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
		return
	}

	asset := &domain.Asset{
		ID:       id,
		Name:     body.Name,
		ImageURL: body.ImageURL,
		Type:     body.Type,
		Quantity: body.Quantity,
	}
	if err := h.assets.UpdateAsset(r.Context(), claims.Email, asset); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, asset)
}

func (h *AssetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.assets.DeleteAsset(r.Context(), claims.Email, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *AssetHandler) List(w http.ResponseWriter, r *http.Request) {
	company := r.URL.Query().Get("company")
	if company == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "company is required"})
		return
	}
	assets, err := h.assets.ListAssets(r.Context(), company)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, assets)
}
