package api

import (
	"encoding/json"
	"time"

	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/shopspring/decimal"
)

// ProductRequest is the body of product create and update requests.
// Price must be a JSON number.
type ProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
	Description string   `json:"description" validate:"required"`
}

// ProductResponse represents the response data for a product
type ProductResponse struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Price       json.Number `json:"price"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// AdRequest is the body of ad create and update requests.
// ImageURL may be omitted or null.
type AdRequest struct {
	ProductID int64   `json:"product_id" validate:"required,gt=0"`
	Title     string  `json:"title" validate:"required"`
	Content   string  `json:"content" validate:"required"`
	ImageURL  *string `json:"image_url"`
}

// AdResponse represents the response data for an ad
type AdResponse struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURL  *string   `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SetRequest is the body of set create and update requests.
type SetRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// SetResponse represents the response data for a set
type SetResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SetItemRequest is the body of set item create and update requests.
type SetItemRequest struct {
	SetID    int64  `json:"set_id" validate:"required,gt=0"`
	ItemType string `json:"item_type" validate:"required"`
	ItemID   int64  `json:"item_id" validate:"required,gt=0"`
}

// SetItemResponse represents the response data for a set item
type SetItemResponse struct {
	ID        int64     `json:"id"`
	SetID     int64     `json:"set_id"`
	ItemType  string    `json:"item_type"`
	ItemID    int64     `json:"item_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (req *ProductRequest) toDomain(id int64) *domain.Product {
	return &domain.Product{
		ID:          id,
		Name:        req.Name,
		Price:       decimal.NewFromFloat(*req.Price),
		Description: req.Description,
	}
}

func (req *AdRequest) toDomain(id int64) *domain.Ad {
	return &domain.Ad{
		ID:        id,
		ProductID: req.ProductID,
		Title:     req.Title,
		Content:   req.Content,
		ImageURL:  req.ImageURL,
	}
}

func (req *SetRequest) toDomain(id int64) *domain.Set {
	return &domain.Set{ID: id, Name: req.Name, Description: req.Description}
}

func (req *SetItemRequest) toDomain(id int64) *domain.SetItem {
	return &domain.SetItem{ID: id, SetID: req.SetID, ItemType: req.ItemType, ItemID: req.ItemID}
}

func productToResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       json.Number(p.Price.String()),
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func adToResponse(a *domain.Ad) AdResponse {
	return AdResponse{
		ID:        a.ID,
		ProductID: a.ProductID,
		Title:     a.Title,
		Content:   a.Content,
		ImageURL:  a.ImageURL,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func setToResponse(s *domain.Set) SetResponse {
	return SetResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func setItemToResponse(si *domain.SetItem) SetItemResponse {
	return SetItemResponse{
		ID:        si.ID,
		SetID:     si.SetID,
		ItemType:  si.ItemType,
		ItemID:    si.ItemID,
		CreatedAt: si.CreatedAt,
		UpdatedAt: si.UpdatedAt,
	}
}

// mapSlice converts each element of in, returning an empty (non-nil) slice
// for empty input so lists always encode as a JSON array.
func mapSlice[T any, R any](in []T, f func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}
