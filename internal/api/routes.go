package api

import "github.com/go-chi/chi/v5"

// Handlers groups the resource handlers served under the API prefix.
type Handlers struct {
	Products *ProductHandler
	Ads      *AdHandler
	Sets     *SetHandler
	SetItems *SetItemHandler
}

// Register mounts every resource on r. Each resource gets the same five
// routes: create, list, get, update and delete.
func (h *Handlers) Register(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Post("/", h.Products.CreateProduct)
		r.Get("/", h.Products.ListProducts)
		r.Get("/{id}", h.Products.GetProduct)
		r.Put("/{id}", h.Products.UpdateProduct)
		r.Delete("/{id}", h.Products.DeleteProduct)
	})

	r.Route("/ads", func(r chi.Router) {
		r.Post("/", h.Ads.CreateAd)
		r.Get("/", h.Ads.ListAds)
		r.Get("/{id}", h.Ads.GetAd)
		r.Put("/{id}", h.Ads.UpdateAd)
		r.Delete("/{id}", h.Ads.DeleteAd)
	})

	r.Route("/sets", func(r chi.Router) {
		r.Post("/", h.Sets.CreateSet)
		r.Get("/", h.Sets.ListSets)
		r.Get("/{id}", h.Sets.GetSet)
		r.Put("/{id}", h.Sets.UpdateSet)
		r.Delete("/{id}", h.Sets.DeleteSet)
	})

	r.Route("/set_items", func(r chi.Router) {
		r.Post("/", h.SetItems.CreateSetItem)
		r.Get("/", h.SetItems.ListSetItems)
		r.Get("/{id}", h.SetItems.GetSetItem)
		r.Put("/{id}", h.SetItems.UpdateSetItem)
		r.Delete("/{id}", h.SetItems.DeleteSetItem)
	})
}
