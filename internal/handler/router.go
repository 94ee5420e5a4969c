package handler

import (
	"go-catalog-admin/internal/model"

	"github.com/gofiber/fiber/v2"
)

// Mounter registers a handler's routes under path.
type Mounter interface {
	Mount(r fiber.Router, path string)
}

type Handlers struct {
	Products       *ProductHandler
	Combinations   *CombinationHandler
	Attributes     *GroupHandler[model.AttributeGroup, model.AttributeValue]
	Features       *GroupHandler[model.FeatureGroup, model.FeatureValue]
	FeatureWeights *FeatureWeightHandler
	Dashboard      *DashboardHandler
	// Resources maps a path such as "/brands" to its CRUD handler.
	Resources map[string]Mounter
}

// Register mounts every admin route on api (normally /api/v1).
func (h *Handlers) Register(api fiber.Router) {
	api.Post("/slugs", GenerateSlug)

	if h.Products != nil {
		api.Get("/products", h.Products.GetProducts)
		api.Post("/products", h.Products.CreateProduct)
		api.Get("/products/:id", h.Products.GetProduct)
		api.Put("/products/:id", h.Products.UpdateProduct)
		api.Delete("/products/:id", h.Products.DeleteProduct)
	}

	if h.Combinations != nil {
		api.Post("/products/:id/combinations/preview", h.Combinations.Preview)
		api.Post("/products/:id/combinations", h.Combinations.Generate)
		api.Get("/products/:id/combinations", h.Combinations.List)
		api.Put("/combinations/:id", h.Combinations.Update)
		api.Post("/combinations/:id/default", h.Combinations.SetDefault)
		api.Delete("/combinations/:id", h.Combinations.Delete)
	}

	if h.Attributes != nil {
		h.Attributes.Mount(api, "/attribute-groups", "/attribute-values")
	}
	if h.Features != nil {
		h.Features.Mount(api, "/feature-groups", "/feature-values")
	}

	if h.FeatureWeights != nil {
		api.Get("/categories/:id/feature-weights", h.FeatureWeights.Get)
		api.Put("/categories/:id/feature-weights", h.FeatureWeights.Save)
		api.Post("/categories/:id/feature-weights/validate", h.FeatureWeights.Validate)
	}

	if h.Dashboard != nil {
		api.Get("/dashboard/stats", h.Dashboard.GetDashboardStats)
		api.Get("/dashboard/activity", h.Dashboard.GetCatalogActivity)
	}

	for path, m := range h.Resources {
		m.Mount(api, path)
	}
}
