package main

import (
	"errors"
	"fmt"
	"time"

	"go-catalog-admin/internal/handler"
	"go-catalog-admin/internal/model"
	"go-catalog-admin/internal/repository"
	"go-catalog-admin/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// resource wires repo, service and handler for one CRUD resource.
func resource[T any](db *gorm.DB, order string, opts service.ResourceOptions[T], deps service.Deps, log *zap.Logger) *handler.ResourceHandler[T] {
	repo := repository.NewCRUDRepo[T](db, order)
	return handler.NewResourceHandler(service.NewResourceService(repo, opts, deps), opts.Name, log)
}

func code[T any](get func(*T) string) map[string]func(*T) any {
	return map[string]func(*T) any{"code": func(e *T) any { return get(e) }}
}

// productExists rejects rows pointing at a missing product. A nil id is left
// to the uuid_required validation.
func productExists(products repository.ProductRepository, id uuid.UUID) error {
	if id == uuid.Nil {
		return nil
	}
	if _, err := products.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: product does not exist", service.ErrInvalid)
		}
		return err
	}
	return nil
}

func buildResources(db *gorm.DB, products repository.ProductRepository, deps service.Deps, log *zap.Logger) map[string]handler.Mounter {
	return map[string]handler.Mounter{
		"/brands":    resource(db, "name ASC", service.ResourceOptions[model.Brand]{Name: "brand"}, deps, log),
		"/suppliers": resource(db, "name ASC", service.ResourceOptions[model.Supplier]{Name: "supplier"}, deps, log),
		"/warehouses": resource(db, "name ASC", service.ResourceOptions[model.Warehouse]{
			Name:   "warehouse",
			Unique: code(func(w *model.Warehouse) string { return w.Code }),
		}, deps, log),
		"/categories": resource(db, "position ASC, name ASC", service.ResourceOptions[model.Category]{
			Name: "category",
			BeforeSave: func(c *model.Category, creating bool) error {
				if !creating && c.ParentID != nil && *c.ParentID == c.ID {
					return fmt.Errorf("%w: category cannot be its own parent", service.ErrInvalid)
				}
				return nil
			},
		}, deps, log),

		"/blog-posts": resource(db, "created_at DESC", service.ResourceOptions[model.BlogPost]{
			Name: "blog post",
			BeforeSave: func(p *model.BlogPost, creating bool) error {
				if p.Published && p.PublishedAt == nil {
					now := time.Now()
					p.PublishedAt = &now
				}
				return nil
			},
		}, deps, log),
		"/blog-categories": resource(db, "name ASC", service.ResourceOptions[model.BlogCategory]{Name: "blog category"}, deps, log),
		"/blog-authors":    resource(db, "name ASC", service.ResourceOptions[model.BlogAuthor]{Name: "blog author"}, deps, log),

		"/order-statuses": resource(db, "position ASC", service.ResourceOptions[model.OrderStatus]{
			Name:   "order status",
			Unique: code(func(s *model.OrderStatus) string { return s.Code }),
		}, deps, log),
		"/email-templates": resource(db, "code ASC", service.ResourceOptions[model.EmailTemplate]{
			Name:   "email template",
			Unique: code(func(t *model.EmailTemplate) string { return t.Code }),
		}, deps, log),
		"/image-sizes": resource(db, "name ASC", service.ResourceOptions[model.ImageSize]{
			Name:   "image size",
			Unique: map[string]func(*model.ImageSize) any{"name": func(s *model.ImageSize) any { return s.Name }},
		}, deps, log),

		"/wishlists": resource(db, "", service.ResourceOptions[model.Wishlist]{
			Name:       "wishlist",
			BeforeSave: func(w *model.Wishlist, _ bool) error { return productExists(products, w.ProductID) },
		}, deps, log),
		"/product-questions": resource(db, "", service.ResourceOptions[model.ProductQuestion]{
			Name:       "product question",
			BeforeSave: func(q *model.ProductQuestion, _ bool) error { return productExists(products, q.ProductID) },
		}, deps, log),
		"/reviews": resource(db, "", service.ResourceOptions[model.Review]{
			Name:       "review",
			BeforeSave: func(r *model.Review, _ bool) error { return productExists(products, r.ProductID) },
		}, deps, log),
		"/similar-products": resource(db, "", service.ResourceOptions[model.SimilarProductsConfig]{
			Name: "similar products config",
			Unique: map[string]func(*model.SimilarProductsConfig) any{
				"category_id": func(s *model.SimilarProductsConfig) any { return s.CategoryID },
			},
		}, deps, log),
	}
}
