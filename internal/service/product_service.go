package service

import (
	"errors"
	"fmt"

	"go-catalog-admin/internal/model"
	"go-catalog-admin/internal/repository"
	"go-catalog-admin/pkg/slug"
	"go-catalog-admin/pkg/validator"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ProductService interface {
	CreateProduct(req *model.Product, actor string) error
	UpdateProduct(id uuid.UUID, req *model.Product, actor string) (*model.Product, error)
	DeleteProduct(id uuid.UUID, actor string) error
	GetProducts(filter repository.ProductFilter, page repository.Page) ([]model.Product, int64, error)
	GetProduct(id uuid.UUID) (*model.Product, error)
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CRUDRepository[model.Category]
	brandRepo    repository.CRUDRepository[model.Brand]
	supplierRepo repository.CRUDRepository[model.Supplier]
	deps         Deps
}

func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CRUDRepository[model.Category],
	brandRepo repository.CRUDRepository[model.Brand],
	supplierRepo repository.CRUDRepository[model.Supplier],
	deps Deps,
) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
		supplierRepo: supplierRepo,
		deps:         deps,
	}
}

func (s *productService) CreateProduct(req *model.Product, actor string) error {
	// 1. Defaults and validation
	req.Slug = slug.FromName(req.Slug, req.Name)
	if err := validator.Check(req); err != nil {
		return err
	}
	if req.Slug == "" {
		return invalid("slug cannot be generated from this name")
	}

	// 2. Unique SKU and slug, existing references
	if err := s.checkUnique(req, nil); err != nil {
		return err
	}
	if err := s.checkReferences(req); err != nil {
		return err
	}

	// 3. Audit fields
	req.ID = uuid.Nil
	req.CreatedBy = actor
	req.UpdatedBy = actor

	if err := s.productRepo.Create(req); err != nil {
		return storeErr("product", err)
	}

	s.deps.logger().Info("product created", zap.Stringer("id", req.ID), zap.String("sku", req.SKU), zap.String("actor", actor))
	s.deps.publish("created", "product", req.ID, actor, fmt.Sprintf("%s created product '%s'", actor, req.Name), map[string]interface{}{
		"sku":  req.SKU,
		"name": req.Name,
		"slug": req.Slug,
	})
	return nil
}

func (s *productService) UpdateProduct(id uuid.UUID, req *model.Product, actor string) (*model.Product, error) {
	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, storeErr("product", err)
	}

	req.Slug = slug.FromName(req.Slug, req.Name)
	if err := validator.Check(req); err != nil {
		return nil, err
	}
	if req.Slug == "" {
		return nil, invalid("slug cannot be generated from this name")
	}
	if err := s.checkUnique(req, &existing.ID); err != nil {
		return nil, err
	}
	if err := s.checkReferences(req); err != nil {
		return nil, err
	}

	existing.SKU = req.SKU
	existing.Name = req.Name
	existing.Slug = req.Slug
	existing.Description = req.Description
	existing.Price = req.Price
	existing.Weight = req.Weight
	existing.Quantity = req.Quantity
	existing.Active = req.Active
	existing.CategoryID = req.CategoryID
	existing.BrandID = req.BrandID
	existing.SupplierID = req.SupplierID
	existing.UpdatedBy = actor

	if err := s.productRepo.Update(existing); err != nil {
		return nil, storeErr("product", err)
	}

	s.deps.publish("updated", "product", existing.ID, actor, fmt.Sprintf("%s updated product '%s'", actor, existing.Name), map[string]interface{}{
		"sku":  existing.SKU,
		"name": existing.Name,
	})
	return s.GetProduct(id)
}

func (s *productService) DeleteProduct(id uuid.UUID, actor string) error {
	if err := s.productRepo.Delete(id, actor); err != nil {
		return storeErr("product", err)
	}
	s.deps.publish("deleted", "product", id, actor, fmt.Sprintf("%s deleted a product", actor), nil)
	return nil
}

func (s *productService) GetProducts(filter repository.ProductFilter, page repository.Page) ([]model.Product, int64, error) {
	products, total, err := s.productRepo.FindAll(filter, page)
	if err != nil {
		return nil, 0, storeErr("product", err)
	}
	return products, total, nil
}

func (s *productService) GetProduct(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, storeErr("product", err)
	}
	return product, nil
}

func (s *productService) checkUnique(req *model.Product, excludeID *uuid.UUID) error {
	if existing, err := s.productRepo.FindBySKU(req.SKU); err == nil {
		if excludeID == nil || existing.ID != *excludeID {
			return duplicate("product", "SKU")
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return storeErr("product", err)
	}

	if existing, err := s.productRepo.FindBySlug(req.Slug); err == nil {
		if excludeID == nil || existing.ID != *excludeID {
			return duplicate("product", "slug")
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return storeErr("product", err)
	}
	return nil
}

func (s *productService) checkReferences(req *model.Product) error {
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(*req.CategoryID); err != nil {
			return reference("category", err)
		}
	}
	if req.BrandID != nil {
		if _, err := s.brandRepo.FindByID(*req.BrandID); err != nil {
			return reference("brand", err)
		}
	}
	if req.SupplierID != nil {
		if _, err := s.supplierRepo.FindByID(*req.SupplierID); err != nil {
			return reference("supplier", err)
		}
	}
	return nil
}
