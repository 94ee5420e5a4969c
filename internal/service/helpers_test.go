package service

import (
	"fmt"
	"testing"

	"go-catalog-admin/internal/model"
	"go-catalog-admin/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testActor = "tester"

// newTestDB opens a private in-memory database with every table migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

type testCatalog struct {
	db           *gorm.DB
	products     ProductService
	attributes   AttributeService
	features     FeatureService
	combinations CombinationService
	weights      FeatureWeightService
	categories   ResourceService[model.Category]
	brands       ResourceService[model.Brand]
}

func newTestCatalog(t *testing.T, maxCombinations int) *testCatalog {
	t.Helper()
	db := newTestDB(t)

	productRepo := repository.NewProductRepo(db)
	attributeRepo := repository.NewAttributeRepo(db)
	featureRepo := repository.NewFeatureRepo(db)
	categoryRepo := repository.NewCRUDRepo[model.Category](db, "position ASC, name ASC")
	brandRepo := repository.NewCRUDRepo[model.Brand](db, "name ASC")
	supplierRepo := repository.NewCRUDRepo[model.Supplier](db, "name ASC")

	deps := Deps{}
	return &testCatalog{
		db:           db,
		products:     NewProductService(productRepo, categoryRepo, brandRepo, supplierRepo, deps),
		attributes:   NewAttributeService(attributeRepo, nil, deps),
		features:     NewFeatureService(featureRepo, deps),
		combinations: NewCombinationService(productRepo, attributeRepo, repository.NewCombinationRepo(db), maxCombinations, deps),
		weights:      NewFeatureWeightService(repository.NewFeatureWeightRepo(db), featureRepo, categoryRepo, deps),
		categories:   NewResourceService(categoryRepo, ResourceOptions[model.Category]{Name: "category"}, deps),
		brands:       NewResourceService(brandRepo, ResourceOptions[model.Brand]{Name: "brand"}, deps),
	}
}

func (c *testCatalog) product(t *testing.T, sku, name string) *model.Product {
	t.Helper()
	p := &model.Product{SKU: sku, Name: name, Price: "10.00"}
	require.NoError(t, c.products.CreateProduct(p, testActor))
	return p
}

func (c *testCatalog) attributeGroup(t *testing.T, name string, values ...string) *model.AttributeGroup {
	t.Helper()
	g, err := c.attributes.CreateGroup(&GroupRequest{Name: name, Values: values}, testActor)
	require.NoError(t, err)
	return g
}
