package service

import (
	"context"

	"gorm.io/gorm"

	"shopapi/models"
)

// CatalogService owns Product records. Each operation performs a single
// round trip against the injected database handle.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// AddProduct persists a new product and fills in its generated id. Fields are
// stored verbatim; only the database's own constraints apply.
func (s *CatalogService) AddProduct(ctx context.Context, product *models.Product) error {
	return s.db.WithContext(ctx).Create(product).Error
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	if err := s.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct returns gorm.ErrRecordNotFound when no product has the id.
func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct is a full replace: every mutable field is overwritten with
// the supplied values, so a field omitted from the request is cleared, not
// preserved. Last writer wins; there is no version check.
func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, fields models.Product) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	product.Name = fields.Name
	product.Category = fields.Category
	product.Description = fields.Description
	product.Price = fields.Price
	product.ImageURL = fields.ImageURL
	if err := s.db.WithContext(ctx).Save(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes the product permanently. Deleting an id that does not
// exist, or was already deleted, reports gorm.ErrRecordNotFound.
func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&product).Error
}
