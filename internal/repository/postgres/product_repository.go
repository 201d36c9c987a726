package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"kiranaMarket/business/recommend"
	"kiranaMarket/domain"
)

type ProductRepository struct {
	DB *gorm.DB
}

var _ recommend.CatalogRepository = (*ProductRepository)(nil)

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{
		DB: db,
	}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint64) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("context error: %w", err)
	}

	var product domain.Product

	err := r.DB.WithContext(ctx).First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Product{}, errors.New("product not found")
		}
		return domain.Product{}, fmt.Errorf("failed to find product: %w", err)
	}

	return product, nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var products []domain.Product
	err := r.DB.WithContext(ctx).Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}

	return products, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	var existingProduct domain.Product
	if err := r.DB.WithContext(ctx).First(&existingProduct, product.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("product not found")
		}
		return fmt.Errorf("failed to find product: %w", err)
	}

	updateData := map[string]interface{}{
		"product_skuid":    product.ProductSKUID,
		"product_name":     product.ProductName,
		"product_category": product.ProductCategory,
		"brand":            product.Brand,
		"store_type":       product.StoreType,
		"unit":             product.Unit,
		"normal_price":     product.NormalPrice,
		"sale_price":       product.SalePrice,
		"discount":         product.Discount,
		"profit_margin":    product.ProfitMargin,
		"stock":            product.Stock,
		"is_active":        product.IsActive,
	}

	result := r.DB.WithContext(ctx).Model(&domain.Product{}).Where("id = ?", product.ID).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("product not found or already deleted")
	}

	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Delete(&domain.Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("product not found or already deleted")
	}

	return nil
}

// ---- Catalog reads for the recommendation engine ----

// FindActiveByProfile pulls active products matching any of the profile's
// affinities, the price band included, while excluding already-owned
// products. Popularity order keeps the over-fetch useful.
func (r *ProductRepository) FindActiveByProfile(ctx context.Context, q recommend.CandidateQuery) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	db := r.DB.WithContext(ctx).Where("is_active = ?", true)

	affinity := r.DB.Session(&gorm.Session{NewDB: true})
	matched := false
	if len(q.Categories) > 0 {
		affinity = affinity.Or("product_category IN ?", q.Categories)
		matched = true
	}
	if len(q.Brands) > 0 {
		affinity = affinity.Or("brand IN ?", q.Brands)
		matched = true
	}
	if len(q.StoreTypes) > 0 {
		affinity = affinity.Or("store_type IN ?", q.StoreTypes)
		matched = true
	}
	if q.PriceMax > 0 {
		affinity = affinity.Or("sale_price BETWEEN ? AND ?", q.PriceMin, q.PriceMax)
		matched = true
	}
	if matched {
		db = db.Where(affinity)
	}

	if len(q.ExcludeIDs) > 0 {
		db = db.Where("id NOT IN ?", q.ExcludeIDs)
	}

	var products []domain.Product
	err := db.Order("purchase_count DESC, rating_average DESC, id ASC").
		Limit(q.Limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find candidate products: %w", err)
	}

	return products, nil
}

func (r *ProductRepository) FindActiveByPopularity(ctx context.Context, limit int) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var products []domain.Product
	err := r.DB.WithContext(ctx).
		Where("is_active = ?", true).
		Order("purchase_count DESC, rating_average DESC, id ASC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find popular products: %w", err)
	}

	return products, nil
}

func (r *ProductRepository) FindByIDs(ctx context.Context, ids []uint64) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(ids) == 0 {
		return []domain.Product{}, nil
	}

	var products []domain.Product
	err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find products by ids: %w", err)
	}

	return products, nil
}
