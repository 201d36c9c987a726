package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"kiranaMarket/domain"
	"kiranaMarket/pkg/logger"
)

type ProductService interface {
	GetAllProducts(ctx context.Context) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id uint64) (*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uint64) error
}

type ProductHandler struct {
	productService ProductService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewProductHandler(productService ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type CreateProductRequest struct {
	ProductSKUID    uint64  `json:"product_skuid"`
	ProductName     string  `json:"product_name" validate:"required"`
	ProductCategory string  `json:"product_category" validate:"required"`
	Brand           string  `json:"brand"`
	StoreType       string  `json:"store_type" validate:"omitempty,oneof=Supermarket Convenience Kiosk"`
	Unit            string  `json:"unit" validate:"required"`
	NormalPrice     float64 `json:"normal_price" validate:"required,gt=0"`
	SalePrice       float64 `json:"sale_price" validate:"gte=0"`
	Discount        float64 `json:"discount" validate:"gte=0,lte=100"`
	ProfitMargin    float64 `json:"profit_margin" validate:"gte=0,lte=1"`
	Stock           float64 `json:"stock" validate:"gte=0"`
	IsActive        *bool   `json:"is_active"`
}

type UpdateProductRequest struct {
	ProductSKUID    uint64  `json:"product_skuid"`
	ProductName     string  `json:"product_name" validate:"required"`
	ProductCategory string  `json:"product_category" validate:"required"`
	Brand           string  `json:"brand"`
	StoreType       string  `json:"store_type" validate:"omitempty,oneof=Supermarket Convenience Kiosk"`
	Unit            string  `json:"unit" validate:"required"`
	NormalPrice     float64 `json:"normal_price" validate:"required,gt=0"`
	SalePrice       float64 `json:"sale_price" validate:"gte=0"`
	Discount        float64 `json:"discount" validate:"gte=0,lte=100"`
	ProfitMargin    float64 `json:"profit_margin" validate:"gte=0,lte=1"`
	Stock           float64 `json:"stock" validate:"gte=0"`
	IsActive        *bool   `json:"is_active"`
}

func (h *ProductHandler) GetAllProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.productService.GetAllProducts(ctx)
	if err != nil {
		logger.Error("Failed to find all products", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully get all products",
		"products": products,
	})
}

func (h *ProductHandler) GetProductByID(c echo.Context) error {
	productIdStr := c.Param("id")

	productId, err := strconv.ParseUint(productIdStr, 10, 64)
	if err != nil {
		logger.Error("Invalid product id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product, err := h.productService.GetProductByID(ctx, productId)
	if err != nil {
		if err.Error() == "product not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully find product by id",
		"product": product,
	})
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate product request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	product := &domain.Product{
		ProductSKUID:    req.ProductSKUID,
		ProductName:     req.ProductName,
		ProductCategory: req.ProductCategory,
		Brand:           req.Brand,
		StoreType:       req.StoreType,
		Unit:            req.Unit,
		NormalPrice:     req.NormalPrice,
		SalePrice:       req.SalePrice,
		Discount:        req.Discount,
		ProfitMargin:    req.ProfitMargin,
		Stock:           req.Stock,
		IsActive:        isActive,
	}

	newProduct, err := h.productService.CreateProduct(ctx, product)
	if err != nil {
		logger.Error("Failed to create product", err)
		// Check if it's a validation error
		if err.Error() == "product name is required" ||
			err.Error() == "product category is required" ||
			err.Error() == "unit is required" ||
			err.Error() == "normal price must be greater than 0" ||
			err.Error() == "stock cannot be negative" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Product successfully created",
		"product": newProduct,
	})
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	productIdStr := c.Param("id")

	productId, err := strconv.ParseUint(productIdStr, 10, 64)
	if err != nil {
		logger.Error("Invalid product id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate product request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	product := &domain.Product{
		ID:              productId,
		ProductSKUID:    req.ProductSKUID,
		ProductName:     req.ProductName,
		ProductCategory: req.ProductCategory,
		Brand:           req.Brand,
		StoreType:       req.StoreType,
		Unit:            req.Unit,
		NormalPrice:     req.NormalPrice,
		SalePrice:       req.SalePrice,
		Discount:        req.Discount,
		ProfitMargin:    req.ProfitMargin,
		Stock:           req.Stock,
		IsActive:        isActive,
	}

	updateProduct, err := h.productService.UpdateProduct(ctx, product)
	if err != nil {
		logger.Error("Failed to update product", err)
		// Check if product not found
		if err.Error() == "product not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		// Check if it's a validation error
		if err.Error() == "product ID is required" ||
			err.Error() == "product name is required" ||
			err.Error() == "normal price must be greater than 0" ||
			err.Error() == "stock cannot be negative" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully update product",
		"product": updateProduct,
	})
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	productIdStr := c.Param("id")

	productId, err := strconv.ParseUint(productIdStr, 10, 64)
	if err != nil {
		logger.Error("Invalid product id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	err = h.productService.DeleteProduct(ctx, productId)
	if err != nil {
		logger.Error("Failed to delete product", err)
		if err.Error() == "product not found" || err.Error() == "invalid product id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "product successfully deleted",
		"product_id": productId,
	})
}
