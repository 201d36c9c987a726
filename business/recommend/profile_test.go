package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kiranaMarket/domain"
)

func testProducts() map[uint64]domain.Product {
	return map[uint64]domain.Product{
		1: {ID: 1, ProductCategory: "Grocery", Brand: "Aashirvaad", StoreType: "Kiosk", SalePrice: 350},
		2: {ID: 2, ProductCategory: "Grocery", Brand: "Fortune", StoreType: "Kiosk", SalePrice: 500},
		3: {ID: 3, ProductCategory: "Beverages", Brand: "Fortune", StoreType: "Supermarket", SalePrice: 120},
		4: {ID: 4, ProductCategory: "Snacks", Brand: "Haldiram", StoreType: "Kiosk", SalePrice: 80},
		5: {ID: 5, ProductCategory: "Dairy", Brand: "Amul", StoreType: "Convenience", SalePrice: 60},
	}
}

func TestBuildProfileRanksCategoriesByQuantity(t *testing.T) {
	orders := []domain.Order{
		{ID: 1, Items: []domain.OrderItem{
			{ProductID: 3, Quantity: 5},
			{ProductID: 1, Quantity: 2},
		}},
		{ID: 2, Items: []domain.OrderItem{
			{ProductID: 2, Quantity: 4},
			{ProductID: 4, Quantity: 1},
		}},
	}

	profile := buildProfile(orders, testProducts(), DefaultConfig())

	// Grocery has quantity 6, Beverages 5, Snacks 1
	assert.Equal(t, []string{"Grocery", "Beverages", "Snacks"}, profile.TopCategories)
	assert.Equal(t, 1, profile.CategoryRank("Grocery"))
	assert.Equal(t, 2, profile.CategoryRank("Beverages"))
	assert.Equal(t, 0, profile.CategoryRank("Dairy"))
}

func TestBuildProfileTopListsCapAtThree(t *testing.T) {
	orders := []domain.Order{
		{ID: 1, Items: []domain.OrderItem{
			{ProductID: 1, Quantity: 4},
			{ProductID: 3, Quantity: 3},
			{ProductID: 4, Quantity: 2},
			{ProductID: 5, Quantity: 1},
		}},
	}

	profile := buildProfile(orders, testProducts(), DefaultConfig())

	assert.Len(t, profile.TopCategories, 3)
	assert.NotContains(t, profile.TopCategories, "Dairy")
}

func TestBuildProfileTieBreaksByFirstSeen(t *testing.T) {
	orders := []domain.Order{
		{ID: 1, Items: []domain.OrderItem{
			{ProductID: 3, Quantity: 2}, // Beverages first
			{ProductID: 1, Quantity: 2}, // Grocery second, same weight
		}},
	}

	profile := buildProfile(orders, testProducts(), DefaultConfig())

	assert.Equal(t, []string{"Beverages", "Grocery"}, profile.TopCategories)
}

func TestBuildProfileAveragePriceAndStoreTypes(t *testing.T) {
	orders := []domain.Order{
		{ID: 1, Items: []domain.OrderItem{
			{ProductID: 1, Quantity: 1}, // 350, Kiosk
			{ProductID: 2, Quantity: 1}, // 500, Kiosk
		}},
	}

	profile := buildProfile(orders, testProducts(), DefaultConfig())

	assert.InDelta(t, 425.0, profile.AvgPrice, 1e-9)
	assert.True(t, profile.HasStoreType("Kiosk"))
	assert.False(t, profile.HasStoreType("Supermarket"))
}

func TestBuildProfileSkipsUnknownProducts(t *testing.T) {
	orders := []domain.Order{
		{ID: 1, Items: []domain.OrderItem{
			{ProductID: 999, Quantity: 3},
			{ProductID: 1, Quantity: 1},
		}},
	}

	profile := buildProfile(orders, testProducts(), DefaultConfig())

	assert.Equal(t, []string{"Grocery"}, profile.TopCategories)
	assert.NotContains(t, profile.Purchased, uint64(999))
}

func TestBuildProfileEmptyOrders(t *testing.T) {
	profile := buildProfile(nil, testProducts(), DefaultConfig())

	assert.False(t, profile.HasHistory())
	assert.Empty(t, profile.TopCategories)
	assert.Zero(t, profile.AvgPrice)
}

func TestPurchasedIDsSorted(t *testing.T) {
	orders := []domain.Order{
		{ID: 1, Items: []domain.OrderItem{
			{ProductID: 4, Quantity: 1},
			{ProductID: 1, Quantity: 1},
			{ProductID: 3, Quantity: 1},
		}},
	}

	profile := buildProfile(orders, testProducts(), DefaultConfig())

	assert.Equal(t, []uint64{1, 3, 4}, profile.PurchasedIDs())
}
