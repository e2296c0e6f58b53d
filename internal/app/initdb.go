package app

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/afarenziya/smartdeals/internal/domain"
	"github.com/afarenziya/smartdeals/internal/store"
	"github.com/afarenziya/smartdeals/pkg/common"
)

// checkSuper seeds the single admin operator account on first boot.
// The initial password comes from configuration and is bcrypt-hashed
// before it is stored; it is never compared in plain text.
func (a *Application) checkSuper() {
	ctx := context.Background()
	username := a.appConfig.Admin.Username

	_, err := a.dataStore.GetOprByUsername(ctx, username)
	switch {
	case errors.Is(err, store.ErrNotFound):
		hashed, herr := bcrypt.GenerateFromPassword([]byte(a.appConfig.Admin.InitPassword), bcrypt.DefaultCost)
		if herr != nil {
			zap.L().Error("failed to hash default admin password", zap.Error(herr))
			return
		}
		if err := a.dataStore.CreateOpr(ctx, &domain.SysOpr{
			Realname: "administrator",
			Email:    "N/A",
			Username: username,
			Password: string(hashed),
			Level:    "super",
			Status:   common.ENABLED,
		}); err != nil {
			zap.L().Error("failed to create default super admin", zap.Error(err))
			return
		}
		zap.L().Info("initialized default super admin account", zap.String("username", username))
	case err != nil:
		zap.L().Error("failed to query super admin", zap.Error(err))
	}
}

// checkCatalogSeed loads default platforms, categories and a small set
// of sample deals when the catalog is completely empty, so a fresh
// install renders a working storefront.
func (a *Application) checkCatalogSeed() {
	ctx := context.Background()

	platforms, err := a.dataStore.ListPlatforms(ctx, false)
	if err != nil {
		zap.L().Error("failed to query platforms for seeding", zap.Error(err))
		return
	}
	if len(platforms) == 0 {
		for _, p := range defaultPlatforms() {
			p := p
			if err := a.dataStore.CreatePlatform(ctx, &p); err != nil {
				zap.L().Error("failed to seed platform", zap.String("name", p.Name), zap.Error(err))
			}
		}
		zap.L().Info("seeded default platforms")
	}

	categories, err := a.dataStore.ListCategories(ctx, false)
	if err != nil {
		zap.L().Error("failed to query categories for seeding", zap.Error(err))
		return
	}
	if len(categories) == 0 {
		for _, c := range defaultCategories() {
			c := c
			if err := a.dataStore.CreateCategory(ctx, &c); err != nil {
				zap.L().Error("failed to seed category", zap.String("name", c.Name), zap.Error(err))
			}
		}
		zap.L().Info("seeded default categories")
	}

	products, err := a.dataStore.ListProducts(ctx)
	if err != nil {
		zap.L().Error("failed to query products for seeding", zap.Error(err))
		return
	}
	if len(products) == 0 {
		for _, p := range sampleProducts() {
			p := p
			if err := a.dataStore.CreateProduct(ctx, &p); err != nil {
				zap.L().Error("failed to seed product", zap.String("title", p.Title), zap.Error(err))
			}
		}
		zap.L().Info("seeded sample products")
	}
}

func defaultPlatforms() []domain.Platform {
	return []domain.Platform{
		{Name: "Amazon", Icon: "🛒", Color: "#ff9900", IsActive: true},
		{Name: "Flipkart", Icon: "🛍️", Color: "#2874f0", IsActive: true},
		{Name: "Myntra", Icon: "👗", Color: "#ff3f6c", IsActive: true},
	}
}

func defaultCategories() []domain.Category {
	return []domain.Category{
		{Name: "Electronics", Icon: "📱", IsActive: true},
		{Name: "Fashion", Icon: "👔", IsActive: true},
		{Name: "Home & Garden", Icon: "🏡", IsActive: true},
		{Name: "Books", Icon: "📚", IsActive: true},
	}
}

func sampleProducts() []domain.Product {
	return []domain.Product{
		{
			Title:              "Latest Smartphone Pro Max 256GB",
			Description:        "Latest flagship smartphone with advanced features and high-performance processor",
			OriginalPrice:      "99999",
			DiscountedPrice:    "54999",
			ImageUrl:           "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			AffiliateLink:      "https://amazon.in/smartphone-pro-max",
			Platform:           "Amazon",
			Category:           "Electronics",
			Featured:           true,
			AutoFetchPrice:     true,
			Rating:             "4.5",
			ReviewCount:        "4500",
			DiscountPercentage: "45%",
		},
		{
			Title:              "Premium Winter Jacket - Unisex",
			Description:        "High-quality winter jacket with thermal insulation",
			OriginalPrice:      "4999",
			DiscountedPrice:    "1999",
			ImageUrl:           "https://images.unsplash.com/photo-1441986300917-64674bd600d8?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			AffiliateLink:      "https://myntra.com/winter-jacket",
			Platform:           "Myntra",
			Category:           "Fashion",
			Featured:           true,
			Rating:             "4.0",
			ReviewCount:        "2100",
			DiscountPercentage: "60%",
		},
		{
			Title:              "Digital Air Fryer 5L Capacity",
			Description:        "Energy-efficient air fryer for healthy cooking",
			OriginalPrice:      "12999",
			DiscountedPrice:    "8499",
			ImageUrl:           "https://images.unsplash.com/photo-1586362777494-0de0fb439ea8?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			AffiliateLink:      "https://flipkart.com/air-fryer-digital",
			Platform:           "Flipkart",
			Category:           "Home & Garden",
			Featured:           true,
			AutoFetchPrice:     true,
			Rating:             "5.0",
			ReviewCount:        "5800",
			DiscountPercentage: "35%",
		},
		{
			Title:              "Bestseller Book Collection (Set of 5)",
			Description:        "Collection of popular fiction and non-fiction bestsellers",
			OriginalPrice:      "1999",
			DiscountedPrice:    "1499",
			ImageUrl:           "https://images.unsplash.com/photo-1544947950-fa07a98d237f?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			AffiliateLink:      "https://amazon.in/book-collection-set",
			Platform:           "Amazon",
			Category:           "Books",
			Rating:             "4.5",
			ReviewCount:        "1200",
			DiscountPercentage: "25%",
		},
	}
}
