// Package store defines the persistence boundary of the storefront.
// Two implementations exist: a gorm/postgres store for deployments and
// a mutex-guarded in-memory store used as fallback and in tests. Both
// are constructed explicitly and injected, never process singletons.
package store

import (
	"context"

	"github.com/pkg/errors"

	"github.com/afarenziya/smartdeals/internal/domain"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate name")
)

// ProductPatch carries a partial product update; nil fields are left
// unchanged.
type ProductPatch struct {
	Title              *string
	Description        *string
	OriginalPrice      *string
	DiscountedPrice    *string
	ImageUrl           *string
	AffiliateLink      *string
	Platform           *string
	Category           *string
	Featured           *bool
	AutoFetchPrice     *bool
	Rating             *string
	ReviewCount        *string
	DiscountPercentage *string
}

// CategoryPatch carries a partial category update.
type CategoryPatch struct {
	Name        *string
	Description *string
	Icon        *string
	IsActive    *bool
}

// PlatformPatch carries a partial platform update.
type PlatformPatch struct {
	Name     *string
	Icon     *string
	Color    *string
	IsActive *bool
}

// Store is the persistence contract used by the API handlers and the
// application container.
type Store interface {
	// Products. ListProducts returns newest-first order,
	// ListProductsChronological returns insertion (created ascending)
	// order for the analytics rollup.
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListProductsChronological(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, p *domain.Product) error
	UpdateProduct(ctx context.Context, id string, patch ProductPatch) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	// Categories
	ListCategories(ctx context.Context, activeOnly bool) ([]domain.Category, error)
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
	CreateCategory(ctx context.Context, c *domain.Category) error
	UpdateCategory(ctx context.Context, id string, patch CategoryPatch) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	// Platforms
	ListPlatforms(ctx context.Context, activeOnly bool) ([]domain.Platform, error)
	GetPlatform(ctx context.Context, id string) (*domain.Platform, error)
	CreatePlatform(ctx context.Context, p *domain.Platform) error
	UpdatePlatform(ctx context.Context, id string, patch PlatformPatch) (*domain.Platform, error)
	DeletePlatform(ctx context.Context, id string) error

	// Contacts
	CreateContact(ctx context.Context, c *domain.Contact) error
	ListContacts(ctx context.Context) ([]domain.Contact, error)

	// Operators and audit log
	GetOprByUsername(ctx context.Context, username string) (*domain.SysOpr, error)
	CreateOpr(ctx context.Context, opr *domain.SysOpr) error
	TouchOprLogin(ctx context.Context, id string) error
	AddOprLog(ctx context.Context, log *domain.SysOprLog) error
}
