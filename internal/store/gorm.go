package store

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/afarenziya/smartdeals/internal/domain"
	"github.com/afarenziya/smartdeals/pkg/common"
)

// GormStore is the relational implementation. Atomicity is per
// statement only; no operation spans tables.
type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var rows []domain.Product
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	return rows, nil
}

func (s *GormStore) ListProductsChronological(ctx context.Context) ([]domain.Product, error) {
	var rows []domain.Product
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	return rows, nil
}

func (s *GormStore) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "get product")
	}
	return &p, nil
}

func (s *GormStore) CreateProduct(ctx context.Context, p *domain.Product) error {
	if p.ID == "" {
		p.ID = common.UUID()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	return errors.Wrap(s.db.WithContext(ctx).Create(p).Error, "create product")
}

func (s *GormStore) UpdateProduct(ctx context.Context, id string, patch ProductPatch) (*domain.Product, error) {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{"updated_at": time.Now()}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.OriginalPrice != nil {
		updates["original_price"] = *patch.OriginalPrice
	}
	if patch.DiscountedPrice != nil {
		updates["discounted_price"] = *patch.DiscountedPrice
	}
	if patch.ImageUrl != nil {
		updates["image_url"] = *patch.ImageUrl
	}
	if patch.AffiliateLink != nil {
		updates["affiliate_link"] = *patch.AffiliateLink
	}
	if patch.Platform != nil {
		updates["platform"] = *patch.Platform
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.Featured != nil {
		updates["featured"] = *patch.Featured
	}
	if patch.AutoFetchPrice != nil {
		updates["auto_fetch_price"] = *patch.AutoFetchPrice
	}
	if patch.Rating != nil {
		updates["rating"] = *patch.Rating
	}
	if patch.ReviewCount != nil {
		updates["review_count"] = *patch.ReviewCount
	}
	if patch.DiscountPercentage != nil {
		updates["discount_percentage"] = *patch.DiscountPercentage
	}
	if err := s.db.WithContext(ctx).Model(&domain.Product{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, errors.Wrap(err, "update product")
	}
	return s.GetProduct(ctx, id)
}

func (s *GormStore) DeleteProduct(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Product{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete product")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) ListCategories(ctx context.Context, activeOnly bool) ([]domain.Category, error) {
	db := s.db.WithContext(ctx).Model(&domain.Category{})
	if activeOnly {
		db = db.Where("is_active = ?", true)
	}
	var rows []domain.Category
	if err := db.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	return rows, nil
}

func (s *GormStore) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	var c domain.Category
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "get category")
	}
	return &c, nil
}

func (s *GormStore) CreateCategory(ctx context.Context, c *domain.Category) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&domain.Category{}).
		Where("LOWER(name) = ?", strings.ToLower(c.Name)).Count(&count).Error; err != nil {
		return errors.Wrap(err, "check category name")
	}
	if count > 0 {
		return ErrDuplicate
	}
	if c.ID == "" {
		c.ID = common.UUID()
	}
	c.CreatedAt = time.Now()
	return errors.Wrap(s.db.WithContext(ctx).Create(c).Error, "create category")
}

func (s *GormStore) UpdateCategory(ctx context.Context, id string, patch CategoryPatch) (*domain.Category, error) {
	existing, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if patch.Name != nil && !strings.EqualFold(*patch.Name, existing.Name) {
		var count int64
		if err := s.db.WithContext(ctx).Model(&domain.Category{}).
			Where("LOWER(name) = ? AND id <> ?", strings.ToLower(*patch.Name), id).Count(&count).Error; err != nil {
			return nil, errors.Wrap(err, "check category name")
		}
		if count > 0 {
			return nil, ErrDuplicate
		}
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Icon != nil {
		updates["icon"] = *patch.Icon
	}
	if patch.IsActive != nil {
		updates["is_active"] = *patch.IsActive
	}
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&domain.Category{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, errors.Wrap(err, "update category")
		}
	}
	return s.GetCategory(ctx, id)
}

func (s *GormStore) DeleteCategory(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Category{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete category")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) ListPlatforms(ctx context.Context, activeOnly bool) ([]domain.Platform, error) {
	db := s.db.WithContext(ctx).Model(&domain.Platform{})
	if activeOnly {
		db = db.Where("is_active = ?", true)
	}
	var rows []domain.Platform
	if err := db.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "list platforms")
	}
	return rows, nil
}

func (s *GormStore) GetPlatform(ctx context.Context, id string) (*domain.Platform, error) {
	var p domain.Platform
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "get platform")
	}
	return &p, nil
}

func (s *GormStore) CreatePlatform(ctx context.Context, p *domain.Platform) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&domain.Platform{}).
		Where("LOWER(name) = ?", strings.ToLower(p.Name)).Count(&count).Error; err != nil {
		return errors.Wrap(err, "check platform name")
	}
	if count > 0 {
		return ErrDuplicate
	}
	if p.ID == "" {
		p.ID = common.UUID()
	}
	p.CreatedAt = time.Now()
	return errors.Wrap(s.db.WithContext(ctx).Create(p).Error, "create platform")
}

func (s *GormStore) UpdatePlatform(ctx context.Context, id string, patch PlatformPatch) (*domain.Platform, error) {
	existing, err := s.GetPlatform(ctx, id)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if patch.Name != nil && !strings.EqualFold(*patch.Name, existing.Name) {
		var count int64
		if err := s.db.WithContext(ctx).Model(&domain.Platform{}).
			Where("LOWER(name) = ? AND id <> ?", strings.ToLower(*patch.Name), id).Count(&count).Error; err != nil {
			return nil, errors.Wrap(err, "check platform name")
		}
		if count > 0 {
			return nil, ErrDuplicate
		}
		updates["name"] = *patch.Name
	}
	if patch.Icon != nil {
		updates["icon"] = *patch.Icon
	}
	if patch.Color != nil {
		updates["color"] = *patch.Color
	}
	if patch.IsActive != nil {
		updates["is_active"] = *patch.IsActive
	}
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&domain.Platform{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, errors.Wrap(err, "update platform")
		}
	}
	return s.GetPlatform(ctx, id)
}

func (s *GormStore) DeletePlatform(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Platform{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete platform")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) CreateContact(ctx context.Context, c *domain.Contact) error {
	if c.ID == "" {
		c.ID = common.UUID()
	}
	c.CreatedAt = time.Now()
	return errors.Wrap(s.db.WithContext(ctx).Create(c).Error, "create contact")
}

func (s *GormStore) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	var rows []domain.Contact
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "list contacts")
	}
	return rows, nil
}

func (s *GormStore) GetOprByUsername(ctx context.Context, username string) (*domain.SysOpr, error) {
	var opr domain.SysOpr
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&opr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "get operator")
	}
	return &opr, nil
}

func (s *GormStore) CreateOpr(ctx context.Context, opr *domain.SysOpr) error {
	if opr.ID == "" {
		opr.ID = common.UUID()
	}
	now := time.Now()
	opr.CreatedAt = now
	opr.UpdatedAt = now
	return errors.Wrap(s.db.WithContext(ctx).Create(opr).Error, "create operator")
}

func (s *GormStore) TouchOprLogin(ctx context.Context, id string) error {
	return errors.Wrap(s.db.WithContext(ctx).Model(&domain.SysOpr{}).
		Where("id = ?", id).Update("last_login", time.Now()).Error, "touch operator login")
}

func (s *GormStore) AddOprLog(ctx context.Context, log *domain.SysOprLog) error {
	if log.ID == "" {
		log.ID = common.UUID()
	}
	if log.OptTime.IsZero() {
		log.OptTime = time.Now()
	}
	return errors.Wrap(s.db.WithContext(ctx).Create(log).Error, "add operation log")
}
