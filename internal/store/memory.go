package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/afarenziya/smartdeals/internal/domain"
	"github.com/afarenziya/smartdeals/pkg/common"
)

// MemoryStore keeps all collections in maps plus insertion-order id
// slices. Writes take the lock, reads copy out, so callers never hold
// references into the store.
type MemoryStore struct {
	mu sync.RWMutex

	products     map[string]domain.Product
	productOrder []string

	categories map[string]domain.Category
	platforms  map[string]domain.Platform

	contacts     map[string]domain.Contact
	contactOrder []string

	oprs    map[string]domain.SysOpr
	oprLogs []domain.SysOprLog
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products:   make(map[string]domain.Product),
		categories: make(map[string]domain.Category),
		platforms:  make(map[string]domain.Platform),
		contacts:   make(map[string]domain.Contact),
		oprs:       make(map[string]domain.SysOpr),
	}
}

func (s *MemoryStore) ListProducts(ctx context.Context) ([]domain.Product, error) {
	out, err := s.ListProductsChronological(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) ListProductsChronological(_ context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, 0, len(s.productOrder))
	for _, id := range s.productOrder {
		out = append(out, s.products[id])
	}
	return out, nil
}

func (s *MemoryStore) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *MemoryStore) CreateProduct(_ context.Context, p *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = common.UUID()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	s.products[p.ID] = *p
	s.productOrder = append(s.productOrder, p.ID)
	return nil
}

func (s *MemoryStore) UpdateProduct(_ context.Context, id string, patch ProductPatch) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&p.Title, patch.Title)
	applyString(&p.Description, patch.Description)
	applyString(&p.OriginalPrice, patch.OriginalPrice)
	applyString(&p.DiscountedPrice, patch.DiscountedPrice)
	applyString(&p.ImageUrl, patch.ImageUrl)
	applyString(&p.AffiliateLink, patch.AffiliateLink)
	applyString(&p.Platform, patch.Platform)
	applyString(&p.Category, patch.Category)
	applyString(&p.Rating, patch.Rating)
	applyString(&p.ReviewCount, patch.ReviewCount)
	applyString(&p.DiscountPercentage, patch.DiscountPercentage)
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
	if patch.AutoFetchPrice != nil {
		p.AutoFetchPrice = *patch.AutoFetchPrice
	}
	p.UpdatedAt = time.Now()
	s.products[id] = p
	return &p, nil
}

func (s *MemoryStore) DeleteProduct(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return ErrNotFound
	}
	delete(s.products, id)
	for i, pid := range s.productOrder {
		if pid == id {
			s.productOrder = append(s.productOrder[:i], s.productOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) ListCategories(_ context.Context, activeOnly bool) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Category, 0, len(s.categories))
	for _, c := range s.categories {
		if activeOnly && !c.IsActive {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemoryStore) GetCategory(_ context.Context, id string) (*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *MemoryStore) CreateCategory(_ context.Context, c *domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.categories {
		if strings.EqualFold(existing.Name, c.Name) {
			return ErrDuplicate
		}
	}
	if c.ID == "" {
		c.ID = common.UUID()
	}
	c.CreatedAt = time.Now()
	s.categories[c.ID] = *c
	return nil
}

func (s *MemoryStore) UpdateCategory(_ context.Context, id string, patch CategoryPatch) (*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Name != nil && !strings.EqualFold(*patch.Name, c.Name) {
		for _, existing := range s.categories {
			if strings.EqualFold(existing.Name, *patch.Name) {
				return nil, ErrDuplicate
			}
		}
		c.Name = *patch.Name
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	if patch.Icon != nil {
		c.Icon = *patch.Icon
	}
	if patch.IsActive != nil {
		c.IsActive = *patch.IsActive
	}
	s.categories[id] = c
	return &c, nil
}

func (s *MemoryStore) DeleteCategory(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[id]; !ok {
		return ErrNotFound
	}
	delete(s.categories, id)
	return nil
}

func (s *MemoryStore) ListPlatforms(_ context.Context, activeOnly bool) ([]domain.Platform, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Platform, 0, len(s.platforms))
	for _, p := range s.platforms {
		if activeOnly && !p.IsActive {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemoryStore) GetPlatform(_ context.Context, id string) (*domain.Platform, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.platforms[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *MemoryStore) CreatePlatform(_ context.Context, p *domain.Platform) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.platforms {
		if strings.EqualFold(existing.Name, p.Name) {
			return ErrDuplicate
		}
	}
	if p.ID == "" {
		p.ID = common.UUID()
	}
	p.CreatedAt = time.Now()
	s.platforms[p.ID] = *p
	return nil
}

func (s *MemoryStore) UpdatePlatform(_ context.Context, id string, patch PlatformPatch) (*domain.Platform, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.platforms[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Name != nil && !strings.EqualFold(*patch.Name, p.Name) {
		for _, existing := range s.platforms {
			if strings.EqualFold(existing.Name, *patch.Name) {
				return nil, ErrDuplicate
			}
		}
		p.Name = *patch.Name
	}
	if patch.Icon != nil {
		p.Icon = *patch.Icon
	}
	if patch.Color != nil {
		p.Color = *patch.Color
	}
	if patch.IsActive != nil {
		p.IsActive = *patch.IsActive
	}
	s.platforms[id] = p
	return &p, nil
}

func (s *MemoryStore) DeletePlatform(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.platforms[id]; !ok {
		return ErrNotFound
	}
	delete(s.platforms, id)
	return nil
}

func (s *MemoryStore) CreateContact(_ context.Context, c *domain.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" {
		c.ID = common.UUID()
	}
	c.CreatedAt = time.Now()
	s.contacts[c.ID] = *c
	s.contactOrder = append(s.contactOrder, c.ID)
	return nil
}

func (s *MemoryStore) ListContacts(_ context.Context) ([]domain.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Contact, 0, len(s.contactOrder))
	// newest first
	for i := len(s.contactOrder) - 1; i >= 0; i-- {
		out = append(out, s.contacts[s.contactOrder[i]])
	}
	return out, nil
}

func (s *MemoryStore) GetOprByUsername(_ context.Context, username string) (*domain.SysOpr, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, opr := range s.oprs {
		if opr.Username == username {
			o := opr
			return &o, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateOpr(_ context.Context, opr *domain.SysOpr) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if opr.ID == "" {
		opr.ID = common.UUID()
	}
	now := time.Now()
	opr.CreatedAt = now
	opr.UpdatedAt = now
	s.oprs[opr.ID] = *opr
	return nil
}

func (s *MemoryStore) TouchOprLogin(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	opr, ok := s.oprs[id]
	if !ok {
		return ErrNotFound
	}
	opr.LastLogin = time.Now()
	s.oprs[id] = opr
	return nil
}

func (s *MemoryStore) AddOprLog(_ context.Context, log *domain.SysOprLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if log.ID == "" {
		log.ID = common.UUID()
	}
	if log.OptTime.IsZero() {
		log.OptTime = time.Now()
	}
	s.oprLogs = append(s.oprLogs, *log)
	return nil
}

// OprLogs returns a copy of the audit log, used by tests.
func (s *MemoryStore) OprLogs() []domain.SysOprLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.SysOprLog, len(s.oprLogs))
	copy(out, s.oprLogs)
	return out
}
