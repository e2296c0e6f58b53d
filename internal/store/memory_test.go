package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afarenziya/smartdeals/internal/domain"
)

func TestMemoryStoreProductCRUD(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	p := &domain.Product{Title: "Widget", Platform: "Amazon", AffiliateLink: "https://amazon.in/widget"}
	require.NoError(t, s.CreateProduct(ctx, p))
	require.NotEmpty(t, p.ID)
	require.False(t, p.CreatedAt.IsZero())

	got, err := s.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", got.Title)

	title := "Widget v2"
	featured := true
	updated, err := s.UpdateProduct(ctx, p.ID, ProductPatch{Title: &title, Featured: &featured})
	require.NoError(t, err)
	assert.Equal(t, "Widget v2", updated.Title)
	assert.True(t, updated.Featured)
	// untouched fields survive a partial update
	assert.Equal(t, "Amazon", updated.Platform)

	require.NoError(t, s.DeleteProduct(ctx, p.ID))
	_, err = s.GetProduct(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteProduct(ctx, p.ID), ErrNotFound)
}

func TestMemoryStoreProductOrdering(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	for _, title := range []string{"first", "second", "third"} {
		require.NoError(t, s.CreateProduct(ctx, &domain.Product{Title: title, Platform: "Amazon", AffiliateLink: "https://x"}))
	}

	chrono, err := s.ListProductsChronological(ctx)
	require.NoError(t, err)
	require.Len(t, chrono, 3)
	assert.Equal(t, "first", chrono[0].Title)
	assert.Equal(t, "third", chrono[2].Title)
}

func TestMemoryStoreCategoryUniqueName(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.CreateCategory(ctx, &domain.Category{Name: "Electronics", IsActive: true}))
	err := s.CreateCategory(ctx, &domain.Category{Name: "electronics"})
	assert.ErrorIs(t, err, ErrDuplicate)

	require.NoError(t, s.CreateCategory(ctx, &domain.Category{Name: "Books", IsActive: false}))

	all, err := s.ListCategories(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := s.ListCategories(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Electronics", active[0].Name)
}

func TestMemoryStorePlatformPatch(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	p := &domain.Platform{Name: "Amazon", Color: "#ff9900", IsActive: true}
	require.NoError(t, s.CreatePlatform(ctx, p))

	inactive := false
	updated, err := s.UpdatePlatform(ctx, p.ID, PlatformPatch{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "#ff9900", updated.Color)

	name := "Amazon"
	// renaming to the same name is not a conflict
	_, err = s.UpdatePlatform(ctx, p.ID, PlatformPatch{Name: &name})
	require.NoError(t, err)
}

func TestMemoryStoreContactsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	for _, subject := range []string{"a", "b", "c"} {
		require.NoError(t, s.CreateContact(ctx, &domain.Contact{
			Name: "n", Email: "e@example.com", Subject: subject, Message: "m",
		}))
	}
	contacts, err := s.ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 3)
	assert.Equal(t, "c", contacts[0].Subject)
	assert.Equal(t, "a", contacts[2].Subject)
}

func TestMemoryStoreOperators(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.GetOprByUsername(ctx, "admin")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.CreateOpr(ctx, &domain.SysOpr{Username: "admin", Password: "hash"}))
	opr, err := s.GetOprByUsername(ctx, "admin")
	require.NoError(t, err)

	require.NoError(t, s.TouchOprLogin(ctx, opr.ID))
	opr, err = s.GetOprByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.False(t, opr.LastLogin.IsZero())
}
