package service

import (
	"testing"

	"go-fichas-ws/internal/model"
	"go-fichas-ws/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProductService(db *gorm.DB) ProductService {
	return NewProductService(repository.NewProductRepo(db), repository.NewCategoryRepo(db), nil)
}

func TestProductCreateAndListByCategory(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "dona@bar.com")
	svc := newProductService(db)
	categories := NewCategoryService(repository.NewCategoryRepo(db), nil)

	category, err := categories.Create(user.ID, "salgados")
	require.NoError(t, err)

	qty := 10
	require.NoError(t, svc.Create(user.ID, &model.Product{
		Name: "coxinha", Value: 500, UseQuantity: true, Quantity: &qty, CategoryID: &category.ID,
	}))
	require.NoError(t, svc.Create(user.ID, &model.Product{Name: "refri", Value: 300}))

	all, err := svc.List(user.ID, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	salgados, err := svc.List(user.ID, &category.ID)
	require.NoError(t, err)
	require.Len(t, salgados, 1)
	assert.Equal(t, "coxinha", salgados[0].Name)
	require.NotNil(t, salgados[0].Category)
	assert.Equal(t, "salgados", salgados[0].Category.Name)
}

func TestProductCreateUnknownCategory(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "dona@bar.com")
	svc := newProductService(db)

	missing := uuid.New()
	err := svc.Create(user.ID, &model.Product{Name: "coxinha", Value: 500, CategoryID: &missing})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestProductCreateRejectsNegativeValue(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "dona@bar.com")
	svc := newProductService(db)

	err := svc.Create(user.ID, &model.Product{Name: "coxinha", Value: -1})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestProductDelete(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "dona@bar.com")
	svc := newProductService(db)

	product := &model.Product{Name: "coxinha", Value: 500}
	require.NoError(t, svc.Create(user.ID, product))

	require.NoError(t, svc.Delete(product.ID, user.ID))

	err := svc.Delete(product.ID, user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCategoryLifecycle(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "dona@bar.com")
	svc := NewCategoryService(repository.NewCategoryRepo(db), nil)

	category, err := svc.Create(user.ID, "salgados")
	require.NoError(t, err)

	require.NoError(t, svc.Rename(category.ID, user.ID, "lanches"))

	categories, err := svc.List(user.ID)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "lanches", categories[0].Name)

	require.NoError(t, svc.Delete(category.ID, user.ID))
	err = svc.Delete(category.ID, user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
