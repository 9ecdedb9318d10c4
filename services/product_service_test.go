package services

import (
	"testing"

	"ecommerce-api/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductStore struct {
	products  map[int]models.Product
	nextID    int
	deleteErr error
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: map[int]models.Product{}, nextID: 1}
}

func (s *fakeProductStore) FindAll() ([]models.Product, error) {
	products := []models.Product{}
	for id := 1; id < s.nextID; id++ {
		if p, ok := s.products[id]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}

func (s *fakeProductStore) FindByID(id int) (*models.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &p, nil
}

func (s *fakeProductStore) Create(product *models.Product) error {
	product.ID = s.nextID
	s.nextID++
	s.products[product.ID] = *product
	return nil
}

func (s *fakeProductStore) Update(product *models.Product) error {
	if _, ok := s.products[product.ID]; !ok {
		return pgx.ErrNoRows
	}
	s.products[product.ID] = *product
	return nil
}

func (s *fakeProductStore) Delete(id int) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	if _, ok := s.products[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(s.products, id)
	return nil
}

func floatPtr(f float64) *float64 { return &f }

func TestCreateProductThenGetRoundTrip(t *testing.T) {
	svc := NewProductService(newFakeProductStore())

	created, err := svc.CreateProduct(models.CreateProductRequest{ProductName: "Widget", Price: floatPtr(9.99)})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, 9.99, created.Price)

	got, err := svc.GetProductByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestUpdateProductIsFullReplaceAndIdempotent(t *testing.T) {
	svc := NewProductService(newFakeProductStore())

	created, err := svc.CreateProduct(models.CreateProductRequest{ProductName: "Widget", Price: floatPtr(9.99)})
	require.NoError(t, err)

	req := models.UpdateProductRequest{ProductName: "Gadget", Price: floatPtr(0)}

	first, err := svc.UpdateProduct(created.ID, req)
	require.NoError(t, err)
	second, err := svc.UpdateProduct(created.ID, req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "Gadget", second.ProductName)
	assert.Equal(t, 0.0, second.Price)
}

func TestDeleteProductNotFoundLeavesStoreUnchanged(t *testing.T) {
	store := newFakeProductStore()
	svc := NewProductService(store)

	_, err := svc.CreateProduct(models.CreateProductRequest{ProductName: "Widget", Price: floatPtr(9.99)})
	require.NoError(t, err)

	err = svc.DeleteProduct(42)
	assert.ErrorIs(t, err, ErrProductNotFound)

	products, err := svc.GetAllProducts()
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestDeleteProductInOrdersIsRestricted(t *testing.T) {
	store := newFakeProductStore()
	store.deleteErr = &pgconn.PgError{Code: "23503"}
	svc := NewProductService(store)

	err := svc.DeleteProduct(1)
	assert.ErrorIs(t, err, ErrProductInOrders)
}
