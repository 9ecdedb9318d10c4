package services

import (
	"errors"

	"ecommerce-api/models"

	"github.com/jackc/pgx/v5"
)

// ProductStore is implemented by repositories.ProductRepository.
type ProductStore interface {
	FindAll() ([]models.Product, error)
	FindByID(id int) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id int) error
}

type ProductService struct {
	products ProductStore
}

func NewProductService(products ProductStore) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.products.FindAll()
}

func (s *ProductService) GetProductByID(id int) (*models.Product, error) {
	product, err := s.products.FindByID(id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) CreateProduct(req models.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		ProductName: req.ProductName,
		Price:       *req.Price,
	}

	if err := s.products.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) UpdateProduct(id int, req models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.GetProductByID(id)
	if err != nil {
		return nil, err
	}

	product.ProductName = req.ProductName
	product.Price = *req.Price

	if err := s.products.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct refuses to delete a product that appears in an order.
func (s *ProductService) DeleteProduct(id int) error {
	err := s.products.Delete(id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrProductNotFound
	}
	if isPgError(err, pgForeignKeyViolation) {
		return ErrProductInOrders
	}
	return err
}
