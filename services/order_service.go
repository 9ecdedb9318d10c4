package services

import (
	"errors"

	"ecommerce-api/models"

	"github.com/jackc/pgx/v5"
)

// OrderStore is implemented by repositories.OrderRepository.
type OrderStore interface {
	Create(order *models.Order) error
	FindByID(id int) (*models.Order, error)
	FindByUser(userID int) ([]models.Order, error)
	ProductsForOrder(orderID int) ([]models.Product, error)
	HasProduct(orderID, productID int) (bool, error)
	AddProduct(orderID, productID int) error
	RemoveProduct(orderID, productID int) (bool, error)
}

type OrderService struct {
	orders   OrderStore
	users    UserStore
	products ProductStore
}

func NewOrderService(orders OrderStore, users UserStore, products ProductStore) *OrderService {
	return &OrderService{orders: orders, users: users, products: products}
}

// CreateOrder validates the date and the owning user, then inserts the
// order with an empty product list.
func (s *OrderService) CreateOrder(req models.CreateOrderRequest) (*models.Order, error) {
	orderDate, err := models.ParseOrderDate(req.OrderDate)
	if err != nil {
		return nil, ErrInvalidOrderDate
	}

	if _, err := s.users.FindByID(req.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	order := &models.Order{
		OrderDate: orderDate,
		UserID:    req.UserID,
		Products:  []models.Product{},
	}
	if err := s.orders.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) GetOrderByID(id int) (*models.Order, error) {
	order, err := s.orders.FindByID(id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

// AddProduct associates a product with an order. An order's product list is
// a set: the membership pre-check gives the friendly error, the composite
// primary key settles races between concurrent adds.
func (s *OrderService) AddProduct(orderID, productID int) (*models.Product, error) {
	if _, err := s.GetOrderByID(orderID); err != nil {
		return nil, err
	}

	product, err := s.GetProductByID(productID)
	if err != nil {
		return nil, err
	}

	exists, err := s.orders.HasProduct(orderID, productID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateOrderProduct
	}

	if err := s.orders.AddProduct(orderID, productID); err != nil {
		if isPgError(err, pgUniqueViolation) {
			return nil, ErrDuplicateOrderProduct
		}
		return nil, err
	}
	return product, nil
}

// RemoveProduct dissociates a product from an order. Removing a pair that
// is not present is an explicit error, not a no-op.
func (s *OrderService) RemoveProduct(orderID, productID int) error {
	if _, err := s.GetOrderByID(orderID); err != nil {
		return err
	}
	if _, err := s.GetProductByID(productID); err != nil {
		return err
	}

	removed, err := s.orders.RemoveProduct(orderID, productID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrProductNotInOrder
	}
	return nil
}

func (s *OrderService) GetOrdersForUser(userID int) ([]models.Order, error) {
	if _, err := s.users.FindByID(userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.orders.FindByUser(userID)
}

func (s *OrderService) GetProductsForOrder(orderID int) ([]models.Product, error) {
	if _, err := s.GetOrderByID(orderID); err != nil {
		return nil, err
	}
	return s.orders.ProductsForOrder(orderID)
}

func (s *OrderService) GetProductByID(id int) (*models.Product, error) {
	product, err := s.products.FindByID(id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}
