package repositories

import (
	"context"

	"ecommerce-api/models"
)

type OrderRepository struct {
	db DB
}

func NewOrderRepository(db DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(order *models.Order) error {
	query := `
		INSERT INTO orders (order_date, user_id)
		VALUES ($1, $2)
		RETURNING id
	`
	return r.db.QueryRow(
		context.Background(),
		query,
		order.OrderDate,
		order.UserID,
	).Scan(&order.ID)
}

func (r *OrderRepository) FindByID(id int) (*models.Order, error) {
	query := `SELECT id, order_date, user_id FROM orders WHERE id = $1`

	order := &models.Order{}
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&order.ID,
		&order.OrderDate,
		&order.UserID,
	)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// FindByUser returns the user's orders with their product lists populated.
func (r *OrderRepository) FindByUser(userID int) ([]models.Order, error) {
	query := `SELECT id, order_date, user_id FROM orders WHERE user_id = $1 ORDER BY id`

	rows, err := r.db.Query(context.Background(), query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var order models.Order
		if err := rows.Scan(&order.ID, &order.OrderDate, &order.UserID); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		products, err := r.ProductsForOrder(orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Products = products
	}
	return orders, nil
}

func (r *OrderRepository) ProductsForOrder(orderID int) ([]models.Product, error) {
	query := `
		SELECT p.id, p.product_name, p.price
		FROM products p
		JOIN order_products op ON op.product_id = p.id
		WHERE op.order_id = $1
		ORDER BY p.id
	`

	rows, err := r.db.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var product models.Product
		if err := rows.Scan(&product.ID, &product.ProductName, &product.Price); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (r *OrderRepository) HasProduct(orderID, productID int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM order_products WHERE order_id = $1 AND product_id = $2)`

	var exists bool
	err := r.db.QueryRow(context.Background(), query, orderID, productID).Scan(&exists)
	return exists, err
}

// AddProduct inserts the association pair. The composite primary key on
// order_products is the authoritative duplicate guard; a unique violation
// surfaces as a pgconn.PgError for the caller to classify.
func (r *OrderRepository) AddProduct(orderID, productID int) error {
	query := `INSERT INTO order_products (order_id, product_id) VALUES ($1, $2)`
	_, err := r.db.Exec(context.Background(), query, orderID, productID)
	return err
}

// RemoveProduct deletes the association pair and reports whether it existed.
func (r *OrderRepository) RemoveProduct(orderID, productID int) (bool, error) {
	query := `DELETE FROM order_products WHERE order_id = $1 AND product_id = $2`

	result, err := r.db.Exec(context.Background(), query, orderID, productID)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}
