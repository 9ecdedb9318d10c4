package repositories

import (
	"context"

	"ecommerce-api/models"

	"github.com/jackc/pgx/v5"
)

type ProductRepository struct {
	db DB
}

func NewProductRepository(db DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) FindAll() ([]models.Product, error) {
	query := `SELECT id, product_name, price FROM products ORDER BY id`

	rows, err := r.db.Query(context.Background(), query)
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

func (r *ProductRepository) FindByID(id int) (*models.Product, error) {
	query := `SELECT id, product_name, price FROM products WHERE id = $1`

	product := &models.Product{}
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&product.ID,
		&product.ProductName,
		&product.Price,
	)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *ProductRepository) Create(product *models.Product) error {
	query := `
		INSERT INTO products (product_name, price)
		VALUES ($1, $2)
		RETURNING id
	`
	return r.db.QueryRow(
		context.Background(),
		query,
		product.ProductName,
		product.Price,
	).Scan(&product.ID)
}

func (r *ProductRepository) Update(product *models.Product) error {
	query := `UPDATE products SET product_name = $1, price = $2 WHERE id = $3`

	result, err := r.db.Exec(
		context.Background(),
		query,
		product.ProductName,
		product.Price,
		product.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ProductRepository) Delete(id int) error {
	result, err := r.db.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
