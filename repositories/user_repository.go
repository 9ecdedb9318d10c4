package repositories

import (
	"context"

	"ecommerce-api/models"

	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindAll() ([]models.User, error) {
	query := `SELECT id, name, address, email FROM users ORDER BY id`

	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Address, &user.Email); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) FindByID(id int) (*models.User, error) {
	query := `SELECT id, name, address, email FROM users WHERE id = $1`

	user := &models.User{}
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Address,
		&user.Email,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) Create(user *models.User) error {
	query := `
		INSERT INTO users (name, address, email)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return r.db.QueryRow(
		context.Background(),
		query,
		user.Name,
		user.Address,
		user.Email,
	).Scan(&user.ID)
}

func (r *UserRepository) Update(user *models.User) error {
	query := `UPDATE users SET name = $1, address = $2, email = $3 WHERE id = $4`

	result, err := r.db.Exec(
		context.Background(),
		query,
		user.Name,
		user.Address,
		user.Email,
		user.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *UserRepository) Delete(id int) error {
	result, err := r.db.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
