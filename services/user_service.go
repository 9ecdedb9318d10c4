package services

import (
	"errors"

	"ecommerce-api/models"

	"github.com/jackc/pgx/v5"
)

// UserStore is implemented by repositories.UserRepository.
type UserStore interface {
	FindAll() ([]models.User, error)
	FindByID(id int) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id int) error
}

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.users.FindAll()
}

func (s *UserService) GetUserByID(id int) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) CreateUser(req models.CreateUserRequest) (*models.User, error) {
	user := &models.User{
		Name:    req.Name,
		Address: req.Address,
		Email:   req.Email,
	}

	if err := s.users.Create(user); err != nil {
		if isPgError(err, pgUniqueViolation) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// UpdateUser replaces all mutable fields; partial updates are rejected at
// binding time.
func (s *UserService) UpdateUser(id int, req models.UpdateUserRequest) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	user.Name = req.Name
	user.Address = req.Address
	user.Email = req.Email

	if err := s.users.Update(user); err != nil {
		if isPgError(err, pgUniqueViolation) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// DeleteUser refuses to delete a user that still owns orders.
func (s *UserService) DeleteUser(id int) error {
	err := s.users.Delete(id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrUserNotFound
	}
	if isPgError(err, pgForeignKeyViolation) {
		return ErrUserHasOrders
	}
	return err
}
