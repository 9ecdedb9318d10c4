package models

// Updates are full-replace: every mutable field must be present,
// so the update payloads carry the same binding rules as the create ones.

type CreateUserRequest struct {
	Name    string  `json:"name" binding:"required,max=50"`
	Address string  `json:"address" binding:"required,max=100"`
	Email   *string `json:"email" binding:"omitempty,email,max=200"`
}

type UpdateUserRequest struct {
	Name    string  `json:"name" binding:"required,max=50"`
	Address string  `json:"address" binding:"required,max=100"`
	Email   *string `json:"email" binding:"omitempty,email,max=200"`
}

type CreateProductRequest struct {
	ProductName string   `json:"product_name" binding:"required,max=50"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
}

type UpdateProductRequest struct {
	ProductName string   `json:"product_name" binding:"required,max=50"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
}

type CreateOrderRequest struct {
	UserID    int    `json:"user_id" binding:"required"`
	OrderDate string `json:"order_date" binding:"required"`
}
