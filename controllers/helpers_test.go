package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"ecommerce-api/models"
	"ecommerce-api/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

// In-memory stores standing in for the pgx repositories.

type memUserStore struct {
	users  map[int]models.User
	nextID int
}

func (s *memUserStore) FindAll() ([]models.User, error) {
	users := []models.User{}
	for id := 1; id < s.nextID; id++ {
		if u, ok := s.users[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func (s *memUserStore) FindByID(id int) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &u, nil
}

func (s *memUserStore) Create(user *models.User) error {
	user.ID = s.nextID
	s.nextID++
	s.users[user.ID] = *user
	return nil
}

func (s *memUserStore) Update(user *models.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	s.users[user.ID] = *user
	return nil
}

func (s *memUserStore) Delete(id int) error {
	if _, ok := s.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(s.users, id)
	return nil
}

type memProductStore struct {
	products map[int]models.Product
	nextID   int
}

func (s *memProductStore) FindAll() ([]models.Product, error) {
	products := []models.Product{}
	for id := 1; id < s.nextID; id++ {
		if p, ok := s.products[id]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}

func (s *memProductStore) FindByID(id int) (*models.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &p, nil
}

func (s *memProductStore) Create(product *models.Product) error {
	product.ID = s.nextID
	s.nextID++
	s.products[product.ID] = *product
	return nil
}

func (s *memProductStore) Update(product *models.Product) error {
	if _, ok := s.products[product.ID]; !ok {
		return pgx.ErrNoRows
	}
	s.products[product.ID] = *product
	return nil
}

func (s *memProductStore) Delete(id int) error {
	if _, ok := s.products[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(s.products, id)
	return nil
}

type memOrderStore struct {
	orders   map[int]models.Order
	pairs    map[[2]int]bool
	products *memProductStore
	nextID   int
}

func (s *memOrderStore) Create(order *models.Order) error {
	order.ID = s.nextID
	s.nextID++
	s.orders[order.ID] = *order
	return nil
}

func (s *memOrderStore) FindByID(id int) (*models.Order, error) {
	o, ok := s.orders[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &o, nil
}

func (s *memOrderStore) FindByUser(userID int) ([]models.Order, error) {
	orders := []models.Order{}
	for id := 1; id < s.nextID; id++ {
		o, ok := s.orders[id]
		if !ok || o.UserID != userID {
			continue
		}
		products, err := s.ProductsForOrder(o.ID)
		if err != nil {
			return nil, err
		}
		o.Products = products
		orders = append(orders, o)
	}
	return orders, nil
}

func (s *memOrderStore) ProductsForOrder(orderID int) ([]models.Product, error) {
	ids := []int{}
	for pair := range s.pairs {
		if pair[0] == orderID {
			ids = append(ids, pair[1])
		}
	}
	sort.Ints(ids)

	products := []models.Product{}
	for _, id := range ids {
		p, err := s.products.FindByID(id)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, nil
}

func (s *memOrderStore) HasProduct(orderID, productID int) (bool, error) {
	return s.pairs[[2]int{orderID, productID}], nil
}

func (s *memOrderStore) AddProduct(orderID, productID int) error {
	s.pairs[[2]int{orderID, productID}] = true
	return nil
}

func (s *memOrderStore) RemoveProduct(orderID, productID int) (bool, error) {
	key := [2]int{orderID, productID}
	if !s.pairs[key] {
		return false, nil
	}
	delete(s.pairs, key)
	return true, nil
}

// newTestRouter wires the controllers over in-memory stores with the same
// route table the server uses.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	users := &memUserStore{users: map[int]models.User{}, nextID: 1}
	products := &memProductStore{products: map[int]models.Product{}, nextID: 1}
	orders := &memOrderStore{orders: map[int]models.Order{}, pairs: map[[2]int]bool{}, products: products, nextID: 1}

	userCtrl := NewUserController(services.NewUserService(users))
	productCtrl := NewProductController(services.NewProductService(products), nil)
	orderCtrl := NewOrderController(services.NewOrderService(orders, users, products))

	router := gin.New()

	router.GET("/users", userCtrl.GetAllUsers)
	router.GET("/users/:id", userCtrl.GetUserByID)
	router.POST("/users", userCtrl.CreateUser)
	router.PUT("/users/:id", userCtrl.UpdateUser)
	router.DELETE("/users/:id", userCtrl.DeleteUser)

	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)
	router.POST("/products", productCtrl.CreateProduct)
	router.PUT("/products/:id", productCtrl.UpdateProduct)
	router.DELETE("/products/:id", productCtrl.DeleteProduct)

	router.POST("/orders", orderCtrl.CreateOrder)
	router.PUT("/orders/:order_id/add_product/:product_id", orderCtrl.AddProduct)
	router.DELETE("/orders/:order_id/remove_product/:product_id", orderCtrl.RemoveProduct)
	router.GET("/orders/user/:user_id", orderCtrl.GetOrdersForUser)
	router.GET("/orders/:order_id/products", orderCtrl.GetProductsForOrder)

	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req = httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
