package main

import (
	"context"
	"errors"
	"sync"

	"github.com/stretchr/testify/mock"
)

// MockProductRepository simula o repositório de produtos
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Search(ctx context.Context, filters ProductSearchFilters) ([]Product, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockProductRepository) ListByCategoryID(ctx context.Context, categoryID int) ([]Product, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, productID int) (*Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, productID int) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// MockCategoryRepository simula o repositório de categorias
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAll(ctx context.Context) ([]Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, categoryID int) (*Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, categoryID int) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

// MockProfileRepository simula o repositório de perfis
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID int) (*Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Profile), args.Error(1)
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// MockUserRepository simula o repositório de usuários
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

// MockOrderRepository simula o repositório de pedidos
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Checkout(ctx context.Context, userID int) (*Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

// MockCartUseCase simula o use case do carrinho para os testes de handler
type MockCartUseCase struct {
	mock.Mock
}

func (m *MockCartUseCase) GetCart(ctx context.Context, userID int) (*ShoppingCart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ShoppingCart), args.Error(1)
}

func (m *MockCartUseCase) AddProduct(ctx context.Context, userID, productID int) (*ShoppingCart, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ShoppingCart), args.Error(1)
}

func (m *MockCartUseCase) UpdateQuantity(ctx context.Context, userID, productID, quantity int) (*ShoppingCart, error) {
	args := m.Called(ctx, userID, productID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ShoppingCart), args.Error(1)
}

func (m *MockCartUseCase) Clear(ctx context.Context, userID int) (*ShoppingCart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ShoppingCart), args.Error(1)
}

// MockCheckoutUseCase simula o use case de checkout para os testes de handler
type MockCheckoutUseCase struct {
	mock.Mock
}

func (m *MockCheckoutUseCase) Checkout(ctx context.Context, userID int) (*Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

// MockCatalogUseCase simula o use case do catálogo para os testes de handler
type MockCatalogUseCase struct {
	mock.Mock
}

func (m *MockCatalogUseCase) ListCategories(ctx context.Context) ([]Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Category), args.Error(1)
}

func (m *MockCatalogUseCase) GetCategory(ctx context.Context, categoryID int) (*Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

func (m *MockCatalogUseCase) ListProductsByCategory(ctx context.Context, categoryID int) ([]Product, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockCatalogUseCase) CreateCategory(ctx context.Context, category *Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCatalogUseCase) UpdateCategory(ctx context.Context, categoryID int, category *Category) error {
	args := m.Called(ctx, categoryID, category)
	return args.Error(0)
}

func (m *MockCatalogUseCase) DeleteCategory(ctx context.Context, categoryID int) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

func (m *MockCatalogUseCase) SearchProducts(ctx context.Context, filters ProductSearchFilters) ([]Product, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockCatalogUseCase) GetProduct(ctx context.Context, productID int) (*Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockCatalogUseCase) CreateProduct(ctx context.Context, product *Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockCatalogUseCase) UpdateProduct(ctx context.Context, productID int, product *Product) error {
	args := m.Called(ctx, productID, product)
	return args.Error(0)
}

func (m *MockCatalogUseCase) DeleteProduct(ctx context.Context, productID int) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// fakeCartStore é um ShoppingCartRepository em memória que preserva a
// semântica do upsert do banco: no máximo uma linha por (usuário, produto)
// e incremento atômico sob concorrência.
type fakeCartStore struct {
	mu       sync.Mutex
	products map[int]Product
	items    map[int]map[int]ShoppingCartItem // userID -> productID -> item
}

func newFakeCartStore(products ...Product) *fakeCartStore {
	store := &fakeCartStore{
		products: make(map[int]Product),
		items:    make(map[int]map[int]ShoppingCartItem),
	}
	for _, product := range products {
		store.products[product.ProductID] = product
	}
	return store
}

func (s *fakeCartStore) seedItem(userID int, item ShoppingCartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.items[userID] == nil {
		s.items[userID] = make(map[int]ShoppingCartItem)
	}
	s.items[userID][item.Product.ProductID] = item
}

func (s *fakeCartStore) cartLocked(userID int) *ShoppingCart {
	cart := NewShoppingCart()
	for _, item := range s.items[userID] {
		cart.Add(item)
	}
	return cart
}

func (s *fakeCartStore) GetByUserID(ctx context.Context, userID int) (*ShoppingCart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartLocked(userID), nil
}

func (s *fakeCartStore) AddProduct(ctx context.Context, userID, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[productID]
	if !ok {
		return errors.New("foreign key violation: product does not exist")
	}

	if s.items[userID] == nil {
		s.items[userID] = make(map[int]ShoppingCartItem)
	}
	if item, ok := s.items[userID][productID]; ok {
		item.Quantity++
		s.items[userID][productID] = item
		return nil
	}
	s.items[userID][productID] = NewShoppingCartItem(product, 1)
	return nil
}

func (s *fakeCartStore) UpdateProductQuantity(ctx context.Context, userID, productID, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[userID][productID]
	if !ok {
		return ErrNotFound
	}
	item.Quantity = quantity
	s.items[userID][productID] = item
	return nil
}

func (s *fakeCartStore) Clear(ctx context.Context, userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, userID)
	return nil
}

// fakeOrderRepository reproduz a semântica tudo-ou-nada do checkout sobre o
// fakeCartStore: ou o pedido inteiro é gravado e o carrinho esvaziado, ou
// nada muda.
type fakeOrderRepository struct {
	store         *fakeCartStore
	nextOrderID   int
	orders        []*Order
	failLineItems bool
}

func newFakeOrderRepository(store *fakeCartStore) *fakeOrderRepository {
	return &fakeOrderRepository{store: store, nextOrderID: 1}
}

func (r *fakeOrderRepository) Checkout(ctx context.Context, userID int) (*Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cart := r.store.cartLocked(userID)
	if cart.IsEmpty() {
		return nil, ErrCartEmpty
	}

	order := NewOrderFromCart(userID, cart)

	if r.failLineItems {
		// rollback: nem pedido nem carrinho são tocados
		return nil, errors.New("failed to create order line item: connection reset")
	}

	order.OrderID = r.nextOrderID
	r.nextOrderID++
	for i := range order.LineItems {
		order.LineItems[i].OrderID = order.OrderID
		order.LineItems[i].OrderLineItemID = i + 1
	}

	r.orders = append(r.orders, order)
	delete(r.store.items, userID)
	return order, nil
}
