package store

import (
	"context"
	"errors"

	"github.com/marketloft/emporium/internal/shop/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Products() Products
	CartItems() CartItems
	Purchases() Purchases

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn returns nil
	// and rolling back otherwise. Prefer this over Tx directly.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is the lookup behind login and token resolution.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// ListUsers returns all users ordered by creation.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// The storage-level UNIQUE constraint on username is the authoritative
	// duplicate guard; violations surface as ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateUser rewrites username and password_hash together and bumps
	// updated_at. Credentials never change partially.
	UpdateUser(ctx context.Context, id, username, passwordHash string) error

	// DeleteUser removes the user; cart items and purchases cascade.
	DeleteUser(ctx context.Context, id string) error
}

type Products interface {
	GetProductByID(ctx context.Context, id string) (domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// CreateProduct inserts a catalog entry; duplicate names surface as
	// ErrAlreadyExists.
	CreateProduct(ctx context.Context, p domain.Product) error

	UpdateProduct(ctx context.Context, p domain.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

type CartItems interface {
	GetCartItemByID(ctx context.Context, id string) (domain.CartItem, error)

	// ListCartItemsByUser returns the user's cart, oldest first.
	ListCartItemsByUser(ctx context.Context, userID string) ([]domain.CartItem, error)

	CreateCartItem(ctx context.Context, item domain.CartItem) error

	// UpdateCartItem rewrites quantity and product_id.
	UpdateCartItem(ctx context.Context, id, productID string, quantity int64) error

	DeleteCartItem(ctx context.Context, id string) error
}

type Purchases interface {
	GetPurchaseByID(ctx context.Context, id string) (domain.Purchase, error)
	ListPurchasesByUser(ctx context.Context, userID string) ([]domain.Purchase, error)
	CreatePurchase(ctx context.Context, p domain.Purchase) error
	UpdatePurchase(ctx context.Context, id string, totalPrice float64) error
	DeletePurchase(ctx context.Context, id string) error
}
