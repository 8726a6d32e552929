package service

import (
	"context"
	"testing"

	"github.com/marketloft/emporium/internal/shop/store"
	"github.com/stretchr/testify/require"
)

func TestProductLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := &ProductService{Store: newTestStore(t)}

	created, err := svc.CreateProduct(ctx, "Widget", "A fine widget", 9.99, 50)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Widget", created.Name)
	require.False(t, created.CreatedAt.IsZero())

	listed, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	updated, err := svc.UpdateProduct(ctx, created.ID, "Widget Pro", "An even finer widget", 19.99, 25)
	require.NoError(t, err)
	require.Equal(t, "Widget Pro", updated.Name)
	require.Equal(t, 19.99, updated.Price)
	require.Equal(t, int64(25), updated.Stock)

	deleted, err := svc.DeleteProduct(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, deleted.ID)

	_, err = svc.GetProductByID(ctx, created.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestProductUpdateMissing(t *testing.T) {
	ctx := context.Background()
	svc := &ProductService{Store: newTestStore(t)}

	_, err := svc.UpdateProduct(ctx, "missing", "Name", "", 1.0, 1)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = svc.DeleteProduct(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUserUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	auth := newTestAuthService(t, st)
	svc := &UserService{Store: st}

	user, err := auth.Register(ctx, "alice", "s3cret-pass")
	require.NoError(t, err)

	updated, err := svc.UpdateUser(ctx, user.ID, "alice2", "new-pass")
	require.NoError(t, err)
	require.Equal(t, "alice2", updated.Username)
	require.NotEqual(t, user.PasswordHash, updated.PasswordHash)

	// The new credentials take effect immediately.
	_, err = auth.Authenticate(ctx, "alice2", "new-pass")
	require.NoError(t, err)

	deleted, err := svc.DeleteUser(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, user.ID, deleted.ID)

	_, err = svc.GetUserByID(ctx, user.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUserUpdateConflictsOnTakenUsername(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	auth := newTestAuthService(t, st)
	svc := &UserService{Store: st}

	_, err := auth.Register(ctx, "alice", "pass-a")
	require.NoError(t, err)
	bob, err := auth.Register(ctx, "bob", "pass-b")
	require.NoError(t, err)

	_, err = svc.UpdateUser(ctx, bob.ID, "alice", "pass-b")
	require.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestCartLifecycle(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	auth := newTestAuthService(t, st)
	products := &ProductService{Store: st}
	carts := &CartService{Store: st}

	user, err := auth.Register(ctx, "alice", "s3cret-pass")
	require.NoError(t, err)
	widget, err := products.CreateProduct(ctx, "Widget", "", 9.99, 50)
	require.NoError(t, err)
	gadget, err := products.CreateProduct(ctx, "Gadget", "", 4.99, 10)
	require.NoError(t, err)

	item, err := carts.AddCartItem(ctx, user.ID, widget.ID, 2)
	require.NoError(t, err)
	require.Equal(t, user.ID, item.UserID)
	require.Equal(t, int64(2), item.Quantity)

	t.Run("rejects unknown product", func(t *testing.T) {
		_, err := carts.AddCartItem(ctx, user.ID, "missing", 1)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("rejects unknown user", func(t *testing.T) {
		_, err := carts.AddCartItem(ctx, "missing", widget.ID, 1)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	updated, err := carts.UpdateCartItem(ctx, item.ID, gadget.ID, 5)
	require.NoError(t, err)
	require.Equal(t, gadget.ID, updated.ProductID)
	require.Equal(t, int64(5), updated.Quantity)

	listed, err := carts.ListCartItems(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	removed, err := carts.RemoveCartItem(ctx, item.ID)
	require.NoError(t, err)
	require.Equal(t, item.ID, removed.ID)

	listed, err = carts.ListCartItems(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, listed)
}

func TestPurchaseLifecycle(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	auth := newTestAuthService(t, st)
	purchases := &PurchaseService{Store: st}

	user, err := auth.Register(ctx, "alice", "s3cret-pass")
	require.NoError(t, err)

	created, err := purchases.CreatePurchase(ctx, user.ID, 29.97)
	require.NoError(t, err)
	require.Equal(t, 29.97, created.TotalPrice)

	t.Run("rejects unknown user", func(t *testing.T) {
		_, err := purchases.CreatePurchase(ctx, "missing", 1.0)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	updated, err := purchases.UpdatePurchase(ctx, created.ID, 19.98)
	require.NoError(t, err)
	require.Equal(t, 19.98, updated.TotalPrice)

	listed, err := purchases.ListPurchases(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	deleted, err := purchases.DeletePurchase(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, deleted.ID)

	listed, err = purchases.ListPurchases(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, listed)
}

func TestDeleteUserCascades(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	auth := newTestAuthService(t, st)
	users := &UserService{Store: st}
	products := &ProductService{Store: st}
	carts := &CartService{Store: st}
	purchases := &PurchaseService{Store: st}

	user, err := auth.Register(ctx, "alice", "s3cret-pass")
	require.NoError(t, err)
	widget, err := products.CreateProduct(ctx, "Widget", "", 9.99, 50)
	require.NoError(t, err)

	_, err = carts.AddCartItem(ctx, user.ID, widget.ID, 1)
	require.NoError(t, err)
	_, err = purchases.CreatePurchase(ctx, user.ID, 9.99)
	require.NoError(t, err)

	_, err = users.DeleteUser(ctx, user.ID)
	require.NoError(t, err)

	items, err := carts.ListCartItems(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, items)

	orders, err := purchases.ListPurchases(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, orders)
}
