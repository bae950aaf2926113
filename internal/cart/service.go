package cart

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	pkgerrors "github.com/rotikita/rotikita-backend/pkg/errors"
)

// AddItemInput is the payload for adding one line to a cart.
type AddItemInput struct {
	ProductID   string
	VariantID   *string
	ProductName string
	VariantName *string
	UnitPrice   int64
	Quantity    int
}

// Service exposes the guest cart operations.
type Service interface {
	Get(ctx context.Context, token string) (*Cart, error)
	AddItem(ctx context.Context, token string, input AddItemInput) (*Cart, error)
	UpdateQuantity(ctx context.Context, token, lineID string, quantity int) (*Cart, error)
	RemoveItem(ctx context.Context, token, lineID string) (*Cart, error)
	Clear(ctx context.Context, token string) error
}

type service struct {
	store Store
}

// NewService builds a cart service backed by the provided store.
func NewService(store Store) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	return &service{store: store}, nil
}

func (s *service) Get(ctx context.Context, token string) (*Cart, error) {
	if err := validateToken(token); err != nil {
		return nil, err
	}
	cart, err := s.store.Load(ctx, token)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	return cart, nil
}

// AddItem merges on (productID, variantID): an existing line gains the
// incoming quantity, otherwise a new line is appended with a fresh id.
func (s *service) AddItem(ctx context.Context, token string, input AddItemInput) (*Cart, error) {
	if err := validateToken(token); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.ProductID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if strings.TrimSpace(input.ProductName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product name is required")
	}
	if input.UnitPrice < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unit price must be non-negative")
	}
	if input.Quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	cart, err := s.store.Load(ctx, token)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	if idx := cart.findLine(input.ProductID, input.VariantID); idx >= 0 {
		cart.Items[idx].Quantity += input.Quantity
	} else {
		cart.Items = append(cart.Items, Line{
			ID:          uuid.NewString(),
			ProductID:   input.ProductID,
			VariantID:   input.VariantID,
			ProductName: input.ProductName,
			VariantName: input.VariantName,
			UnitPrice:   input.UnitPrice,
			Quantity:    input.Quantity,
		})
	}

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return cart, nil
}

// UpdateQuantity sets a line's quantity, clamping to 1 so the stored cart
// never holds a quantity below one. Removal is an explicit RemoveItem call.
func (s *service) UpdateQuantity(ctx context.Context, token, lineID string, quantity int) (*Cart, error) {
	if err := validateToken(token); err != nil {
		return nil, err
	}
	if quantity < 1 {
		quantity = 1
	}

	cart, err := s.store.Load(ctx, token)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ID == lineID {
			cart.Items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart line not found")
	}

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return cart, nil
}

// RemoveItem deletes a line by its local id. Removing an absent line is not
// an error.
func (s *service) RemoveItem(ctx context.Context, token, lineID string) (*Cart, error) {
	if err := validateToken(token); err != nil {
		return nil, err
	}

	cart, err := s.store.Load(ctx, token)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	kept := cart.Items[:0]
	for _, line := range cart.Items {
		if line.ID != lineID {
			kept = append(kept, line)
		}
	}
	cart.Items = kept

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return cart, nil
}

func (s *service) Clear(ctx context.Context, token string) error {
	if err := validateToken(token); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, token); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
	}
	return nil
}

func validateToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart token is required")
	}
	return nil
}
