package service

import (
	"fmt"

	"github.com/freshmart-next/internal/constants"
	"github.com/freshmart-next/internal/logger"
	"github.com/freshmart-next/internal/models"
	"github.com/freshmart-next/internal/repository"

	"gorm.io/gorm"
)

// CartLineInput is one requested cart line.
type CartLineInput struct {
	ProductID uint `json:"product"`
	Quantity  int  `json:"quantity"`
}

// CartService owns the cart lifecycle. A cart is always replaced as a whole;
// there is no per-line mutation.
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// Replace validates the requested lines, then atomically swaps the user's
// cart for them. The returned snapshot is computed from the freshly written
// lines, not from a re-read, so it always reflects exactly this write.
//
// Validation order: empty input, unknown products, quantity bounds, then
// duplicates. The first failing check wins and the stored cart is untouched.
func (s *CartService) Replace(userID uint, lines []CartLineInput) (*CartSnapshot, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}
	if len(lines) == 0 {
		return nil, newValidationError(ValidationRequired, "products", "this field is required")
	}

	ids := make([]uint, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}
	products, err := s.productRepo.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	for i, line := range lines {
		if _, ok := byID[line.ProductID]; !ok {
			return nil, newValidationError(ValidationNotFound,
				fmt.Sprintf("products[%d].product", i), "product does not exist")
		}
	}
	for i, line := range lines {
		if line.Quantity < constants.CartMinQuantity {
			return nil, newValidationError(ValidationOutOfRange,
				fmt.Sprintf("products[%d].quantity", i),
				fmt.Sprintf("ensure this value is greater than or equal to %d", constants.CartMinQuantity))
		}
	}
	seen := make(map[uint]struct{}, len(lines))
	for _, line := range lines {
		if _, dup := seen[line.ProductID]; dup {
			return nil, newValidationError(ValidationDuplicate,
				"products", "this product is already in the cart")
		}
		seen[line.ProductID] = struct{}{}
	}

	newLines := make([]models.CartLine, 0, len(lines))
	for _, line := range lines {
		newLines = append(newLines, models.CartLine{
			UserID:    userID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	var inserted []models.CartLine
	err = s.cartRepo.Transaction(func(tx *gorm.DB) error {
		txRepo := s.cartRepo.WithTx(tx)
		if _, err := txRepo.ClearByUser(userID); err != nil {
			return err
		}
		rows, err := txRepo.InsertAll(newLines)
		if err != nil {
			return err
		}
		inserted = rows
		return nil
	})
	if err != nil {
		return nil, err
	}

	pairs := make([]cartPair, 0, len(inserted))
	for _, line := range inserted {
		pairs = append(pairs, cartPair{Product: byID[line.ProductID], Quantity: line.Quantity})
	}
	return buildSnapshot(pairs), nil
}

// Get returns the snapshot of the user's stored cart. An empty cart is a
// valid snapshot with zero totals, not an error.
func (s *CartService) Get(userID uint) (*CartSnapshot, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}
	lines, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	pairs := make([]cartPair, 0, len(lines))
	for i := range lines {
		pairs = append(pairs, cartPair{Product: &lines[i].Product, Quantity: lines[i].Quantity})
	}
	return buildSnapshot(pairs), nil
}

// Clear deletes every line of the user's cart. Clearing an already empty
// cart succeeds.
func (s *CartService) Clear(userID uint) (int64, error) {
	if userID == 0 {
		return 0, ErrUnauthorized
	}
	return s.cartRepo.ClearByUser(userID)
}

// PruneOrphanLines removes cart lines whose product no longer exists.
// Called periodically by the worker.
func (s *CartService) PruneOrphanLines() (int64, error) {
	removed, err := s.cartRepo.DeleteOrphanLines()
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		logger.Infow("pruned orphan cart lines", "count", removed)
	}
	return removed, nil
}
