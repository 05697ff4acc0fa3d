// Package wallets persists saved hot wallets in the local SQLite database.
package wallets

import (
	"context"

	"github.com/dmitrijs2005/gophwallet/internal/client/models"
)

// Repository stores wallets. Rows hold the sealed mnemonic only; opening it
// is the caller's job.
type Repository interface {
	// Insert adds a new wallet. IDs are unique.
	Insert(ctx context.Context, w *models.Wallet) error

	// ListByNetwork returns wallets created for network, oldest first.
	ListByNetwork(ctx context.Context, network models.Network) ([]models.Wallet, error)

	// GetByID returns common.ErrorNotFound when no wallet has the id.
	GetByID(ctx context.Context, id string) (*models.Wallet, error)

	// Count returns the number of wallets on all networks.
	Count(ctx context.Context) (int, error)
}
