package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophwallet/internal/client/models"
	"github.com/dmitrijs2005/gophwallet/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophwallet/internal/client/repositories/wallets"
	"github.com/dmitrijs2005/gophwallet/internal/common"
	"github.com/dmitrijs2005/gophwallet/internal/cryptox"
	"github.com/dmitrijs2005/gophwallet/internal/dbx"
	"github.com/dmitrijs2005/gophwallet/internal/seedflow"
	"github.com/google/uuid"
)

const keyDeviceKey = "device_key"

// PendingWallet is a generated but not yet saved wallet. Its network is fixed
// when it is generated.
type PendingWallet struct {
	Network models.Network
	Words   models.NumberOfWords
	Pages   []models.SeedPage

	mnemonic []byte
}

// Wipe zeroes the mnemonic. A wiped wallet can no longer be saved.
func (p *PendingWallet) Wipe() {
	common.WipeByteArray(p.mnemonic)
	p.mnemonic = nil
}

// WalletService creates and lists hot wallets.
type WalletService interface {
	// NewPending generates a fresh mnemonic of n words on the current network
	// and splits it into pages for the reveal.
	NewPending(ctx context.Context, n models.NumberOfWords) (*PendingWallet, error)
	// Save seals and stores p and marks onboarding complete in one
	// transaction, then wipes p. On error nothing is stored and p can be
	// saved again.
	Save(ctx context.Context, p *PendingWallet) (*models.Wallet, error)
	// List returns the wallets of the currently selected network.
	List(ctx context.Context) ([]models.Wallet, error)
	Get(ctx context.Context, id string) (*models.Wallet, error)
}

type walletService struct {
	db           *sql.DB
	state        *AppState
	gen          WordGenerator
	wordsPerPage int
	now          func() time.Time
}

func NewWalletService(db *sql.DB, state *AppState, gen WordGenerator, wordsPerPage int) WalletService {
	return &walletService{db: db, state: state, gen: gen, wordsPerPage: wordsPerPage, now: time.Now}
}

func (s *walletService) NewPending(ctx context.Context, n models.NumberOfWords) (*PendingWallet, error) {
	if !n.Valid() {
		return nil, fmt.Errorf("%w: %d words", common.ErrorInvalidInput, n)
	}
	words, err := s.gen.Generate(n)
	if err != nil {
		return nil, fmt.Errorf("generate words: %w", err)
	}
	pages, err := seedflow.GroupWords(words, s.wordsPerPage)
	if err != nil {
		return nil, err
	}
	return &PendingWallet{
		Network:  s.state.Network(),
		Words:    n,
		Pages:    pages,
		mnemonic: []byte(strings.Join(words, " ")),
	}, nil
}

func (s *walletService) Save(ctx context.Context, p *PendingWallet) (*models.Wallet, error) {
	if p == nil || len(p.mnemonic) == 0 {
		return nil, fmt.Errorf("%w: nothing to save", common.ErrorInvalidInput)
	}

	w := &models.Wallet{
		ID:        uuid.NewString(),
		Network:   p.Network,
		Words:     p.Words,
		CreatedAt: s.now().UTC(),
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		key, err := deviceKey(ctx, metadata.NewSQLiteRepository(tx))
		if err != nil {
			return err
		}
		defer common.WipeByteArray(key)

		w.SealedMnemonic, w.Nonce, err = cryptox.Seal(p.mnemonic, key)
		if err != nil {
			return fmt.Errorf("seal mnemonic: %w", err)
		}

		repo := wallets.NewSQLiteRepository(tx)
		count, err := repo.Count(ctx)
		if err != nil {
			return err
		}
		w.Name = fmt.Sprintf("Wallet %d", count+1)
		if err := repo.Insert(ctx, w); err != nil {
			return err
		}
		if err := saveCompletedOnboarding(ctx, metadata.NewSQLiteRepository(tx), true); err != nil {
			return fmt.Errorf("save onboarding flag: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	p.Wipe()
	s.state.markOnboarded()
	return w, nil
}

// deviceKey returns the key wallets are sealed with, creating it on first use.
func deviceKey(ctx context.Context, repo metadata.Repository) ([]byte, error) {
	key, err := repo.Get(ctx, keyDeviceKey)
	if err != nil {
		return nil, err
	}
	if len(key) == cryptox.KeySize {
		return key, nil
	}
	key = common.GenerateRandByteArray(cryptox.KeySize)
	if err := repo.Set(ctx, keyDeviceKey, key); err != nil {
		return nil, err
	}
	return key, nil
}

func (s *walletService) List(ctx context.Context) ([]models.Wallet, error) {
	return wallets.NewSQLiteRepository(s.db).ListByNetwork(ctx, s.state.Network())
}

func (s *walletService) Get(ctx context.Context, id string) (*models.Wallet, error) {
	return wallets.NewSQLiteRepository(s.db).GetByID(ctx, id)
}
