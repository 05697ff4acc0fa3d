package wallets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophwallet/internal/client/models"
	"github.com/dmitrijs2005/gophwallet/internal/common"
	"github.com/dmitrijs2005/gophwallet/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

var _ Repository = (*SQLiteRepository)(nil)

const walletColumns = `id, name, network, words, sealed_mnemonic, nonce, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanWallet(s scanner) (models.Wallet, error) {
	var (
		w       models.Wallet
		network string
		created int64
	)
	if err := s.Scan(&w.ID, &w.Name, &network, &w.Words, &w.SealedMnemonic, &w.Nonce, &created); err != nil {
		return models.Wallet{}, err
	}
	w.Network = models.Network(network)
	w.CreatedAt = time.Unix(0, created).UTC()
	return w, nil
}

func (r *SQLiteRepository) Insert(ctx context.Context, w *models.Wallet) error {
	query := `INSERT INTO wallets (` + walletColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		w.ID, w.Name, string(w.Network), int(w.Words), w.SealedMnemonic, w.Nonce, w.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to insert wallet: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ListByNetwork(ctx context.Context, network models.Network) ([]models.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE network = ? ORDER BY created_at, rowid`
	rows, err := r.db.QueryContext(ctx, query, string(network))
	if err != nil {
		return nil, fmt.Errorf("failed to select wallets: %w", err)
	}
	defer rows.Close()

	var result []models.Wallet
	for rows.Next() {
		w, err := scanWallet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wallet: %w", err)
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate wallets: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Wallet, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+walletColumns+` FROM wallets WHERE id = ?`, id)
	w, err := scanWallet(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("wallet %s: %w", id, common.ErrorNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return &w, nil
}

func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM wallets`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count wallets: %w", err)
	}
	return n, nil
}
