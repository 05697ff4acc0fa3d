package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/gophwallet/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophwallet/internal/common"
	"github.com/dmitrijs2005/gophwallet/internal/cryptox"
	"github.com/dmitrijs2005/gophwallet/internal/dbx"
)

const (
	keyPinSalt     = "pin_salt"
	keyPinVerifier = "pin_verifier"
)

var (
	ErrPinNotSet = errors.New("pin is not set")
	ErrWrongPin  = errors.New("wrong pin")
)

// PinService stores a PIN as a salted argon2 verifier and checks candidates
// against it. The PIN itself is never stored.
type PinService interface {
	SetPin(ctx context.Context, pin []byte) error
	// VerifyPin returns ErrPinNotSet or ErrWrongPin on failure.
	VerifyPin(ctx context.Context, pin []byte) error
	ClearPin(ctx context.Context) error
	HasPin(ctx context.Context) (bool, error)
}

type pinService struct {
	db *sql.DB
}

func NewPinService(db *sql.DB) PinService {
	return &pinService{db: db}
}

// SetPin replaces any stored verifier with one for pin.
func (p *pinService) SetPin(ctx context.Context, pin []byte) error {
	salt := cryptox.NewSalt()
	key := cryptox.DerivePinKey(pin, salt)
	defer common.WipeByteArray(key)
	verifier := cryptox.MakeVerifier(key)

	return dbx.WithTx(ctx, p.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyPinSalt, salt); err != nil {
			return err
		}
		return repo.Set(ctx, keyPinVerifier, verifier)
	})
}

func (p *pinService) VerifyPin(ctx context.Context, pin []byte) error {
	repo := metadata.NewSQLiteRepository(p.db)

	salt, err := repo.Get(ctx, keyPinSalt)
	if err != nil {
		return err
	}
	saved, err := repo.Get(ctx, keyPinVerifier)
	if err != nil {
		return err
	}
	if len(salt) == 0 || len(saved) == 0 {
		return ErrPinNotSet
	}

	key := cryptox.DerivePinKey(pin, salt)
	defer common.WipeByteArray(key)
	if subtle.ConstantTimeCompare(saved, cryptox.MakeVerifier(key)) == 0 {
		return ErrWrongPin
	}
	return nil
}

func (p *pinService) ClearPin(ctx context.Context) error {
	return dbx.WithTx(ctx, p.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, keyPinSalt); err != nil {
			return err
		}
		return repo.Delete(ctx, keyPinVerifier)
	})
}

func (p *pinService) HasPin(ctx context.Context) (bool, error) {
	v, err := metadata.NewSQLiteRepository(p.db).Get(ctx, keyPinVerifier)
	if err != nil {
		return false, err
	}
	return len(v) > 0, nil
}
