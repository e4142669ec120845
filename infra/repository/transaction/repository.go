package transaction

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	domain "github.com/paisabank/paisabank/pkg/domain/transaction"
	"github.com/paisabank/paisabank/pkg/dto"
	"github.com/paisabank/paisabank/pkg/repository"
	"gorm.io/gorm"
)

const (
	uniqueViolation = "23505"

	// Index names from the migrations; the violated constraint decides
	// whether a duplicate insert is a resubmitted transfer or a TXN id
	// collision.
	txnIDIndex       = "idx_transactions_transactions_id"
	idempotencyIndex = "idx_transactions_idempotency_key"

	ledgerSavepoint = "ledger_append"

	// The TXN keyspace is only a million values, so collisions are
	// expected once the ledger grows; each retry draws a fresh id.
	maxIDAttempts = 3
)

type repo struct {
	db *gorm.DB
}

// New creates a ledger repository bound to the given *gorm.DB session.
func New(db *gorm.DB) repository.TransactionRepository {
	return &repo{db: db}
}

// Create appends one record and returns it as stored. A collision on the
// idempotency key means the caller resubmitted an already-recorded transfer
// and yields ErrDuplicateTransfer; a collision on the TXN id is this
// service's own small keyspace running hot, so the id is regenerated and the
// insert retried under a savepoint. Must run inside a unit of work.
func (r *repo) Create(
	ctx context.Context,
	create *dto.TransactionCreate,
) (*dto.TransactionRead, error) {
	row := Transaction{
		ID:             create.ID,
		TransactionID:  create.TransactionID,
		ReferenceNo:    create.ReferenceNo,
		AccountNo:      create.AccountNo,
		Name:           create.Name,
		FromAcc:        create.FromAcc,
		ToAcc:          create.ToAcc,
		Amount:         create.Amount,
		Status:         create.Status,
		Date:           create.Date,
		Time:           create.Time,
		SenderDetails:  create.SenderDetails,
		Type:           create.Type,
		Method:         create.Method,
		Description:    create.Description,
		FromUpi:        create.FromUpi,
		ToUpi:          create.ToUpi,
		IdempotencyKey: create.IdempotencyKey,
	}
	for attempt := 1; ; attempt++ {
		if err := r.db.WithContext(ctx).SavePoint(ledgerSavepoint).Error; err != nil {
			return nil, err
		}
		err := r.db.WithContext(ctx).Create(&row).Error
		if err == nil {
			return mapModelToDTO(&row), nil
		}

		var pgErr *pgconn.PgError
		if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
			return nil, err
		}
		if pgErr.ConstraintName == idempotencyIndex {
			return nil, domain.ErrDuplicateTransfer
		}
		if pgErr.ConstraintName != txnIDIndex || attempt == maxIDAttempts {
			return nil, err
		}

		if err := r.db.WithContext(ctx).RollbackTo(ledgerSavepoint).Error; err != nil {
			return nil, err
		}
		row.TransactionID = domain.NewID()
	}
}

func (r *repo) ListByAccount(
	ctx context.Context,
	accountNo string,
) ([]*dto.TransactionRead, error) {
	var rows []Transaction
	err := r.db.WithContext(ctx).
		Where("account_no = ? OR from_acc = ? OR to_acc = ?",
			accountNo, accountNo, accountNo).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make([]*dto.TransactionRead, 0, len(rows))
	for i := range rows {
		result = append(result, mapModelToDTO(&rows[i]))
	}
	return result, nil
}

func (r *repo) Recent(
	ctx context.Context,
	accountNo string,
) (*dto.TransactionRead, error) {
	var row Transaction
	err := r.db.WithContext(ctx).
		Where("account_no = ? OR from_acc = ? OR to_acc = ?",
			accountNo, accountNo, accountNo).
		Order("created_at DESC").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&row), nil
}

func mapModelToDTO(row *Transaction) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:             row.ID,
		TransactionID:  row.TransactionID,
		ReferenceNo:    row.ReferenceNo,
		AccountNo:      row.AccountNo,
		Name:           row.Name,
		FromAcc:        row.FromAcc,
		ToAcc:          row.ToAcc,
		Amount:         row.Amount,
		Status:         row.Status,
		Date:           row.Date,
		Time:           row.Time,
		SenderDetails:  row.SenderDetails,
		Type:           row.Type,
		Method:         row.Method,
		Description:    row.Description,
		FromUpi:        row.FromUpi,
		ToUpi:          row.ToUpi,
		Category:       row.Category,
		ReceiptURL:     row.ReceiptURL,
		IsFlagged:      row.IsFlagged,
		IdempotencyKey: row.IdempotencyKey,
		CreatedAt:      row.CreatedAt,
	}
}
