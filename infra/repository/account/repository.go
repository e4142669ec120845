package account

import (
	"context"
	"errors"

	domain "github.com/paisabank/paisabank/pkg/domain/account"
	"github.com/paisabank/paisabank/pkg/dto"
	"github.com/paisabank/paisabank/pkg/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct {
	db *gorm.DB
}

// New creates an account repository bound to the given *gorm.DB session.
func New(db *gorm.DB) repository.AccountRepository {
	return &repo{db: db}
}

func (r *repo) GetByAccountNo(
	ctx context.Context,
	accountNo string,
) (*dto.AccountRead, error) {
	var acct Account
	err := r.db.WithContext(ctx).
		First(&acct, "account_no = ?", accountNo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&acct), nil
}

// GetForUpdate locks the account row until the surrounding transaction
// ends. Outside a unit of work the lock degrades to a plain read.
func (r *repo) GetForUpdate(
	ctx context.Context,
	accountNo string,
) (*dto.AccountRead, error) {
	var acct Account
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&acct, "account_no = ?", accountNo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&acct), nil
}

func (r *repo) AdjustBalance(
	ctx context.Context,
	accountNo string,
	delta decimal.Decimal,
) error {
	res := r.db.WithContext(ctx).
		Model(&Account{}).
		Where("account_no = ?", accountNo).
		Update("balance", gorm.Expr("balance + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (r *repo) ListByOwner(
	ctx context.Context,
	email, phone string,
) ([]*dto.AccountRead, error) {
	var accts []Account
	err := r.db.WithContext(ctx).
		Where("email = ? AND phone_no = ?", email, phone).
		Find(&accts).Error
	if err != nil {
		return nil, err
	}
	result := make([]*dto.AccountRead, 0, len(accts))
	for i := range accts {
		result = append(result, mapModelToDTO(&accts[i]))
	}
	return result, nil
}

func (r *repo) GetPrimary(
	ctx context.Context,
	email, phone string,
) (*dto.AccountRead, error) {
	var acct Account
	err := r.db.WithContext(ctx).
		Where("email = ? AND phone_no = ? AND is_primary_account = ?",
			email, phone, true).
		First(&acct).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&acct), nil
}

func (r *repo) Create(ctx context.Context, create *dto.AccountCreate) error {
	acct := Account{
		AccountNo: create.AccountNo,
		Email:     create.Email,
		Phone:     create.Phone,
		UpiID:     create.UpiID,
		Balance:   create.Balance,
		IsPrimary: create.IsPrimary,
	}
	return r.db.WithContext(ctx).Create(&acct).Error
}

func mapModelToDTO(acct *Account) *dto.AccountRead {
	return &dto.AccountRead{
		AccountNo: acct.AccountNo,
		Email:     acct.Email,
		Phone:     acct.Phone,
		UpiID:     acct.UpiID,
		Balance:   acct.Balance,
		IsPrimary: acct.IsPrimary,
		CreatedAt: acct.CreatedAt,
	}
}
