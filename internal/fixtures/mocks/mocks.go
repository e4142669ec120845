// Package mocks provides hand-rolled testify mocks for the repository
// interfaces and the unit of work.
package mocks

import (
	"context"
	"reflect"

	"github.com/paisabank/paisabank/pkg/dto"
	"github.com/paisabank/paisabank/pkg/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockUnitOfWork mocks repository.UnitOfWork. Unless Do is stubbed with an
// error (simulating a failure to open the transaction), it runs the given
// function against the mock itself, so repository expectations drive the
// test.
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(m)
}

func (m *MockUnitOfWork) GetRepository(repoType reflect.Type) (any, error) {
	args := m.Called(repoType)
	return args.Get(0), args.Error(1)
}

func (m *MockUnitOfWork) AccountRepository() (repository.AccountRepository, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.AccountRepository), args.Error(1)
}

func (m *MockUnitOfWork) TransactionRepository() (repository.TransactionRepository, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.TransactionRepository), args.Error(1)
}

func (m *MockUnitOfWork) UserRepository() (repository.UserRepository, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.UserRepository), args.Error(1)
}

// MockAccountRepository mocks repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) GetByAccountNo(ctx context.Context, accountNo string) (*dto.AccountRead, error) {
	args := m.Called(ctx, accountNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AccountRead), args.Error(1)
}

func (m *MockAccountRepository) GetForUpdate(ctx context.Context, accountNo string) (*dto.AccountRead, error) {
	args := m.Called(ctx, accountNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AccountRead), args.Error(1)
}

func (m *MockAccountRepository) AdjustBalance(ctx context.Context, accountNo string, delta decimal.Decimal) error {
	args := m.Called(ctx, accountNo, delta)
	return args.Error(0)
}

func (m *MockAccountRepository) ListByOwner(ctx context.Context, email, phone string) ([]*dto.AccountRead, error) {
	args := m.Called(ctx, email, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dto.AccountRead), args.Error(1)
}

func (m *MockAccountRepository) GetPrimary(ctx context.Context, email, phone string) (*dto.AccountRead, error) {
	args := m.Called(ctx, email, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AccountRead), args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, create *dto.AccountCreate) error {
	args := m.Called(ctx, create)
	return args.Error(0)
}

// MockTransactionRepository mocks repository.TransactionRepository.
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, create *dto.TransactionCreate) (*dto.TransactionRead, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TransactionRead), args.Error(1)
}

func (m *MockTransactionRepository) ListByAccount(ctx context.Context, accountNo string) ([]*dto.TransactionRead, error) {
	args := m.Called(ctx, accountNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dto.TransactionRead), args.Error(1)
}

func (m *MockTransactionRepository) Recent(ctx context.Context, accountNo string) (*dto.TransactionRead, error) {
	args := m.Called(ctx, accountNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TransactionRead), args.Error(1)
}

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByEmailPhone(ctx context.Context, email, phone string) (*dto.UserRead, error) {
	args := m.Called(ctx, email, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserRead), args.Error(1)
}

func (m *MockUserRepository) Search(ctx context.Context, query string) ([]*dto.UserRead, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dto.UserRead), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, create *dto.UserCreate) error {
	args := m.Called(ctx, create)
	return args.Error(0)
}
