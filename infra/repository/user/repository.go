package user

import (
	"context"
	"errors"

	domain "github.com/paisabank/paisabank/pkg/domain/user"
	"github.com/paisabank/paisabank/pkg/dto"
	"github.com/paisabank/paisabank/pkg/repository"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

// New creates a user repository bound to the given *gorm.DB session.
func New(db *gorm.DB) repository.UserRepository {
	return &repo{db: db}
}

func (r *repo) GetByEmailPhone(
	ctx context.Context,
	email, phone string,
) (*dto.UserRead, error) {
	var u User
	err := r.db.WithContext(ctx).
		Where("email = ? AND phone_no = ?", email, phone).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&u), nil
}

func (r *repo) Search(
	ctx context.Context,
	query string,
) ([]*dto.UserRead, error) {
	var users []User
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("upi_id ILIKE ? OR phone_no ILIKE ?", pattern, pattern).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	result := make([]*dto.UserRead, 0, len(users))
	for i := range users {
		result = append(result, mapModelToDTO(&users[i]))
	}
	return result, nil
}

func (r *repo) Create(ctx context.Context, create *dto.UserCreate) error {
	u := User{
		Name:     create.Name,
		Email:    create.Email,
		Phone:    create.Phone,
		Password: create.HashedPin,
		UpiID:    create.UpiID,
		Age:      create.Age,
		Gender:   create.Gender,
		Language: create.Language,
		Address:  create.Address,
		PinCode:  create.PinCode,
	}
	return r.db.WithContext(ctx).Create(&u).Error
}

func mapModelToDTO(u *User) *dto.UserRead {
	return &dto.UserRead{
		SerialNo:  u.SerialNo,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		UpiID:     u.UpiID,
		Age:       u.Age,
		Gender:    u.Gender,
		Language:  u.Language,
		Address:   u.Address,
		PinCode:   u.PinCode,
		HashedPin: u.Password,
		CreatedAt: u.CreatedAt,
	}
}
