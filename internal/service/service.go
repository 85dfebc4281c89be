package service

import (
	"github.com/ibeloyar/cupcake/internal/model"
	"github.com/shopspring/decimal"
)

type StorageRepo interface {
	GetUserByEmail(email string) *model.User
	CreateUser(user model.User) error
}

type PriceFormatter interface {
	Format(amount decimal.Decimal) string
}
