package service

import (
	"account_service/internal/repository"
)

type Services struct {
	Account *AccountService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Account: NewAccountService(repos.Account),
	}
}
