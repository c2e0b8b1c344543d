package repository

import "account_service/internal/storage"

type Repositories struct {
	Account AccountRepository
}

func NewRepositories(db *storage.PostgresDB) *Repositories {
	return &Repositories{
		Account: NewAccountRepository(db),
	}
}
