package repository

import (
	"account_service/internal/models"
	"account_service/internal/storage"
)

// AccountRepository 定義帳戶資料的存取操作
// 查無資料時回傳 gorm.ErrRecordNotFound
type AccountRepository interface {
	Create(account *models.Account) error
	FindByID(id uint) (*models.Account, error)
	FindAll() ([]models.Account, error)
	Update(account *models.Account) error
	Delete(id uint) error
}

type accountRepository struct {
	db *storage.PostgresDB
}

func NewAccountRepository(db *storage.PostgresDB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(account *models.Account) error {
	return r.db.Create(account).Error
}

func (r *accountRepository) FindByID(id uint) (*models.Account, error) {
	var account models.Account
	err := r.db.First(&account, id).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// FindAll 依建立順序（id 遞增）查詢所有帳戶
func (r *accountRepository) FindAll() ([]models.Account, error) {
	accounts := make([]models.Account, 0)
	err := r.db.Order("id").Find(&accounts).Error
	return accounts, err
}

func (r *accountRepository) Update(account *models.Account) error {
	return r.db.Save(account).Error
}

func (r *accountRepository) Delete(id uint) error {
	return r.db.Delete(&models.Account{}, id).Error
}
