package service

import (
	"errors"

	"gorm.io/gorm"

	"account_service/internal/models"
	"account_service/internal/repository"
)

// ErrAccountNotFound 表示指定的帳戶不存在
var ErrAccountNotFound = errors.New("account not found")

// AccountService 封裝帳戶相關的業務邏輯
type AccountService struct {
	accountRepo repository.AccountRepository
}

func NewAccountService(accountRepo repository.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

// CreateAccount 建立新帳戶，id 由資料庫配發；
// 請求未提供 date_joined 時，預設為今天
func (s *AccountService) CreateAccount(account *models.Account) error {
	account.ID = 0
	if account.DateJoined.IsZero() {
		account.DateJoined = models.Today()
	}
	return s.accountRepo.Create(account)
}

// GetAccount 取得指定帳戶，不存在時回傳 ErrAccountNotFound
func (s *AccountService) GetAccount(id uint) (*models.Account, error) {
	account, err := s.accountRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

// ListAccounts 依建立順序列出所有帳戶
func (s *AccountService) ListAccounts() ([]models.Account, error) {
	return s.accountRepo.FindAll()
}

// UpdateAccount 以路徑 id 為準覆寫帳戶內容；
// 請求省略 date_joined 時重設為今天，而非保留原值
func (s *AccountService) UpdateAccount(id uint, account *models.Account) (*models.Account, error) {
	account.ID = id
	if account.DateJoined.IsZero() {
		account.DateJoined = models.Today()
	}
	if err := s.accountRepo.Update(account); err != nil {
		return nil, err
	}
	return account, nil
}

// DeleteAccount 刪除帳戶，不存在時回傳 ErrAccountNotFound
func (s *AccountService) DeleteAccount(id uint) error {
	if _, err := s.GetAccount(id); err != nil {
		return err
	}
	return s.accountRepo.Delete(id)
}
