package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"account_service/internal/models"
	"account_service/internal/service"
)

// AccountHandler 處理與帳戶資源相關的請求
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler 創建一個新的 AccountHandler 實例
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// AccountInput 定義建立與更新帳戶請求的結構
// id 在建立時一律忽略，在更新時必須與路徑 id 一致
type AccountInput struct {
	ID          *uint       `json:"id"`
	Name        string      `json:"name" binding:"required"`
	Email       string      `json:"email" binding:"required"`
	Address     string      `json:"address" binding:"required"`
	PhoneNumber string      `json:"phone_number" binding:"required"`
	DateJoined  models.Date `json:"date_joined"`
}

func (in *AccountInput) toAccount() *models.Account {
	return &models.Account{
		Name:        in.Name,
		Email:       in.Email,
		Address:     in.Address,
		PhoneNumber: in.PhoneNumber,
		DateJoined:  in.DateJoined,
	}
}

// abortWithError 以固定格式回應錯誤：{status, error, message}
func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"status":  status,
		"error":   http.StatusText(status),
		"message": message,
	})
}

// requireJSON 在讀取請求體之前檢查 Content-Type，
// 不是 application/json 時回應 415
func requireJSON(c *gin.Context) bool {
	if c.ContentType() != "application/json" {
		abortWithError(c, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	return true
}

// Index 回傳服務的基本資訊
func (h *AccountHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "Account REST API Service",
		"version": "1.0",
	})
}

// CreateAccount 處理建立帳戶的請求
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	if !requireJSON(c) {
		return
	}

	var input AccountInput
	// 解析並驗證請求體
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	account := input.toAccount()
	if err := h.accountService.CreateAccount(account); err != nil {
		abortWithError(c, http.StatusInternalServerError, "建立帳戶失敗")
		return
	}

	c.Header("Location", fmt.Sprintf("/accounts/%d", account.ID))
	c.JSON(http.StatusCreated, account)
}

// GetAccount 處理取得單一帳戶的請求
func (h *AccountHandler) GetAccount(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		abortWithError(c, http.StatusNotFound, "不存在的帳戶ID")
		return
	}

	account, err := h.accountService.GetAccount(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			abortWithError(c, http.StatusNotFound, "帳戶不存在")
		} else {
			abortWithError(c, http.StatusInternalServerError, "查詢帳戶失敗")
		}
		return
	}

	c.JSON(http.StatusOK, account)
}

// ListAccounts 處理列出所有帳戶的請求
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.accountService.ListAccounts()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "查詢帳戶失敗")
		return
	}

	c.JSON(http.StatusOK, accounts)
}

// UpdateAccount 處理更新帳戶的請求
//
// 檢查順序是介面契約的一部分：
//  1. Content-Type，不論帳戶是否存在
//  2. 請求體解析（格式或型別錯誤）
//  3. 請求體 id 與路徑 id 的一致性，不論帳戶是否存在
//  4. 帳戶是否存在
//  5. 必填欄位
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	if !requireJSON(c) {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		abortWithError(c, http.StatusNotFound, "不存在的帳戶ID")
		return
	}

	var input AccountInput
	bindErr := c.ShouldBindJSON(&input)

	// 無法解析的請求體直接拒絕；缺少必填欄位的錯誤
	// （validator.ValidationErrors）留到確認帳戶存在之後再回應
	var fieldErrs validator.ValidationErrors
	if bindErr != nil && !errors.As(bindErr, &fieldErrs) {
		abortWithError(c, http.StatusBadRequest, bindErr.Error())
		return
	}

	if input.ID != nil && *input.ID != uint(id) {
		abortWithError(c, http.StatusBadRequest, "請求體的 id 與路徑不一致")
		return
	}

	if _, err := h.accountService.GetAccount(uint(id)); err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			abortWithError(c, http.StatusNotFound, "帳戶不存在")
		} else {
			abortWithError(c, http.StatusInternalServerError, "查詢帳戶失敗")
		}
		return
	}

	if bindErr != nil {
		abortWithError(c, http.StatusBadRequest, bindErr.Error())
		return
	}

	account, err := h.accountService.UpdateAccount(uint(id), input.toAccount())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "更新帳戶失敗")
		return
	}

	c.JSON(http.StatusOK, account)
}

// DeleteAccount 處理刪除帳戶的請求
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		abortWithError(c, http.StatusNotFound, "不存在的帳戶ID")
		return
	}

	if err := h.accountService.DeleteAccount(uint(id)); err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			abortWithError(c, http.StatusNotFound, "帳戶不存在")
		} else {
			abortWithError(c, http.StatusInternalServerError, "刪除帳戶失敗")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
