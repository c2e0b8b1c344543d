package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Account 表示系統中的一個帳戶
type Account struct {
	ID          uint   `gorm:"primaryKey" json:"id"`         // 帳戶編號，由資料庫配發，建立後不可變更
	Name        string `gorm:"not null" json:"name"`         // 姓名，必填
	Email       string `gorm:"not null" json:"email"`        // 電子郵件，必填
	Address     string `gorm:"not null" json:"address"`      // 地址，必填
	PhoneNumber string `gorm:"not null" json:"phone_number"` // 電話號碼，必填
	DateJoined  Date   `gorm:"type:date" json:"date_joined"` // 加入日期，未提供時由服務端補上當天日期
}

const dateLayout = "2006-01-02"

// Date 表示一個日曆日期（不含時間），JSON 序列化為 YYYY-MM-DD
type Date struct {
	time.Time
}

// Today 回傳今天的日期（UTC）
func Today() Date {
	now := time.Now().UTC()
	return Date{time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON 解析 YYYY-MM-DD 格式的日期；null 與空字串視為未提供
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected format %s", s, dateLayout)
	}
	d.Time = t
	return nil
}

// Value 與 Scan 讓 gorm 以 date 欄位型別儲存
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		d.Time = time.Time{}
	case time.Time:
		d.Time = v
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
	return nil
}

func (d *Date) parse(s string) error {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}
