package models

import "time"

type MemberModel struct {
	Id       int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string    `json:"name" gorm:"type:varchar(255);not null"`
	Email    string    `json:"email" gorm:"type:varchar(255);unique;not null"`
	Address  string    `json:"address" gorm:"type:text"`
	Phone    string    `json:"phone" gorm:"type:varchar(20)"`
	JoinDate time.Time `json:"joinDate" gorm:"column:join_date;autoCreateTime"`
	// ActiveBorrows is maintained exclusively by the borrow service; the
	// borrow limit is enforced against this column with a conditional update.
	ActiveBorrows int `json:"activeBorrows" gorm:"column:active_borrows;default:0;not null"`
}
