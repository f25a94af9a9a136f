package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model

	Email    string `gorm:"uniqueIndex;size:128" json:"email"`
	Name     string `gorm:"size:64" json:"name"`
	IsDemo   bool   `gorm:"default:false" json:"is_demo"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	Wallet       Wallet        `gorm:"foreignKey:UserID"`
	Bets         []Bet         `gorm:"foreignKey:UserID"`
	Transactions []Transaction `gorm:"foreignKey:UserID"`
}
