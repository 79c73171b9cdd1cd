package model

import "time"

type TokenClaim struct {
	AdminId uint   `json:"id"`
	Role    string `json:"role"`
}

type DTO struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
