package model

// Admin password is stored as a bcrypt hash and never serialized.
type Admin struct {
	DTO
	Email    string `gorm:"uniqueIndex;not null" validate:"required,email" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null;default:GuestAdmin" json:"role"`
}

type Admins []Admin

type RegisterAdminInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,adminrole"`
}

type LoginAdminInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
