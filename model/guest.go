package model

import (
	"errors"

	"hotel_manager/utils"

	"gorm.io/gorm"
)

// Guest references its hotel by id only. There is no foreign key constraint:
// deleting a hotel leaves its guests in place (orphan-tolerant, as the admin
// UI filters by hotel anyway).
type Guest struct {
	DTO
	HotelId        uint           `gorm:"not null;index" json:"hotelId"`
	FullName       string         `gorm:"not null" json:"fullName"`
	MobileNumber   string         `gorm:"not null" json:"mobileNumber"`
	Address        string         `gorm:"not null" json:"address"`
	PurposeOfVisit string         `gorm:"not null" json:"purposeOfVisit"`
	CheckInDate    utils.DateOnly `gorm:"type:date;not null" json:"checkInDate"`
	CheckOutDate   utils.DateOnly `gorm:"type:date;not null" json:"checkOutDate"`
	Email          string         `json:"email"`
	IdProofNumber  string         `gorm:"not null" json:"idProofNumber"`
}

type Guests []Guest

var ErrCheckOutNotAfterCheckIn = errors.New("check-out date must be after check-in date")

// BeforeSave re-checks the date ordering at the schema layer. The validate
// middleware already rejects bad input, this hook catches writes that bypass
// it.
func (g *Guest) BeforeSave(tx *gorm.DB) error {
	if !g.CheckOutDate.After(g.CheckInDate.Time) {
		return ErrCheckOutNotAfterCheckIn
	}
	return nil
}

type SubmitGuestInput struct {
	FullName       string `json:"fullName" validate:"required"`
	MobileNumber   string `json:"mobileNumber" validate:"required,len=10,number"`
	Address        string `json:"address" validate:"required"`
	PurposeOfVisit string `json:"purposeOfVisit" validate:"required,visitpurpose"`
	CheckInDate    string `json:"checkInDate" validate:"required,ddmmyyyy"`
	CheckOutDate   string `json:"checkOutDate" validate:"required,ddmmyyyy"`
	Email          string `json:"email" validate:"omitempty,email"`
	IdProofNumber  string `json:"idProofNumber" validate:"required"`
}

type EditGuestInput struct {
	FullName       *string `json:"fullName" validate:"omitempty"`
	MobileNumber   *string `json:"mobileNumber" validate:"omitempty,len=10,number"`
	Address        *string `json:"address" validate:"omitempty"`
	PurposeOfVisit *string `json:"purposeOfVisit" validate:"omitempty,visitpurpose"`
	CheckInDate    *string `json:"checkInDate" validate:"omitempty,ddmmyyyy"`
	CheckOutDate   *string `json:"checkOutDate" validate:"omitempty,ddmmyyyy"`
	Email          *string `json:"email" validate:"omitempty,email"`
	IdProofNumber  *string `json:"idProofNumber" validate:"omitempty"`
}
