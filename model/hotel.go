package model

// Hotel logo and qrcode are Cloudinary URLs; the binary never touches the
// database. Qrcode is filled after creation because its payload contains the
// hotel id.
type Hotel struct {
	DTO
	Name    string `gorm:"not null" validate:"required" json:"name"`
	Address string `gorm:"not null" validate:"required" json:"address"`
	Logo    string `gorm:"not null" json:"logo"`
	Qrcode  string `json:"qrcode"`
}

type Hotels []Hotel

type EditHotelInput struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}
