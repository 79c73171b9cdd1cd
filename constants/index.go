package constants

// Admin roles
const (
	ROLE_MAIN_ADMIN  = "MainAdmin"
	ROLE_GUEST_ADMIN = "GuestAdmin"
)

var AdminRoles = []string{ROLE_MAIN_ADMIN, ROLE_GUEST_ADMIN}

// Guest purpose of visit
const (
	PURPOSE_BUSINESS = "Business"
	PURPOSE_PERSONAL = "Personal"
	PURPOSE_TOURIST  = "Tourist"
)

var VisitPurposes = []string{PURPOSE_BUSINESS, PURPOSE_PERSONAL, PURPOSE_TOURIST}

// Cloudinary folders
const (
	FOLDER_HOTEL_LOGOS = "HotelLogos"
	FOLDER_HOTEL_QR    = "HotelQRCodes"
)

// Auth cookie
const (
	TOKEN_COOKIE        = "token"
	TOKEN_COOKIE_MAXAGE = 365 * 24 * 60 * 60 // 1 year, matches token without expiry
)

// Messages
const (
	ERROR_INTERNAL_ERROR    = "Internal Server Error"
	AUTH_REQUIRED           = "Authentication required"
	INVALID_TOKEN           = "Invalid token"
	NOT_MAIN_ADMIN          = "Unauthorized"
	MAIN_ADMIN_EXISTS       = "MainAdmin already exists"
	ADMIN_EXISTS            = "Admin already exists"
	ADMIN_NOT_FOUND         = "Admin not found"
	INVALID_CREDENTIALS     = "Invalid credentials"
	LOGO_FILE_REQUIRED      = "Logo file is required"
	LOGO_FORMAT_UNSUPPORTED = "Only PNG, JPG and JPEG logos are supported"
	NO_HOTELS               = "No hotels available"
	HOTEL_NOT_FOUND         = "Hotel not found"
	INVALID_HOTEL_ID        = "Missing or invalid hotel id"
	NO_GUESTS_FOR_HOTEL     = "No guests found for this hotel"
	GUEST_NOT_FOUND         = "Guest not found"
	INVALID_GUEST_ID        = "Missing or invalid guest id"
)
