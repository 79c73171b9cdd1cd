package helper

import (
	"errors"
	"fmt"

	"hotel_manager/config"
	"hotel_manager/database"
	"hotel_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func JwtSecret() []byte {
	return []byte(config.Config("JWT_SECRET"))
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetAdminByEmail(email string) (*model.Admin, error) {
	db := database.DB
	var admin model.Admin
	if err := db.Where(&model.Admin{Email: email}).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

// GenerateToken signs {id, role} with HS256. There is deliberately no exp
// claim: the cookie carries the 1-year lifetime and logout is a client-side
// cookie clear.
func GenerateToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["id"] = tokenClaim.AdminId
	claims["role"] = tokenClaim.Role

	t, err := token.SignedString(JwtSecret())
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret(), nil
	})

	return token, err
}

// ClaimFromToken decodes {id, role} out of a parsed token.
func ClaimFromToken(token *jwt.Token) (model.TokenClaim, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, errors.New("invalid token claims")
	}
	idFloat, ok := claims["id"].(float64)
	if !ok {
		return model.TokenClaim{}, errors.New("invalid id in payload")
	}
	role, ok := claims["role"].(string)
	if !ok {
		return model.TokenClaim{}, errors.New("invalid role in payload")
	}
	return model.TokenClaim{AdminId: uint(idFloat), Role: role}, nil
}

// GetInfoAdminFromToken reads the claim the Protected middleware stored in
// Locals. Only valid downstream of Protected.
func GetInfoAdminFromToken(c *fiber.Ctx) model.TokenClaim {
	claim, ok := c.Locals("admin").(model.TokenClaim)
	if !ok {
		return model.TokenClaim{}
	}
	return claim
}
