package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tour-backend/models"
	"tour-backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const sessionTTL = 24 * time.Hour

// AuthService manages customer accounts and their server-side sessions.
type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// Register creates a customer with a bcrypt-hashed password.
func (s *AuthService) Register(fullName, email, password string) (models.Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing models.Customer
	err := s.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return models.Customer{}, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Customer{}, fmt.Errorf("check existing customer: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Customer{}, fmt.Errorf("hash password: %w", err)
	}

	customer := models.Customer{
		FullName: strings.TrimSpace(fullName),
		Email:    email,
		Password: string(hash),
	}
	if err := s.DB.Create(&customer).Error; err != nil {
		return models.Customer{}, fmt.Errorf("create customer: %w", err)
	}
	return customer, nil
}

// Login verifies the credentials and opens a new session.
func (s *AuthService) Login(email, password string) (models.Session, models.Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var customer models.Customer
	if err := s.DB.Where("email = ?", email).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Session{}, models.Customer{}, ErrInvalidCredentials
		}
		return models.Session{}, models.Customer{}, fmt.Errorf("fetch customer: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(password)) != nil {
		return models.Session{}, models.Customer{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return models.Session{}, models.Customer{}, fmt.Errorf("generate session token: %w", err)
	}

	session := models.Session{
		Token:      token,
		CustomerID: customer.ID,
		ExpiresAt:  time.Now().UTC().Add(sessionTTL),
	}
	if err := s.DB.Create(&session).Error; err != nil {
		return models.Session{}, models.Customer{}, fmt.Errorf("create session: %w", err)
	}
	return session, customer, nil
}

// Logout drops the session; unknown tokens are not an error.
func (s *AuthService) Logout(token string) error {
	if err := s.DB.Where("token = ?", token).Delete(&models.Session{}).Error; err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// SessionCustomer resolves a token to its customer, rejecting missing or
// expired sessions with ErrSessionInvalid.
func (s *AuthService) SessionCustomer(token string) (models.Customer, error) {
	if strings.TrimSpace(token) == "" {
		return models.Customer{}, ErrSessionInvalid
	}

	var session models.Session
	err := s.DB.
		Where("token = ? AND expires_at > ?", token, time.Now().UTC()).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Customer{}, ErrSessionInvalid
		}
		return models.Customer{}, fmt.Errorf("fetch session: %w", err)
	}

	var customer models.Customer
	if err := s.DB.First(&customer, session.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Customer{}, ErrSessionInvalid
		}
		return models.Customer{}, fmt.Errorf("fetch session customer: %w", err)
	}
	return customer, nil
}
