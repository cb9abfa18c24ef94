package users

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/masterchiefff/jobfit-server/internal/shared/auth"
	"github.com/masterchiefff/jobfit-server/internal/shared/storage/object"
)

const registrationTokenTTL = 30 * time.Minute

// Service contains registration and login logic.
type Service struct {
	Repo  Repo
	Store object.ObjectStore
}

// NewService constructs a Service.
func NewService(repo Repo, store object.ObjectStore) *Service {
	return &Service{Repo: repo, Store: store}
}

// BeginRegistration validates step-one details and returns a short-lived
// registration token carrying them. Nothing is persisted yet.
func (s *Service) BeginRegistration(ctx context.Context, username, email, firstName, lastName string) (string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || !strings.Contains(email, "@") {
		return "", ErrInvalidInput
	}
	if _, err := s.Repo.GetByUsername(ctx, username); err == nil {
		return "", ErrDuplicate
	}

	now := time.Now().UTC()
	token, err := auth.SignJWT(auth.Claims{
		Sub:       "pending:" + username,
		Username:  username,
		Email:     email,
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Purpose:   auth.PurposeRegistration,
		Iat:       now.Unix(),
		Exp:       now.Add(registrationTokenTTL).Unix(),
	})
	if err != nil {
		return "", fmt.Errorf("sign registration token: %w", err)
	}
	return token, nil
}

// CompleteRegistration verifies the registration token, hashes the password,
// and creates the user.
func (s *Service) CompleteRegistration(ctx context.Context, token, phoneNumber, country, zipCode, password string) (User, error) {
	claims, err := auth.VerifyJWT(token)
	if err != nil || claims.Purpose != auth.PurposeRegistration {
		return User{}, ErrInvalidInput
	}
	if len(password) < 8 {
		return User{}, fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		ID:           uuid.NewString(),
		Username:     claims.Username,
		Email:        claims.Email,
		FirstName:    claims.FirstName,
		LastName:     claims.LastName,
		PhoneNumber:  strings.TrimSpace(phoneNumber),
		Country:      strings.TrimSpace(country),
		ZipCode:      strings.TrimSpace(zipCode),
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Login verifies credentials and issues an auth token.
func (s *Service) Login(ctx context.Context, username, password string) (User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return User{}, "", ErrInvalidInput
	}

	user, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		return User{}, "", ErrBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return User{}, "", ErrBadCredentials
	}

	token, err := auth.SignJWT(auth.Claims{
		Sub:       user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Purpose:   auth.PurposeAuth,
	})
	if err != nil {
		return User{}, "", fmt.Errorf("sign auth token: %w", err)
	}
	return user, token, nil
}

// SaveProfileImage stores the image in object storage and records its key.
func (s *Service) SaveProfileImage(ctx context.Context, userID, fileName string, r io.Reader) (string, error) {
	if userID == "" {
		return "", ErrInvalidInput
	}
	if _, err := s.Repo.GetByID(ctx, userID); err != nil {
		return "", err
	}

	storageKey, _, _, err := s.Store.Save(ctx, userID, fileName, r)
	if err != nil {
		return "", fmt.Errorf("store profile image: %w", err)
	}
	if err := s.Repo.SetProfileImage(ctx, userID, storageKey); err != nil {
		return "", err
	}
	return storageKey, nil
}

// GetByID returns a user by ID.
func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if userID == "" {
		return User{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID)
}
