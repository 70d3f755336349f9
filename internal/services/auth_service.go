// auth_service.go
//
// A personal-development tracking data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of growthdb.
// growthdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// growthdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with growthdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/localnerve/growthdb/internal/models"
	"github.com/localnerve/growthdb/internal/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Claims are the bearer token claims. The subject user id travels as user_id.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 bearer tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer returns an issuer whose tokens expire after ttl.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for userID.
func (t *TokenIssuer) Issue(userID string) (string, error) {
	now := t.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies a token and returns its user id. Every failure wraps
// ErrUnauthorized; expired tokens say so.
func (t *TokenIssuer) Parse(token string) (string, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return "", fmt.Errorf("token expired: %w", types.ErrUnauthorized)
	}
	if err != nil || claims.UserID == "" {
		return "", fmt.Errorf("invalid token: %w", types.ErrUnauthorized)
	}
	return claims.UserID, nil
}

// HashPassword hashes a password with bcrypt's default cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// RegisterInput is the body of POST /api/auth/register.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
	Name     string `json:"name" validate:"required"`
}

// LoginInput is the body of POST /api/auth/login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthUser is the public view of an account.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

func authResponse(tokens *TokenIssuer, u *models.User) (AuthResponse, error) {
	token, err := tokens.Issue(u.ID)
	if err != nil {
		return AuthResponse{}, err
	}
	return AuthResponse{Token: token, User: AuthUser{ID: u.ID, Email: u.Email, Name: u.Name}}, nil
}

// Register creates an account and signs a token for it.
func Register(ctx context.Context, db *gorm.DB, tokens *TokenIssuer, in RegisterInput) (AuthResponse, error) {
	email := strings.TrimSpace(in.Email)

	var existing int64
	if err := db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&existing).Error; err != nil {
		return AuthResponse{}, fmt.Errorf("failed to look up email: %w", err)
	}
	if existing > 0 {
		return AuthResponse{}, fmt.Errorf("email already registered: %w", types.ErrConflict)
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return AuthResponse{}, err
	}

	user := &models.User{Email: email, Name: in.Name, PasswordHash: hash}
	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		return AuthResponse{}, fmt.Errorf("failed to create user: %w", err)
	}
	return authResponse(tokens, user)
}

// Login checks credentials and signs a token. Unknown emails and wrong
// passwords fail the same way.
func Login(ctx context.Context, db *gorm.DB, tokens *TokenIssuer, in LoginInput) (AuthResponse, error) {
	var user models.User
	err := quiet(ctx, db).Where("email = ?", strings.TrimSpace(in.Email)).First(&user).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AuthResponse{}, fmt.Errorf("failed to look up user: %w", err)
	}
	if err != nil || !CheckPassword(user.PasswordHash, in.Password) {
		return AuthResponse{}, fmt.Errorf("invalid credentials: %w", types.ErrUnauthorized)
	}
	return authResponse(tokens, &user)
}
