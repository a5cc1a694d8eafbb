package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sayadalsamak/store/internal/domain"
)

type AuthUC struct {
	Users  domain.UserRepo
	Secret []byte
	Expiry time.Duration
}

// Register creates the admin account. Only one may ever exist; every
// attempt after the first fails.
func (uc *AuthUC) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", domain.Invalidf("email and password are required")
	}
	if len(password) < 8 {
		return nil, "", domain.Invalidf("password must be at least 8 characters")
	}
	n, err := uc.Users.Count(ctx)
	if err != nil {
		return nil, "", err
	}
	if n > 0 {
		return nil, "", fmt.Errorf("admin account: %w", domain.ErrDuplicate)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	u := &domain.User{
		ID:       uuid.New(),
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     domain.RoleAdmin,
	}
	if err := uc.Users.Create(ctx, u); err != nil {
		return nil, "", err
	}
	tok, err := uc.issueToken(u)
	if err != nil {
		return nil, "", err
	}
	return u, tok, nil
}

func (uc *AuthUC) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := uc.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
	}
	tok, err := uc.issueToken(u)
	if err != nil {
		return nil, "", err
	}
	return u, tok, nil
}

func (uc *AuthUC) Me(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return uc.Users.FindByID(ctx, id)
}

func (uc *AuthUC) issueToken(u *domain.User) (string, error) {
	expiry := uc.Expiry
	if expiry == 0 {
		expiry = 24 * time.Hour
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   u.ID.String(),
		"email": u.Email,
		"exp":   time.Now().Add(expiry).Unix(),
	})
	return tok.SignedString(uc.Secret)
}

// VerifyToken parses a bearer token and returns the user id it encodes.
func (uc *AuthUC) VerifyToken(tokenStr string) (uuid.UUID, error) {
	tok, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return uc.Secret, nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, fmt.Errorf("invalid token: %w", domain.ErrUnauthorized)
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, fmt.Errorf("invalid token claims: %w", domain.ErrUnauthorized)
	}
	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid token subject: %w", domain.ErrUnauthorized)
	}
	return id, nil
}
