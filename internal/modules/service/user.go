package service

import (
	"context"
	"fmt"

	"github.com/workdesk/workdesk/internal/modules/model"
	"github.com/workdesk/workdesk/internal/modules/repo"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 8

// NewUserService wraps the user store so that plaintext passwords are hashed
// before they reach it and credentials never leave the service.
func NewUserService(r repo.Store[model.User], deps Deps) EntityService[model.User] {
	return NewEntityService[model.User](KindUsers, r, deps, Hooks[model.User]{
		BeforeCreate: func(ctx context.Context, u *model.User) error {
			hash, err := hashPassword(u.Password)
			if err != nil {
				return err
			}
			u.PasswordHash = hash
			u.Password = ""
			return nil
		},
		BeforeUpdate: func(ctx context.Context, p model.Patch[model.User]) (model.Patch[model.User], error) {
			up, ok := p.(model.UserPatch)
			if !ok || up.Password == nil {
				return p, nil
			}
			hash, err := hashPassword(*up.Password)
			if err != nil {
				return nil, err
			}
			up.PasswordHash = &hash
			up.Password = nil
			return up, nil
		},
		Present: func(u *model.User) { u.Sanitize() },
	})
}

func hashPassword(plain string) (string, error) {
	if len(plain) < minPasswordLen {
		return "", model.NewValidationError("password", fmt.Sprintf("min=%d", minPasswordLen))
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches the stored bcrypt hash.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
