package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/threadline-dev/threadline/internal/domain"
	internal_errors "github.com/threadline-dev/threadline/internal/errors"
	"github.com/threadline-dev/threadline/internal/logger"
)

type AuthService interface {
	Register(creds domain.Credentials) (domain.CreatedUser, error)
	Login(creds domain.Credentials) (string, error)
}

type AuthStorage interface {
	SaveUser(username domain.Username, passHash string) (domain.CreatedUser, error)
	UserByUsername(username domain.Username) (domain.User, error)
}

type CredentialsValidator interface {
	Username(username domain.Username) error
	Password(password domain.Password) error
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

type Auth struct {
	storage    AuthStorage
	jwt        Jwt
	validator  CredentialsValidator
	bcryptCost int
}

func NewAuth(storage AuthStorage, jwt Jwt, validator CredentialsValidator, bcryptCost int) AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Auth{storage, jwt, validator, bcryptCost}
}

func (a *Auth) Register(creds domain.Credentials) (domain.CreatedUser, error) {
	if err := a.validator.Username(creds.Username); err != nil {
		return domain.CreatedUser{}, err
	}
	if err := a.validator.Password(creds.Password); err != nil {
		return domain.CreatedUser{}, err
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), a.bcryptCost)
	if err != nil {
		return domain.CreatedUser{}, err
	}

	user, err := a.storage.SaveUser(creds.Username, string(passHash))
	if err != nil {
		return domain.CreatedUser{}, err
	}
	logger.Log.Info("user registered", "userId", user.Id)
	return user, nil
}

func (a *Auth) Login(creds domain.Credentials) (string, error) {
	user, err := a.storage.UserByUsername(creds.Username)
	if err != nil {
		// A missing user and a wrong password must be indistinguishable.
		if internal_errors.Is[*internal_errors.NotFoundError](err) {
			return "", &internal_errors.UnauthorizedError{Reason: "wrong username or password"}
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(creds.Password)); err != nil {
		return "", &internal_errors.UnauthorizedError{Reason: "wrong username or password"}
	}

	return a.jwt.NewToken(user)
}
