package services

import (
	"context"
	"errors"
	"strings"

	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
	"travelbook/internal/forms"
	"travelbook/internal/repositories"
	"travelbook/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

var ErrBadCredentials = domain.ValidationError{Msg: "Invalid username or password."}

type AuthService struct {
	Users      repositories.UserRepository
	RequestID  string
	Now        Clock
	BcryptCost int
}

func (s AuthService) cost() int {
	if s.BcryptCost > 0 {
		return s.BcryptCost
	}
	return bcrypt.DefaultCost
}

// Register validates the sign-up form and creates the account.
func (s AuthService) Register(ctx context.Context, f *forms.RegisterForm) (models.User, error) {
	errs := f.Validate()
	if !errs.Has("username") {
		taken, err := s.Users.UsernameTaken(ctx, f.Username)
		if err != nil {
			return models.User{}, domain.InternalError{Msg: "could not check username", Err: err}
		}
		if taken {
			errs.Add("username", "A user with that username already exists.")
		}
	}
	if !errs.Empty() {
		return models.User{}, errs.Err()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(f.Password1), s.cost())
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		errs.Add("password1", "Ensure this password has at most 72 bytes.")
		return models.User{}, errs.Err()
	}
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "could not hash password", Err: err}
	}
	first, last := utils.SplitFullName(f.FullName)
	u := models.User{
		Username:     f.Username,
		Email:        f.Email,
		FirstName:    first,
		LastName:     last,
		PasswordHash: string(hash),
		CreatedAt:    s.Now.now(),
	}
	if err := s.Users.Create(ctx, &u); err != nil {
		return models.User{}, domain.InternalError{Msg: "could not create account", Err: err}
	}
	utils.LogEvent(s.RequestID, "auth", "register", "user_id", u.ID)
	return u, nil
}

// Authenticate checks a username and password pair.
func (s AuthService) Authenticate(ctx context.Context, f *forms.LoginForm) (models.User, error) {
	if errs := f.Validate(); !errs.Empty() {
		return models.User{}, errs.Err()
	}
	u, err := s.Users.GetByUsername(ctx, f.Username)
	if err != nil {
		if domain.IsNotFound(err) {
			utils.LogEvent(s.RequestID, "auth", "login_failed", "reason", "unknown_user")
			return models.User{}, ErrBadCredentials
		}
		return models.User{}, domain.InternalError{Msg: "could not load user", Err: err}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(f.Password)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return models.User{}, domain.InternalError{Msg: "could not verify password", Err: err}
		}
		utils.LogEvent(s.RequestID, "auth", "login_failed", "user_id", u.ID)
		return models.User{}, ErrBadCredentials
	}
	utils.LogEvent(s.RequestID, "auth", "login", "user_id", u.ID)
	return u, nil
}

// CurrentUser loads the account behind a session user id.
func (s AuthService) CurrentUser(ctx context.Context, id int64) (domain.CurrentUser, error) {
	if id <= 0 {
		return domain.CurrentUser{}, domain.NotFoundError{Resource: "user"}
	}
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		return domain.CurrentUser{}, err
	}
	return ToCurrentUser(u), nil
}

func ToCurrentUser(u models.User) domain.CurrentUser {
	return domain.CurrentUser{
		ID:        domain.ID(u.ID),
		Username:  u.Username,
		Email:     strings.TrimSpace(u.Email),
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
