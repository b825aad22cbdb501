package services

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/courseatlas/backend/internal/logger"
	"github.com/courseatlas/backend/internal/platform/apierr"
	"github.com/courseatlas/backend/internal/store"
	"github.com/courseatlas/backend/internal/types"
)

type Welcome struct {
	Message                  string `json:"message"`
	UserName                 string `json:"user_name"`
	HasCompletedRegistration bool   `json:"has_completed_registration"`
}

type Registrations struct {
	UserName           string         `json:"user_name"`
	RegisteredCourses  []types.Course `json:"registered_courses"`
	RegistrationStatus string         `json:"registration_status"`
}

type UserService interface {
	Signup(name, email, password string) (*types.User, error)
	Login(email, password string) (*types.User, error)
	Welcome(uid string) (*Welcome, error)
	CompleteRegistration(uid string, courses []types.Course) (*Registrations, error)
	Registrations(uid string) (*Registrations, error)
	ClearRegistrations(uid string) (*Registrations, error)
}

type userService struct {
	log   *logger.Logger
	users *store.UserFileStore
}

func NewUserService(log *logger.Logger, users *store.UserFileStore) UserService {
	return &userService{
		log:   log.With("service", "UserService"),
		users: users,
	}
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func (s *userService) Signup(name, email, password string) (*types.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return nil, apierr.New(http.StatusBadRequest, "invalid_name", fmt.Errorf("name is required"))
	}
	if !emailPattern.MatchString(email) {
		return nil, apierr.New(http.StatusBadRequest, "invalid_email", fmt.Errorf("invalid email address"))
	}
	if len(password) < 6 {
		return nil, apierr.New(http.StatusBadRequest, "invalid_password", fmt.Errorf("password must be at least 6 characters"))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := types.User{
		UID:               uuid.New(),
		Name:              name,
		Email:             email,
		PasswordHash:      string(hash),
		RegisteredCourses: []types.Course{},
	}

	err = s.users.Update(func(users []types.User) ([]types.User, error) {
		for _, u := range users {
			if strings.EqualFold(u.Email, email) {
				return nil, apierr.New(http.StatusConflict, "email_exists", fmt.Errorf("email already registered"))
			}
		}
		return append(users, user), nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("User signed up", "uid", user.UID, "email", user.Email)
	return &user, nil
}

func (s *userService) Login(email, password string) (*types.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	users, err := s.users.Load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if !strings.EqualFold(users[i].Email, email) {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(users[i].PasswordHash), []byte(password)) == nil {
			return &users[i], nil
		}
		break
	}
	return nil, apierr.New(http.StatusUnauthorized, "invalid_credentials", fmt.Errorf("invalid email or password"))
}

func (s *userService) Welcome(uid string) (*Welcome, error) {
	user, err := s.findByUID(uid)
	if err != nil {
		return nil, err
	}
	return &Welcome{
		Message:                  fmt.Sprintf("Welcome, %s!", user.Name),
		UserName:                 user.Name,
		HasCompletedRegistration: user.HasCompletedRegistration,
	}, nil
}

func (s *userService) CompleteRegistration(uid string, courses []types.Course) (*Registrations, error) {
	var updated types.User
	err := s.updateUser(uid, func(u *types.User) {
		// Wholesale overwrite; there are no merge semantics.
		u.RegisteredCourses = courses
		u.HasCompletedRegistration = true
		updated = *u
	})
	if err != nil {
		return nil, err
	}
	return registrationsOf(&updated), nil
}

func (s *userService) Registrations(uid string) (*Registrations, error) {
	user, err := s.findByUID(uid)
	if err != nil {
		return nil, err
	}
	return registrationsOf(user), nil
}

func (s *userService) ClearRegistrations(uid string) (*Registrations, error) {
	var updated types.User
	err := s.updateUser(uid, func(u *types.User) {
		u.RegisteredCourses = []types.Course{}
		u.HasCompletedRegistration = false
		updated = *u
	})
	if err != nil {
		return nil, err
	}
	return registrationsOf(&updated), nil
}

func registrationsOf(u *types.User) *Registrations {
	status := "pending"
	if u.HasCompletedRegistration {
		status = "completed"
	}
	courses := u.RegisteredCourses
	if courses == nil {
		courses = []types.Course{}
	}
	return &Registrations{
		UserName:           u.Name,
		RegisteredCourses:  courses,
		RegistrationStatus: status,
	}
}

func (s *userService) findByUID(uid string) (*types.User, error) {
	users, err := s.users.Load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].UID.String() == uid {
			return &users[i], nil
		}
	}
	return nil, apierr.New(http.StatusNotFound, "user_not_found", fmt.Errorf("user %s not found", uid))
}

func (s *userService) updateUser(uid string, mutate func(u *types.User)) error {
	return s.users.Update(func(users []types.User) ([]types.User, error) {
		for i := range users {
			if users[i].UID.String() == uid {
				mutate(&users[i])
				return users, nil
			}
		}
		return nil, apierr.New(http.StatusNotFound, "user_not_found", fmt.Errorf("user %s not found", uid))
	})
}
