package services

import (
	"errors"
	"time"

	"github.com/maxjung/warbler/internal/database"
	"github.com/maxjung/warbler/internal/models"
	"github.com/maxjung/warbler/pkg/auth"
)

// ErrPasswordRequired is returned before any persistence attempt: a
// missing password is a programming error, not a constraint violation.
var ErrPasswordRequired = errors.New("password is required")

// AuthService is the credential store: it owns signup and password
// verification. It takes the database as an explicit dependency so it
// can be exercised without a running process.
type AuthService struct {
	db *database.Database
}

func NewAuthService(db *database.Database) *AuthService {
	return &AuthService{db: db}
}

// Signup hashes the password and writes the user optimistically; it
// does not pre-check username or email, the unique indexes reject
// duplicates at commit with gorm.ErrDuplicatedKey.
func (s *AuthService) Signup(username, email, password, imageURL string) (*models.User, error) {
	if password == "" {
		return nil, ErrPasswordRequired
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	if imageURL == "" {
		imageURL = models.DefaultImageURL
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		ImageURL:     imageURL,
		CreatedAt:    time.Now(),
	}

	if err := s.db.SaveUser(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate looks the user up by username and verifies the password.
// Unknown username and wrong password return the same (nil, false) so
// the caller cannot tell which part was wrong.
func (s *AuthService) Authenticate(username, password string) (*models.User, bool) {
	user, err := s.db.FindUserByUsername(username)
	if err != nil {
		return nil, false
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, false
	}

	return user, true
}
