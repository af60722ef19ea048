package database

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/maxjung/warbler/internal/models"
)

// newTestDB opens a private in-memory sqlite database per test. The
// shared-cache DSN keeps gorm's connection pool pointed at the same
// database, and _foreign_keys=on makes the cascade constraints real.
func newTestDB(t *testing.T) *Database {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return NewDatabase(db)
}

func seedUser(t *testing.T, d *Database, username, email string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: "HASHED_PASSWORD",
		CreatedAt:    time.Now(),
	}
	if err := d.SaveUser(user); err != nil {
		t.Fatalf("failed to seed user %s: %v", username, err)
	}
	return user
}

func seedMessage(t *testing.T, d *Database, author *models.User, text string) *models.Message {
	t.Helper()

	message := &models.Message{
		UserID:    author.ID,
		Text:      text,
		CreatedAt: time.Now(),
	}
	if err := d.SaveMessage(message); err != nil {
		t.Fatalf("failed to seed message: %v", err)
	}
	return message
}
