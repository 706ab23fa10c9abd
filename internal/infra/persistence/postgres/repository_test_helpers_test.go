package postgres

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"favorites/config"
	"favorites/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testSchema is the SQLite rendition of migrations/00001_create_favorites_schema.sql.
// Keys, uniqueness, checks and cascades match so constraint translation is exercised.
var testSchema = []string{
	`CREATE TABLE profile (
		profile_id        INTEGER PRIMARY KEY AUTOINCREMENT,
		profile_username  VARCHAR(32) NOT NULL,
		profile_location  VARCHAR(64) NOT NULL,
		profile_join_date DATETIME NOT NULL,
		profile_hash      VARCHAR(128),
		profile_salt      VARCHAR(64),
		CONSTRAINT profile_username_key UNIQUE (profile_username),
		CONSTRAINT profile_credentials_chk CHECK ((profile_hash IS NULL) = (profile_salt IS NULL))
	)`,
	`CREATE INDEX profile_location_idx ON profile (profile_location)`,
	`CREATE TABLE product (
		product_id          INTEGER PRIMARY KEY AUTOINCREMENT,
		product_profile_id  INTEGER NOT NULL REFERENCES profile (profile_id) ON DELETE CASCADE,
		product_description VARCHAR(1000) NOT NULL,
		product_price       NUMERIC(12, 2) NOT NULL CHECK (product_price > 0),
		product_post_date   DATETIME NOT NULL
	)`,
	`CREATE INDEX product_profile_id_idx ON product (product_profile_id)`,
	`CREATE TABLE favorite (
		favorite_profile_id INTEGER NOT NULL REFERENCES profile (profile_id) ON DELETE CASCADE,
		favorite_product_id INTEGER NOT NULL REFERENCES product (product_id) ON DELETE CASCADE,
		favorite_date       DATETIME NOT NULL,
		PRIMARY KEY (favorite_profile_id, favorite_product_id)
	)`,
	`CREATE INDEX favorite_product_id_idx ON favorite (favorite_product_id)`,
}

// newTestDB opens a private in-memory SQLite database carrying the service schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{}
	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 newGormSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	for _, stmt := range testSchema {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return db
}

func insertProfile(t *testing.T, repo *profileRepository, username string) *entity.Profile {
	t.Helper()

	profile, err := entity.NewProfile(nil, username, "Albuquerque", "2017-02-28")
	require.NoError(t, err)
	require.NoError(t, repo.Insert(t.Context(), profile))

	return profile
}

func insertProduct(t *testing.T, repo *productRepository, profileID int64, description string, price float64) *entity.Product {
	t.Helper()

	product, err := entity.NewProduct(nil, profileID, description, price, time.Date(2017, 3, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, repo.Insert(t.Context(), product))

	return product
}
