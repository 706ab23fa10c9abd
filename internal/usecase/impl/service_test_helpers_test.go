package impl

import (
	"io"
	"log/slog"
	"testing"

	"favorites/internal/domain/entity"

	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newStoredProfile(t *testing.T, id int64, username string) *entity.Profile {
	t.Helper()

	profile, err := entity.NewProfile(&id, username, "Albuquerque", "2017-02-28")
	require.NoError(t, err)

	return profile
}

func newStoredProduct(t *testing.T, id, profileID int64) *entity.Product {
	t.Helper()

	product, err := entity.NewProduct(&id, profileID, "blue coozie", 5.5, "2017-03-01")
	require.NoError(t, err)

	return product
}
