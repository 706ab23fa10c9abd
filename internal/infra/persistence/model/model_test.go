package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestModels_ParseWithoutRelationships(t *testing.T) {
	cache := &sync.Map{}

	for _, m := range []any{&ProfileModel{}, &ProductModel{}, &FavoriteModel{}} {
		s, err := schema.Parse(m, cache, schema.NamingStrategy{})
		require.NoError(t, err)
		assert.Empty(t, s.Relationships.Relations, s.Table)
		assert.NotEmpty(t, s.PrimaryFields, s.Table)
	}
}

func TestModels_ColumnNames(t *testing.T) {
	cache := &sync.Map{}

	product, err := schema.Parse(&ProductModel{}, cache, schema.NamingStrategy{})
	require.NoError(t, err)
	assert.Equal(t, "product", product.Table)
	assert.NotNil(t, product.LookUpField("product_profile_id"))
	assert.Nil(t, product.LookUpField("profile_id"))

	favorite, err := schema.Parse(&FavoriteModel{}, cache, schema.NamingStrategy{})
	require.NoError(t, err)
	require.Len(t, favorite.PrimaryFields, 2)
	assert.Equal(t, "favorite_profile_id", favorite.PrimaryFields[0].DBName)
	assert.Equal(t, "favorite_product_id", favorite.PrimaryFields[1].DBName)
}
