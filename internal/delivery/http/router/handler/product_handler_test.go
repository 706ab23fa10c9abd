package handler

import (
	"context"
	"net/http"
	"testing"

	"favorites/internal/domain/entity"
	"favorites/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductHandler_BlueCoozie(t *testing.T) {
	env := newTestEnv(t)

	var created *entity.Product
	env.productRepo.EXPECT().Insert(mock.Anything, mock.AnythingOfType("*entity.Product")).
		RunAndReturn(func(_ context.Context, product *entity.Product) error {
			id := int64(1)
			created = product

			return product.SetID(&id)
		})

	rec := env.serve(t, http.MethodPost, "/api/product",
		`{"productProfileId":12,"productDescription":"blue coozie","productPrice":5.50}`,
		requestOptions{profileID: 12, xsrf: true})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":200,"message":"Product created OK"}`, rec.Body.String())
	require.NotNil(t, created)
	assert.Equal(t, "blue coozie", created.Description())
	assert.Equal(t, 5.5, created.Price())

	env.productRepo.EXPECT().FindByProfileID(mock.Anything, int64(12)).Return([]*entity.Product{created}, nil)

	rec = env.serve(t, http.MethodGet, "/api/product?productProfileId=12", "", requestOptions{})

	require.Equal(t, http.StatusOK, rec.Code)
	reply := decodeReply(t, rec)
	products, ok := reply["data"].([]any)
	require.True(t, ok)
	require.Len(t, products, 1)
	product := products[0].(map[string]any)
	assert.Equal(t, "blue coozie", product["productDescription"])
	assert.Equal(t, 5.5, product["productPrice"])
	assert.Equal(t, float64(12), product["productProfileId"])
	assert.Equal(t, float64(1), product["productId"])
}

func TestProductHandler_GetPrecedence(t *testing.T) {
	env := newTestEnv(t)
	product := newProduct(t, 3, 12, "blue coozie")

	env.productRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(product, nil)
	env.productRepo.EXPECT().FindByDescription(mock.Anything, "coozie").Return([]*entity.Product{product}, nil)
	env.productRepo.EXPECT().FindAll(mock.Anything).Return([]*entity.Product{}, nil)

	rec := env.serve(t, http.MethodGet, "/api/product?id=3&productDescription=ignored", "", requestOptions{})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "blue coozie", decodeReply(t, rec)["data"].(map[string]any)["productDescription"])

	rec = env.serve(t, http.MethodGet, "/api/product?productDescription=coozie", "", requestOptions{})
	assert.Len(t, decodeReply(t, rec)["data"], 1)

	rec = env.serve(t, http.MethodGet, "/api/product", "", requestOptions{})
	assert.JSONEq(t, `{"status":200}`, rec.Body.String())
}

func TestProductHandler_GetByPrice(t *testing.T) {
	env := newTestEnv(t)
	product := newProduct(t, 3, 12, "blue coozie")

	env.productRepo.EXPECT().FindByPrice(mock.Anything, 5.5).Return([]*entity.Product{product}, nil)

	rec := env.serve(t, http.MethodGet, "/api/product?productPrice=5.5", "", requestOptions{})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeReply(t, rec)["data"], 1)

	rec = env.serve(t, http.MethodGet, "/api/product?productPrice=cheap", "", requestOptions{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductHandler_GetMissingIDIsEmpty(t *testing.T) {
	env := newTestEnv(t)

	env.productRepo.EXPECT().FindByID(mock.Anything, int64(404)).Return(nil, repository.ErrProductNotFound)

	rec := env.serve(t, http.MethodGet, "/api/product?id=404", "", requestOptions{})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":200}`, rec.Body.String())
}

func TestProductHandler_CreateRejections(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name       string
		profileID  int64
		body       string
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "anonymous",
			body:       `{"productProfileId":12,"productDescription":"blue coozie","productPrice":5.5}`,
			wantStatus: http.StatusForbidden,
			wantMsg:    "you must be logged in to post products",
		},
		{
			name:       "missing description",
			profileID:  12,
			body:       `{"productProfileId":12,"productPrice":5.5}`,
			wantStatus: http.StatusMethodNotAllowed,
			wantMsg:    "No product description.",
		},
		{
			name:       "missing profile id",
			profileID:  12,
			body:       `{"productDescription":"blue coozie","productPrice":5.5}`,
			wantStatus: http.StatusMethodNotAllowed,
			wantMsg:    "No Profile ID.",
		},
		{
			name:       "missing price",
			profileID:  12,
			body:       `{"productProfileId":12,"productDescription":"blue coozie"}`,
			wantStatus: http.StatusMethodNotAllowed,
			wantMsg:    "No product price.",
		},
		{
			name:       "posting for someone else",
			profileID:  13,
			body:       `{"productProfileId":12,"productDescription":"blue coozie","productPrice":5.5}`,
			wantStatus: http.StatusForbidden,
			wantMsg:    "You are not allowed to post products for another profile",
		},
		{
			name:       "negative price",
			profileID:  12,
			body:       `{"productProfileId":12,"productDescription":"blue coozie","productPrice":-2}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.serve(t, http.MethodPost, "/api/product", tt.body, requestOptions{profileID: tt.profileID, xsrf: true})

			assert.Equal(t, tt.wantStatus, rec.Code)
			reply := decodeReply(t, rec)
			assert.Equal(t, float64(tt.wantStatus), reply["status"])
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, reply["message"])
			}
		})
	}
}

func TestProductHandler_UpdateByNonOwner(t *testing.T) {
	env := newTestEnv(t)

	env.productRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(newProduct(t, 3, 12, "blue coozie"), nil)

	rec := env.serve(t, http.MethodPut, "/api/product?id=3",
		`{"productDescription":"stolen coozie","productPrice":1}`,
		requestOptions{profileID: 13, xsrf: true})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"status":403,"message":"You are not allowed to edit this product"}`, rec.Body.String())
}

func TestProductHandler_UpdateByNonOwnerIgnoresBody(t *testing.T) {
	env := newTestEnv(t)

	env.productRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(newProduct(t, 3, 12, "blue coozie"), nil)

	rec := env.serve(t, http.MethodPut, "/api/product?id=3", `{}`, requestOptions{profileID: 13, xsrf: true})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"status":403,"message":"You are not allowed to edit this product"}`, rec.Body.String())
}

func TestProductHandler_UpdateMissingProduct(t *testing.T) {
	env := newTestEnv(t)

	env.productRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(nil, repository.ErrProductNotFound)

	rec := env.serve(t, http.MethodPut, "/api/product?id=3", `{}`, requestOptions{profileID: 12, xsrf: true})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"status":404,"message":"Product does not exist"}`, rec.Body.String())
}

func TestProductHandler_Update(t *testing.T) {
	env := newTestEnv(t)
	product := newProduct(t, 3, 12, "blue coozie")

	env.productRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(product, nil)
	env.productRepo.EXPECT().Update(mock.Anything, product).Return(nil)

	rec := env.serve(t, http.MethodPut, "/api/product?id=3",
		`{"productDescription":"red coozie","productPrice":6.25}`,
		requestOptions{profileID: 12, xsrf: true})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":200,"message":"Product updated OK"}`, rec.Body.String())
	assert.Equal(t, "red coozie", product.Description())
}

func TestProductHandler_DeleteByNonOwner(t *testing.T) {
	env := newTestEnv(t)

	env.productRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(newProduct(t, 3, 12, "blue coozie"), nil)

	rec := env.serve(t, http.MethodDelete, "/api/product?id=3", "", requestOptions{profileID: 13, xsrf: true})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"status":403,"message":"You are not allowed to delete this product"}`, rec.Body.String())
}

func TestProductHandler_DeleteMissing(t *testing.T) {
	env := newTestEnv(t)

	env.productRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(nil, repository.ErrProductNotFound)

	rec := env.serve(t, http.MethodDelete, "/api/product?id=3", "", requestOptions{profileID: 13, xsrf: true})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"status":404,"message":"Product does not exist"}`, rec.Body.String())
}
