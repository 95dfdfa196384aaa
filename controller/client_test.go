package controller_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrder(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/client/orders", gin.H{
		"firstName":   "John",
		"lastName":    "Doe",
		"email":       "john@x.com",
		"phoneNumber": "123",
		"city":        "NY",
		"address":     "1 Main St",
		"items":       []gin.H{{"productId": 1, "quantity": 2}},
		"totalPrice":  1999.98,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.NotZero(t, body["id"])
	assert.Equal(t, "John", body["firstName"])
	assert.Equal(t, "Doe", body["lastName"])
	assert.Equal(t, "john@x.com", body["email"])
	assert.Equal(t, "123", body["phoneNumber"])
	assert.Equal(t, "NY", body["city"])
	assert.Equal(t, "1 Main St", body["address"])
	assert.Equal(t, 1999.98, body["totalPrice"])
	assert.Equal(t, []interface{}{
		map[string]interface{}{"productId": float64(1), "quantity": float64(2)},
	}, body["items"])
}

func TestPlaceOrderMissingTotalPrice(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/client/orders", gin.H{
		"firstName":   "John",
		"lastName":    "Doe",
		"email":       "john@x.com",
		"phoneNumber": "123",
		"city":        "NY",
		"address":     "1 Main St",
		"items":       []gin.H{{"productId": 1, "quantity": 2}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]interface{}{"error": "All fields are required."}, decodeBody(t, w))
}

func TestPlaceOrderEmptyBody(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/client/orders", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]interface{}{"error": "All fields are required."}, decodeBody(t, w))
}

func TestClientCatalogBrowse(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/admin/products", gin.H{
		"name":  "Smartphone",
		"price": 799.99,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeBody(t, w)["id"].(float64)

	w = doJSON(t, router, http.MethodGet, "/client/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Smartphone", list[0]["name"])

	w = doJSON(t, router, http.MethodGet, "/client/products/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, decodeBody(t, w)["id"])

	w = doJSON(t, router, http.MethodGet, "/client/products/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, map[string]interface{}{"error": "Product not found"}, decodeBody(t, w))
}
