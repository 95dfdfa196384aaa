package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopapi/service"
)

// ClientController serves the storefront surface: read-only catalog browsing
// and order placement.
type ClientController struct {
	Catalog *service.CatalogService
	Orders  *service.OrderService
}

func NewClientController(catalog *service.CatalogService, orders *service.OrderService) *ClientController {
	return &ClientController{Catalog: catalog, Orders: orders}
}

// GetAllProducts godoc
// @Summary Get all products
// @Tags client
// @Produce json
// @Success 200 {array} models.Product
// @Router /client/products [get]
func (cc *ClientController) GetAllProducts(c *gin.Context) {
	products, err := cc.Catalog.ListProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct godoc
// @Summary Get a product by its ID
// @Tags client
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Router /client/products/{id} [get]
func (cc *ClientController) GetProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	product, err := cc.Catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondProductError(c, err, "Error fetching product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateOrder godoc
// @Summary Place a new order
// @Description All fields are required; items and totalPrice are stored as submitted.
// @Tags client
// @Accept json
// @Produce json
// @Param order body service.CreateOrderInput true "Order fields"
// @Success 201 {object} models.Order
// @Router /client/orders [post]
func (cc *ClientController) CreateOrder(c *gin.Context) {
	var input service.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := cc.Orders.CreateOrder(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrAllFieldsRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required."})
			return
		}
		log.Printf("Error placing order: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error placing order"})
		return
	}
	c.JSON(http.StatusCreated, order)
}
