package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"shopapi/models"
	"shopapi/service"
)

// productPayload is the mutable part of a product. Create and update both
// accept exactly these fields; anything else in the body is ignored.
type productPayload struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func respondProductError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}

func respondOrderError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}

// AdminController serves the administrative surface: full product CRUD plus
// order review and cancellation. The /admin prefix is a naming convention,
// not a security boundary; no actor identity is enforced anywhere.
type AdminController struct {
	Catalog *service.CatalogService
	Orders  *service.OrderService
}

func NewAdminController(catalog *service.CatalogService, orders *service.OrderService) *AdminController {
	return &AdminController{Catalog: catalog, Orders: orders}
}

// AddProduct godoc
// @Summary Add a new product
// @Description Adds a new product to the catalog.
// @Tags admin
// @Accept json
// @Produce json
// @Param product body models.Product true "Product fields"
// @Success 201 {object} models.Product
// @Router /admin/products [post]
func (a *AdminController) AddProduct(c *gin.Context) {
	var payload productPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := models.Product{
		Name:        payload.Name,
		Category:    payload.Category,
		Description: payload.Description,
		Price:       payload.Price,
		ImageURL:    payload.ImageURL,
	}
	if err := a.Catalog.AddProduct(c.Request.Context(), &product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding product"})
		return
	}
	c.JSON(http.StatusCreated, product)
}

// GetProducts godoc
// @Summary Get all products
// @Tags admin
// @Produce json
// @Success 200 {array} models.Product
// @Router /admin/products [get]
func (a *AdminController) GetProducts(c *gin.Context) {
	products, err := a.Catalog.ListProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProductByID godoc
// @Summary Get a single product by its ID
// @Tags admin
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Router /admin/products/{id} [get]
func (a *AdminController) GetProductByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	product, err := a.Catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondProductError(c, err, "Error fetching product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// UpdateProduct godoc
// @Summary Update a product by its ID
// @Description Full replace: fields omitted from the body are cleared.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body models.Product true "Product fields"
// @Success 200 {object} models.Product
// @Router /admin/products/{id} [put]
func (a *AdminController) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	var payload productPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := a.Catalog.UpdateProduct(c.Request.Context(), id, models.Product{
		Name:        payload.Name,
		Category:    payload.Category,
		Description: payload.Description,
		Price:       payload.Price,
		ImageURL:    payload.ImageURL,
	})
	if err != nil {
		respondProductError(c, err, "Error updating product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct godoc
// @Summary Delete a product by its ID
// @Tags admin
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} map[string]string
// @Router /admin/products/{id} [delete]
func (a *AdminController) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err := a.Catalog.DeleteProduct(c.Request.Context(), id); err != nil {
		respondProductError(c, err, "Error deleting product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

func (a *AdminController) GetOrders(c *gin.Context) {
	orders, err := a.Orders.ListOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (a *AdminController) GetOrderByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	order, err := a.Orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondOrderError(c, err, "Error fetching order")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (a *AdminController) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err := a.Orders.DeleteOrder(c.Request.Context(), id); err != nil {
		respondOrderError(c, err, "Error deleting order")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
