package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Liziwinc/web-larek-frontend/internal/domain"
	"github.com/Liziwinc/web-larek-frontend/internal/repository"
	"github.com/Liziwinc/web-larek-frontend/internal/service"
)

type Server struct {
	engine *gin.Engine
	shop   *service.ShopService
}

func NewServer(shop *service.ShopService) *Server {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	s := &Server{engine: r, shop: shop}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.engine.Group("/api/v1")
	{
		v1.GET("/product", s.listProducts)
		v1.GET("/product/:id", s.getProduct)
		v1.POST("/order", s.createOrder)
		v1.GET("/order/:id", s.getOrder)
	}
}

type productListResp struct {
	Total int              `json:"total"`
	Items []domain.Product `json:"items"`
}

// @Summary List products
// @Tags product
// @Produce json
// @Param q query string false "Title contains"
// @Param category query string false "Category"
// @Success 200 {object} productListResp
// @Router /product [get]
func (s *Server) listProducts(c *gin.Context) {
	f := repository.ProductFilter{
		TitleSubstring: c.Query("q"),
		Category:       c.Query("category"),
	}
	list, err := s.shop.Catalog(c, f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, productListResp{Total: len(list), Items: list})
}

// @Summary Get product by id
// @Tags product
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 404 {object} map[string]string
// @Router /product/{id} [get]
func (s *Server) getProduct(c *gin.Context) {
	p, err := s.shop.Product(c, c.Param("id"))
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary Place order
// @Tags order
// @Accept json
// @Produce json
// @Param input body domain.OrderRequest true "Order"
// @Success 201 {object} domain.OrderResult
// @Failure 400 {object} map[string]string
// @Router /order [post]
func (s *Server) createOrder(c *gin.Context) {
	var req domain.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	o, err := s.shop.AcceptOrder(c, req)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, domain.OrderResult{ID: o.ID, Total: o.Total})
}

// @Summary Get order by id
// @Tags order
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} domain.Order
// @Failure 404 {object} map[string]string
// @Router /order/{id} [get]
func (s *Server) getOrder(c *gin.Context) {
	o, err := s.shop.Order(c, c.Param("id"))
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, o)
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrUnknownItem),
		errors.Is(err, service.ErrPricelessItem),
		errors.Is(err, service.ErrTotalMismatch):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
