package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/vietanh2810/pos-api/docs"
	v1 "github.com/vietanh2810/pos-api/internal/api/handler/v1"
	"github.com/vietanh2810/pos-api/internal/api/middleware"
	"github.com/vietanh2810/pos-api/internal/config"
	"github.com/vietanh2810/pos-api/internal/repository"
	"github.com/vietanh2810/pos-api/internal/repository/dao"
	"github.com/vietanh2810/pos-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db)
	productHandler := s.initProductHandler(db)
	saleHandler := s.initSaleHandler(db)
	s.MountHandlers(authHandler, userHandler, productHandler, saleHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initProductHandler(db *gorm.DB) *v1.ProductHandler {
	svc := s.initInventoryService(db)
	handler := v1.NewProductHandler(svc)

	return handler
}

func (s *Server) initSaleHandler(db *gorm.DB) *v1.SaleHandler {
	svc := s.initInventoryService(db)
	handler := v1.NewSaleHandler(svc)

	return handler
}

func (s *Server) initInventoryService(db *gorm.DB) *service.InventoryService {
	productRepo := repository.NewProductRepository(dao.NewProductDAO(db))
	saleRepo := repository.NewSaleRepository(dao.NewSaleDAO(db))

	return service.NewInventoryService(productRepo, saleRepo)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, userHandler *v1.UserHandler, productHandler *v1.ProductHandler, saleHandler *v1.SaleHandler) {
	const basePath = "/api/v1"

	// Legacy wire contract kept for existing clients.
	s.Router.GET("/products", productHandler.HandleListProductRows)
	s.Router.GET("/sales", saleHandler.HandleListSaleRows)
	s.Router.POST("/sale", saleHandler.HandleRecordSale)

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	catalog := s.Router.Group(basePath)
	{
		catalog.GET("/products", productHandler.HandleListProducts)
		catalog.GET("/products/:productID", productHandler.HandleGetProduct)
		catalog.GET("/sales", saleHandler.HandleListSales)
	}

	protected := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		protected.GET("/users/:userID", userHandler.HandleGetUser)
		protected.POST("/products", productHandler.HandleCreateProduct)
		protected.PUT("/products/:productID", productHandler.HandleUpdateProduct)
		protected.DELETE("/products/:productID", productHandler.HandleDeleteProduct)
		protected.POST("/sales", saleHandler.HandleCreateSale)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Retail POS API"
	docs.SwaggerInfo.Description = "Product catalog and sales ledger for a single-store POS."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
