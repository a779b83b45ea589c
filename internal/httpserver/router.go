package httpserver

import (
	"context"
	"log"

	"bookstore-api/internal/domain"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps holds the services the router dispatches to.
type Deps struct {
	Orders  OrderService
	Catalog CatalogService
}

type OrderService interface {
	PlaceOrder(ctx context.Context, form domain.CustomerForm, cart domain.ShoppingCart) (int64, error)
	GetOrderDetails(ctx context.Context, orderID int64) (*domain.OrderDetails, error)
}

type CatalogService interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	CategoryByName(ctx context.Context, name string) (*domain.Category, error)
	Book(ctx context.Context, bookID int64) (*domain.Book, error)
	BooksByCategory(ctx context.Context, categoryID int64) ([]domain.Book, error)
	SuggestedBooks(ctx context.Context, categoryID int64, limit int) ([]domain.Book, error)
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	if len(corsOrigins) > 0 {
		cfg := cors.DefaultConfig()
		cfg.AllowOrigins = corsOrigins
		router.Use(cors.New(cfg))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.GET("/categories", listCategoriesHandler(deps.Catalog))
	router.GET("/categories/name/:name", getCategoryByNameHandler(deps.Catalog))
	router.GET("/categories/name/:name/books", listCategoryBooksHandler(deps.Catalog))
	router.GET("/categories/name/:name/suggested-books", suggestedBooksHandler(deps.Catalog))
	router.GET("/books/:bookId", getBookHandler(deps.Catalog))

	router.POST("/orders", placeOrderHandler(deps.Orders))
	router.GET("/orders/:orderId", getOrderHandler(deps.Orders))

	return router
}
