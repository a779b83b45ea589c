package httpserver

import (
	"net/http"
	"strconv"

	"bookstore-api/internal/domain"
	"github.com/gin-gonic/gin"
)

func listCategoriesHandler(catalog CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := catalog.Categories(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		if categories == nil {
			categories = []domain.Category{}
		}
		c.JSON(http.StatusOK, categories)
	}
}

func getCategoryByNameHandler(catalog CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cat, err := catalog.CategoryByName(c.Request.Context(), c.Param("name"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, cat)
	}
}

func listCategoryBooksHandler(catalog CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		cat, err := catalog.CategoryByName(ctx, c.Param("name"))
		if err != nil {
			writeError(c, err)
			return
		}
		books, err := catalog.BooksByCategory(ctx, cat.ID)
		if err != nil {
			writeError(c, err)
			return
		}
		if books == nil {
			books = []domain.Book{}
		}
		c.JSON(http.StatusOK, books)
	}
}

func suggestedBooksHandler(catalog CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		cat, err := catalog.CategoryByName(ctx, c.Param("name"))
		if err != nil {
			writeError(c, err)
			return
		}
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
		books, err := catalog.SuggestedBooks(ctx, cat.ID, limit)
		if err != nil {
			writeError(c, err)
			return
		}
		if books == nil {
			books = []domain.Book{}
		}
		c.JSON(http.StatusOK, books)
	}
}

func getBookHandler(catalog CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookID, err := strconv.ParseInt(c.Param("bookId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book id"})
			return
		}
		book, err := catalog.Book(c.Request.Context(), bookID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, book)
	}
}
