package routes

import (
	"arborlove_quote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuote  = "/quote"
	PathUpload = "/upload"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quote := rg.Group(PathQuote)
	{
		quote.GET("/options", quoteHandler.GetOptions)
		quote.GET("/all", quoteHandler.ListQuotes)
		quote.DELETE("/all", quoteHandler.DeleteAllQuotes)
		quote.POST("/create", quoteHandler.CreateQuote)
		quote.GET("/:id", quoteHandler.GetQuote)
	}
}

func addUploadRoutes(rg *gin.RouterGroup, uploadHandler *handlers.UploadHandler) {
	rg.POST(PathUpload, uploadHandler.UploadImage)
}
