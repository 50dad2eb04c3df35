package handlers

import (
	"errors"
	"net/http"

	request "arborlove_quote/internal/adapter/http/dto/request"
	response "arborlove_quote/internal/adapter/http/dto/response"
	"arborlove_quote/internal/usecase"
	"arborlove_quote/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for quotes and the quote form options.
type QuoteHandler struct {
	quotes  usecase.IQuoteUseCase
	options usecase.IQuoteOptionsUseCase
}

func NewQuoteHandler(quotes usecase.IQuoteUseCase, options usecase.IQuoteOptionsUseCase) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, options: options}
}

// CreateQuote godoc
// @Summary      Create a quote
// @Description  Prices every service line item, stores the quote and emails a confirmation.
// @Tags         quote
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreateQuoteRequest  true  "Quote request"
// @Success      201      {object}  response.CreateQuoteResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /quote/create [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	res, err := h.quotes.CreateQuote(c.Request.Context(), payload.ToClientDetails(), payload.ToServices())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCreatedQuote(res.Quote, res.Notified))
}

// GetQuote godoc
// @Summary  Get a quote by id
// @Tags     quote
// @Produce  json
// @Param    id   path      string  true  "Quote ID"
// @Success  200  {object}  response.QuoteResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /quote/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.quotes.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

// ListQuotes godoc
// @Summary  List every stored quote
// @Tags     quote
// @Produce  json
// @Success  200  {array}   response.QuoteResponse
// @Failure  500  {object}  pkg.HTTPError
// @Router   /quote/all [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.quotes.ListAll(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// DeleteAllQuotes godoc
// @Summary  Delete every stored quote
// @Tags     quote
// @Produce  json
// @Success  200  {object}  response.DeleteQuotesResponse
// @Failure  500  {object}  pkg.HTTPError
// @Router   /quote/all [delete]
func (h *QuoteHandler) DeleteAllQuotes(c *gin.Context) {
	n, err := h.quotes.DeleteAll(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDeletedQuotes(n))
}

// GetOptions godoc
// @Summary  Allowed values for every quote form field
// @Tags     quote
// @Produce  json
// @Success  200  {object}  map[string][]string
// @Failure  500  {object}  pkg.HTTPError
// @Router   /quote/options [get]
func (h *QuoteHandler) GetOptions(c *gin.Context) {
	opts, err := h.options.ListOptions(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, opts)
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrNoServices):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidServiceType):
		return pkg.NewDomainErrorSimple("INVALID_SERVICE_TYPE", "Service type must be Tree Trimming or Tree Removal", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
