package handlers

import (
	"net/http"

	response "takaful_quote/internal/adapter/http/dto/response"
	"takaful_quote/internal/domain/entities"
	"takaful_quote/internal/usecase"
	"takaful_quote/pkg/logger"

	"github.com/gin-gonic/gin"
)

// QuoteHandler serves read access to persisted quotes.
type QuoteHandler struct {
	drafts usecase.IDraftUseCase
}

func NewQuoteHandler(drafts usecase.IDraftUseCase) *QuoteHandler {
	return &QuoteHandler{drafts: drafts}
}

// GetQuote godoc
// @Summary      Get a quote by id
// @Tags         quotes
// @Produce      json
// @Param        id  path  string  true  "Quote id"
// @Success      200  {object}  response.QuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.drafts.Load(c.Request.Context(), c.Param("id"))
	h.write(c, q, err)
}

// GetQuoteByReference godoc
// @Summary      Get a quote by its reference
// @Tags         quotes
// @Produce      json
// @Param        reference  path  string  true  "Quote reference"
// @Success      200  {object}  response.QuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/reference/{reference} [get]
func (h *QuoteHandler) GetQuoteByReference(c *gin.Context) {
	q, err := h.drafts.LoadByReference(c.Request.Context(), c.Param("reference"))
	h.write(c, q, err)
}

func (h *QuoteHandler) write(c *gin.Context, q entities.QuoteRequest, err error) {
	if err != nil {
		appErr := mapError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			logger.For("quote", "handler").Error().Err(err).Str("path", c.Request.URL.Path).Msg("load failed")
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}
