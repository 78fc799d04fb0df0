package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/pos-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/pos-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/pos-api/internal/service"
)

type SaleHandler struct {
	svc InventoryService
}

func NewSaleHandler(svc InventoryService) *SaleHandler {
	return &SaleHandler{
		svc: svc,
	}
}

// HandleListSales godoc
// @Summary      List all recorded sales
// @Tags         sales
// @Produce      json
// @Success      200  {array}   domain.Sale
// @Failure      500  {object}  response.Err
// @Router       /sales [get]
func (h *SaleHandler) HandleListSales(ctx *gin.Context) {
	sales, err := h.svc.ListSales(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListSales -> h.svc.ListSales -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, sales)
}

// HandleCreateSale godoc
// @Summary      Sell a quantity of a product
// @Description  Atomically decrements stock and appends the sale. The total is
// @Description  computed from the stored catalog price.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateSaleRequest  true  "sale details"
// @Success      201    {object}  domain.Sale
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /sales [post]
// @Security     BearerAuth
func (h *SaleHandler) HandleCreateSale(ctx *gin.Context) {
	var input request.CreateSaleRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	sale, err := h.svc.Sell(ctx.Request.Context(), input.ProductID, input.Quantity)
	if err != nil {
		h.renderSellErr(ctx, input.ProductID, err)
		return
	}

	ctx.JSON(http.StatusCreated, sale)
}

// HandleListSaleRows godoc
// @Summary      List sales as legacy rows
// @Description  Returns [id, product_id, quantity, total_price] rows, the original wire format.
// @Tags         legacy
// @Produce      json
// @Success      200  {array}   []interface{}
// @Failure      500  {object}  response.Err
// @Router       /sales [get]
func (h *SaleHandler) HandleListSaleRows(ctx *gin.Context) {
	sales, err := h.svc.ListSales(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListSaleRows -> h.svc.ListSales -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	rows := make([][]interface{}, len(sales))
	for i, s := range sales {
		rows[i] = []interface{}{s.ID, s.ProductID, s.Quantity, s.TotalPrice}
	}

	ctx.JSON(http.StatusOK, rows)
}

// HandleRecordSale godoc
// @Summary      Record a sale (legacy endpoint)
// @Description  Accepts the original body shape. A caller-supplied total_price
// @Description  is ignored; the total is computed server-side.
// @Tags         legacy
// @Accept       json
// @Produce      json
// @Param        input  body      request.RecordSaleRequest  true  "sale details"
// @Success      200    {object}  response.SaleRecordedResponse
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /sale [post]
func (h *SaleHandler) HandleRecordSale(ctx *gin.Context) {
	var input request.RecordSaleRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if _, err := h.svc.Sell(ctx.Request.Context(), input.ProductID, input.Quantity); err != nil {
		h.renderSellErr(ctx, input.ProductID, err)
		return
	}

	ctx.JSON(http.StatusOK, response.SaleRecordedResponse{Message: "Sale recorded."})
}

func (h *SaleHandler) renderSellErr(ctx *gin.Context, productID uint, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		response.RenderErr(ctx, response.ErrNotFound("product", "ID", productID))
	case errors.Is(err, service.ErrInsufficientStock):
		response.RenderErr(ctx, response.ErrConflict(service.ErrInsufficientStock))
	case errors.Is(err, service.ErrInvalidQuantity):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidQuantity))
	default:
		err = fmt.Errorf("v1.renderSellErr -> h.svc.Sell -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}
