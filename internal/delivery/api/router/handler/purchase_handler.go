package handler

import (
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PurchaseHandlerParams holds dependencies for PurchaseHandler, injected by Fx.
type PurchaseHandlerParams struct {
	fx.In

	PurchaseUC usecase.PurchaseUsecase
}

type PurchaseHandler struct {
	purchaseUC usecase.PurchaseUsecase
}

func NewPurchaseHandler(params PurchaseHandlerParams) *PurchaseHandler {
	return &PurchaseHandler{purchaseUC: params.PurchaseUC}
}

// CompletePurchaseRequest represents the request body for POST /purchases
type CompletePurchaseRequest struct {
	BuyerID       uint `json:"buyer_id" validate:"required"`
	PublicationID uint `json:"publication_id" validate:"required"`
	Quantity      int  `json:"quantity" validate:"required,min=1"`
}

// Complete handles POST /purchases
func (h *PurchaseHandler) Complete(c echo.Context) error {
	var req CompletePurchaseRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid purchase input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	detail, err := h.purchaseUC.Complete(c.Request().Context(), usecase.CompletePurchaseInput{
		BuyerID:       req.BuyerID,
		PublicationID: req.PublicationID,
		Quantity:      req.Quantity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, detail)
}
