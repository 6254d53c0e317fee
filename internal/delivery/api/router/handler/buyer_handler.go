package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BuyerHandlerParams holds dependencies for BuyerHandler, injected by Fx.
type BuyerHandlerParams struct {
	fx.In

	BuyerUC   usecase.BuyerUsecase
	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// BuyerHandler holds dependencies for buyer account handlers
type BuyerHandler struct {
	buyerUC   usecase.BuyerUsecase
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewBuyerHandler is the constructor for BuyerHandler
func NewBuyerHandler(params BuyerHandlerParams) *BuyerHandler {
	return &BuyerHandler{
		buyerUC:   params.BuyerUC,
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// RegisterBuyerRequest represents the request body for registering a buyer
type RegisterBuyerRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6,max=72"`
	Phone     string `json:"phone" validate:"max=30"`
	Address   string `json:"address" validate:"max=255"`
}

// UpdateBuyerRequest represents the request body for updating a buyer profile
type UpdateBuyerRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,max=30"`
	Address   *string `json:"address" validate:"omitempty,max=255"`
}

// Register handles POST /buyers
func (h *BuyerHandler) Register(c echo.Context) error {
	var req RegisterBuyerRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid buyer input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	buyer, err := h.buyerUC.Register(c.Request().Context(), usecase.RegisterBuyerInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, buyer)
}

// Get handles GET /buyers/:id
func (h *BuyerHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	buyer, err := h.buyerUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, buyer)
}

// Update handles PUT /buyers/:id
func (h *BuyerHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateBuyerRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid buyer input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	buyer, err := h.buyerUC.Update(c.Request().Context(), id, usecase.UpdateBuyerInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, buyer)
}

// UpdateAvatar handles PUT /buyers/:id/avatar (multipart field "avatar")
func (h *BuyerHandler) UpdateAvatar(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	image, closeFile, err := formImage(c, "avatar")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer closeFile()

	if image == nil {
		return response.HandleAppError(c, domainerrors.ErrImageRequired)
	}

	buyer, err := h.buyerUC.UpdateAvatar(c.Request().Context(), id, image)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, buyer)
}

// Delete handles DELETE /buyers/:id, removing the account with everything it owns
func (h *BuyerHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	buyer, err := h.accountUC.RemoveBuyerCascade(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, buyer)
}

// PromoteToSeller handles POST /buyers/:id/seller
func (h *BuyerHandler) PromoteToSeller(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	seller, err := h.accountUC.PromoteToSeller(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, seller)
}

// RemoveSeller handles DELETE /buyers/:id/seller; the buyer account stays
func (h *BuyerHandler) RemoveSeller(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	buyer, err := h.accountUC.RemoveSellerOnly(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, buyer)
}
