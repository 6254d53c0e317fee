package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"go.uber.org/fx"
)

// purchaseService implements the PurchaseUsecase interface.
type purchaseService struct {
	txManager     repository.TransactionManager
	notifications usecase.NotificationUsecase
	logger        *slog.Logger
	now           func() time.Time
}

// PurchaseServiceParams holds dependencies for PurchaseService, injected by Fx.
type PurchaseServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	Notifications usecase.NotificationUsecase
	Logger        *slog.Logger
}

// NewPurchaseService creates a new purchase service.
func NewPurchaseService(params PurchaseServiceParams) usecase.PurchaseUsecase {
	return &purchaseService{
		txManager:     params.TxManager,
		notifications: params.Notifications,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *purchaseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Complete records the order line, bumps the seller's sales and notifies both parties.
func (srv *purchaseService) Complete(ctx context.Context, input usecase.CompletePurchaseInput) (*entity.OrderDetail, error) {
	if input.Quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}

	var detail *entity.OrderDetail

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := findBuyer(ctx, repoFactory.NewBuyerRepository(), input.BuyerID); err != nil {
			return err
		}

		publication, err := findPublication(ctx, repoFactory.NewPublicationRepository(), input.PublicationID)
		if err != nil {
			return err
		}

		sellerRepo := repoFactory.NewSellerRepository()

		seller, err := sellerRepo.FindSellerByID(ctx, publication.SellerID)
		if err != nil {
			if errors.Is(err, repository.ErrSellerNotFound) {
				return domainerrors.NewDataIntegrityError("seller", publication.SellerID)
			}

			return errors.Wrap(err, "failed to find seller")
		}

		if seller.BuyerID == input.BuyerID {
			return domainerrors.ErrOwnPublicationPurchase
		}

		detail = &entity.OrderDetail{
			PublicationID: publication.ID,
			BuyerID:       input.BuyerID,
			Quantity:      input.Quantity,
			UnitPrice:     publication.Price,
			CreatedAt:     srv.now(),
		}
		if err := repoFactory.NewOrderDetailRepository().CreateOrderDetail(ctx, detail); err != nil {
			return errors.Wrap(err, "failed to create order detail")
		}

		if err := sellerRepo.IncrementSales(ctx, seller.ID, input.Quantity); err != nil {
			return errors.Wrap(err, "failed to increment seller sales")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to complete purchase")
	}

	srv.log(ctx).Info("Purchase completed",
		slog.Uint64("orderDetailID", uint64(detail.ID)),
		slog.Uint64("publicationID", uint64(input.PublicationID)),
		slog.Uint64("buyerID", uint64(input.BuyerID)),
	)

	if _, err := srv.notifications.OnPurchaseCompleted(ctx, input.BuyerID, input.PublicationID); err != nil {
		srv.log(ctx).Error("Failed to send purchase notifications", slog.Uint64("orderDetailID", uint64(detail.ID)), slog.Any("error", err))
	}

	return detail, nil
}
