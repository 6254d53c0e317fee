package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager repository.TransactionManager
	cache     service.PublicationCache
	cleaner   assetCleaner
	logger    *slog.Logger
	now       func() time.Time
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Storage   service.MediaStorage
	Cache     service.PublicationCache
	Metrics   service.Metrics
	Logger    *slog.Logger
}

// NewAccountService creates a new account lifecycle service.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager: params.TxManager,
		cache:     params.Cache,
		cleaner:   assetCleaner{storage: params.Storage, metrics: params.Metrics},
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PromoteToSeller attaches a seller profile to an existing buyer.
func (srv *accountService) PromoteToSeller(ctx context.Context, buyerID uint) (*entity.Seller, error) {
	var seller *entity.Seller

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := findBuyer(ctx, repoFactory.NewBuyerRepository(), buyerID); err != nil {
			return err
		}

		sellerRepo := repoFactory.NewSellerRepository()

		_, err := sellerRepo.FindSellerByBuyerID(ctx, buyerID)
		if err == nil {
			return errors.Wrap(domainerrors.ErrSellerAlreadyExists, "buyer already owns a seller profile")
		}
		if !errors.Is(err, repository.ErrSellerNotFound) {
			return errors.Wrap(err, "failed to find seller")
		}

		newSeller := &entity.Seller{
			BuyerID:          buyerID,
			RegistrationDate: srv.now(),
			QuantitySales:    0,
		}
		if err := sellerRepo.CreateSeller(ctx, newSeller); err != nil {
			if errors.Is(err, repository.ErrSellerAlreadyExists) {
				return errors.Wrap(domainerrors.ErrSellerAlreadyExists, "seller created concurrently")
			}

			return errors.Wrap(err, "failed to create seller")
		}
		seller = newSeller

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to promote buyer to seller")
	}

	srv.log(ctx).Info("Buyer promoted to seller", slog.Uint64("buyerID", uint64(buyerID)), slog.Uint64("sellerID", uint64(seller.ID)))

	return seller, nil
}

// RemoveBuyerCascade deletes a buyer and every record that depends on it in a single transaction.
func (srv *accountService) RemoveBuyerCascade(ctx context.Context, buyerID uint) (*entity.Buyer, error) {
	var (
		buyer        *entity.Buyer
		publications []*entity.Publication
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findBuyer(ctx, repoFactory.NewBuyerRepository(), buyerID)
		if err != nil {
			return err
		}
		buyer = found

		publications, err = srv.removeSellerProfile(ctx, repoFactory, buyerID)
		if err != nil && !errors.Is(err, repository.ErrSellerNotFound) {
			return err
		}

		if err := srv.removeConversations(ctx, repoFactory, buyerID); err != nil {
			return err
		}

		if _, err := repoFactory.NewNotificationRepository().DeleteNotificationsByUser(ctx, buyerID); err != nil {
			return errors.Wrap(err, "failed to delete notifications")
		}

		if _, err := repoFactory.NewOrderDetailRepository().DeleteOrderDetailsByBuyer(ctx, buyerID); err != nil {
			return errors.Wrap(err, "failed to delete purchases")
		}

		if err := repoFactory.NewBuyerRepository().DeleteBuyer(ctx, buyerID); err != nil {
			if errors.Is(err, repository.ErrBuyerNotFound) {
				return errors.Wrap(domainerrors.ErrBuyerNotFound, "buyer vanished during removal")
			}

			return errors.Wrap(err, "failed to delete buyer")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Buyer removal rolled back", slog.Uint64("buyerID", uint64(buyerID)), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to remove buyer")
	}

	srv.afterPublicationsRemoved(ctx, publications, "buyer_delete")
	srv.cleaner.destroyURL(ctx, srv.log(ctx), buyer.AvatarURL, "buyer_delete")

	srv.log(ctx).Info("Buyer removed",
		slog.Uint64("buyerID", uint64(buyerID)),
		slog.Int("publications", len(publications)),
	)

	return buyer, nil
}

// RemoveSellerOnly deletes the seller profile with its publications and keeps the buyer account.
func (srv *accountService) RemoveSellerOnly(ctx context.Context, buyerID uint) (*entity.Buyer, error) {
	var (
		buyer        *entity.Buyer
		publications []*entity.Publication
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findBuyer(ctx, repoFactory.NewBuyerRepository(), buyerID)
		if err != nil {
			return err
		}
		buyer = found

		publications, err = srv.removeSellerProfile(ctx, repoFactory, buyerID)
		if errors.Is(err, repository.ErrSellerNotFound) {
			return errors.Wrap(domainerrors.ErrSellerNotFound, "buyer has no seller profile")
		}

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to remove seller")
	}

	srv.afterPublicationsRemoved(ctx, publications, "seller_delete")

	srv.log(ctx).Info("Seller profile removed", slog.Uint64("buyerID", uint64(buyerID)), slog.Int("publications", len(publications)))

	return buyer, nil
}

// removeSellerProfile deletes order details, publications and the seller row owned by buyerID.
// It returns repository.ErrSellerNotFound untouched when the buyer never became a seller.
func (srv *accountService) removeSellerProfile(ctx context.Context, repoFactory repository.RepositoryFactory, buyerID uint) ([]*entity.Publication, error) {
	sellerRepo := repoFactory.NewSellerRepository()
	publicationRepo := repoFactory.NewPublicationRepository()
	orderDetailRepo := repoFactory.NewOrderDetailRepository()

	seller, err := sellerRepo.FindSellerByBuyerID(ctx, buyerID)
	if err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to find seller")
	}

	publications, err := publicationRepo.FindPublicationsBySeller(ctx, seller.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller publications")
	}

	for _, publication := range publications {
		if _, err := orderDetailRepo.DeleteOrderDetailsByPublication(ctx, publication.ID); err != nil {
			return nil, errors.Wrapf(err, "failed to delete order details of publication %d", publication.ID)
		}
	}

	if _, err := publicationRepo.DeletePublicationsBySeller(ctx, seller.ID); err != nil {
		return nil, errors.Wrap(err, "failed to delete seller publications")
	}

	if err := sellerRepo.DeleteSeller(ctx, seller.ID); err != nil {
		return nil, errors.Wrap(err, "failed to delete seller")
	}

	return publications, nil
}

// removeConversations deletes the buyer's messages and every chat the buyer takes part in.
func (srv *accountService) removeConversations(ctx context.Context, repoFactory repository.RepositoryFactory, buyerID uint) error {
	chatRepo := repoFactory.NewChatRepository()
	messageRepo := repoFactory.NewMessageRepository()

	chats, err := chatRepo.FindChatsByParticipant(ctx, buyerID)
	if err != nil {
		return errors.Wrap(err, "failed to list chats")
	}

	if _, err := messageRepo.DeleteMessagesBySender(ctx, buyerID); err != nil {
		return errors.Wrap(err, "failed to delete sent messages")
	}

	chatIDs := make([]uint, 0, len(chats))
	for _, chat := range chats {
		chatIDs = append(chatIDs, chat.ID)
	}

	if _, err := messageRepo.DeleteMessagesByChats(ctx, chatIDs); err != nil {
		return errors.Wrap(err, "failed to delete chat messages")
	}

	if _, err := chatRepo.DeleteChatsByParticipant(ctx, buyerID); err != nil {
		return errors.Wrap(err, "failed to delete chats")
	}

	return nil
}

func (srv *accountService) afterPublicationsRemoved(ctx context.Context, publications []*entity.Publication, operation string) {
	logger := srv.log(ctx)

	for _, publication := range publications {
		if err := srv.cache.Delete(ctx, publication.ID); err != nil {
			logger.Warn("Failed to evict publication from cache", slog.Uint64("publicationID", uint64(publication.ID)), slog.Any("error", err))
		}
		srv.cleaner.destroyURL(ctx, logger, publication.ImageURL, operation)
	}
}

// findBuyer maps a missing buyer to the domain NotFound error.
func findBuyer(ctx context.Context, buyerRepo repository.BuyerRepository, buyerID uint) (*entity.Buyer, error) {
	buyer, err := buyerRepo.FindBuyerByID(ctx, buyerID)
	if err != nil {
		if errors.Is(err, repository.ErrBuyerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBuyerNotFound, "buyer not found")
		}

		return nil, errors.Wrap(err, "failed to find buyer")
	}

	return buyer, nil
}
