package impl

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"go.uber.org/fx"
)

// publicationService implements the PublicationUsecase interface.
type publicationService struct {
	txManager       repository.TransactionManager
	publicationRepo repository.PublicationRepository
	sellerRepo      repository.SellerRepository
	buyerRepo       repository.BuyerRepository
	storage         service.MediaStorage
	cache           service.PublicationCache
	qrCode          service.QRCodeService
	cleaner         assetCleaner
	frontendURL     string
	logger          *slog.Logger
}

// PublicationServiceParams holds dependencies for PublicationService, injected by Fx.
type PublicationServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	PublicationRepo repository.PublicationRepository
	SellerRepo      repository.SellerRepository
	BuyerRepo       repository.BuyerRepository
	Storage         service.MediaStorage
	Cache           service.PublicationCache
	QRCode          service.QRCodeService
	Metrics         service.Metrics
	Config          *config.Config
	Logger          *slog.Logger
}

// NewPublicationService creates a new publication catalog service.
func NewPublicationService(params PublicationServiceParams) usecase.PublicationUsecase {
	return &publicationService{
		txManager:       params.TxManager,
		publicationRepo: params.PublicationRepo,
		sellerRepo:      params.SellerRepo,
		buyerRepo:       params.BuyerRepo,
		storage:         params.Storage,
		cache:           params.Cache,
		qrCode:          params.QRCode,
		cleaner:         assetCleaner{storage: params.Storage, metrics: params.Metrics},
		frontendURL:     strings.TrimRight(params.Config.Frontend.URL, "/"),
		logger:          params.Logger,
	}
}

func (srv *publicationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *publicationService) List(ctx context.Context) ([]*entity.Publication, error) {
	publications, err := srv.publicationRepo.FindAllPublications(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list publications")
	}

	return publications, nil
}

// ListPaginated returns one page of publications. Non-positive arguments fall back to the defaults.
func (srv *publicationService) ListPaginated(ctx context.Context, page, pageSize int) (*entity.PublicationPage, error) {
	if page < 1 {
		page = constants.DefaultPage
	}
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}

	rows, total, err := srv.publicationRepo.FindPublicationsPage(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list publications page")
	}

	return &entity.PublicationPage{
		Rows:        rows,
		TotalPages:  int(math.Ceil(float64(total) / float64(pageSize))),
		TotalItems:  total,
		CurrentPage: page,
	}, nil
}

func (srv *publicationService) Latest(ctx context.Context, limit int) ([]*entity.Publication, error) {
	if limit < 1 {
		limit = constants.DefaultLatestLimit
	}

	publications, err := srv.publicationRepo.FindLatestPublications(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list latest publications")
	}

	return publications, nil
}

// GetByID reads through the publication cache.
func (srv *publicationService) GetByID(ctx context.Context, id uint) (*entity.Publication, error) {
	cached, err := srv.cache.Get(ctx, id)
	if err != nil {
		srv.log(ctx).Warn("Publication cache read failed", slog.Uint64("publicationID", uint64(id)), slog.Any("error", err))
	}
	if cached != nil {
		return cached, nil
	}

	publication, err := findPublication(ctx, srv.publicationRepo, id)
	if err != nil {
		return nil, err
	}

	if err := srv.cache.Set(ctx, publication); err != nil {
		srv.log(ctx).Warn("Publication cache write failed", slog.Uint64("publicationID", uint64(id)), slog.Any("error", err))
	}

	return publication, nil
}

// SellerOfPublication resolves publication -> seller -> owning buyer.
func (srv *publicationService) SellerOfPublication(ctx context.Context, id uint) (*entity.Buyer, error) {
	publication, err := findPublication(ctx, srv.publicationRepo, id)
	if err != nil {
		return nil, err
	}

	seller, err := srv.sellerRepo.FindSellerByID(ctx, publication.SellerID)
	if err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			return nil, domainerrors.NewDataIntegrityError("seller", publication.SellerID)
		}

		return nil, errors.Wrap(err, "failed to find seller")
	}

	buyer, err := srv.buyerRepo.FindBuyerByID(ctx, seller.BuyerID)
	if err != nil {
		if errors.Is(err, repository.ErrBuyerNotFound) {
			return nil, domainerrors.NewDataIntegrityError("buyer", seller.BuyerID)
		}

		return nil, errors.Wrap(err, "failed to find seller account")
	}

	return buyer, nil
}

// Create stores a new publication, uploading its image first when one is supplied.
func (srv *publicationService) Create(ctx context.Context, input usecase.CreatePublicationInput, image *usecase.ImageUpload) (*entity.Publication, error) {
	publication := &entity.Publication{
		Title:         input.Title,
		Brand:         input.Brand,
		Price:         input.Price,
		State:         input.State,
		Sku:           input.Sku,
		CategoryID:    input.CategoryID,
		SubCategoryID: input.SubCategoryID,
		Description:   input.Description,
		ImageURL:      input.ImageURL,
		CityID:        input.CityID,
		SellerID:      input.SellerID,
	}

	var stored *service.StoredObject
	if image != nil {
		if err := validateImage(image); err != nil {
			return nil, err
		}

		uploaded, err := uploadImage(ctx, srv.storage, image, constants.FolderPublications)
		if err != nil {
			return nil, err
		}
		stored = uploaded
		publication.ImageURL = stored.SecureURL
	}

	if err := srv.publicationRepo.CreatePublication(ctx, publication); err != nil {
		if stored != nil {
			srv.cleaner.destroy(ctx, srv.log(ctx), stored.PublicID, "publication_create")
		}

		return nil, errors.Wrap(err, "failed to create publication")
	}

	srv.log(ctx).Info("Publication created", slog.Uint64("publicationID", uint64(publication.ID)), slog.Uint64("sellerID", uint64(publication.SellerID)))

	return publication, nil
}

// Update applies the non-nil fields of input.
func (srv *publicationService) Update(ctx context.Context, id uint, input usecase.UpdatePublicationInput) (*entity.Publication, error) {
	changes := repository.PublicationChanges{
		Title:         input.Title,
		Brand:         input.Brand,
		Price:         input.Price,
		State:         input.State,
		Sku:           input.Sku,
		Description:   input.Description,
		ImageURL:      input.ImageURL,
		CategoryID:    input.CategoryID,
		SubCategoryID: input.SubCategoryID,
		CityID:        input.CityID,
		SellerID:      input.SellerID,
	}

	affected, err := srv.publicationRepo.UpdatePublication(ctx, id, changes)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update publication")
	}
	if affected == 0 {
		return nil, errors.Wrap(domainerrors.ErrPublicationNotFound, "publication not found")
	}

	srv.evict(ctx, id)

	return findPublication(ctx, srv.publicationRepo, id)
}

// Delete removes the publication with its order lines, then its image.
func (srv *publicationService) Delete(ctx context.Context, id uint) error {
	var publication *entity.Publication

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		publicationRepo := repoFactory.NewPublicationRepository()

		found, err := findPublication(ctx, publicationRepo, id)
		if err != nil {
			return err
		}
		publication = found

		if _, err := repoFactory.NewOrderDetailRepository().DeleteOrderDetailsByPublication(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete order details")
		}

		if err := publicationRepo.DeletePublication(ctx, id); err != nil {
			if errors.Is(err, repository.ErrPublicationNotFound) {
				return errors.Wrap(domainerrors.ErrPublicationNotFound, "publication vanished during removal")
			}

			return errors.Wrap(err, "failed to delete publication")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete publication")
	}

	srv.evict(ctx, id)
	srv.cleaner.destroyURL(ctx, srv.log(ctx), publication.ImageURL, "publication_delete")

	srv.log(ctx).Info("Publication deleted", slog.Uint64("publicationID", uint64(id)))

	return nil
}

// ReplaceImage applies whitelisted form fields and swaps the stored image when one is supplied.
// Every field is validated before anything is uploaded.
func (srv *publicationService) ReplaceImage(ctx context.Context, id uint, fields map[string]string, image *usecase.ImageUpload) (*entity.Publication, error) {
	changes, err := parsePublicationFields(fields, image == nil)
	if err != nil {
		return nil, err
	}
	if image != nil {
		if err := validateImage(image); err != nil {
			return nil, err
		}
	}

	current, err := findPublication(ctx, srv.publicationRepo, id)
	if err != nil {
		return nil, err
	}

	var stored *service.StoredObject
	if image != nil {
		stored, err = uploadImage(ctx, srv.storage, image, constants.FolderPublicationsUploads)
		if err != nil {
			return nil, err
		}
		changes.ImageURL = &stored.SecureURL
	}

	affected, err := srv.publicationRepo.UpdatePublication(ctx, id, changes)
	if err == nil && affected == 0 {
		err = errors.Wrap(domainerrors.ErrPublicationNotFound, "publication not found")
	}
	if err != nil {
		if stored != nil {
			srv.cleaner.destroy(ctx, srv.log(ctx), stored.PublicID, "publication_image_rollback")
		}

		return nil, errors.Wrap(err, "failed to update publication image")
	}

	if stored != nil {
		srv.removeReplacedImage(ctx, current.ImageURL, stored.PublicID)
	}
	srv.evict(ctx, id)

	return findPublication(ctx, srv.publicationRepo, id)
}

// ShareQRCode renders a QR code linking to the publication page.
func (srv *publicationService) ShareQRCode(ctx context.Context, id uint) ([]byte, error) {
	if _, err := srv.GetByID(ctx, id); err != nil {
		return nil, err
	}

	link := srv.frontendURL + constants.PublicationSharePath + "/" + strconv.FormatUint(uint64(id), 10)

	png, err := srv.qrCode.GeneratePNG(link)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate publication QR code")
	}

	return png, nil
}

// removeReplacedImage deletes the previous asset unless it is the one just uploaded or lives elsewhere.
func (srv *publicationService) removeReplacedImage(ctx context.Context, oldURL, newPublicID string) {
	if oldURL == "" {
		return
	}

	oldPublicID, ok := srv.storage.PublicIDFromURL(oldURL)
	if !ok || oldPublicID == newPublicID {
		return
	}

	srv.cleaner.destroy(ctx, srv.log(ctx), oldPublicID, "publication_image_replace")
}

func (srv *publicationService) evict(ctx context.Context, id uint) {
	if err := srv.cache.Delete(ctx, id); err != nil {
		srv.log(ctx).Warn("Failed to evict publication from cache", slog.Uint64("publicationID", uint64(id)), slog.Any("error", err))
	}
}

func findPublication(ctx context.Context, publicationRepo repository.PublicationRepository, id uint) (*entity.Publication, error) {
	publication, err := publicationRepo.FindPublicationByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPublicationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPublicationNotFound, "publication not found")
		}

		return nil, errors.Wrap(err, "failed to find publication")
	}

	return publication, nil
}

// parsePublicationFields converts raw multipart fields into changes. Unknown keys and empty values are ignored.
// imageURL is honored only when no file accompanies the request.
func parsePublicationFields(fields map[string]string, allowImageURL bool) (repository.PublicationChanges, error) {
	var changes repository.PublicationChanges

	for key, raw := range fields {
		value := strings.TrimSpace(raw)
		if value == "" {
			continue
		}

		switch key {
		case "title":
			changes.Title = &value
		case "brand":
			changes.Brand = &value
		case "state":
			changes.State = &value
		case "description":
			changes.Description = &value
		case "sku":
			changes.Sku = &value
		case "imageUrl":
			if allowImageURL {
				changes.ImageURL = &value
			}
		case "price":
			price, err := strconv.ParseFloat(value, 64)
			if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
				return changes, domainerrors.ErrValidationFailed.WithDetails("price must be a number")
			}
			changes.Price = &price
		case "categoryId", "subCategoryId", "cityId", "sellerId":
			parsed, err := strconv.ParseUint(value, 10, 32)
			if err != nil {
				return changes, domainerrors.ErrValidationFailed.WithDetails(key + " must be a positive integer")
			}
			id := uint(parsed)
			switch key {
			case "categoryId":
				changes.CategoryID = &id
			case "subCategoryId":
				changes.SubCategoryID = &id
			case "cityId":
				changes.CityID = &id
			default:
				changes.SellerID = &id
			}
		}
	}

	return changes, nil
}
