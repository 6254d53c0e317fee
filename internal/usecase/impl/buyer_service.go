package impl

import (
	"bytes"
	"context"
	"html/template"
	"log/slog"
	"net/url"
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
	"marketplace/internal/util"

	"go.uber.org/fx"
)

const passwordResetSubject = "Recuperación de contraseña"

//nolint:gochecknoglobals
var passwordResetTemplate = template.Must(template.New("password_reset").Parse(
	`<h2>Recuperación de contraseña</h2>
<p>Hola,</p>
<p>Recibimos una solicitud para restablecer tu contraseña.</p>
<p>Haz click en el siguiente enlace para crear una nueva contraseña:</p>
<p><a href="{{.Link}}">Restablecer contraseña</a></p>
<p>El enlace vence en {{.ExpiresIn}}.</p>
<p>Si no solicitaste el cambio, ignora este correo.</p>
<p>Saludos,<br>El equipo de CarpinChords</p>`))

// buyerService implements the BuyerUsecase interface.
type buyerService struct {
	buyerRepo    repository.BuyerRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	emailSender  service.EmailSender
	storage      service.MediaStorage
	cleaner      assetCleaner
	frontendURL  string
	logger       *slog.Logger
}

// BuyerServiceParams holds dependencies for BuyerService, injected by Fx.
type BuyerServiceParams struct {
	fx.In

	BuyerRepo    repository.BuyerRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	EmailSender  service.EmailSender
	Storage      service.MediaStorage
	Metrics      service.Metrics
	Config       *config.Config
	Logger       *slog.Logger
}

// NewBuyerService creates a new buyer account service.
func NewBuyerService(params BuyerServiceParams) usecase.BuyerUsecase {
	return &buyerService{
		buyerRepo:    params.BuyerRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		emailSender:  params.EmailSender,
		storage:      params.Storage,
		cleaner:      assetCleaner{storage: params.Storage, metrics: params.Metrics},
		frontendURL:  strings.TrimRight(params.Config.Frontend.URL, "/"),
		logger:       params.Logger,
	}
}

func (srv *buyerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a buyer account with a hashed password.
func (srv *buyerService) Register(ctx context.Context, input usecase.RegisterBuyerInput) (*entity.Buyer, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	_, err := srv.buyerRepo.FindBuyerByEmail(ctx, email)
	if err == nil {
		return nil, errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "email already registered")
	}
	if !errors.Is(err, repository.ErrBuyerNotFound) {
		return nil, errors.Wrap(err, "failed to check email")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password")
	}

	buyer := &entity.Buyer{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        email,
		PasswordHash: hash,
		Phone:        input.Phone,
		Address:      input.Address,
	}

	if err := srv.buyerRepo.CreateBuyer(ctx, buyer); err != nil {
		if errors.Is(err, repository.ErrBuyerEmailExists) {
			return nil, errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "email registered concurrently")
		}

		return nil, errors.Wrap(err, "failed to create buyer")
	}

	srv.log(ctx).Info("Buyer registered", slog.Uint64("buyerID", uint64(buyer.ID)))

	return buyer, nil
}

func (srv *buyerService) GetByID(ctx context.Context, id uint) (*entity.Buyer, error) {
	return findBuyer(ctx, srv.buyerRepo, id)
}

func (srv *buyerService) Update(ctx context.Context, id uint, input usecase.UpdateBuyerInput) (*entity.Buyer, error) {
	profile := entity.BuyerProfile{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Address:   input.Address,
	}

	if err := srv.updateProfile(ctx, id, profile); err != nil {
		return nil, err
	}

	return findBuyer(ctx, srv.buyerRepo, id)
}

// UpdateAvatar uploads a new avatar and removes the previous one.
func (srv *buyerService) UpdateAvatar(ctx context.Context, id uint, image *usecase.ImageUpload) (*entity.Buyer, error) {
	if err := validateImage(image); err != nil {
		return nil, err
	}

	buyer, err := findBuyer(ctx, srv.buyerRepo, id)
	if err != nil {
		return nil, err
	}

	stored, err := uploadImage(ctx, srv.storage, image, constants.FolderBuyerAvatars)
	if err != nil {
		return nil, err
	}

	if err := srv.updateProfile(ctx, id, entity.BuyerProfile{AvatarURL: &stored.SecureURL}); err != nil {
		srv.cleaner.destroy(ctx, srv.log(ctx), stored.PublicID, "avatar_rollback")

		return nil, err
	}

	if oldID, ok := srv.storage.PublicIDFromURL(buyer.AvatarURL); ok && oldID != stored.PublicID {
		srv.cleaner.destroy(ctx, srv.log(ctx), oldID, "avatar_replace")
	}

	buyer.AvatarURL = stored.SecureURL

	return buyer, nil
}

// ForgotPassword emails a reset link to a registered buyer.
func (srv *buyerService) ForgotPassword(ctx context.Context, email string) error {
	buyer, err := srv.buyerRepo.FindBuyerByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrBuyerNotFound) {
			return errors.Wrap(domainerrors.ErrEmailNotRegistered, "email not registered")
		}

		return errors.Wrap(err, "failed to find buyer by email")
	}

	token, err := srv.tokenService.GenerateResetToken(buyer.ID, constants.PasswordResetTokenTTL)
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	body, err := srv.renderResetEmail(token)
	if err != nil {
		return err
	}

	if err := srv.emailSender.Send(ctx, []string{buyer.Email}, passwordResetSubject, body); err != nil {
		srv.log(ctx).Error("Failed to send password reset email", slog.Uint64("buyerID", uint64(buyer.ID)), slog.Any("error", err))

		return domainerrors.NewUpstreamError(err, "email", "No se pudo enviar el email de recuperación")
	}

	srv.log(ctx).Info("Password reset email sent", slog.Uint64("buyerID", uint64(buyer.ID)))

	return nil
}

// ResetPassword replaces the password of the buyer named by token.
func (srv *buyerService) ResetPassword(ctx context.Context, token, password string) error {
	if token == "" {
		return domainerrors.ErrTokenMissing
	}

	claims, err := srv.tokenService.ValidateResetToken(token)
	if err != nil {
		srv.log(ctx).Warn("Rejected password reset token", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrTokenInvalid, "invalid reset token")
	}

	if _, err := findBuyer(ctx, srv.buyerRepo, claims.BuyerID); err != nil {
		return err
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash new password", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	if err := srv.buyerRepo.UpdateBuyerPassword(ctx, claims.BuyerID, hash); err != nil {
		if errors.Is(err, repository.ErrBuyerNotFound) {
			return errors.Wrap(domainerrors.ErrBuyerNotFound, "buyer not found")
		}

		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password reset", slog.Uint64("buyerID", uint64(claims.BuyerID)))

	return nil
}

func (srv *buyerService) updateProfile(ctx context.Context, id uint, profile entity.BuyerProfile) error {
	if err := srv.buyerRepo.UpdateBuyerProfile(ctx, id, profile); err != nil {
		if errors.Is(err, repository.ErrBuyerNotFound) {
			return errors.Wrap(domainerrors.ErrBuyerNotFound, "buyer not found")
		}

		return errors.Wrap(err, "failed to update buyer profile")
	}

	return nil
}

func (srv *buyerService) renderResetEmail(token string) (string, error) {
	link := srv.frontendURL + constants.PasswordResetPath + "?token=" + url.QueryEscape(token)

	var body bytes.Buffer
	if err := passwordResetTemplate.Execute(&body, struct {
		Link      string
		ExpiresIn string
	}{
		Link:      link,
		ExpiresIn: util.FormatDuration(constants.PasswordResetTokenTTL),
	}); err != nil {
		return "", errors.Wrap(err, "failed to render password reset email")
	}

	return body.String(), nil
}
