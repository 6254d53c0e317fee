package impl

import (
	"context"
	"testing"

	"marketplace/config"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type buyerServiceFixtures struct {
	service      usecase.BuyerUsecase
	buyerRepo    *mockRepo.MockBuyerRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	emailSender  *mockSvc.MockEmailSender
	storage      *mockSvc.MockMediaStorage
	metrics      *mockSvc.MockMetrics
}

func createTestBuyerService(t *testing.T) buyerServiceFixtures {
	fx := buyerServiceFixtures{
		buyerRepo:    mockRepo.NewMockBuyerRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		emailSender:  mockSvc.NewMockEmailSender(t),
		storage:      mockSvc.NewMockMediaStorage(t),
		metrics:      mockSvc.NewMockMetrics(t),
	}

	fx.service = NewBuyerService(BuyerServiceParams{
		BuyerRepo:    fx.buyerRepo,
		Hasher:       fx.hasher,
		TokenService: fx.tokenService,
		EmailSender:  fx.emailSender,
		Storage:      fx.storage,
		Metrics:      fx.metrics,
		Config:       &config.Config{Frontend: config.FrontendConfig{URL: "https://shop.example"}},
		Logger:       newDiscardLogger(),
	})

	return fx
}

func TestBuyerService_Register(t *testing.T) {
	fx := createTestBuyerService(t)
	ctx := context.Background()

	fx.buyerRepo.EXPECT().FindBuyerByEmail(ctx, "ana@example.com").Return(nil, repository.ErrBuyerNotFound)
	fx.hasher.EXPECT().Hash("s3cret!").Return("hashed", nil)
	fx.buyerRepo.EXPECT().CreateBuyer(ctx, mock.AnythingOfType("*entity.Buyer")).
		RunAndReturn(func(_ context.Context, b *entity.Buyer) error {
			b.ID = 4

			return nil
		})

	buyer, err := fx.service.Register(ctx, usecase.RegisterBuyerInput{
		FirstName: "Ana",
		Email:     "  Ana@Example.com ",
		Password:  "s3cret!",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(4), buyer.ID)
	assert.Equal(t, "ana@example.com", buyer.Email)
	assert.Equal(t, "hashed", buyer.PasswordHash)
}

func TestBuyerService_Register_DuplicateEmail(t *testing.T) {
	tests := []struct {
		name  string
		setup func(ctx context.Context, fx buyerServiceFixtures)
	}{
		{
			name: "existing row",
			setup: func(ctx context.Context, fx buyerServiceFixtures) {
				fx.buyerRepo.EXPECT().FindBuyerByEmail(ctx, "ana@example.com").Return(&entity.Buyer{ID: 1}, nil)
			},
		},
		{
			name: "unique index",
			setup: func(ctx context.Context, fx buyerServiceFixtures) {
				fx.buyerRepo.EXPECT().FindBuyerByEmail(ctx, "ana@example.com").Return(nil, repository.ErrBuyerNotFound)
				fx.hasher.EXPECT().Hash("pw").Return("hashed", nil)
				fx.buyerRepo.EXPECT().CreateBuyer(ctx, mock.Anything).Return(repository.ErrBuyerEmailExists)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestBuyerService(t)
			ctx := context.Background()
			tt.setup(ctx, fx)

			_, err := fx.service.Register(ctx, usecase.RegisterBuyerInput{Email: "ana@example.com", Password: "pw"})

			assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
		})
	}
}

func TestBuyerService_Update_NotFound(t *testing.T) {
	fx := createTestBuyerService(t)
	ctx := context.Background()
	phone := "555-1234"

	fx.buyerRepo.EXPECT().UpdateBuyerProfile(ctx, uint(8), entity.BuyerProfile{Phone: &phone}).Return(repository.ErrBuyerNotFound)

	_, err := fx.service.Update(ctx, 8, usecase.UpdateBuyerInput{Phone: &phone})

	assert.ErrorIs(t, err, domainerrors.ErrBuyerNotFound)
}

func TestBuyerService_UpdateAvatar(t *testing.T) {
	fx := createTestBuyerService(t)
	ctx := context.Background()
	image := pngUpload(4096)
	oldAvatar := "https://res.cloudinary.com/demo/image/upload/v1/buyer_avatars/old.png"
	newAvatar := "https://res.cloudinary.com/demo/image/upload/v2/buyer_avatars/new.png"

	fx.buyerRepo.EXPECT().FindBuyerByID(ctx, uint(2)).Return(&entity.Buyer{ID: 2, AvatarURL: oldAvatar}, nil)
	fx.storage.EXPECT().Upload(ctx, image.Content, service.UploadOptions{
		Folder:       constants.FolderBuyerAvatars,
		ResourceType: constants.ResourceTypeImage,
	}).Return(&service.StoredObject{SecureURL: newAvatar, PublicID: "buyer_avatars/new"}, nil)
	fx.buyerRepo.EXPECT().UpdateBuyerProfile(ctx, uint(2), entity.BuyerProfile{AvatarURL: &newAvatar}).Return(nil)
	fx.storage.EXPECT().PublicIDFromURL(oldAvatar).Return("buyer_avatars/old", true)
	fx.storage.EXPECT().Destroy(ctx, "buyer_avatars/old", imageDestroyOpts).Return(nil)

	buyer, err := fx.service.UpdateAvatar(ctx, 2, image)

	require.NoError(t, err)
	assert.Equal(t, newAvatar, buyer.AvatarURL)
}

func TestBuyerService_UpdateAvatar_RequiresImage(t *testing.T) {
	fx := createTestBuyerService(t)

	_, err := fx.service.UpdateAvatar(context.Background(), 2, nil)

	assert.ErrorIs(t, err, domainerrors.ErrImageRequired)
}

func TestBuyerService_ForgotPassword(t *testing.T) {
	fx := createTestBuyerService(t)
	ctx := context.Background()

	fx.buyerRepo.EXPECT().FindBuyerByEmail(ctx, "ana@example.com").Return(&entity.Buyer{ID: 4, Email: "ana@example.com"}, nil)
	fx.tokenService.EXPECT().GenerateResetToken(uint(4), constants.PasswordResetTokenTTL).Return("tok.en", nil)

	var sentBody string
	fx.emailSender.EXPECT().Send(ctx, []string{"ana@example.com"}, "Recuperación de contraseña", mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, _ []string, _ string, body string) error {
			sentBody = body

			return nil
		})

	err := fx.service.ForgotPassword(ctx, "Ana@example.com")

	require.NoError(t, err)
	assert.Contains(t, sentBody, `href="https://shop.example/auth/reset-password?token=tok.en"`)
	assert.Contains(t, sentBody, "Restablecer contraseña")
	assert.Contains(t, sentBody, "1h0m")
}

func TestBuyerService_ForgotPassword_UnknownEmail(t *testing.T) {
	fx := createTestBuyerService(t)
	ctx := context.Background()

	fx.buyerRepo.EXPECT().FindBuyerByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrBuyerNotFound)

	err := fx.service.ForgotPassword(ctx, "ghost@example.com")

	assert.ErrorIs(t, err, domainerrors.ErrEmailNotRegistered)
}

func TestBuyerService_ForgotPassword_SendFailureIsUpstream(t *testing.T) {
	fx := createTestBuyerService(t)
	ctx := context.Background()

	fx.buyerRepo.EXPECT().FindBuyerByEmail(ctx, "ana@example.com").Return(&entity.Buyer{ID: 4, Email: "ana@example.com"}, nil)
	fx.tokenService.EXPECT().GenerateResetToken(uint(4), constants.PasswordResetTokenTTL).Return("tok", nil)
	fx.emailSender.EXPECT().Send(ctx, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp: 421"))

	err := fx.service.ForgotPassword(ctx, "ana@example.com")

	var upstream *domainerrors.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "email", upstream.Details())
}

func TestBuyerService_ResetPassword(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		setup   func(ctx context.Context, fx buyerServiceFixtures)
		wantErr error
	}{
		{
			name:    "missing token",
			token:   "",
			setup:   func(context.Context, buyerServiceFixtures) {},
			wantErr: domainerrors.ErrTokenMissing,
		},
		{
			name:  "invalid token",
			token: "bad",
			setup: func(_ context.Context, fx buyerServiceFixtures) {
				fx.tokenService.EXPECT().ValidateResetToken("bad").Return(nil, errors.New("signature is invalid"))
			},
			wantErr: domainerrors.ErrTokenInvalid,
		},
		{
			name:  "unknown buyer",
			token: "good",
			setup: func(ctx context.Context, fx buyerServiceFixtures) {
				fx.tokenService.EXPECT().ValidateResetToken("good").Return(&service.ResetClaims{BuyerID: 9}, nil)
				fx.buyerRepo.EXPECT().FindBuyerByID(ctx, uint(9)).Return(nil, repository.ErrBuyerNotFound)
			},
			wantErr: domainerrors.ErrBuyerNotFound,
		},
		{
			name:  "hash failure",
			token: "good",
			setup: func(ctx context.Context, fx buyerServiceFixtures) {
				fx.tokenService.EXPECT().ValidateResetToken("good").Return(&service.ResetClaims{BuyerID: 9}, nil)
				fx.buyerRepo.EXPECT().FindBuyerByID(ctx, uint(9)).Return(&entity.Buyer{ID: 9}, nil)
				fx.hasher.EXPECT().Hash("new-pass").Return("", errors.New("bcrypt: password too long"))
			},
			wantErr: domainerrors.ErrPasswordHashFailed,
		},
		{
			name:  "success",
			token: "good",
			setup: func(ctx context.Context, fx buyerServiceFixtures) {
				fx.tokenService.EXPECT().ValidateResetToken("good").Return(&service.ResetClaims{BuyerID: 9}, nil)
				fx.buyerRepo.EXPECT().FindBuyerByID(ctx, uint(9)).Return(&entity.Buyer{ID: 9}, nil)
				fx.hasher.EXPECT().Hash("new-pass").Return("hashed", nil)
				fx.buyerRepo.EXPECT().UpdateBuyerPassword(ctx, uint(9), "hashed").Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestBuyerService(t)
			ctx := context.Background()
			tt.setup(ctx, fx)

			err := fx.service.ResetPassword(ctx, tt.token, "new-pass")

			if tt.wantErr == nil {
				require.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
