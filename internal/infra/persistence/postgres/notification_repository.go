package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// unreadMessagePredicate must match the WHERE of idx_notifications_unread_message so that
// ON CONFLICT can infer the partial index.
const unreadMessagePredicate = "type = 'mensaje' AND is_read = false"

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

// CreateNotification persists a notification unconditionally.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		return translateNotificationError(err)
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// CreateMessageNotificationIfAbsent inserts with ON CONFLICT DO NOTHING against the partial unique index.
func (repo *notificationRepository) CreateMessageNotificationIfAbsent(ctx context.Context, notification *entity.Notification) (bool, error) {
	notificationM := fromNotificationDomain(notification)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:     []clause.Column{{Name: "user_id"}, {Name: "sender_id"}},
			TargetWhere: clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: unreadMessagePredicate}}},
			DoNothing:   true,
		}).
		Create(notificationM)
	if result.Error != nil {
		return false, translateNotificationError(result.Error)
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return true, nil
}

func (repo *notificationRepository) ExistsUnreadMessageNotification(ctx context.Context, recipientID, senderID uint) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND sender_id = ?", recipientID, senderID).
		Where(unreadMessagePredicate).
		Limit(1).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check message notification")
	}

	return count > 0, nil
}

func (repo *notificationRepository) FindNotificationByID(ctx context.Context, id uint) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// FindNotificationsByUser returns the recipient's notifications, newest first.
func (repo *notificationRepository) FindNotificationsByUser(ctx context.Context, userID uint) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by user")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

func (repo *notificationRepository) MarkNotificationAsRead(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Update("is_read", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification as read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

func (repo *notificationRepository) DeleteNotification(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.NotificationModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete notification")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

func (repo *notificationRepository) DeleteNotificationsByUser(ctx context.Context, userID uint) (int64, error) {
	result := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.NotificationModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete notifications by user")
	}

	return result.RowsAffected, nil
}

func translateNotificationError(err error) error {
	if isForeignKeyConstraintViolation(err) {
		return repository.ErrBuyerNotFound
	}
	if isNotNullConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WithDetails("missing required notification information")
	}

	return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
}

// --- Mapper Functions ---

func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	notification := &entity.Notification{
		ID:          data.ID,
		UserID:      data.UserID,
		Description: data.Description,
		Type:        entity.NotificationType(data.Type),
		SenderID:    data.SenderID,
		CreatedAt:   data.CreatedAt,
		IsRead:      data.IsRead,
	}
	if data.Title != nil {
		notification.Title = *data.Title
	}

	return notification
}

func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	notificationM := &model.NotificationModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Description: data.Description,
		Type:        string(data.Type),
		SenderID:    data.SenderID,
		CreatedAt:   data.CreatedAt,
		IsRead:      data.IsRead,
	}
	if data.Title != "" {
		title := data.Title
		notificationM.Title = &title
	}

	return notificationM
}
