package notification

import (
	"errors"

	"github.com/DhavalSuthar-24/livescore/internal/common"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	CreateNotification(n *Notification) error
	GetNotificationByID(id uint) (*Notification, error)
	ListForUser(userID uint, unreadOnly bool, page, pageSize int) ([]Notification, int64, error)
	MarkRead(notificationID, userID uint) error
	MarkAllRead(userID uint) (int64, error)
	DeleteNotification(id uint) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) CreateNotification(n *Notification) error {
	return r.db.Omit("ReadBy").Create(n).Error
}

func (r *notificationRepository) GetNotificationByID(id uint) (*Notification, error) {
	var n Notification
	if err := r.db.First(&n, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

const readExists = "EXISTS (SELECT 1 FROM notification_reads nr WHERE nr.notification_id = notifications.id AND nr.user_id = ?)"

// ListForUser returns broadcasts plus userID's own notifications, newest first,
// with Read set for userID.
func (r *notificationRepository) ListForUser(userID uint, unreadOnly bool, page, pageSize int) ([]Notification, int64, error) {
	query := r.db.Model(&Notification{}).Where("user_id IS NULL OR user_id = ?", userID)
	if unreadOnly {
		query = query.Where("NOT "+readExists, userID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []Notification
	err := query.
		Select("notifications.*, "+readExists+" AS is_read", userID).
		Order("created_at desc, id desc").
		Offset(common.Offset(page, pageSize)).
		Limit(pageSize).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *notificationRepository) MarkRead(notificationID, userID uint) error {
	return r.db.Exec(
		"INSERT INTO notification_reads (notification_id, user_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
		notificationID, userID,
	).Error
}

func (r *notificationRepository) MarkAllRead(userID uint) (int64, error) {
	res := r.db.Exec(`INSERT INTO notification_reads (notification_id, user_id)
		SELECT id, ? FROM notifications
		WHERE deleted_at IS NULL AND (user_id IS NULL OR user_id = ?)
		ON CONFLICT DO NOTHING`, userID, userID)
	return res.RowsAffected, res.Error
}

func (r *notificationRepository) DeleteNotification(id uint) error {
	return r.db.Delete(&Notification{}, id).Error
}
