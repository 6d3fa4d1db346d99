package repository

import (
	"Minbar/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type TopicRepo interface {
	Create(ctx context.Context, topic *model.Topic) error
	GetByID(ctx context.Context, id uint64) (*model.Topic, error)
	List(ctx context.Context, limit, offset int) ([]*model.Topic, int64, error)
	UpdateColumns(ctx context.Context, id uint64, columns map[string]interface{}) error
	SoftDelete(ctx context.Context, id uint64) error
}

type topicRepoImpl struct {
	db *gorm.DB
}

func NewTopicRepo(db *gorm.DB) TopicRepo {
	return &topicRepoImpl{db: db}
}

func (s *topicRepoImpl) Create(ctx context.Context, topic *model.Topic) error {
	return s.db.WithContext(ctx).Create(topic).Error
}

func (s *topicRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Topic, error) {
	var topic model.Topic
	err := s.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&topic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &topic, nil
}

func (s *topicRepoImpl) List(ctx context.Context, limit, offset int) ([]*model.Topic, int64, error) {
	var topics []*model.Topic
	var total int64

	base := s.db.WithContext(ctx).Model(&model.Topic{}).Where("is_deleted = ?", false)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.
		Order("name ASC").
		Limit(limit).Offset(offset).
		Find(&topics).Error
	return topics, total, err
}

func (s *topicRepoImpl) UpdateColumns(ctx context.Context, id uint64, columns map[string]interface{}) error {
	return s.db.WithContext(ctx).Model(&model.Topic{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(columns).Error
}

func (s *topicRepoImpl) SoftDelete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.Topic{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}
