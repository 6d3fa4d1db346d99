package service

import (
	"Minbar/internal/api/dto"
	"Minbar/internal/model"
	"Minbar/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

type TopicService interface {
	Create(ctx context.Context, req *dto.TopicCreateDTO) (*dto.TopicDTO, error)
	List(ctx context.Context, limit, offset int) (*dto.TopicListDTO, error)
	Get(ctx context.Context, id uint64) (*dto.TopicDTO, error)
	Patch(ctx context.Context, id uint64, req *dto.TopicPatchDTO) error
	Delete(ctx context.Context, id uint64) error
}

type topicServiceImpl struct {
	topicRepo repository.TopicRepo
}

func NewTopicService(topicRepo repository.TopicRepo) TopicService {
	return &topicServiceImpl{topicRepo: topicRepo}
}

func (s *topicServiceImpl) Create(ctx context.Context, req *dto.TopicCreateDTO) (*dto.TopicDTO, error) {
	topic := &model.Topic{
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := s.topicRepo.Create(ctx, topic); err != nil {
		return nil, err
	}
	return toTopicDTO(topic), nil
}

func (s *topicServiceImpl) List(ctx context.Context, limit, offset int) (*dto.TopicListDTO, error) {
	topics, total, err := s.topicRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.TopicDTO, 0, len(topics))
	for _, t := range topics {
		list = append(list, toTopicDTO(t))
	}
	return &dto.TopicListDTO{List: list, Total: total}, nil
}

func (s *topicServiceImpl) Get(ctx context.Context, id uint64) (*dto.TopicDTO, error) {
	topic, err := s.topicRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, ErrTopicNotFound
	}
	return toTopicDTO(topic), nil
}

// Patch applies the provided fields only; nil pointers leave their
// column alone.
func (s *topicServiceImpl) Patch(ctx context.Context, id uint64, req *dto.TopicPatchDTO) error {
	topic, err := s.topicRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if topic == nil {
		return ErrTopicNotFound
	}

	columns := map[string]interface{}{}
	if req.Name != nil {
		columns["name"] = *req.Name
	}
	if req.Description != nil {
		columns["description"] = *req.Description
	}
	if len(columns) == 0 {
		return ErrParamInvalid
	}
	columns["updated_at"] = time.Now()

	return s.topicRepo.UpdateColumns(ctx, id, columns)
}

func (s *topicServiceImpl) Delete(ctx context.Context, id uint64) error {
	topic, err := s.topicRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if topic == nil {
		return ErrTopicNotFound
	}
	return s.topicRepo.SoftDelete(ctx, id)
}

func toTopicDTO(topic *model.Topic) *dto.TopicDTO {
	item := &dto.TopicDTO{}
	_ = copier.Copy(item, topic)
	item.CreatedAt = topic.CreatedAt.Format("2006-01-02 15:04:05")
	return item
}
