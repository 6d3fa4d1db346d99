package service

import (
	"Minbar/internal/api/dto"
	"Minbar/internal/model"
	"Minbar/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

type QuestionService interface {
	Submit(ctx context.Context, req *dto.QuestionCreateDTO) (*dto.QuestionDTO, error)
	List(ctx context.Context, limit, offset int) (*dto.QuestionListDTO, error)
	Get(ctx context.Context, id uint64) (*dto.QuestionDTO, error)
	Answer(ctx context.Context, id uint64, req *dto.QuestionAnswerDTO) error
	Delete(ctx context.Context, id uint64) error
}

type questionServiceImpl struct {
	questionRepo repository.QuestionRepo
}

func NewQuestionService(questionRepo repository.QuestionRepo) QuestionService {
	return &questionServiceImpl{questionRepo: questionRepo}
}

func (s *questionServiceImpl) Submit(ctx context.Context, req *dto.QuestionCreateDTO) (*dto.QuestionDTO, error) {
	question := &model.Question{
		Name:      req.Name,
		Email:     req.Email,
		Text:      req.Text,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, err
	}
	return toQuestionDTO(question), nil
}

func (s *questionServiceImpl) List(ctx context.Context, limit, offset int) (*dto.QuestionListDTO, error) {
	questions, total, err := s.questionRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.QuestionDTO, 0, len(questions))
	for _, q := range questions {
		list = append(list, toQuestionDTO(q))
	}
	return &dto.QuestionListDTO{List: list, Total: total}, nil
}

func (s *questionServiceImpl) Get(ctx context.Context, id uint64) (*dto.QuestionDTO, error) {
	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}
	return toQuestionDTO(question), nil
}

// Answer stores the reply and stamps the moment it was given.
// Answering again overwrites the previous reply.
func (s *questionServiceImpl) Answer(ctx context.Context, id uint64, req *dto.QuestionAnswerDTO) error {
	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if question == nil {
		return ErrQuestionNotFound
	}

	now := time.Now()
	return s.questionRepo.UpdateColumns(ctx, id, map[string]interface{}{
		"answer":      req.Answer,
		"answered_at": now,
		"updated_at":  now,
	})
}

// Delete removes the row for good; reader questions carry personal
// data and are not worth keeping around soft-deleted.
func (s *questionServiceImpl) Delete(ctx context.Context, id uint64) error {
	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if question == nil {
		return ErrQuestionNotFound
	}
	return s.questionRepo.HardDelete(ctx, id)
}

func toQuestionDTO(question *model.Question) *dto.QuestionDTO {
	item := &dto.QuestionDTO{}
	_ = copier.Copy(item, question)
	item.CreatedAt = question.CreatedAt.Format("2006-01-02 15:04:05")
	if question.AnsweredAt != nil {
		item.AnsweredAt = question.AnsweredAt.Format("2006-01-02 15:04:05")
	}
	return item
}
