package service

import (
	"Minbar/internal/api/dto"
	"Minbar/internal/model"
	"Minbar/internal/pkg/util"
	"Minbar/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

// QnaService manages the imported question/answer archive. Entries are
// append only; editing happens upstream in the source material.
type QnaService interface {
	Add(ctx context.Context, req *dto.QnaRecordCreateDTO) (*dto.QnaRecordDTO, error)
	List(ctx context.Context, limit, offset int) (*dto.QnaRecordListDTO, error)
}

type qnaServiceImpl struct {
	qnaRepo repository.QnaRepo
}

func NewQnaService(qnaRepo repository.QnaRepo) QnaService {
	return &qnaServiceImpl{qnaRepo: qnaRepo}
}

// Add validates at the service level too; archive rows also arrive
// from import tooling that bypasses the HTTP binding.
func (s *qnaServiceImpl) Add(ctx context.Context, req *dto.QnaRecordCreateDTO) (*dto.QnaRecordDTO, error) {
	if err := util.ValidateDTO(req); err != nil {
		return nil, ErrParamInvalid
	}

	record := &model.QnaRecord{
		Question:  req.Question,
		Answer:    req.Answer,
		Source:    req.Source,
		CreatedAt: time.Now(),
	}
	if err := s.qnaRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	return toQnaRecordDTO(record), nil
}

func (s *qnaServiceImpl) List(ctx context.Context, limit, offset int) (*dto.QnaRecordListDTO, error) {
	records, total, err := s.qnaRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.QnaRecordDTO, 0, len(records))
	for _, r := range records {
		list = append(list, toQnaRecordDTO(r))
	}
	return &dto.QnaRecordListDTO{List: list, Total: total}, nil
}

func toQnaRecordDTO(record *model.QnaRecord) *dto.QnaRecordDTO {
	item := &dto.QnaRecordDTO{}
	_ = copier.Copy(item, record)
	item.CreatedAt = record.CreatedAt.Format("2006-01-02 15:04:05")
	return item
}
