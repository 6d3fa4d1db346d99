package service

import (
	"Minbar/internal/api/dto"
	"Minbar/internal/model"
	"Minbar/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

type FatwaService interface {
	Submit(ctx context.Context, req *dto.FatwaSubmitDTO) (*dto.FatwaDTO, error)
	Create(ctx context.Context, req *dto.FatwaCreateDTO) (*dto.FatwaDTO, error)
	ListWebsite(ctx context.Context, limit, offset int) (*dto.FatwaListDTO, error)
	ListDashboard(ctx context.Context, limit, offset int) (*dto.FatwaListDTO, error)
	ListPending(ctx context.Context, limit, offset int) (*dto.FatwaListDTO, error)
	Search(ctx context.Context, term string, limit, offset int) (*dto.FatwaListDTO, error)
	Latest(ctx context.Context) ([]*dto.FatwaDTO, error)
	Get(ctx context.Context, id uint64) (*dto.FatwaDTO, error)
	Answer(ctx context.Context, id uint64, req *dto.FatwaAnswerDTO) error
	Patch(ctx context.Context, id uint64, req *dto.FatwaPatchDTO) error
	Delete(ctx context.Context, id uint64) error
}

const latestFatwaCount = 3

type fatwaServiceImpl struct {
	fatwaRepo repository.FatwaRepo
}

func NewFatwaService(fatwaRepo repository.FatwaRepo) FatwaService {
	return &fatwaServiceImpl{fatwaRepo: fatwaRepo}
}

// Submit records a public question. It stays pending and invisible to
// the website until a scholar answers it.
func (s *fatwaServiceImpl) Submit(ctx context.Context, req *dto.FatwaSubmitDTO) (*dto.FatwaDTO, error) {
	fatwa := &model.Fatwa{
		Title:     req.Title,
		Question:  req.Question,
		Status:    model.FatwaStatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.fatwaRepo.Create(ctx, fatwa); err != nil {
		return nil, err
	}
	return toFatwaDTO(fatwa), nil
}

func (s *fatwaServiceImpl) Create(ctx context.Context, req *dto.FatwaCreateDTO) (*dto.FatwaDTO, error) {
	fatwa := &model.Fatwa{
		Title:     req.Title,
		Slug:      req.Slug,
		Question:  req.Question,
		Answer:    req.Answer,
		ScholarID: req.ScholarID,
		Status:    model.FatwaStatusAnswered,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.fatwaRepo.Create(ctx, fatwa); err != nil {
		return nil, err
	}
	return toFatwaDTO(fatwa), nil
}

func (s *fatwaServiceImpl) ListWebsite(ctx context.Context, limit, offset int) (*dto.FatwaListDTO, error) {
	fatwas, total, err := s.fatwaRepo.ListAnswered(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toFatwaListDTO(fatwas, total), nil
}

func (s *fatwaServiceImpl) ListDashboard(ctx context.Context, limit, offset int) (*dto.FatwaListDTO, error) {
	fatwas, total, err := s.fatwaRepo.ListAll(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toFatwaListDTO(fatwas, total), nil
}

func (s *fatwaServiceImpl) ListPending(ctx context.Context, limit, offset int) (*dto.FatwaListDTO, error) {
	fatwas, total, err := s.fatwaRepo.ListPending(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toFatwaListDTO(fatwas, total), nil
}

func (s *fatwaServiceImpl) Search(ctx context.Context, term string, limit, offset int) (*dto.FatwaListDTO, error) {
	if term == "" {
		return nil, ErrParamInvalid
	}
	fatwas, total, err := s.fatwaRepo.Search(ctx, term, limit, offset)
	if err != nil {
		return nil, err
	}
	return toFatwaListDTO(fatwas, total), nil
}

func (s *fatwaServiceImpl) Latest(ctx context.Context) ([]*dto.FatwaDTO, error) {
	fatwas, err := s.fatwaRepo.Latest(ctx, latestFatwaCount)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.FatwaDTO, 0, len(fatwas))
	for _, f := range fatwas {
		list = append(list, toFatwaDTO(f))
	}
	return list, nil
}

func (s *fatwaServiceImpl) Get(ctx context.Context, id uint64) (*dto.FatwaDTO, error) {
	fatwa, err := s.fatwaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if fatwa == nil {
		return nil, ErrFatwaNotFound
	}
	return toFatwaDTO(fatwa), nil
}

// Answer marks a pending fatwa answered.
func (s *fatwaServiceImpl) Answer(ctx context.Context, id uint64, req *dto.FatwaAnswerDTO) error {
	fatwa, err := s.fatwaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if fatwa == nil {
		return ErrFatwaNotFound
	}

	columns := map[string]interface{}{
		"answer":     req.Answer,
		"status":     model.FatwaStatusAnswered,
		"updated_at": time.Now(),
	}
	if req.ScholarID != nil {
		columns["scholar_id"] = *req.ScholarID
	}
	return s.fatwaRepo.UpdateColumns(ctx, id, columns)
}

func (s *fatwaServiceImpl) Patch(ctx context.Context, id uint64, req *dto.FatwaPatchDTO) error {
	exists, err := s.fatwaRepo.ExistsActive(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrFatwaNotFound
	}

	columns := map[string]interface{}{}
	if req.Title != nil {
		columns["title"] = *req.Title
	}
	if req.Slug != nil {
		columns["slug"] = *req.Slug
	}
	if req.Question != nil {
		columns["question"] = *req.Question
	}
	if req.Answer != nil {
		columns["answer"] = *req.Answer
	}
	if req.ScholarID != nil {
		columns["scholar_id"] = *req.ScholarID
	}
	if len(columns) == 0 {
		return ErrParamInvalid
	}
	columns["updated_at"] = time.Now()

	return s.fatwaRepo.UpdateColumns(ctx, id, columns)
}

func (s *fatwaServiceImpl) Delete(ctx context.Context, id uint64) error {
	exists, err := s.fatwaRepo.ExistsActive(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrFatwaNotFound
	}
	return s.fatwaRepo.SoftDelete(ctx, id)
}

func toFatwaDTO(fatwa *model.Fatwa) *dto.FatwaDTO {
	item := &dto.FatwaDTO{}
	_ = copier.Copy(item, fatwa)
	if fatwa.Scholar != nil {
		item.ScholarName = fatwa.Scholar.Name
	}
	item.CreatedAt = fatwa.CreatedAt.Format("2006-01-02 15:04:05")
	item.UpdatedAt = fatwa.UpdatedAt.Format("2006-01-02 15:04:05")
	return item
}

func toFatwaListDTO(fatwas []*model.Fatwa, total int64) *dto.FatwaListDTO {
	list := make([]*dto.FatwaDTO, 0, len(fatwas))
	for _, f := range fatwas {
		list = append(list, toFatwaDTO(f))
	}
	return &dto.FatwaListDTO{List: list, Total: total}
}
