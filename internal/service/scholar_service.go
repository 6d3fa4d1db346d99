package service

import (
	"Minbar/internal/api/dto"
	"Minbar/internal/model"
	"Minbar/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

type ScholarService interface {
	Create(ctx context.Context, req *dto.ScholarCreateDTO, portrait *dto.FilePayload) (*dto.ScholarDTO, error)
	List(ctx context.Context) ([]*dto.ScholarDTO, error)
	Get(ctx context.Context, id uint64) (*dto.ScholarDTO, error)
	Patch(ctx context.Context, id uint64, req *dto.ScholarPatchDTO) error
	Delete(ctx context.Context, id uint64) error
	PortraitKey(ctx context.Context, id uint64) (string, error)
}

type scholarServiceImpl struct {
	scholarRepo repository.ScholarRepo
}

func NewScholarService(scholarRepo repository.ScholarRepo) ScholarService {
	return &scholarServiceImpl{scholarRepo: scholarRepo}
}

func (s *scholarServiceImpl) Create(ctx context.Context, req *dto.ScholarCreateDTO, portrait *dto.FilePayload) (*dto.ScholarDTO, error) {
	scholar := &model.Scholar{
		Name:      req.Name,
		Bio:       req.Bio,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if portrait != nil {
		key, err := uploadMedia(ctx, "scholars/portrait", portrait)
		if err != nil {
			return nil, err
		}
		scholar.PortraitKey = key
	}

	if err := s.scholarRepo.Create(ctx, scholar); err != nil {
		return nil, err
	}
	return toScholarDTO(scholar), nil
}

func (s *scholarServiceImpl) List(ctx context.Context) ([]*dto.ScholarDTO, error) {
	scholars, err := s.scholarRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.ScholarDTO, 0, len(scholars))
	for _, sc := range scholars {
		list = append(list, toScholarDTO(sc))
	}
	return list, nil
}

func (s *scholarServiceImpl) Get(ctx context.Context, id uint64) (*dto.ScholarDTO, error) {
	scholar, err := s.scholarRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if scholar == nil {
		return nil, ErrScholarNotFound
	}
	return toScholarDTO(scholar), nil
}

func (s *scholarServiceImpl) Patch(ctx context.Context, id uint64, req *dto.ScholarPatchDTO) error {
	scholar, err := s.scholarRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if scholar == nil {
		return ErrScholarNotFound
	}

	columns := map[string]interface{}{}
	if req.Name != nil {
		columns["name"] = *req.Name
	}
	if req.Bio != nil {
		columns["bio"] = *req.Bio
	}
	if len(columns) == 0 {
		return ErrParamInvalid
	}
	columns["updated_at"] = time.Now()

	return s.scholarRepo.UpdateColumns(ctx, id, columns)
}

func (s *scholarServiceImpl) Delete(ctx context.Context, id uint64) error {
	scholar, err := s.scholarRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if scholar == nil {
		return ErrScholarNotFound
	}
	return s.scholarRepo.SoftDelete(ctx, id)
}

func (s *scholarServiceImpl) PortraitKey(ctx context.Context, id uint64) (string, error) {
	scholar, err := s.scholarRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if scholar == nil {
		return "", ErrScholarNotFound
	}
	if scholar.PortraitKey == "" {
		return "", ErrFileNotFound
	}
	return scholar.PortraitKey, nil
}

func toScholarDTO(scholar *model.Scholar) *dto.ScholarDTO {
	item := &dto.ScholarDTO{}
	_ = copier.Copy(item, scholar)
	item.HasPortrait = scholar.PortraitKey != ""
	item.CreatedAt = scholar.CreatedAt.Format("2006-01-02 15:04:05")
	return item
}
