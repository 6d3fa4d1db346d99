package service

import (
	"Minbar/internal/api/dto"
	"Minbar/internal/model"
	"Minbar/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

type TagService interface {
	Create(ctx context.Context, req *dto.TagCreateDTO, cover *dto.FilePayload) (*dto.TagDTO, error)
	List(ctx context.Context) ([]*dto.TagDTO, error)
	Get(ctx context.Context, id uint64) (*dto.TagDTO, error)
	Patch(ctx context.Context, id uint64, req *dto.TagPatchDTO) error
	Delete(ctx context.Context, id uint64) error
	CoverKey(ctx context.Context, id uint64) (string, error)
}

type tagServiceImpl struct {
	tagRepo repository.TagRepo
}

func NewTagService(tagRepo repository.TagRepo) TagService {
	return &tagServiceImpl{tagRepo: tagRepo}
}

func (s *tagServiceImpl) Create(ctx context.Context, req *dto.TagCreateDTO, cover *dto.FilePayload) (*dto.TagDTO, error) {
	tag := &model.Tag{
		Name:      req.Name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if cover != nil {
		key, err := uploadMedia(ctx, "tags/cover", cover)
		if err != nil {
			return nil, err
		}
		tag.CoverKey = key
	}

	if err := s.tagRepo.Create(ctx, tag); err != nil {
		if isDuplicateError(err) {
			return nil, ErrTagExists
		}
		return nil, err
	}
	return toTagDTO(tag), nil
}

func (s *tagServiceImpl) List(ctx context.Context) ([]*dto.TagDTO, error) {
	tags, err := s.tagRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.TagDTO, 0, len(tags))
	for _, t := range tags {
		list = append(list, toTagDTO(t))
	}
	return list, nil
}

func (s *tagServiceImpl) Get(ctx context.Context, id uint64) (*dto.TagDTO, error) {
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, ErrTagNotFound
	}
	return toTagDTO(tag), nil
}

func (s *tagServiceImpl) Patch(ctx context.Context, id uint64, req *dto.TagPatchDTO) error {
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tag == nil {
		return ErrTagNotFound
	}

	columns := map[string]interface{}{}
	if req.Name != nil {
		columns["name"] = *req.Name
	}
	if len(columns) == 0 {
		return ErrParamInvalid
	}
	columns["updated_at"] = time.Now()

	if err := s.tagRepo.UpdateColumns(ctx, id, columns); err != nil {
		if isDuplicateError(err) {
			return ErrTagExists
		}
		return err
	}
	return nil
}

func (s *tagServiceImpl) Delete(ctx context.Context, id uint64) error {
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tag == nil {
		return ErrTagNotFound
	}
	return s.tagRepo.SoftDelete(ctx, id)
}

func (s *tagServiceImpl) CoverKey(ctx context.Context, id uint64) (string, error) {
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if tag == nil {
		return "", ErrTagNotFound
	}
	if tag.CoverKey == "" {
		return "", ErrFileNotFound
	}
	return tag.CoverKey, nil
}

func toTagDTO(tag *model.Tag) *dto.TagDTO {
	item := &dto.TagDTO{}
	_ = copier.Copy(item, tag)
	item.HasCover = tag.CoverKey != ""
	return item
}
