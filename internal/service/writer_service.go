package service

import (
	"Minbar/internal/api/dto"
	"Minbar/internal/model"
	"Minbar/internal/pkg/minio"
	"Minbar/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
)

type WriterService interface {
	Create(ctx context.Context, req *dto.WriterCreateDTO, photo *dto.FilePayload) (*dto.WriterDTO, error)
	List(ctx context.Context) ([]*dto.WriterDTO, error)
	Get(ctx context.Context, id uint64) (*dto.WriterDTO, error)
	Patch(ctx context.Context, id uint64, req *dto.WriterPatchDTO) error
	Delete(ctx context.Context, id uint64) error
	PhotoKey(ctx context.Context, id uint64) (string, error)
}

type writerServiceImpl struct {
	writerRepo repository.WriterRepo
}

func NewWriterService(writerRepo repository.WriterRepo) WriterService {
	return &writerServiceImpl{writerRepo: writerRepo}
}

func (s *writerServiceImpl) Create(ctx context.Context, req *dto.WriterCreateDTO, photo *dto.FilePayload) (*dto.WriterDTO, error) {
	writer := &model.Writer{
		Name:      req.Name,
		Bio:       req.Bio,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if photo != nil {
		key, err := uploadMedia(ctx, "writers/photo", photo)
		if err != nil {
			return nil, err
		}
		writer.PhotoKey = key
	}

	if err := s.writerRepo.Create(ctx, writer); err != nil {
		return nil, err
	}
	return toWriterDTO(writer), nil
}

func (s *writerServiceImpl) List(ctx context.Context) ([]*dto.WriterDTO, error) {
	writers, err := s.writerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.WriterDTO, 0, len(writers))
	for _, w := range writers {
		list = append(list, toWriterDTO(w))
	}
	return list, nil
}

func (s *writerServiceImpl) Get(ctx context.Context, id uint64) (*dto.WriterDTO, error) {
	writer, err := s.writerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if writer == nil {
		return nil, ErrWriterNotFound
	}
	return toWriterDTO(writer), nil
}

func (s *writerServiceImpl) Patch(ctx context.Context, id uint64, req *dto.WriterPatchDTO) error {
	writer, err := s.writerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if writer == nil {
		return ErrWriterNotFound
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

	return s.writerRepo.UpdateColumns(ctx, id, columns)
}

// Delete removes the writer row physically, then cleans up the photo
// object in the background.
func (s *writerServiceImpl) Delete(ctx context.Context, id uint64) error {
	writer, err := s.writerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if writer == nil {
		return ErrWriterNotFound
	}

	if err := s.writerRepo.HardDelete(ctx, id); err != nil {
		return err
	}

	if writer.PhotoKey != "" {
		go func(key string) {
			if err := minio.DeleteFile(context.Background(), key); err != nil {
				log.Warn("failed to remove writer photo", "key", key, "err", err)
			}
		}(writer.PhotoKey)
	}
	return nil
}

func (s *writerServiceImpl) PhotoKey(ctx context.Context, id uint64) (string, error) {
	writer, err := s.writerRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if writer == nil {
		return "", ErrWriterNotFound
	}
	if writer.PhotoKey == "" {
		return "", ErrFileNotFound
	}
	return writer.PhotoKey, nil
}

func toWriterDTO(writer *model.Writer) *dto.WriterDTO {
	item := &dto.WriterDTO{}
	_ = copier.Copy(item, writer)
	item.HasPhoto = writer.PhotoKey != ""
	item.CreatedAt = writer.CreatedAt.Format("2006-01-02 15:04:05")
	return item
}
