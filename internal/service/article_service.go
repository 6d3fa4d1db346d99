package service

import (
	"Minbar/internal/api/dto"
	"Minbar/internal/model"
	"Minbar/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
)

type ArticleService interface {
	Create(ctx context.Context, req *dto.ArticleCreateDTO, cover *dto.FilePayload) (*dto.ArticleDTO, error)
	List(ctx context.Context, limit, offset int) (*dto.ArticleListDTO, error)
	Get(ctx context.Context, id uint64) (*dto.ArticleDTO, error)
	Patch(ctx context.Context, id uint64, req *dto.ArticlePatchDTO) error
	Delete(ctx context.Context, id uint64) error
	CoverKey(ctx context.Context, id uint64) (string, error)
}

type articleServiceImpl struct {
	articleRepo repository.ArticleRepo
}

func NewArticleService(articleRepo repository.ArticleRepo) ArticleService {
	return &articleServiceImpl{articleRepo: articleRepo}
}

func (s *articleServiceImpl) Create(ctx context.Context, req *dto.ArticleCreateDTO, cover *dto.FilePayload) (*dto.ArticleDTO, error) {
	article := &model.Article{
		Title:     req.Title,
		Slug:      req.Slug,
		Content:   req.Content,
		WriterID:  req.WriterID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if cover != nil {
		key, err := uploadMedia(ctx, "articles/cover", cover)
		if err != nil {
			return nil, err
		}
		article.CoverKey = key

		thumbKey, err := uploadThumbnail(ctx, "articles/cover", cover)
		if err != nil {
			log.WarnContext(ctx, "article thumbnail generation failed", "err", err)
		} else {
			article.ThumbKey = thumbKey
		}
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		if isDuplicateError(err) {
			return nil, ErrSlugExists
		}
		return nil, err
	}

	return toArticleDTO(article), nil
}

func (s *articleServiceImpl) List(ctx context.Context, limit, offset int) (*dto.ArticleListDTO, error) {
	articles, total, err := s.articleRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.ArticleDTO, 0, len(articles))
	for _, a := range articles {
		item := toArticleDTO(a)
		item.Content = ""
		list = append(list, item)
	}
	return &dto.ArticleListDTO{List: list, Total: total}, nil
}

func (s *articleServiceImpl) Get(ctx context.Context, id uint64) (*dto.ArticleDTO, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return toArticleDTO(article), nil
}

// Patch maps the typed patch struct onto a fixed column list. Nil
// fields never touch their column.
func (s *articleServiceImpl) Patch(ctx context.Context, id uint64, req *dto.ArticlePatchDTO) error {
	exists, err := s.articleRepo.ExistsActive(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrArticleNotFound
	}

	columns := map[string]interface{}{}
	if req.Title != nil {
		columns["title"] = *req.Title
	}
	if req.Slug != nil {
		columns["slug"] = *req.Slug
	}
	if req.Content != nil {
		columns["content"] = *req.Content
	}
	if req.WriterID != nil {
		columns["writer_id"] = *req.WriterID
	}
	if len(columns) == 0 {
		return ErrParamInvalid
	}
	columns["updated_at"] = time.Now()

	if err := s.articleRepo.UpdateColumns(ctx, id, columns); err != nil {
		if isDuplicateError(err) {
			return ErrSlugExists
		}
		return err
	}
	return nil
}

func (s *articleServiceImpl) Delete(ctx context.Context, id uint64) error {
	exists, err := s.articleRepo.ExistsActive(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrArticleNotFound
	}
	return s.articleRepo.SoftDelete(ctx, id)
}

func (s *articleServiceImpl) CoverKey(ctx context.Context, id uint64) (string, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if article == nil {
		return "", ErrArticleNotFound
	}
	if article.CoverKey == "" {
		return "", ErrFileNotFound
	}
	return article.CoverKey, nil
}

func toArticleDTO(article *model.Article) *dto.ArticleDTO {
	item := &dto.ArticleDTO{}
	_ = copier.Copy(item, article)
	if article.Writer != nil {
		item.WriterName = article.Writer.Name
	}
	item.CreatedAt = article.CreatedAt.Format("2006-01-02 15:04:05")
	item.UpdatedAt = article.UpdatedAt.Format("2006-01-02 15:04:05")
	return item
}
