package dto

type ArticleCreateDTO struct {
	Title    string  `form:"title" binding:"required,max=255"`
	Slug     string  `form:"slug" binding:"required,max=255"`
	Content  string  `form:"content" binding:"required"`
	WriterID *uint64 `form:"writer_id"`
}

// ArticlePatchDTO carries a partial update. Nil pointers leave the
// column untouched.
type ArticlePatchDTO struct {
	Title    *string `json:"title" binding:"omitempty,max=255"`
	Slug     *string `json:"slug" binding:"omitempty,max=255"`
	Content  *string `json:"content"`
	WriterID *uint64 `json:"writer_id"`
}

type ArticleDTO struct {
	ID         uint64  `json:"id"`
	Title      string  `json:"title"`
	Slug       string  `json:"slug"`
	Content    string  `json:"content,omitempty"`
	WriterID   *uint64 `json:"writer_id,omitempty"`
	WriterName string  `json:"writer_name,omitempty"`
	Likes      int64   `json:"likes"`
	Views      int64   `json:"views"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

type ArticleListDTO struct {
	List  []*ArticleDTO `json:"list"`
	Total int64         `json:"total"`
}
