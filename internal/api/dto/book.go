package dto

type BookCreateDTO struct {
	Title       string `form:"title" binding:"required,max=255"`
	Author      string `form:"author" binding:"max=255"`
	Description string `form:"description"`
}

type BookPatchDTO struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Author      *string `json:"author" binding:"omitempty,max=255"`
	Description *string `json:"description"`
}

type BookDTO struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	HasCover    bool   `json:"has_cover"`
	HasPdf      bool   `json:"has_pdf"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type BookListDTO struct {
	List  []*BookDTO `json:"list"`
	Total int64      `json:"total"`
}
