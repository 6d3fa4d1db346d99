package dto

// FatwaSubmitDTO is the public website question form. Submissions
// start in pending status.
type FatwaSubmitDTO struct {
	Title    string `json:"title" binding:"required,max=255"`
	Question string `json:"question" binding:"required"`
}

// FatwaCreateDTO is the dashboard create form, already answered.
type FatwaCreateDTO struct {
	Title     string  `json:"title" binding:"required,max=255"`
	Slug      string  `json:"slug" binding:"max=255"`
	Question  string  `json:"question" binding:"required"`
	Answer    string  `json:"answer" binding:"required"`
	ScholarID *uint64 `json:"scholar_id"`
}

type FatwaAnswerDTO struct {
	Answer    string  `json:"answer" binding:"required"`
	ScholarID *uint64 `json:"scholar_id"`
}

type FatwaPatchDTO struct {
	Title     *string `json:"title" binding:"omitempty,max=255"`
	Slug      *string `json:"slug" binding:"omitempty,max=255"`
	Question  *string `json:"question"`
	Answer    *string `json:"answer"`
	ScholarID *uint64 `json:"scholar_id"`
}

type FatwaDTO struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Question    string  `json:"question"`
	Answer      string  `json:"answer,omitempty"`
	ScholarID   *uint64 `json:"scholar_id,omitempty"`
	ScholarName string  `json:"scholar_name,omitempty"`
	Status      int8    `json:"status"`
	Likes       int64   `json:"likes"`
	Views       int64   `json:"views"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type FatwaListDTO struct {
	List  []*FatwaDTO `json:"list"`
	Total int64       `json:"total"`
}
