package dto

type QuestionCreateDTO struct {
	Name  string `json:"name" binding:"max=255"`
	Email string `json:"email" binding:"omitempty,email"`
	Text  string `json:"text" binding:"required"`
}

type QuestionAnswerDTO struct {
	Answer string `json:"answer" binding:"required"`
}

type QuestionListDTO struct {
	List  []*QuestionDTO `json:"list"`
	Total int64          `json:"total"`
}

type QuestionDTO struct {
	ID         uint64  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Text       string  `json:"text"`
	Answer     *string `json:"answer,omitempty"`
	AnsweredAt string  `json:"answered_at,omitempty"`
	CreatedAt  string  `json:"created_at"`
}
