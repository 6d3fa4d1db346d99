package dto

type TopicCreateDTO struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
}

type TopicPatchDTO struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Description *string `json:"description"`
}

type TopicDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

type TopicListDTO struct {
	List  []*TopicDTO `json:"list"`
	Total int64       `json:"total"`
}
