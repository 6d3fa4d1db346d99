package dto

type TagCreateDTO struct {
	Name string `form:"name" binding:"required,max=100"`
}

type TagPatchDTO struct {
	Name *string `json:"name" binding:"omitempty,max=100"`
}

type TagDTO struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	HasCover bool   `json:"has_cover"`
}
