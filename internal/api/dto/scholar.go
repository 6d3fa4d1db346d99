package dto

type ScholarCreateDTO struct {
	Name string `form:"name" binding:"required,max=255"`
	Bio  string `form:"bio"`
}

type ScholarPatchDTO struct {
	Name *string `json:"name" binding:"omitempty,max=255"`
	Bio  *string `json:"bio"`
}

type ScholarDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	HasPortrait bool   `json:"has_portrait"`
	CreatedAt   string `json:"created_at"`
}
