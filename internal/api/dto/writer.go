package dto

type WriterCreateDTO struct {
	Name string `form:"name" binding:"required,max=255"`
	Bio  string `form:"bio"`
}

type WriterPatchDTO struct {
	Name *string `json:"name" binding:"omitempty,max=255"`
	Bio  *string `json:"bio"`
}

type WriterDTO struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	HasPhoto  bool   `json:"has_photo"`
	CreatedAt string `json:"created_at"`
}
