package dto

type QnaRecordCreateDTO struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer"`
	Source   string `json:"source" binding:"max=255"`
}

type QnaRecordListDTO struct {
	List  []*QnaRecordDTO `json:"list"`
	Total int64           `json:"total"`
}

type QnaRecordDTO struct {
	ID        uint64 `json:"id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Source    string `json:"source"`
	CreatedAt string `json:"created_at"`
}
