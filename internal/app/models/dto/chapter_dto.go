package dto

// CreateChapterRequest is the mentor payload for adding a chapter.
// SequenceOrder is caller-supplied and must be unused within the course.
type CreateChapterRequest struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description" binding:"required"`
	VideoLink     string `json:"videoLink" binding:"required"`
	SequenceOrder int    `json:"sequenceOrder" binding:"required,min=1"`
}

// UpdateChapterRequest edits a chapter; nil/empty fields are left unchanged
type UpdateChapterRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	VideoLink     string `json:"videoLink"`
	SequenceOrder *int   `json:"sequenceOrder" binding:"omitempty,min=1"`
}
