package dto

type CreateArticleRequest struct {
	Title         string  `json:"title" binding:"required,min=5,max=200"`
	Content       string  `json:"content" binding:"required,min=10"`
	AuthorID      string  `json:"authorId" binding:"required,uuid"`
	CoverImageURL *string `json:"coverImageUrl" binding:"omitempty,imageref"`
}

type UpdateArticleRequest struct {
	Title         *string `json:"title" binding:"omitempty,min=5,max=200"`
	Content       *string `json:"content" binding:"omitempty,min=10"`
	AuthorID      *string `json:"authorId" binding:"omitempty,uuid"`
	CoverImageURL *string `json:"coverImageUrl" binding:"omitempty,imageref"`
}
