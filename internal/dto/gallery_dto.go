package dto

type CreateGalleryItemRequest struct {
	ImageURL string  `json:"imageUrl" binding:"required,imageref"`
	Caption  *string `json:"caption" binding:"omitempty,max=200"`
	Order    *int    `json:"order"`
	Category *string `json:"category" binding:"omitempty,max=50"`
	Type     *string `json:"type" binding:"omitempty,oneof=photo video"`
}

type UpdateGalleryItemRequest struct {
	ImageURL *string `json:"imageUrl" binding:"omitempty,imageref"`
	Caption  *string `json:"caption" binding:"omitempty,max=200"`
	Order    *int    `json:"order"`
	Category *string `json:"category" binding:"omitempty,max=50"`
	Type     *string `json:"type" binding:"omitempty,oneof=photo video"`
}
