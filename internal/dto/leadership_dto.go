package dto

type CreateLeadershipMemberRequest struct {
	Name       string  `json:"name" binding:"required,min=2,max=100"`
	Position   string  `json:"position" binding:"required,min=2,max=100"`
	ProfilePic *string `json:"profilePic" binding:"omitempty,imageref"`
	Bio        *string `json:"bio" binding:"omitempty,max=500"`
	Order      *int    `json:"order"`
}

type UpdateLeadershipMemberRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=2,max=100"`
	Position   *string `json:"position" binding:"omitempty,min=2,max=100"`
	ProfilePic *string `json:"profilePic" binding:"omitempty,imageref"`
	Bio        *string `json:"bio" binding:"omitempty,max=500"`
	Order      *int    `json:"order"`
}
