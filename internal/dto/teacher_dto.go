package dto

type CreateTeacherRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=100"`
	Role        string  `json:"role" binding:"required,min=2,max=50"`
	Nickname    *string `json:"nickname" binding:"omitempty,max=50"`
	Subject     *string `json:"subject" binding:"omitempty,max=100"`
	Gender      *string `json:"gender" binding:"omitempty,oneof=male female"`
	Phone       *string `json:"phone" binding:"omitempty,max=30"`
	Whatsapp    *string `json:"whatsapp" binding:"omitempty,max=30"`
	Email       *string `json:"email" binding:"omitempty,email"`
	ProfilePic  *string `json:"profilePic" binding:"omitempty,imageref"`
	Bio         *string `json:"bio" binding:"omitempty,max=500"`
	Body        *string `json:"body" binding:"omitempty,max=2000"`
	ContactInfo *string `json:"contactInfo" binding:"omitempty,contactinfo"`
}

type UpdateTeacherRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100"`
	Role        *string `json:"role" binding:"omitempty,min=2,max=50"`
	Nickname    *string `json:"nickname" binding:"omitempty,max=50"`
	Subject     *string `json:"subject" binding:"omitempty,max=100"`
	Gender      *string `json:"gender" binding:"omitempty,oneof=male female"`
	Phone       *string `json:"phone" binding:"omitempty,max=30"`
	Whatsapp    *string `json:"whatsapp" binding:"omitempty,max=30"`
	Email       *string `json:"email" binding:"omitempty,email"`
	ProfilePic  *string `json:"profilePic" binding:"omitempty,imageref"`
	Bio         *string `json:"bio" binding:"omitempty,max=500"`
	Body        *string `json:"body" binding:"omitempty,max=2000"`
	ContactInfo *string `json:"contactInfo" binding:"omitempty,contactinfo"`
}
