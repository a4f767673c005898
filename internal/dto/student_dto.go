package dto

type CreateStudentRequest struct {
	Name        string   `json:"name" binding:"required,min=2,max=100"`
	Role        string   `json:"role" binding:"required,min=2,max=50"`
	Nickname    *string  `json:"nickname" binding:"omitempty,max=50"`
	Gender      *string  `json:"gender" binding:"omitempty,oneof=male female"`
	Phone       *string  `json:"phone" binding:"omitempty,max=30"`
	Whatsapp    *string  `json:"whatsapp" binding:"omitempty,max=30"`
	Email       *string  `json:"email" binding:"omitempty,email"`
	ProfilePic  *string  `json:"profilePic" binding:"omitempty,imageref"`
	Bio         *string  `json:"bio" binding:"omitempty,max=500"`
	Body        *string  `json:"body" binding:"omitempty,max=2000"`
	ContactInfo *string  `json:"contactInfo" binding:"omitempty,contactinfo"`
	Categories  []string `json:"categories" binding:"omitempty,dive,max=50"`
}

// UpdateStudentRequest carries only the fields present in the body; nil means
// "leave unchanged", an explicit empty string clears an optional field.
type UpdateStudentRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=2,max=100"`
	Role        *string  `json:"role" binding:"omitempty,min=2,max=50"`
	Nickname    *string  `json:"nickname" binding:"omitempty,max=50"`
	Gender      *string  `json:"gender" binding:"omitempty,oneof=male female"`
	Phone       *string  `json:"phone" binding:"omitempty,max=30"`
	Whatsapp    *string  `json:"whatsapp" binding:"omitempty,max=30"`
	Email       *string  `json:"email" binding:"omitempty,email"`
	ProfilePic  *string  `json:"profilePic" binding:"omitempty,imageref"`
	Bio         *string  `json:"bio" binding:"omitempty,max=500"`
	Body        *string  `json:"body" binding:"omitempty,max=2000"`
	ContactInfo *string  `json:"contactInfo" binding:"omitempty,contactinfo"`
	Categories  []string `json:"categories" binding:"omitempty,dive,max=50"`
}
