package dto

type CreateMemberRequest struct {
	Name  string `json:"name"  validate:"required,min=1,max=120"`
	Email string `json:"email" validate:"required,email"`
}

type MemberResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
