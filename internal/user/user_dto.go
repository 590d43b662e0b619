package user

type CreateUserRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Mobile   string `json:"mobile" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=employee manager"`
}

type UpdateUserRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Mobile   string `json:"mobile" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=employee manager"`
}

type SearchUsersRequest struct {
	Search string `json:"search"`
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
}

type UserResponse struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Mobile   string `json:"mobile"`
	Role     string `json:"role"`
}

type ManagerResponse struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
}
