package user

// UserResponse is the serialized view of a user. The password hash is never
// included.
type UserResponse struct {
	ID            string  `json:"id"`
	Name          *string `json:"name"`
	Username      string  `json:"username"`
	EmployeeID    *string `json:"employee_id"`
	Email         *string `json:"email"`
	Role          Role    `json:"role"`
	Department    *string `json:"department"`
	FingerprintID *string `json:"fingerprint_id"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Username:      u.Username,
		EmployeeID:    u.EmployeeID,
		Email:         u.Email,
		Role:          u.Role,
		Department:    u.Department,
		FingerprintID: u.FingerprintID,
	}
}

func ToResponseList(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToResponse(u))
	}
	return responses
}
