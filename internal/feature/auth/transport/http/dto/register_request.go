package dto

// RegisterReq represents the request body for the /users/register endpoint.
// Email is only required to be non-empty.
type RegisterReq struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
