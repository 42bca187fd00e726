package dto

type AdminLoginRequest struct {
	Password string `json:"password"`
}

type AdminLoginResponse struct {
	Success       bool `json:"success"`
	Authenticated bool `json:"authenticated"`
}
