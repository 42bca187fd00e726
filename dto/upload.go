package dto

type UploadPDFResponse struct {
	Success  bool   `json:"success"`
	FileName string `json:"fileName"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
