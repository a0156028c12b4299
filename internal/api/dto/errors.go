package dto

// ErrorResponse is the structured error body for all non-2xx responses.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Detail  string `json:"detail"`
}

// NewErrorResponse creates an error response with the given detail message.
func NewErrorResponse(detail string) ErrorResponse {
	return ErrorResponse{Success: false, Detail: detail}
}
