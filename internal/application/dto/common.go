package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ViolationsResponse cuerpo de un rechazo de negocio: todas las violaciones de una vez.
type ViolationsResponse struct {
	Errors []string `json:"errors"`
}

// CreatedResponse ID asignado a una entidad recién creada.
type CreatedResponse struct {
	ID string `json:"id"`
}
