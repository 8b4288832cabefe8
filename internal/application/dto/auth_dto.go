package dto

// LoginRequest credenciales de la tienda.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=5"`
}

// LoginResponse token firmado y datos de la tienda autenticada.
type LoginResponse struct {
	Token string        `json:"token"`
	Store StoreResponse `json:"store"`
}
