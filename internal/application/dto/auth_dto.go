package dto

// SignupRequest registro de un comprador (entra a la cola pending).
type SignupRequest struct {
	BusinessName string       `json:"business_name" validate:"required"`
	ContactName  string       `json:"contact_name" validate:"required"`
	Email        string       `json:"email" validate:"required,email"`
	Phone        string       `json:"phone"`
	DrugLicense  string       `json:"drug_license" validate:"required"`
	Password     string       `json:"password" validate:"required,min=8"`
	Address      *AddressDTO  `json:"address"`
}

// LoginRequest credenciales (compradores y administradores).
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// BuyerLoginResponse token JWT + perfil para el storefront.
type BuyerLoginResponse struct {
	Token string        `json:"token"`
	Buyer BuyerResponse `json:"buyer"`
}

// SessionPayload contenido de la cookie admin_session.
// El shape es contrato público: lo consume el endpoint de introspección.
type SessionPayload struct {
	IsLoggedIn bool   `json:"isLoggedIn"`
	Email      string `json:"email,omitempty"`
	Name       string `json:"name,omitempty"`
	UID        string `json:"uid,omitempty"`
	Role       string `json:"role,omitempty"`
}
