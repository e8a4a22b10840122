package dto

// LoginRequest credenciales de acceso a la consola.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token y datos básicos del usuario autenticado.
type LoginResponse struct {
	Token  string `json:"token"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
}

// RegisterRequest alta de una credencial de personal.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nombre   string `json:"nombre"`
	Rol      string `json:"rol"`
}

// UsuarioResponse salida de un usuario registrado (sin hash).
type UsuarioResponse struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
}
