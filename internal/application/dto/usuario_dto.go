package dto

// CreateUsuarioRequest entrada para crear una credencial (password en texto
// plano: el sistema no define modelo de seguridad).
type CreateUsuarioRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateUsuarioRequest entrada para reemplazar la credencial identificada por
// el oldUsername de la ruta.
type UpdateUsuarioRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UsuarioResponse salida de una credencial.
type UsuarioResponse struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UsuarioMessageResponse salida de las mutaciones: mensaje + registro afectado.
type UsuarioMessageResponse struct {
	Message string          `json:"message"`
	Usuario UsuarioResponse `json:"usuario"`
}

// LoginRequest entrada del login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse salida del login.
type LoginResponse struct {
	Message string          `json:"message"`
	Usuario UsuarioResponse `json:"usuario"`
}

// SyncUsuariosResponse listado de la caché de sincronización remota. Available
// distingue "el remoto no respondió" de "el remoto devolvió cero usuarios".
type SyncUsuariosResponse struct {
	Available bool              `json:"available"`
	Usuarios  []UsuarioResponse `json:"usuarios"`
}
