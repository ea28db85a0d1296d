package dto

// CreateClienteRequest entrada para crear un cliente. Todos los campos son
// obligatorios; cédula y teléfono deben ser numéricos (validadores del
// formulario de clientes).
type CreateClienteRequest struct {
	Nombre    string `json:"nombre"`
	Cedula    string `json:"cedula"`
	Correo    string `json:"correo"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
}

// UpdateClienteRequest entrada para editar un cliente (reemplazo completo).
type UpdateClienteRequest = CreateClienteRequest

// ClienteResponse salida de un cliente.
type ClienteResponse struct {
	ID        int    `json:"id"`
	Nombre    string `json:"nombre"`
	Cedula    string `json:"cedula"`
	Correo    string `json:"correo"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
}
