package dto

// CreateVendedorRequest entrada para crear un vendedor (mismos campos y
// validaciones que cliente).
type CreateVendedorRequest struct {
	Nombre    string `json:"nombre"`
	Cedula    string `json:"cedula"`
	Correo    string `json:"correo"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
}

// UpdateVendedorRequest entrada para editar un vendedor (reemplazo completo).
type UpdateVendedorRequest = CreateVendedorRequest

// VendedorResponse salida de un vendedor.
type VendedorResponse struct {
	ID        int    `json:"id"`
	Nombre    string `json:"nombre"`
	Cedula    string `json:"cedula"`
	Correo    string `json:"correo"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
}
