package entity

// Vendedor persona que registra el pedido. Mismos campos que Cliente.
type Vendedor struct {
	ID        int    `json:"id"`
	Nombre    string `json:"nombre"`
	Cedula    string `json:"cedula"`
	Correo    string `json:"correo"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
}
