package entity

// Cliente persona a la que se le factura un pedido.
type Cliente struct {
	ID        int    `json:"id"`
	Nombre    string `json:"nombre"`
	Cedula    string `json:"cedula"`
	Correo    string `json:"correo"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
}
