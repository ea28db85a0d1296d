package entity

// Usuario credencial de acceso a la aplicación. El username es la clave natural;
// la unicidad solo se comprueba al crear. La contraseña se compara y almacena en
// texto plano: el sistema no define modelo de autenticación.
type Usuario struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
