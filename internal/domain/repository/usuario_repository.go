package repository

import "github.com/minegocio/negocio-api/internal/domain/entity"

// UsuarioStore puerto sobre el sistema de registro de usuarios (archivo JSON).
// Todas las mutaciones reescriben el archivo completo; el adaptador las
// serializa con un único escritor.
type UsuarioStore interface {
	List() ([]entity.Usuario, error)
	Create(u entity.Usuario) error
	Update(oldUsername string, u entity.Usuario) (*entity.Usuario, error)
	Delete(username string) error
}

// UserDirectory fuente de solo lectura de usuarios para el login. La implementan
// tanto el almacén de archivo como la caché de sincronización remota.
type UserDirectory interface {
	List() ([]entity.Usuario, error)
}
