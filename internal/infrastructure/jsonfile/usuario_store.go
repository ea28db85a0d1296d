// Package jsonfile implementa el almacén de usuarios respaldado por un único
// archivo JSON: un arreglo de {username, password} con sangría de 2 espacios.
// Cada mutación lee el archivo completo, lo modifica en memoria y lo reescribe.
// Un mutex serializa las mutaciones (único escritor), y la escritura es
// archivo temporal + rename para no dejar un JSON truncado a medias.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/minegocio/negocio-api/internal/domain"
	"github.com/minegocio/negocio-api/internal/domain/entity"
	"github.com/minegocio/negocio-api/internal/domain/repository"
)

var _ repository.UsuarioStore = (*UsuarioStore)(nil)

// UsuarioStore almacén de usuarios sobre un archivo JSON.
type UsuarioStore struct {
	path string
	mu   sync.Mutex
}

// NewUsuarioStore construye el almacén sobre la ruta dada. No crea el archivo:
// un archivo ausente es un error de lectura, no una lista vacía.
func NewUsuarioStore(path string) *UsuarioStore {
	return &UsuarioStore{path: path}
}

// List devuelve el contenido completo del archivo.
func (s *UsuarioStore) List() ([]entity.Usuario, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Create agrega un usuario al final. Devuelve ErrDuplicate si el username ya
// existe; en ese caso el archivo queda intacto.
func (s *UsuarioStore) Create(u entity.Usuario) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	usuarios, err := s.read()
	if err != nil {
		return err
	}
	for i := range usuarios {
		if usuarios[i].Username == u.Username {
			return domain.ErrDuplicate
		}
	}
	usuarios = append(usuarios, u)
	return s.write(usuarios)
}

// Update reemplaza el usuario identificado por oldUsername, conservando su
// posición. Devuelve ErrUserNotFound si no existe; el archivo queda intacto.
func (s *UsuarioStore) Update(oldUsername string, u entity.Usuario) (*entity.Usuario, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	usuarios, err := s.read()
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range usuarios {
		if usuarios[i].Username == oldUsername {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, domain.ErrUserNotFound
	}
	usuarios[idx] = u
	if err := s.write(usuarios); err != nil {
		return nil, err
	}
	return &usuarios[idx], nil
}

// Delete elimina el usuario por username. Devuelve ErrUserNotFound si no existe.
func (s *UsuarioStore) Delete(username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	usuarios, err := s.read()
	if err != nil {
		return err
	}
	filtrados := usuarios[:0:0]
	for i := range usuarios {
		if usuarios[i].Username != username {
			filtrados = append(filtrados, usuarios[i])
		}
	}
	if len(filtrados) == len(usuarios) {
		return domain.ErrUserNotFound
	}
	return s.write(filtrados)
}

// read carga y parsea el archivo. Debe llamarse con el mutex tomado.
func (s *UsuarioStore) read() ([]entity.Usuario, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", s.path, err)
	}
	var usuarios []entity.Usuario
	if err := json.Unmarshal(data, &usuarios); err != nil {
		return nil, fmt.Errorf("parsear %s: %w", s.path, err)
	}
	if usuarios == nil {
		usuarios = []entity.Usuario{}
	}
	return usuarios, nil
}

// write reescribe el archivo completo (pretty-print de 2 espacios), primero a un
// temporal en el mismo directorio y luego rename. Debe llamarse con el mutex tomado.
func (s *UsuarioStore) write(usuarios []entity.Usuario) error {
	if usuarios == nil {
		usuarios = []entity.Usuario{}
	}
	data, err := json.MarshalIndent(usuarios, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar usuarios: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".usuarios-*.json")
	if err != nil {
		return fmt.Errorf("crear temporal: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("escribir temporal: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cerrar temporal: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("reemplazar %s: %w", s.path, err)
	}
	return nil
}
