package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minegocio/negocio-api/internal/application/auth"
	"github.com/minegocio/negocio-api/internal/application/dto"
	"github.com/minegocio/negocio-api/internal/domain"
	"github.com/minegocio/negocio-api/internal/domain/entity"
)

// fakeDirectory directorio de usuarios en memoria para los tests.
type fakeDirectory struct {
	usuarios []entity.Usuario
	err      error
}

func (f *fakeDirectory) List() ([]entity.Usuario, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.usuarios, nil
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc := auth.NewAuthUseCase(&fakeDirectory{usuarios: []entity.Usuario{
		{Username: "admin", Password: "secreto"},
	}})

	out, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "secreto"})
	require.NoError(t, err)
	assert.Equal(t, "admin", out.Usuario.Username)
}

// El formulario de login hace trim de ambos lados antes de enviar.
func TestLogin_ComparaConTrim(t *testing.T) {
	uc := auth.NewAuthUseCase(&fakeDirectory{usuarios: []entity.Usuario{
		{Username: " admin ", Password: "secreto"},
	}})

	_, err := uc.Login(dto.LoginRequest{Username: "admin", Password: " secreto "})
	assert.NoError(t, err)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc := auth.NewAuthUseCase(&fakeDirectory{usuarios: []entity.Usuario{
		{Username: "admin", Password: "secreto"},
	}})

	_, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CamposVacios(t *testing.T) {
	uc := auth.NewAuthUseCase(&fakeDirectory{})
	_, err := uc.Login(dto.LoginRequest{Username: "  ", Password: ""})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_DirectorioNoDisponible(t *testing.T) {
	uc := auth.NewAuthUseCase(&fakeDirectory{err: domain.ErrUnavailable})
	_, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "secreto"})
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}
