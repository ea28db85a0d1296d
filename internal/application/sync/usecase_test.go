package sync_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appsync "github.com/minegocio/negocio-api/internal/application/sync"
	"github.com/minegocio/negocio-api/internal/domain"
	"github.com/minegocio/negocio-api/internal/domain/entity"
	"github.com/minegocio/negocio-api/pkg/logger"
)

// fakeClient implementación controlable de RemoteUserClient.
type fakeClient struct {
	usuarios  []entity.Usuario
	getErr    error
	updateErr error
	updates   int
	gets      int
}

func (f *fakeClient) GetUsers(ctx context.Context) ([]entity.Usuario, error) {
	f.gets++
	if f.getErr != nil {
		return nil, f.getErr
	}
	out := make([]entity.Usuario, len(f.usuarios))
	copy(out, f.usuarios)
	return out, nil
}

func (f *fakeClient) UpdateUser(ctx context.Context, oldUsername, username, password string) error {
	f.updates++
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.usuarios {
		if f.usuarios[i].Username == oldUsername {
			f.usuarios[i] = entity.Usuario{Username: username, Password: password}
			return nil
		}
	}
	return nil
}

func newUC(client *fakeClient) *appsync.UserSyncUseCase {
	// delay cero: la re-lectura de confirmación corre síncrona en los tests
	return appsync.NewUserSyncUseCase(client, 0, logger.New("test", "error"))
}

func TestRefresh_CargaCache(t *testing.T) {
	client := &fakeClient{usuarios: []entity.Usuario{{Username: "ana", Password: "123"}}}
	uc := newUC(client)

	require.NoError(t, uc.Refresh(context.Background()))

	usuarios, available := uc.Users()
	assert.True(t, available)
	assert.Equal(t, []entity.Usuario{{Username: "ana", Password: "123"}}, usuarios)
}

// "No disponible" no es lo mismo que "cero usuarios".
func TestRefresh_FalloMarcaNoDisponible(t *testing.T) {
	client := &fakeClient{getErr: domain.ErrUnavailable}
	uc := newUC(client)

	err := uc.Refresh(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnavailable)

	usuarios, available := uc.Users()
	assert.False(t, available)
	assert.Empty(t, usuarios)

	_, err = uc.List()
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestRefresh_CeroUsuariosEsDisponible(t *testing.T) {
	client := &fakeClient{usuarios: []entity.Usuario{}}
	uc := newUC(client)

	require.NoError(t, uc.Refresh(context.Background()))

	usuarios, available := uc.Users()
	assert.True(t, available, "lista vacía legítima no es indisponibilidad")
	assert.Empty(t, usuarios)

	list, err := uc.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

// Reintento manual: un Refresh posterior exitoso recupera la disponibilidad.
func TestRefresh_ReintentoRecupera(t *testing.T) {
	client := &fakeClient{getErr: domain.ErrUnavailable}
	uc := newUC(client)
	require.Error(t, uc.Refresh(context.Background()))

	client.getErr = nil
	client.usuarios = []entity.Usuario{{Username: "b", Password: "2"}}
	require.NoError(t, uc.Refresh(context.Background()))

	usuarios, available := uc.Users()
	assert.True(t, available)
	assert.Len(t, usuarios, 1)
}

func TestUpdateUser_DosFases(t *testing.T) {
	client := &fakeClient{usuarios: []entity.Usuario{{Username: "x", Password: "y"}}}
	uc := newUC(client)
	require.NoError(t, uc.Refresh(context.Background()))

	out, err := uc.UpdateUser(context.Background(), "x", "z", "w")
	require.NoError(t, err)
	assert.Equal(t, "z", out.Username)
	assert.Equal(t, 1, client.updates)

	// La caché refleja el cambio y la re-lectura de confirmación ya corrió.
	usuarios, available := uc.Users()
	assert.True(t, available)
	require.Len(t, usuarios, 1)
	assert.Equal(t, entity.Usuario{Username: "z", Password: "w"}, usuarios[0])
	assert.GreaterOrEqual(t, client.gets, 2, "debe re-leerse la lista tras el update")
}

// Fase 1 falla: la caché no se toca.
func TestUpdateUser_FalloRemotoNoTocaCache(t *testing.T) {
	client := &fakeClient{usuarios: []entity.Usuario{{Username: "x", Password: "y"}}}
	uc := newUC(client)
	require.NoError(t, uc.Refresh(context.Background()))

	client.updateErr = errors.New("timeout")
	_, err := uc.UpdateUser(context.Background(), "x", "z", "w")
	require.Error(t, err)

	usuarios, _ := uc.Users()
	require.Len(t, usuarios, 1)
	assert.Equal(t, "x", usuarios[0].Username, "un fallo remoto no debe mutar la caché")
}

func TestUpdateUser_EntradaInvalida(t *testing.T) {
	uc := newUC(&fakeClient{})
	_, err := uc.UpdateUser(context.Background(), "x", "", "w")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
