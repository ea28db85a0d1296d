// Package sync mantiene la copia local de los usuarios que viven en la hoja
// remota. La copia es una caché: la verdad está en el remoto, que además es
// eventualmente consistente desde el punto de vista de este cliente. Un update
// se aplica localmente solo después de que el remoto lo acepte (contrato en
// dos fases), y tras una espera corta se re-lee la lista completa para
// confirmar la persistencia.
package sync

import (
	"context"
	"sync"
	"time"

	"github.com/minegocio/negocio-api/internal/domain"
	"github.com/minegocio/negocio-api/internal/domain/entity"
	"github.com/minegocio/negocio-api/pkg/logger"
)

// RemoteUserClient puerto de salida hacia el endpoint remoto de usuarios.
type RemoteUserClient interface {
	GetUsers(ctx context.Context) ([]entity.Usuario, error)
	UpdateUser(ctx context.Context, oldUsername, username, password string) error
}

// UserSyncUseCase caché local del directorio remoto de usuarios.
type UserSyncUseCase struct {
	client       RemoteUserClient
	refetchDelay time.Duration
	log          *logger.Logger

	mu        sync.RWMutex
	usuarios  []entity.Usuario
	available bool
}

// NewUserSyncUseCase construye el caso de uso. refetchDelay es la espera antes
// de re-leer la lista tras un update remoto exitoso.
func NewUserSyncUseCase(client RemoteUserClient, refetchDelay time.Duration, log *logger.Logger) *UserSyncUseCase {
	return &UserSyncUseCase{
		client:       client,
		refetchDelay: refetchDelay,
		log:          log.WithComponent("sync"),
	}
}

// Refresh consulta el remoto y reemplaza la caché. En fallo marca el
// directorio como no disponible y vacía la caché: "no disponible" es distinto
// de "cero usuarios", y el reintento es una acción explícita del caller.
func (uc *UserSyncUseCase) Refresh(ctx context.Context) error {
	usuarios, err := uc.client.GetUsers(ctx)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err != nil {
		uc.available = false
		uc.usuarios = nil
		uc.log.Warn().Err(err).Msg("refresh de usuarios remotos falló")
		return err
	}
	uc.available = true
	uc.usuarios = usuarios
	uc.log.Info().Int("usuarios", len(usuarios)).Msg("usuarios remotos cargados")
	return nil
}

// Users devuelve la copia en caché y si el remoto estaba disponible en la
// última lectura.
func (uc *UserSyncUseCase) Users() ([]entity.Usuario, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	out := make([]entity.Usuario, len(uc.usuarios))
	copy(out, uc.usuarios)
	return out, uc.available
}

// List implementa repository.UserDirectory para el login. ErrUnavailable si la
// última lectura del remoto falló.
func (uc *UserSyncUseCase) List() ([]entity.Usuario, error) {
	usuarios, available := uc.Users()
	if !available {
		return nil, domain.ErrUnavailable
	}
	return usuarios, nil
}

// UpdateUser propaga el cambio al remoto y, solo si lo acepta, lo aplica a la
// caché. Luego agenda la re-lectura de confirmación. En fallo remoto la caché
// queda intacta y se devuelve el error.
func (uc *UserSyncUseCase) UpdateUser(ctx context.Context, oldUsername, username, password string) (*entity.Usuario, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.client.UpdateUser(ctx, oldUsername, username, password); err != nil {
		return nil, err
	}

	actualizado := entity.Usuario{Username: username, Password: password}

	uc.mu.Lock()
	idx := -1
	for i := range uc.usuarios {
		if uc.usuarios[i].Username == oldUsername {
			idx = i
			break
		}
	}
	if idx >= 0 {
		uc.usuarios[idx] = actualizado
	} else {
		// El remoto lo aceptó aunque la caché no lo conocía (otra instancia
		// pudo crearlo); la re-lectura lo reconciliará, mientras tanto se
		// agrega para que el login lo vea.
		uc.usuarios = append(uc.usuarios, actualizado)
	}
	uc.mu.Unlock()

	uc.scheduleRefetch()
	return &actualizado, nil
}

// scheduleRefetch agenda la re-lectura de confirmación tras el delay
// configurado. Con delay cero (tests) la re-lectura es inmediata y síncrona.
func (uc *UserSyncUseCase) scheduleRefetch() {
	if uc.refetchDelay <= 0 {
		_ = uc.Refresh(context.Background())
		return
	}
	time.AfterFunc(uc.refetchDelay, func() {
		if err := uc.Refresh(context.Background()); err != nil {
			uc.log.Warn().Err(err).Msg("re-lectura de confirmación falló")
		}
	})
}
