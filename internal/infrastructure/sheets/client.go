// Package sheets implementa el cliente del endpoint remoto de usuarios: un Web
// App de Apps Script respaldado por una hoja de cálculo, tratado como un
// almacén opaco de terceros. El contrato se tolera a la defensiva (ver
// normalize.go); este paquete solo arma las peticiones y clasifica los fallos.
//
// Usa net/http de la stdlib con timeout explícito; no requiere librerías de
// terceros.
package sheets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/minegocio/negocio-api/internal/domain"
	"github.com/minegocio/negocio-api/internal/domain/entity"
	"github.com/minegocio/negocio-api/pkg/logger"
)

// Client cliente HTTP del Web App remoto. Ambas operaciones son GET con query
// params: el script no maneja bien preflight CORS, así que incluso el update
// viaja como GET.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente con el timeout dado. El script puede tardar
// varios segundos en responder, el timeout por defecto de la config es generoso.
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.WithComponent("sheets"),
	}
}

// GetUsers consulta action=getUsers y normaliza la respuesta. Un fallo de red o
// un status no-2xx devuelve ErrUnavailable; una forma de respuesta
// irreconocible devuelve lista vacía sin error.
func (c *Client) GetUsers(ctx context.Context) ([]entity.Usuario, error) {
	q := url.Values{}
	q.Set("action", "getUsers")

	body, err := c.get(ctx, q)
	if err != nil {
		return nil, err
	}
	usuarios := NormalizeResponse(body)
	c.log.Debug().Int("usuarios", len(usuarios)).Msg("getUsers normalizado")
	return usuarios, nil
}

// UpdateUser envía action=updateUser con el username anterior como clave. El
// remoto es eventualmente consistente desde el punto de vista del cliente: el
// caller debe re-leer la lista tras una espera corta para confirmar.
func (c *Client) UpdateUser(ctx context.Context, oldUsername, username, password string) error {
	q := url.Values{}
	q.Set("action", "updateUser")
	q.Set("oldUsername", oldUsername)
	q.Set("username", username)
	q.Set("password", password)

	if _, err := c.get(ctx, q); err != nil {
		return err
	}
	return nil
}

// get ejecuta el GET y devuelve el cuerpo. Clasifica transporte y status
// no-2xx como ErrUnavailable conservando la causa.
func (c *Client) get(ctx context.Context, q url.Values) ([]byte, error) {
	reqURL := c.baseURL + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("armar petición: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("action", q.Get("action")).Msg("endpoint remoto inaccesible")
		return nil, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn().Int("status", resp.StatusCode).Str("action", q.Get("action")).
			Msg("endpoint remoto respondió error")
		return nil, fmt.Errorf("%w: status %d", domain.ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: leer respuesta: %v", domain.ErrUnavailable, err)
	}
	return body, nil
}
