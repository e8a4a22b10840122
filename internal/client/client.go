// Package client implementa el SDK HTTP que la consola usa contra la API.
// Contrato uniforme por recurso: List, ListActive, Get, Create, Update,
// Delete y Search. Sin reintentos ni validación de payloads; un único
// timeout global tomado de la configuración.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

// APIError error devuelto por la API con cuerpo {code, message}.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("api respondió %d", e.Status)
}

// Client cliente base: URL de la API, timeout global y token opcional para
// las operaciones que lo exigen.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
	log     *logger.Logger
}

// New construye el cliente. baseURL sin slash final (p. ej. http://localhost:8080/api).
func New(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// SetToken fija el Bearer Token para las peticiones siguientes.
func (c *Client) SetToken(token string) {
	c.token = token
}

// doJSON ejecuta la petición y decodifica el cuerpo en out (si out != nil).
// 404 se traduce a domain.ErrNotFound; cualquier otro no-2xx a *APIError con
// el message del cuerpo.
func (c *Client) doJSON(method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: serializar cuerpo: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, u, reader)
	if err != nil {
		return fmt.Errorf("client: crear petición: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.log.Debug().Str("method", method).Str("url", u).Msg("petición a la API")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr dto.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		c.log.Warn().Int("status", resp.StatusCode).Str("code", apiErr.Code).Msg("la API respondió error")
		return &APIError{Status: resp.StatusCode, Code: apiErr.Code, Message: apiErr.Message}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("client: decodificar respuesta: %w", err)
	}
	return nil
}

// doRaw ejecuta un GET que devuelve bytes crudos (PDF, Excel).
func (c *Client) doRaw(path string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("client: crear petición: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client: GET %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr dto.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return nil, &APIError{Status: resp.StatusCode, Code: apiErr.Code, Message: apiErr.Message}
	}
	return io.ReadAll(resp.Body)
}

// Login autentica contra la API y deja el token fijado en el cliente.
func (c *Client) Login(email, password string) (*dto.LoginResponse, error) {
	var out dto.DataResponse[dto.LoginResponse]
	err := c.doJSON(http.MethodPost, "/auth/login", nil, dto.LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	c.SetToken(out.Data.Token)
	return &out.Data, nil
}
