package sheets

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/minegocio/negocio-api/internal/domain/entity"
)

// El endpoint remoto es un script de terceros que no garantiza una forma de
// respuesta estable entre despliegues. Las cuatro formas observadas se
// normalizan aquí, en este orden:
//
//  1. arreglo de registros          → se usa tal cual
//  2. objeto que parece un usuario  → se envuelve en un arreglo de uno
//  3. objeto cuyo primer valor parece un usuario (ej. {"0": {...}}) → se extrae
//  4. cualquier otra cosa           → arreglo vacío (no es un error duro)
//
// Una respuesta string se parsea una vez como JSON y se reintenta, porque
// algunos despliegues devuelven el cuerpo doblemente serializado.
//
// Los nombres de campo también varían: se consulta cada alias en orden fijo y
// se coacciona a string, con "" por defecto.
var (
	usernameAliases = []string{"username", "usser", "user"}
	passwordAliases = []string{"password", "pass", "pw"}
)

// NormalizeResponse convierte el cuerpo crudo de getUsers en una lista uniforme
// de usuarios. Nunca devuelve error: una forma irreconocible es lista vacía.
func NormalizeResponse(body []byte) []entity.Usuario {
	var raw interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return []entity.Usuario{}
	}
	return normalizeValue(raw, true)
}

func normalizeValue(raw interface{}, allowReparse bool) []entity.Usuario {
	switch v := raw.(type) {
	case []interface{}:
		usuarios := make([]entity.Usuario, 0, len(v))
		for _, item := range v {
			m, _ := item.(map[string]interface{})
			usuarios = append(usuarios, normalizeUser(m))
		}
		return usuarios
	case map[string]interface{}:
		if looksLikeUser(v) {
			return []entity.Usuario{normalizeUser(v)}
		}
		// Objeto con clave envolvente, ej. {"0": {usser: "a", pw: "b"}}. JSON no
		// garantiza orden de claves, así que "primer valor" = clave menor.
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		if len(keys) > 0 {
			if m, ok := v[keys[0]].(map[string]interface{}); ok && looksLikeUser(m) {
				return []entity.Usuario{normalizeUser(m)}
			}
		}
		return []entity.Usuario{}
	case string:
		if !allowReparse {
			return []entity.Usuario{}
		}
		var reparsed interface{}
		if err := json.Unmarshal([]byte(v), &reparsed); err != nil {
			return []entity.Usuario{}
		}
		return normalizeValue(reparsed, false)
	default:
		return []entity.Usuario{}
	}
}

// normalizeUser extrae username y password probando cada alias en orden.
func normalizeUser(raw map[string]interface{}) entity.Usuario {
	return entity.Usuario{
		Username: firstAlias(raw, usernameAliases),
		Password: firstAlias(raw, passwordAliases),
	}
}

// looksLikeUser reporta si el objeto trae alguna clave de username reconocida
// con valor no vacío.
func looksLikeUser(raw map[string]interface{}) bool {
	return firstAlias(raw, usernameAliases) != ""
}

func firstAlias(raw map[string]interface{}, aliases []string) string {
	for _, key := range aliases {
		if v, ok := raw[key]; ok {
			if s := coerceString(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// coerceString convierte valores escalares a string; nil y compuestos quedan "".
func coerceString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		// json decodifica números como float64; un username numérico en la hoja
		// llega así.
		return trimFloat(s)
	case bool:
		return fmt.Sprintf("%t", s)
	default:
		return ""
	}
}

func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}
