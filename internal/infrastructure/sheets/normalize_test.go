package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/minegocio/negocio-api/internal/domain/entity"
)

func TestNormalizeResponse_Formas(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []entity.Usuario
	}{
		{
			name: "arreglo de registros se usa tal cual",
			body: `[{"username":"a","password":"b"}]`,
			want: []entity.Usuario{{Username: "a", Password: "b"}},
		},
		{
			name: "objeto único que parece usuario se envuelve",
			body: `{"username":"a","password":"b"}`,
			want: []entity.Usuario{{Username: "a", Password: "b"}},
		},
		{
			name: "objeto envolvente con primer valor usuario",
			body: `{"0":{"usser":"a","pw":"b"}}`,
			want: []entity.Usuario{{Username: "a", Password: "b"}},
		},
		{
			name: "null es lista vacía",
			body: `null`,
			want: []entity.Usuario{},
		},
		{
			name: "forma irreconocible es lista vacía, no error",
			body: `42`,
			want: []entity.Usuario{},
		},
		{
			name: "objeto sin claves de usuario es lista vacía",
			body: `{"status":"ok"}`,
			want: []entity.Usuario{},
		},
		{
			name: "cuerpo no JSON es lista vacía",
			body: `<html>error</html>`,
			want: []entity.Usuario{},
		},
		{
			name: "string doblemente serializado se reparsea una vez",
			body: `"[{\"username\":\"a\",\"password\":\"b\"}]"`,
			want: []entity.Usuario{{Username: "a", Password: "b"}},
		},
		{
			name: "arreglo de varios con aliases mezclados",
			body: `[{"username":"a","password":"1"},{"user":"b","pass":"2"}]`,
			want: []entity.Usuario{
				{Username: "a", Password: "1"},
				{Username: "b", Password: "2"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeResponse([]byte(tc.body)))
		})
	}
}

func TestNormalizeUser_PrioridadDeAliases(t *testing.T) {
	// username gana sobre usser y user; password gana sobre pass y pw.
	u := normalizeUser(map[string]interface{}{
		"username": "principal",
		"usser":    "secundario",
		"password": "p1",
		"pw":       "p3",
	})
	assert.Equal(t, "principal", u.Username)
	assert.Equal(t, "p1", u.Password)
}

func TestNormalizeUser_AliasVacioCaeAlSiguiente(t *testing.T) {
	u := normalizeUser(map[string]interface{}{
		"username": "",
		"usser":    "respaldo",
	})
	assert.Equal(t, "respaldo", u.Username)
	assert.Equal(t, "", u.Password, "sin alias de password presente queda vacío")
}

func TestNormalizeUser_CoercionAString(t *testing.T) {
	// La hoja puede traer celdas numéricas; se coaccionan a string.
	u := normalizeUser(map[string]interface{}{
		"username": float64(12345),
		"password": float64(9.5),
	})
	assert.Equal(t, "12345", u.Username)
	assert.Equal(t, "9.5", u.Password)
}

func TestNormalizeResponse_ElementoNoObjetoQuedaVacio(t *testing.T) {
	got := NormalizeResponse([]byte(`["texto suelto",{"username":"a","password":"b"}]`))
	assert.Equal(t, []entity.Usuario{
		{},
		{Username: "a", Password: "b"},
	}, got)
}
