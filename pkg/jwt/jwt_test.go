package jwt_test

import (
	"errors"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/melo-compras/pkg/jwt"
)

func sign(t *testing.T, claims gojwt.MapClaims) string {
	t.Helper()
	s, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("otro-secreto"))
	require.NoError(t, err)
	return s
}

func TestDecode_LeeClaimsSinVerificarFirma(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	c, err := pkgjwt.Decode(sign(t, gojwt.MapClaims{
		"userId": "u1", "name": "Rui", "email": "rui@melo.com.br", "role": "admin", "exp": exp.Unix(),
	}))
	require.NoError(t, err)
	assert.Equal(t, "u1", c.Subject())
	assert.Equal(t, "admin", c.Role)
	assert.Equal(t, "Rui", c.Name)
	assert.True(t, c.ExpiresAtTime().Equal(exp))
	assert.False(t, c.Expired(time.Now()))
	assert.True(t, c.Expired(exp))
}

func TestSubject_Prioridad(t *testing.T) {
	cases := []struct {
		claims gojwt.MapClaims
		want   string
	}{
		{gojwt.MapClaims{"userId": "a", "id": "b", "sub": "c"}, "a"},
		{gojwt.MapClaims{"id": "b", "sub": "c"}, "b"},
		{gojwt.MapClaims{"sub": "c"}, "c"},
	}
	for _, tc := range cases {
		c, err := pkgjwt.Decode(sign(t, tc.claims))
		require.NoError(t, err)
		assert.Equal(t, tc.want, c.Subject())
	}
}

func TestDecode_SinExpNoVence(t *testing.T) {
	c, err := pkgjwt.Decode(sign(t, gojwt.MapClaims{"id": "x"}))
	require.NoError(t, err)
	assert.False(t, c.Expired(time.Now().Add(100*365*24*time.Hour)))
	assert.True(t, c.ExpiresAtTime().IsZero())
}

func TestDecode_Malformado(t *testing.T) {
	for _, tok := range []string{"", "abc", "a.b", "a.b.c.d", "a.b.c", "eyJhbGciOiJIUzI1NiJ9.bm9qc29u.sig"} {
		_, err := pkgjwt.Decode(tok)
		assert.True(t, errors.Is(err, pkgjwt.ErrMalformed), tok)
	}
}
