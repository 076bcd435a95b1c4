package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inmobiliaria/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "secreto-de-prueba"

func tokenCon(t *testing.T, roles []string, exp time.Duration) string {
	t.Helper()
	claims := JWTClaims{
		UserID:   "7b0c2c9e-3a63-4ad1-9f30-111111111111",
		Username: "jperez",
		Roles:    roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(exp)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func protegida(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{JWTAuth(testSecret)}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"roles": GetRoles(c)})
	})
	r.GET("/recurso", handlers...)
	return r
}

func get(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/recurso", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthRechazaSinToken(t *testing.T) {
	r := protegida()
	assert.Equal(t, http.StatusUnauthorized, get(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "Basic abc").Code)
}

func TestJWTAuthRechazaTokenInvalidoOExpirado(t *testing.T) {
	r := protegida()
	assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer no-es-un-jwt").Code)

	expirado := tokenCon(t, []string{model.RolAdmin}, -time.Hour)
	assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer "+expirado).Code)
}

func TestJWTAuthAceptaTokenValido(t *testing.T) {
	r := protegida()
	token := tokenCon(t, []string{model.RolVendedor}, time.Hour)
	w := get(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), model.RolVendedor)
}

func TestRequireRoleExigeAlMenosUnRolPermitido(t *testing.T) {
	r := protegida(model.RolPropietario, model.RolAdmin)

	vendedor := tokenCon(t, []string{model.RolVendedor}, time.Hour)
	assert.Equal(t, http.StatusForbidden, get(r, "Bearer "+vendedor).Code)

	mixto := tokenCon(t, []string{model.RolVendedor, model.RolAdmin}, time.Hour)
	assert.Equal(t, http.StatusOK, get(r, "Bearer "+mixto).Code)
}
