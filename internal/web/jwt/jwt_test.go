//go:build unit

package jwt

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	jwtv4 "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-email-template/internal/errs"
)

func TestBuilder_EncodeDecode(t *testing.T) {
	t.Parallel()

	b := NewBuilder("test-key")

	token, err := b.Encode(jwtv4.MapClaims{UserIDName: "admin-1"})
	require.NoError(t, err)

	claims, err := b.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims[UserIDName])
	assert.Equal(t, "email-template", claims["iss"])

	// Bearer 前缀同样可解
	claims, err = b.Decode("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims[UserIDName])
}

func TestBuilder_DecodeUnauthorized(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name: "密钥不匹配",
			token: func(t *testing.T) string {
				token, err := NewBuilder("other-key").Encode(jwtv4.MapClaims{UserIDName: "admin-1"})
				require.NoError(t, err)
				return token
			},
		},
		{
			name: "非法令牌",
			token: func(*testing.T) string {
				return "not-a-jwt"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := NewBuilder("test-key")
			_, err := b.Decode(tt.token(t))
			assert.ErrorIs(t, err, errs.ErrUserUnauthorized)
		})
	}
}

func TestBuilder_Middleware(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)
	b := NewBuilder("test-key")

	server := gin.New()
	server.GET("/protected", b.Middleware(), func(ctx *gin.Context) {
		uid, _ := ctx.Get(UserIDName)
		ctx.JSON(http.StatusOK, gin.H{"userId": uid})
	})

	t.Run("缺少Authorization头", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("令牌非法", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("令牌合法放行并注入用户标识", func(t *testing.T) {
		t.Parallel()

		token, err := b.Encode(jwtv4.MapClaims{UserIDName: "admin-1"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", token)
		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "admin-1")
	})
}
