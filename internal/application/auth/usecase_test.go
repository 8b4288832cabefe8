package auth_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Inventario-tiendas/internal/application/auth"
	"github.com/jhoicas/Inventario-tiendas/internal/application/dto"
	"github.com/jhoicas/Inventario-tiendas/internal/domain"
	"github.com/jhoicas/Inventario-tiendas/internal/infrastructure/memory"
	pkgjwt "github.com/jhoicas/Inventario-tiendas/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newAuth() *auth.AuthUseCase {
	db := memory.New()
	return auth.NewAuthUseCase(db.Stores(), auth.NewPasswordHasher(bcrypt.MinCost), auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "inventario-tiendas-test",
	})
}

func TestRegister_NormalizaEmail(t *testing.T) {
	uc := newAuth()
	ctx := context.Background()

	s, err := uc.Register(ctx, dto.RegisterStoreRequest{Name: "Loja Centro", Email: "  Centro@Mail.COM ", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "centro@mail.com", s.Email)
	assert.Positive(t, s.ID)

	_, err = uc.Register(ctx, dto.RegisterStoreRequest{Name: "Otra", Email: "centro@mail.com", Password: "secret"})
	assert.True(t, errors.Is(err, domain.ErrEmailExists))

	_, err = uc.Register(ctx, dto.RegisterStoreRequest{Name: "Loja Centro", Email: "otra@mail.com", Password: "secret"})
	assert.True(t, errors.Is(err, domain.ErrStoreNameExists))
}

func TestRegister_Validacion(t *testing.T) {
	_, err := newAuth().Register(context.Background(), dto.RegisterStoreRequest{Name: "Loja", Email: "a@b.com", Password: "123"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestLogin(t *testing.T) {
	uc := newAuth()
	ctx := context.Background()
	s, err := uc.Register(ctx, dto.RegisterStoreRequest{Name: "Loja", Email: "loja@mail.com", Password: "secret"})
	require.NoError(t, err)

	t.Run("email desconocido", func(t *testing.T) {
		_, err := uc.Login(ctx, dto.LoginRequest{Email: "nadie@mail.com", Password: "secret"})
		assert.True(t, errors.Is(err, domain.ErrInvalidEmail))
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("password incorrecto", func(t *testing.T) {
		_, err := uc.Login(ctx, dto.LoginRequest{Email: "loja@mail.com", Password: "wrong"})
		assert.True(t, errors.Is(err, domain.ErrInvalidPassword))
		assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	})

	t.Run("ok", func(t *testing.T) {
		out, err := uc.Login(ctx, dto.LoginRequest{Email: "LOJA@mail.com", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, s.ID, out.Store.ID)

		storeID, storeName, err := pkgjwt.Parse(testSecret, out.Token)
		require.NoError(t, err)
		assert.Equal(t, s.ID, storeID)
		assert.Equal(t, "Loja", storeName)

		ident, err := uc.Authenticate(out.Token)
		require.NoError(t, err)
		assert.Equal(t, auth.Identity{StoreID: s.ID, StoreName: "Loja"}, ident)
	})

	t.Run("email con espacios y mayusculas", func(t *testing.T) {
		out, err := uc.Login(ctx, dto.LoginRequest{Email: "  Loja@MAIL.com ", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, s.ID, out.Store.ID)
	})
}

func TestNormalizeEmail_Concurrente(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "centro@mail.com", auth.NormalizeEmail("  Centro@Mail.COM "))
		}()
	}
	wg.Wait()
}

func TestAuthenticate(t *testing.T) {
	uc := newAuth()

	_, err := uc.Authenticate("")
	assert.True(t, errors.Is(err, domain.ErrMissingToken))

	_, err = uc.Authenticate("no.es.jwt")
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))
}

func TestPasswordHasher(t *testing.T) {
	h := auth.NewPasswordHasher(bcrypt.MinCost)
	hash, err := h.Hash("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)

	ok, err := h.Matches(hash, "secret")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Matches(hash, "other")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = h.Matches("no-es-bcrypt", "secret")
	assert.Error(t, err)
}
