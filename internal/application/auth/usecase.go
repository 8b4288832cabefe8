package auth

import (
	"context"
	"time"

	"github.com/jhoicas/Inventario-tiendas/internal/application/dto"
	"github.com/jhoicas/Inventario-tiendas/internal/application/validation"
	"github.com/jhoicas/Inventario-tiendas/internal/domain"
	"github.com/jhoicas/Inventario-tiendas/internal/domain/entity"
	"github.com/jhoicas/Inventario-tiendas/internal/domain/repository"
	"github.com/jhoicas/Inventario-tiendas/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación de tiendas: registro y login.
type AuthUseCase struct {
	storeRepo repository.StoreRepository
	hasher    *PasswordHasher
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(storeRepo repository.StoreRepository, hasher *PasswordHasher, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{storeRepo: storeRepo, hasher: hasher, jwtCfg: jwtCfg}
}

// Register crea una tienda. El nombre y el email deben ser únicos.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterStoreRequest) (*dto.StoreResponse, error) {
	in.Email = NormalizeEmail(in.Email)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	email := in.Email

	byName, err := uc.storeRepo.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if byName != nil {
		return nil, domain.ErrStoreNameExists
	}
	byEmail, err := uc.storeRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if byEmail != nil {
		return nil, domain.ErrEmailExists
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	store := &entity.Store{
		Name:         in.Name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.storeRepo.Create(ctx, store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// Login verifica email/password, genera JWT y retorna token + tienda.
// Email desconocido -> ErrInvalidEmail; contraseña incorrecta -> ErrInvalidPassword.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	in.Email = NormalizeEmail(in.Email)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	store, err := uc.storeRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrInvalidEmail
	}
	ok, err := uc.hasher.Matches(store.PasswordHash, in.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidPassword
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, store.ID, store.Name, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Store: *toStoreResponse(store),
	}, nil
}

// Authenticate valida un token Bearer y devuelve la identidad de la tienda.
// Lo usa AuthMiddleware en cada ruta protegida.
func (uc *AuthUseCase) Authenticate(token string) (Identity, error) {
	if token == "" {
		return Identity{}, domain.ErrMissingToken
	}
	storeID, storeName, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return Identity{}, domain.ErrInvalidToken
	}
	return Identity{StoreID: storeID, StoreName: storeName}, nil
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	if s == nil {
		return nil
	}
	return &dto.StoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
