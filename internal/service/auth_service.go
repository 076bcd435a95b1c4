package service

import (
	"context"
	"errors"
	"time"

	"inmobiliaria/internal/config"
	"inmobiliaria/internal/dto"
	"inmobiliaria/internal/model"
	"inmobiliaria/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.UsuarioResponse, error)
	// ValidateToken verifica firma y expiración y devuelve la sesión con
	// roles frescos de base de datos.
	ValidateToken(ctx context.Context, token string) (*dto.SesionResponse, error)
	ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error)
	ActualizarUsuario(ctx context.Context, id uuid.UUID, req dto.UsuarioRequest) (*dto.UsuarioResponse, error)
	EliminarUsuario(ctx context.Context, id uuid.UUID) error
}

type authService struct {
	repo    repository.UsuarioRepository
	rolRepo repository.CatalogoRepository[model.Rol]
	cfg     *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, rolRepo repository.CatalogoRepository[model.Rol], cfg *config.Config) AuthService {
	return &authService{repo: repo, rolRepo: rolRepo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, errors.New("credenciales invalidas")
	}
	if !user.Activo() {
		return nil, errors.New("credenciales invalidas")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("credenciales invalidas")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:    token,
		Username: user.Username,
		Roles:    user.RolNombres(),
	}, nil
}

// resolverRoles convierte nombres de rol en registros; sin roles pedidos se
// asigna VENDEDOR.
func (s *authService) resolverRoles(ctx context.Context, nombres []string) ([]model.Rol, error) {
	if len(nombres) == 0 {
		nombres = []string{model.RolVendedor}
	}
	roles := make([]model.Rol, 0, len(nombres))
	for _, nombre := range nombres {
		rol, err := s.rolRepo.FindByNombre(ctx, nombre)
		if err != nil {
			return nil, errors.New("rol " + nombre + " no existe")
		}
		roles = append(roles, *rol)
	}
	return roles, nil
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	existing, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil && existing != nil {
		return nil, errors.New("el username ya está en uso")
	}

	roles, err := s.resolverRoles(ctx, req.Roles)
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}

	user := &model.Usuario{
		Username:     req.Username,
		PasswordHash: string(hash),
		Roles:        roles,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	resp := dto.UsuarioToResponse(user)
	return &resp, nil
}

func (s *authService) ValidateToken(ctx context.Context, raw string) (*dto.SesionResponse, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("token invalido o expirado")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("claims invalidos")
	}
	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, errors.New("token mal formado")
	}
	uid, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, errors.New("token mal formado")
	}

	user, err := s.repo.FindByID(ctx, uid)
	if err != nil || !user.Activo() {
		return nil, errors.New("usuario no encontrado o inactivo")
	}
	return &dto.SesionResponse{
		Username: user.Username,
		Roles:    user.RolNombres(),
	}, nil
}

func (s *authService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UsuarioResponse, len(users))
	for i := range users {
		resp[i] = dto.UsuarioToResponse(&users[i])
	}
	return resp, nil
}

func (s *authService) ActualizarUsuario(ctx context.Context, id uuid.UUID, req dto.UsuarioRequest) (*dto.UsuarioResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("usuario no encontrado")
	}

	if req.Username != "" && req.Username != user.Username {
		existing, err := s.repo.FindByUsername(ctx, req.Username)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if err == nil && existing != nil && existing.ID != id {
			return nil, errors.New("el username ya está en uso")
		}
		user.Username = req.Username
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	if req.Roles != nil {
		roles := make([]model.Rol, 0, len(req.Roles))
		for _, idStr := range req.Roles {
			rolID, err := uuid.Parse(idStr)
			if err != nil {
				return nil, errors.New("rol inválido")
			}
			rol, err := s.rolRepo.FindByID(ctx, rolID)
			if err != nil {
				return nil, errors.New("rol no encontrado")
			}
			roles = append(roles, *rol)
		}
		if err := s.repo.ReplaceRoles(ctx, user, roles); err != nil {
			return nil, err
		}
		user.Roles = roles
	}

	resp := dto.UsuarioToResponse(user)
	return &resp, nil
}

func (s *authService) EliminarUsuario(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("usuario no encontrado")
	}
	return s.repo.SoftDelete(ctx, id)
}

func (s *authService) generateToken(user *model.Usuario) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  user.ID.String(),
		"username": user.Username,
		"roles":    user.RolNombres(),
		"exp":      now.Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":      now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
