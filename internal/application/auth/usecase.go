package auth

import (
	"context"
	"fmt"

	"github.com/jhoicas/invoices-dashboard/internal/application/dto"
	"github.com/jhoicas/invoices-dashboard/internal/application/validation"
	"github.com/jhoicas/invoices-dashboard/internal/domain"
	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoices-dashboard/internal/domain/repository"
	"github.com/jhoicas/invoices-dashboard/pkg/jwt"
	"github.com/jhoicas/invoices-dashboard/pkg/logger"
)

// MsgFetchUserFailed mensaje fijo cuando la lectura del usuario falla.
const MsgFetchUserFailed = "Failed to fetch user."

// PasswordComparer compara una contraseña en texto plano contra su hash salado.
type PasswordComparer interface {
	Compare(plain, hash string) bool
}

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase autorización por credenciales y emisión de la sesión.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	passwords PasswordComparer
	validator *validation.Validator
	jwtCfg    JWTConfig
	log       *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, passwords PasswordComparer, v *validation.Validator, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		userRepo:  userRepo,
		passwords: passwords,
		validator: v,
		jwtCfg:    jwtCfg,
		log:       log.Component("auth"),
	}
}

// Authorize verifica una bolsa de credenciales no confiable.
//
// Retorna:
//   - (user, nil) si email y password son correctos.
//   - (nil, nil)  denegación: forma inválida, usuario inexistente o password incorrecto.
//     El motivo solo queda en el log.
//   - *domain.FatalError si la lectura del usuario falla.
func (uc *AuthUseCase) Authorize(ctx context.Context, candidate map[string]any) (*entity.User, error) {
	creds := dto.Credentials{
		Email:    stringField(candidate, "email"),
		Password: stringField(candidate, "password"),
	}
	errs, err := uc.validator.Struct(creds, nil)
	if err != nil || errs != nil {
		uc.log.Warn().Interface("errors", errs).AnErr("cause", err).Msg("Invalid credentials")
		return nil, nil
	}

	user, err := uc.userRepo.GetByEmail(ctx, creds.Email)
	if err != nil {
		uc.log.Error().Err(err).Msg("Database Error")
		return nil, domain.NewFatalError(MsgFetchUserFailed, err)
	}
	if user == nil {
		uc.log.Info().Str("email", creds.Email).Msg("User not found")
		return nil, nil
	}
	if !uc.passwords.Compare(creds.Password, user.PasswordHash) {
		uc.log.Info().Str("email", creds.Email).Msg("Password is invalid")
		return nil, nil
	}
	return user, nil
}

// Login autoriza las credenciales y emite el token de sesión.
// Devuelve domain.ErrUnauthorized ante cualquier denegación.
func (uc *AuthUseCase) Login(ctx context.Context, candidate map[string]any) (*dto.LoginResponse, error) {
	user, err := uc.Authorize(ctx, candidate)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email},
	}, nil
}

// stringField devuelve el valor si es string; cualquier otro tipo cuenta como ausente.
func stringField(bag map[string]any, key string) string {
	s, _ := bag[key].(string)
	return s
}
