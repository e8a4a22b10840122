package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/auth"
	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Restaurante-api/pkg/jwt"
)

type usuarioRepoFake struct {
	porEmail map[string]*entity.Usuario
}

func (r *usuarioRepoFake) Create(u *entity.Usuario) error {
	if _, ok := r.porEmail[u.Email]; ok {
		return domain.ErrEmailRegistrado
	}
	r.porEmail[u.Email] = u
	return nil
}

func (r *usuarioRepoFake) GetByEmail(email string) (*entity.Usuario, error) {
	return r.porEmail[email], nil
}

func (r *usuarioRepoFake) GetByID(id string) (*entity.Usuario, error) {
	for _, u := range r.porEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func ucDePrueba() *auth.AuthUseCase {
	return auth.NewAuthUseCase(
		&usuarioRepoFake{porEmail: map[string]*entity.Usuario{}},
		auth.JWTConfig{Secret: "secret-de-test", ExpMinutes: 60, Issuer: "restaurante-test"},
	)
}

func TestAuth_RegisterYLogin(t *testing.T) {
	uc := ucDePrueba()

	reg, err := uc.Register(dto.RegisterRequest{
		Email: "ana@resto.pe", Password: "secreta123", Nombre: "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RolMozo, reg.Rol, "sin rol explícito se registra como mozo")

	out, err := uc.Login(dto.LoginRequest{Email: "ana@resto.pe", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	usuarioID, rol, err := pkgjwt.Parse("secret-de-test", out.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, usuarioID)
	assert.Equal(t, entity.RolMozo, rol)
}

func TestAuth_EmailDuplicado(t *testing.T) {
	uc := ucDePrueba()

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@resto.pe", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "ana@resto.pe", Password: "otra-clave-1"})
	assert.ErrorIs(t, err, domain.ErrEmailRegistrado)
}

func TestAuth_PasswordIncorrecta(t *testing.T) {
	uc := ucDePrueba()

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@resto.pe", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@resto.pe", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrCredenciales)
}

func TestAuth_UsuarioInexistente(t *testing.T) {
	uc := ucDePrueba()

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@resto.pe", Password: "loquesea"})
	assert.ErrorIs(t, err, domain.ErrCredenciales)
}
