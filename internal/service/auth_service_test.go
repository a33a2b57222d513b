package service

import (
	"context"
	"testing"

	"cuadre/internal/config"
	"cuadre/internal/dto"
	"cuadre/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// usuarioRepoFake is an in-memory UsuarioRepository. FindByUsername mirrors
// the real query: inactive users do not resolve.
type usuarioRepoFake struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func nuevoUsuarioRepoFake() *usuarioRepoFake {
	return &usuarioRepoFake{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *usuarioRepoFake) Create(_ context.Context, u *model.Usuario) error {
	u.ID = uuid.New()
	copia := *u
	r.usuarios[u.ID] = &copia
	return nil
}

func (r *usuarioRepoFake) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Username == username && u.Activo {
			copia := *u
			return &copia, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *usuarioRepoFake) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *u
	return &copia, nil
}

func (r *usuarioRepoFake) List(_ context.Context) ([]model.Usuario, error) {
	var activos []model.Usuario
	for _, u := range r.usuarios {
		if u.Activo {
			activos = append(activos, *u)
		}
	}
	return activos, nil
}

func (r *usuarioRepoFake) Update(_ context.Context, u *model.Usuario) error {
	if _, ok := r.usuarios[u.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copia := *u
	r.usuarios[u.ID] = &copia
	return nil
}

func (r *usuarioRepoFake) SoftDelete(_ context.Context, id uuid.UUID) error {
	u, ok := r.usuarios[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Activo = false
	return nil
}

func configPrueba() *config.Config {
	return &config.Config{
		JWTSecret:          "secreto-de-prueba",
		JWTExpirationHours: 1,
		JWTRefreshHours:    24,
	}
}

func sembrarUsuario(t *testing.T, repo *usuarioRepoFake, username, password, rol string, activo bool) uuid.UUID {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.Usuario{
		Username:     username,
		Nombre:       "Usuario de Prueba",
		PasswordHash: string(hash),
		Rol:          rol,
		Activo:       activo,
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u.ID
}

func TestAuthService_LoginOK(t *testing.T) {
	repo := nuevoUsuarioRepoFake()
	sembrarUsuario(t, repo, "auditora", "clave-segura", "auditor", true)
	svc := NewAuthService(repo, configPrueba())

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "auditora", Password: "clave-segura"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
	assert.Equal(t, "auditor", resp.User.Rol)

	// The role travels inside the token: it is what RequireRole gates on.
	token, err := jwt.Parse(resp.AccessToken, func(*jwt.Token) (interface{}, error) {
		return []byte("secreto-de-prueba"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "auditor", claims["rol"])
	assert.Equal(t, "auditora", claims["username"])
}

func TestAuthService_LoginPasswordIncorrecta(t *testing.T) {
	repo := nuevoUsuarioRepoFake()
	sembrarUsuario(t, repo, "auditora", "clave-segura", "auditor", true)
	svc := NewAuthService(repo, configPrueba())

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "auditora", Password: "otra-clave"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credenciales invalidas")
}

func TestAuthService_LoginUsuarioInactivo(t *testing.T) {
	repo := nuevoUsuarioRepoFake()
	sembrarUsuario(t, repo, "exempleado", "clave-segura", "auditor", false)
	svc := NewAuthService(repo, configPrueba())

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "exempleado", Password: "clave-segura"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credenciales invalidas")
}

func TestAuthService_Refresh(t *testing.T) {
	repo := nuevoUsuarioRepoFake()
	id := sembrarUsuario(t, repo, "auditora", "clave-segura", "auditor", true)
	svc := NewAuthService(repo, configPrueba())

	login, err := svc.Login(context.Background(), dto.LoginRequest{Username: "auditora", Password: "clave-segura"})
	require.NoError(t, err)

	renovado, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, renovado.AccessToken)
	assert.Equal(t, "auditora", renovado.User.Username)

	// Deactivating the user invalidates refresh even with a valid token.
	require.NoError(t, svc.DesactivarUsuario(context.Background(), id))
	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inactivo")
}

func TestAuthService_RefreshTokenInvalido(t *testing.T) {
	svc := NewAuthService(nuevoUsuarioRepoFake(), configPrueba())

	_, err := svc.Refresh(context.Background(), "no-es-un-jwt")
	require.Error(t, err)
}

func TestAuthService_CrearUsuario(t *testing.T) {
	repo := nuevoUsuarioRepoFake()
	svc := NewAuthService(repo, configPrueba())

	resp, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Username: "nuevo",
		Nombre:   "Nuevo Auditor",
		Password: "clave-larga-8",
		Rol:      "auditor",
	})
	require.NoError(t, err)
	assert.True(t, resp.Activo)
	assert.Equal(t, "auditor", resp.Rol)

	// The password is stored hashed, never verbatim.
	guardado, err := repo.FindByUsername(context.Background(), "nuevo")
	require.NoError(t, err)
	assert.NotEqual(t, "clave-larga-8", guardado.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(guardado.PasswordHash), []byte("clave-larga-8")))
}

func TestAuthService_ListarSoloActivos(t *testing.T) {
	repo := nuevoUsuarioRepoFake()
	sembrarUsuario(t, repo, "activa", "clave-segura", "auditor", true)
	sembrarUsuario(t, repo, "inactiva", "clave-segura", "auditor", false)
	svc := NewAuthService(repo, configPrueba())

	resp, err := svc.ListarUsuarios(context.Background())
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "activa", resp[0].Username)
}
