package usecase_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

type catalogoRepoFake struct {
	items    map[string]*entity.ItemCatalogo
	busqueda []string
}

func newCatalogoRepoFake(items ...*entity.ItemCatalogo) *catalogoRepoFake {
	r := &catalogoRepoFake{items: map[string]*entity.ItemCatalogo{}}
	for _, it := range items {
		r.items[it.Codigo] = it
	}
	return r
}

func (r *catalogoRepoFake) Create(item *entity.ItemCatalogo) error {
	if _, ok := r.items[item.Codigo]; ok {
		return domain.ErrDuplicate
	}
	r.items[item.Codigo] = item
	return nil
}

func (r *catalogoRepoFake) GetByCodigo(codigo string) (*entity.ItemCatalogo, error) {
	return r.items[codigo], nil
}

func (r *catalogoRepoFake) List(int, int) ([]*entity.ItemCatalogo, error) {
	out := make([]*entity.ItemCatalogo, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it)
	}
	return out, nil
}

func (r *catalogoRepoFake) ListActivos() ([]*entity.ItemCatalogo, error) {
	var out []*entity.ItemCatalogo
	for _, it := range r.items {
		if it.Activo {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *catalogoRepoFake) Update(item *entity.ItemCatalogo) error {
	if _, ok := r.items[item.Codigo]; !ok {
		return domain.ErrNotFound
	}
	r.items[item.Codigo] = item
	return nil
}

func (r *catalogoRepoFake) Delete(codigo string) error {
	if _, ok := r.items[codigo]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, codigo)
	return nil
}

func (r *catalogoRepoFake) Search(term string) ([]*entity.ItemCatalogo, error) {
	r.busqueda = append(r.busqueda, term)
	var out []*entity.ItemCatalogo
	for _, it := range r.items {
		if strings.Contains(it.Nombre, term) {
			out = append(out, it)
		}
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalogoCreate_SinCodigo_AsignaUUID(t *testing.T) {
	uc := usecase.NewCatalogoUseCase(newCatalogoRepoFake())

	out, err := uc.Create(dto.ItemCatalogoRequest{Nombre: "Barranco", Activo: true})
	require.NoError(t, err)

	_, err = uuid.Parse(out.Codigo)
	assert.NoError(t, err, "sin código en la petición el servidor asigna un UUID")
}

func TestCatalogoCreate_SinNombre_Rechazado(t *testing.T) {
	uc := usecase.NewCatalogoUseCase(newCatalogoRepoFake())

	_, err := uc.Create(dto.ItemCatalogoRequest{Codigo: "X", Nombre: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCatalogoGet_Inexistente_RetornaNotFound(t *testing.T) {
	uc := usecase.NewCatalogoUseCase(newCatalogoRepoFake())

	_, err := uc.GetByCodigo("NOEXISTE")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El término vacío no llega al repositorio: equivale a listar los activos.
func TestCatalogoSearch_TerminoVacio_ListaActivos(t *testing.T) {
	repo := newCatalogoRepoFake(
		&entity.ItemCatalogo{Codigo: "SJL", Nombre: "San Juan", Activo: true},
		&entity.ItemCatalogo{Codigo: "MIR", Nombre: "Miraflores", Activo: false},
	)
	uc := usecase.NewCatalogoUseCase(repo)

	out, err := uc.Search("   ")
	require.NoError(t, err)

	assert.Empty(t, repo.busqueda, "no debe ejecutarse una búsqueda real")
	require.Len(t, out, 1)
	assert.Equal(t, "SJL", out[0].Codigo)
}

func TestCatalogoUpdate_Inexistente_RetornaNotFound(t *testing.T) {
	uc := usecase.NewCatalogoUseCase(newCatalogoRepoFake())

	_, err := uc.Update("NOEXISTE", dto.ItemCatalogoRequest{Nombre: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogoUpdate_RecortaElNombre(t *testing.T) {
	repo := newCatalogoRepoFake(&entity.ItemCatalogo{Codigo: "SJL", Nombre: "San Juan", Activo: true})
	uc := usecase.NewCatalogoUseCase(repo)

	out, err := uc.Update("SJL", dto.ItemCatalogoRequest{Nombre: "  San Juan de Lurigancho  ", Activo: false})
	require.NoError(t, err)
	assert.Equal(t, "San Juan de Lurigancho", out.Nombre)
	assert.False(t, out.Activo)
}

func TestCatalogoDelete_PropagaNotFound(t *testing.T) {
	uc := usecase.NewCatalogoUseCase(newCatalogoRepoFake())
	assert.ErrorIs(t, uc.Delete("NOEXISTE"), domain.ErrNotFound)
}
