package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/store-management-api/internal/application/dto"
	"github.com/jhoicas/store-management-api/internal/application/usecase"
	"github.com/jhoicas/store-management-api/internal/domain"
	"github.com/jhoicas/store-management-api/internal/domain/entity"
)

// fakeGenericRepo in-memory GenericRepository keyed by name.
type fakeGenericRepo struct {
	byName map[string]*entity.Generic
}

func (f *fakeGenericRepo) Create(_ context.Context, g *entity.Generic) error {
	g.ID = "65f000000000000000000002"
	f.byName[g.Name] = g
	return nil
}

func (f *fakeGenericRepo) FindAll(context.Context) ([]*entity.Generic, error) {
	var out []*entity.Generic
	for _, g := range f.byName {
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeGenericRepo) FindByName(_ context.Context, name string) (*entity.Generic, error) {
	return f.byName[name], nil
}

func (f *fakeGenericRepo) Delete(_ context.Context, id string) (bool, error) {
	for name, g := range f.byName {
		if g.ID == id {
			delete(f.byName, name)
			return true, nil
		}
	}
	return false, nil
}

func TestGenericCreate_SetsCreatedDate(t *testing.T) {
	repo := &fakeGenericRepo{byName: map[string]*entity.Generic{}}
	uc := usecase.NewGenericUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateGenericRequest{Generic: "Omeprazole"})
	require.NoError(t, err)
	assert.Equal(t, "Omeprazole", out.Generic)
	assert.WithinDuration(t, time.Now(), out.CreatedDate, time.Minute)
}

// The same name cannot be registered twice.
func TestGenericCreate_DuplicateRejected(t *testing.T) {
	repo := &fakeGenericRepo{byName: map[string]*entity.Generic{}}
	uc := usecase.NewGenericUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateGenericRequest{Generic: "Omeprazole"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateGenericRequest{Generic: "Omeprazole"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestGenericCreate_EmptyNameRejected(t *testing.T) {
	uc := usecase.NewGenericUseCase(&fakeGenericRepo{byName: map[string]*entity.Generic{}})

	_, err := uc.Create(context.Background(), dto.CreateGenericRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGenericDelete(t *testing.T) {
	repo := &fakeGenericRepo{byName: map[string]*entity.Generic{}}
	uc := usecase.NewGenericUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateGenericRequest{Generic: "Ibuprofen"})
	require.NoError(t, err)

	found, err := uc.Delete(context.Background(), out.ID)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = uc.Delete(context.Background(), out.ID)
	require.NoError(t, err)
	assert.False(t, found, "second delete must report absent")
}
