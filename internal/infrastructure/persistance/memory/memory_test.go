package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hapkiduki/shipping-console/internal/domain/entity"
	"github.com/hapkiduki/shipping-console/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDraft(t *testing.T, owner string) *entity.ShipmentDraft {
	t.Helper()
	d, err := entity.NewShipmentDraft(owner)
	require.NoError(t, err)
	return d
}

func TestDraftRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewDraftRepository()
	d := newDraft(t, "owner")

	require.NoError(t, repo.Create(ctx, d))
	assert.ErrorIs(t, repo.Create(ctx, d), repository.ErrDuplicateID)

	got, err := repo.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, d.ID, got.ID)

	updated, err := repo.Update(ctx, d.ID, func(draft *entity.ShipmentDraft) error {
		draft.AddPiece()
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Pieces.Len())

	deleted, err := repo.Delete(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted.Pieces.Len())

	_, err = repo.GetByID(ctx, d.ID)
	assert.ErrorIs(t, err, repository.ErrDraftNotFound)
	_, err = repo.Delete(ctx, d.ID)
	assert.ErrorIs(t, err, repository.ErrDraftNotFound)
}

func TestDraftRepository_UpdateErrorDiscardsChanges(t *testing.T) {
	ctx := context.Background()
	repo := NewDraftRepository()
	d := newDraft(t, "owner")
	require.NoError(t, repo.Create(ctx, d))

	boom := errors.New("boom")
	_, err := repo.Update(ctx, d.ID, func(draft *entity.ShipmentDraft) error {
		draft.AddPiece()
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := repo.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Pieces.Len())
}

func TestDraftRepository_ReturnedDraftIsDetached(t *testing.T) {
	ctx := context.Background()
	repo := NewDraftRepository()
	d := newDraft(t, "owner")
	require.NoError(t, repo.Create(ctx, d))

	got, err := repo.GetByID(ctx, d.ID)
	require.NoError(t, err)
	got.AddPiece()
	got.Reference = "changed"

	again, err := repo.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Pieces.Len())
	assert.Empty(t, again.Reference)
}

func TestDraftRepository_ConcurrentUpdatesAreSerialized(t *testing.T) {
	ctx := context.Background()
	repo := NewDraftRepository()
	d := newDraft(t, "owner")
	require.NoError(t, repo.Create(ctx, d))

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Update(ctx, d.ID, func(draft *entity.ShipmentDraft) error {
				draft.AddPiece()
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := repo.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, got.Pieces.Len())
}

func TestDraftRepository_DeleteByOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewDraftRepository()
	require.NoError(t, repo.Create(ctx, newDraft(t, "a")))
	require.NoError(t, repo.Create(ctx, newDraft(t, "a")))
	require.NoError(t, repo.Create(ctx, newDraft(t, "b")))

	n, err := repo.DeleteByOwner(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestDraftRepository_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDraftRepository().GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()

	live := entity.NewSession(entity.User{Username: "admin"}, time.Hour)
	stale := entity.NewSession(entity.User{Username: "admin"}, -time.Minute)
	require.NoError(t, repo.Save(ctx, live))
	require.NoError(t, repo.Save(ctx, stale))
	assert.ErrorIs(t, repo.Save(ctx, &entity.Session{}), repository.ErrInvalidInput)

	got, err := repo.GetByToken(ctx, live.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", got.User.Username)

	removed, err := repo.DeleteExpired(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, []string{stale.Token}, removed)

	require.NoError(t, repo.Delete(ctx, live.Token))
	_, err = repo.GetByToken(ctx, live.Token)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func newBusinessUnitRepo() *BusinessUnitRepository {
	return NewBusinessUnitRepository(SeedBusinessUnits(), BusinessUnitTypes(), BusinessUnitStatuses())
}

func TestBusinessUnitRepository_Search(t *testing.T) {
	ctx := context.Background()
	from := mustTime("2024-02-01T00:00:00Z")
	to := mustTime("2024-03-01T23:59:59Z")

	tests := []struct {
		name      string
		filter    repository.BusinessUnitFilter
		wantCodes []string
		wantTotal int64
	}{
		{"all", repository.BusinessUnitFilter{Page: 1, PageSize: 10}, []string{"BU001", "BU002", "BU003", "BU004", "BU005"}, 5},
		{"search name", repository.BusinessUnitFilter{Search: "DIVISION", Page: 1, PageSize: 10}, []string{"BU002", "BU004"}, 2},
		{"search email", repository.BusinessUnitFilter{Search: "central@", Page: 1, PageSize: 10}, []string{"BU003"}, 1},
		{"type", repository.BusinessUnitFilter{Type: "regional", Page: 1, PageSize: 10}, []string{"BU001", "BU002"}, 2},
		{"status", repository.BusinessUnitFilter{Status: entity.BusinessUnitStatusInactive, Page: 1, PageSize: 10}, []string{"BU005"}, 1},
		{"date range", repository.BusinessUnitFilter{CreatedFrom: &from, CreatedTo: &to, Page: 1, PageSize: 10}, []string{"BU002", "BU003", "BU004"}, 3},
		{"second page", repository.BusinessUnitFilter{Page: 2, PageSize: 2}, []string{"BU003", "BU004"}, 5},
		{"past the end", repository.BusinessUnitFilter{Page: 9, PageSize: 2}, []string{}, 5},
		{"huge page", repository.BusinessUnitFilter{Page: 92233720368547760, PageSize: 100}, []string{}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			units, total, err := newBusinessUnitRepo().Search(ctx, tt.filter)
			require.NoError(t, err)

			codes := make([]string, 0, len(units))
			for _, u := range units {
				codes = append(codes, u.Code)
			}
			assert.Equal(t, tt.wantCodes, codes)
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}

func TestBusinessUnitRepository_CodesAreNotReused(t *testing.T) {
	ctx := context.Background()
	repo := newBusinessUnitRepo()

	require.NoError(t, repo.Delete(ctx, "BU005"))
	assert.ErrorIs(t, repo.Delete(ctx, "BU005"), repository.ErrBusinessUnitNotFound)

	unit := &entity.BusinessUnit{Name: "South Hub"}
	require.NoError(t, repo.Create(ctx, unit))
	assert.Equal(t, "BU006", unit.Code)

	got, err := repo.GetByCode(ctx, "BU006")
	require.NoError(t, err)
	assert.Equal(t, "South Hub", got.Name)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}

func TestCustomerRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerRepository(SeedCustomers(), SeedCountries())

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	c, err := entity.NewCustomer("Ana", "Gómez", "ana@example.com")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, c))
	assert.Equal(t, "3", c.ID)
	assert.Equal(t, "CUST003", c.Identifier)

	updated, err := repo.Update(ctx, "3", func(cust *entity.Customer) error {
		cust.Phone = "+57 1"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "+57 1", updated.Phone)

	_, err = repo.Update(ctx, "99", func(*entity.Customer) error { return nil })
	assert.ErrorIs(t, err, repository.ErrCustomerNotFound)

	_, err = repo.GetByID(ctx, "99")
	assert.ErrorIs(t, err, repository.ErrCustomerNotFound)

	countries, err := repo.Countries(ctx)
	require.NoError(t, err)
	assert.Len(t, countries, 2)
}

func TestCustomerRepository_SeedIsCopied(t *testing.T) {
	ctx := context.Background()
	seed := SeedCustomers()
	repo := NewCustomerRepository(seed, nil)

	seed[0].Contracts[0].ContractNumber = "mutated"

	got, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "CNT001", got.Contracts[0].ContractNumber)
}
