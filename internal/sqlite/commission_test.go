package sqlite

import (
	"context"
	"sort"
	"testing"

	"github.com/rpggio/commissions/internal/domain/commission"
	"github.com/rpggio/commissions/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestCommissionRepository_CreateGet(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewCommissionRepository(db)

	c := &commission.Commission{
		Client:   "Ada",
		Title:    "Fox portrait",
		Type:     commission.TypePortrait,
		Price:    120.5,
		Deadline: "2026-11-01",
		Status:   commission.StatusInProgress,
		Notes:    "blue palette",
	}
	require.NoError(t, repo.Create(ctx, c))
	require.NotZero(t, c.ID)

	loaded, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, c, loaded)
}

func TestCommissionRepository_IDsAreNotReused(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewCommissionRepository(db)

	first := &commission.Commission{Client: "A", Title: "One"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Delete(ctx, first.ID))

	second := &commission.Commission{Client: "B", Title: "Two"}
	require.NoError(t, repo.Create(ctx, second))
	require.Greater(t, second.ID, first.ID)
}

func TestCommissionRepository_NullColumnsReadAsZero(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewCommissionRepository(db)

	result, err := db.ExecContext(ctx, `INSERT INTO commissions (client, title) VALUES (?, ?)`, "Ada", "Bare")
	require.NoError(t, err)
	id, err := result.LastInsertId()
	require.NoError(t, err)

	loaded, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, commission.Commission{ID: id, Client: "Ada", Title: "Bare"}, *loaded)
}

func TestCommissionRepository_GetMissing(t *testing.T) {
	db := NewTestDB(t)
	repo := NewCommissionRepository(db)

	_, err := repo.Get(context.Background(), 42)
	require.Equal(t, repository.ErrNotFound, err)
}

func TestCommissionRepository_Update(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewCommissionRepository(db)

	c := &commission.Commission{Client: "Ada", Title: "Draft", Status: commission.StatusNotStarted}
	require.NoError(t, repo.Create(ctx, c))

	c.Title = "Final"
	c.Price = 80
	c.Status = commission.StatusInProgress
	require.NoError(t, repo.Update(ctx, c))

	loaded, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, c, loaded)

	missing := *c
	missing.ID = c.ID + 100
	require.Equal(t, repository.ErrNotFound, repo.Update(ctx, &missing))
}

func TestCommissionRepository_DeleteIsIdempotent(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewCommissionRepository(db)

	c := &commission.Commission{Client: "Ada", Title: "Gone"}
	require.NoError(t, repo.Create(ctx, c))

	require.NoError(t, repo.Delete(ctx, c.ID))
	require.NoError(t, repo.Delete(ctx, c.ID))

	_, err := repo.Get(ctx, c.ID)
	require.Equal(t, repository.ErrNotFound, err)
}

func TestCommissionRepository_SetStatus(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewCommissionRepository(db)

	c := &commission.Commission{Client: "Ada", Title: "Emote pack", Type: commission.TypeEmote, Price: 45, Status: commission.StatusInProgress, Notes: "x3"}
	require.NoError(t, repo.Create(ctx, c))

	require.NoError(t, repo.SetStatus(ctx, c.ID, commission.StatusCompleted))
	require.NoError(t, repo.SetStatus(ctx, c.ID, commission.StatusCompleted), "repeat must still match the row")

	loaded, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	want := *c
	want.Status = commission.StatusCompleted
	require.Equal(t, want, *loaded)

	require.Equal(t, repository.ErrNotFound, repo.SetStatus(ctx, c.ID+1, commission.StatusCompleted))
}

func TestCommissionRepository_ListFilter(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewCommissionRepository(db)
	seedCommissions(t, repo)

	all, err := repo.List(ctx, commission.ListOptions{})
	require.NoError(t, err)
	require.Len(t, all, 5)

	for _, status := range []commission.Status{commission.StatusNotStarted, commission.StatusInProgress, commission.StatusCompleted, "On Hold"} {
		list, err := repo.List(ctx, commission.ListOptions{Status: status})
		require.NoError(t, err)

		var want []int64
		for _, c := range all {
			if c.Status == status {
				want = append(want, c.ID)
			}
		}
		sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

		var got []int64
		for _, c := range list {
			require.Equal(t, status, c.Status)
			got = append(got, c.ID)
		}
		sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
		require.Equal(t, want, got, "status %q", status)
	}

	none, err := repo.List(ctx, commission.ListOptions{Status: "completed"})
	require.NoError(t, err)
	require.Empty(t, none, "status filter is an exact match")
}

func TestCommissionRepository_ListSortKeys(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewCommissionRepository(db)
	seedCommissions(t, repo)

	for _, key := range commission.SortKeys() {
		list, err := repo.List(ctx, commission.ListOptions{Sort: key})
		require.NoError(t, err)
		require.Len(t, list, 5)
		for i := 1; i < len(list); i++ {
			require.LessOrEqual(t, key.Compare(list[i-1], list[i]), 0, "key %s at %d", key, i)
			if key.Compare(list[i-1], list[i]) == 0 {
				require.Less(t, list[i-1].ID, list[i].ID, "ties keep storage order")
			}
		}
	}
}

func TestCommissionRepository_ListUnknownSortFallsBackToDeadline(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewCommissionRepository(db)
	seedCommissions(t, repo)

	byDeadline, err := repo.List(ctx, commission.ListOptions{Sort: commission.SortByDeadline})
	require.NoError(t, err)

	for _, key := range []commission.SortKey{"", "notes", "price DESC", "id; DROP TABLE commissions"} {
		list, err := repo.List(ctx, commission.ListOptions{Sort: key})
		require.NoError(t, err)
		require.Equal(t, byDeadline, list, "key %q", key)
	}
}

func TestCommissionRepository_ListCaseInsensitiveText(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewCommissionRepository(db)

	for _, client := range []string{"bob", "Alice", "carol", "Bea"} {
		require.NoError(t, repo.Create(ctx, &commission.Commission{Client: client, Title: "t"}))
	}

	list, err := repo.List(ctx, commission.ListOptions{Sort: commission.SortByClient})
	require.NoError(t, err)

	var clients []string
	for _, c := range list {
		clients = append(clients, c.Client)
	}
	require.Equal(t, []string{"Alice", "Bea", "bob", "carol"}, clients)
}

func TestCommissionRepository_ListEmpty(t *testing.T) {
	db := NewTestDB(t)
	repo := NewCommissionRepository(db)

	list, err := repo.List(context.Background(), commission.ListOptions{Status: commission.StatusCompleted})
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)
}

func seedCommissions(t *testing.T, repo *CommissionRepository) {
	t.Helper()
	ctx := context.Background()
	seed := []*commission.Commission{
		{Client: "zed", Title: "Castle", Type: commission.TypeEnvironment, Price: 300, Deadline: "2026-12-01", Status: commission.StatusNotStarted},
		{Client: "Amy", Title: "badge", Type: commission.TypeChibi, Price: 40, Deadline: "2026-10-30", Status: commission.StatusInProgress},
		{Client: "bo", Title: "Avatar", Type: commission.TypePortrait, Price: 40, Deadline: "2026-10-30", Status: commission.StatusCompleted},
		{Client: "Cy", Title: "Knight", Price: -5, Status: commission.StatusCompleted},
		{Client: "amy", Title: "Dragon", Type: commission.TypeFullBody, Price: 150, Deadline: "2027-01-15", Status: "On Hold"},
	}
	for _, c := range seed {
		require.NoError(t, repo.Create(ctx, c))
	}
}
