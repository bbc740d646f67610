package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/example/task/internal/adapters/sqlite"
	"github.com/example/task/internal/models"
)

func exp(v int64) *int64 { return &v }

func taskNames(p *models.Project) []string {
	out := make([]string, len(p.Tasks))
	for i, t := range p.Tasks {
		out[i] = t.Name
	}
	return out
}

func TestStore_LoadEmpty(t *testing.T) {
	store := sqlite.NewStore(setupTestDB(t))

	state, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(state.Global.Tasks) != 0 {
		t.Errorf("expected empty global bucket, got %d tasks", len(state.Global.Tasks))
	}
	if len(state.Projects) != 0 {
		t.Errorf("expected no projects, got %d", len(state.Projects))
	}
}

func TestStore_LoadAssignsPositionalIDs(t *testing.T) {
	testDB := setupTestDB(t)
	a := seedProject(t, testDB, "/a")
	b := seedProject(t, testDB, "/b")
	// Interleave rows so that row ids and positions differ.
	seedTask(t, testDB, a, "a1")
	seedTask(t, testDB, b, "b1")
	seedTask(t, testDB, a, "a2")

	state, err := sqlite.NewStore(testDB).Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	pa := state.Projects["/a"]
	if len(pa.Tasks) != 2 {
		t.Fatalf("expected 2 tasks in /a, got %d", len(pa.Tasks))
	}
	if pa.Tasks[0].ID != 1 || pa.Tasks[1].ID != 2 {
		t.Errorf("expected ids [1 2], got [%d %d]", pa.Tasks[0].ID, pa.Tasks[1].ID)
	}
	if pa.Tasks[1].Name != "a2" {
		t.Errorf("expected 'a2', got '%s'", pa.Tasks[1].Name)
	}
	if state.Projects["/b"].Tasks[0].ID != 1 {
		t.Errorf("expected /b task to have id 1, got %d", state.Projects["/b"].Tasks[0].ID)
	}
}

func TestStore_AppendAndUpdateTask(t *testing.T) {
	ctx := context.Background()
	store := sqlite.NewStore(setupTestDB(t))

	if err := store.AppendTask(ctx, models.GlobalKey, models.Task{Name: "first"}); err != nil {
		t.Fatalf("AppendTask failed: %v", err)
	}
	if err := store.AppendTask(ctx, models.GlobalKey, models.Task{Name: "second", Expiration: exp(1790000000)}); err != nil {
		t.Fatalf("AppendTask failed: %v", err)
	}

	err := store.UpdateTask(ctx, models.GlobalKey, models.Task{ID: 1, Name: "renamed", Finished: true, Expiration: exp(5)})
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}

	state, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	first := state.Global.Tasks[0]
	if first.Name != "renamed" || !first.Finished || first.Expiration == nil || *first.Expiration != 5 {
		t.Errorf("unexpected first task after update: %+v", first)
	}
	second := state.Global.Tasks[1]
	if second.Expiration == nil || *second.Expiration != 1790000000 {
		t.Errorf("expected second task expiration 1790000000, got %v", second.Expiration)
	}

	err = store.UpdateTask(ctx, models.GlobalKey, models.Task{ID: 3, Name: "x"})
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing position, got %v", err)
	}
}

func TestStore_UpdateTaskClearsExpiration(t *testing.T) {
	ctx := context.Background()
	store := sqlite.NewStore(setupTestDB(t))

	if err := store.AppendTask(ctx, models.GlobalKey, models.Task{Name: "x", Expiration: exp(10)}); err != nil {
		t.Fatalf("AppendTask failed: %v", err)
	}
	if err := store.UpdateTask(ctx, models.GlobalKey, models.Task{ID: 1, Name: "x"}); err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}

	state, _ := store.Load(ctx)
	if state.Global.Tasks[0].Expiration != nil {
		t.Errorf("expected expiration to be cleared, got %d", *state.Global.Tasks[0].Expiration)
	}
}

func TestStore_RemoveTaskRenumbers(t *testing.T) {
	ctx := context.Background()
	store := sqlite.NewStore(setupTestDB(t))

	for _, name := range []string{"first", "second", "third"} {
		if err := store.AppendTask(ctx, models.GlobalKey, models.Task{Name: name}); err != nil {
			t.Fatalf("AppendTask failed: %v", err)
		}
	}
	if err := store.RemoveTask(ctx, models.GlobalKey, 2); err != nil {
		t.Fatalf("RemoveTask failed: %v", err)
	}

	state, _ := store.Load(ctx)
	got := taskNames(state.Global)
	if len(got) != 2 || got[0] != "first" || got[1] != "third" {
		t.Errorf("expected [first third], got %v", got)
	}
	if state.Global.Tasks[1].ID != 2 {
		t.Errorf("expected third task renumbered to 2, got %d", state.Global.Tasks[1].ID)
	}

	if err := store.RemoveTask(ctx, models.GlobalKey, 3); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := store.RemoveTask(ctx, models.GlobalKey, 0); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("expected ErrNotFound for position 0, got %v", err)
	}
}

func TestStore_ProjectLifecycle(t *testing.T) {
	ctx := context.Background()
	testDB := setupTestDB(t)
	store := sqlite.NewStore(testDB)

	if err := store.CreateProject(ctx, "/src/api"); err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}
	if err := store.CreateProject(ctx, "/src/api"); !errors.Is(err, models.ErrProjectExists) {
		t.Errorf("expected ErrProjectExists, got %v", err)
	}
	if err := store.AppendTask(ctx, "/src/api", models.Task{Name: "x"}); err != nil {
		t.Fatalf("AppendTask failed: %v", err)
	}

	if err := store.DeleteProject(ctx, "/src/api"); err != nil {
		t.Fatalf("DeleteProject failed: %v", err)
	}
	if n := countRows(t, testDB, "tasks"); n != 0 {
		t.Errorf("expected cascade to delete tasks, %d left", n)
	}

	if err := store.DeleteProject(ctx, "/src/api"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := store.DeleteProject(ctx, models.GlobalKey); !errors.Is(err, models.ErrGlobalProject) {
		t.Errorf("expected ErrGlobalProject, got %v", err)
	}
	if err := store.AppendTask(ctx, "/nope", models.Task{Name: "x"}); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown project, got %v", err)
	}
}

func TestStore_MutationsAreImmediate(t *testing.T) {
	ctx := context.Background()
	testDB := setupTestDB(t)
	store := sqlite.NewStore(testDB)

	if err := store.AppendTask(ctx, models.GlobalKey, models.Task{Name: "x"}); err != nil {
		t.Fatalf("AppendTask failed: %v", err)
	}

	// No Flush: the row is already committed.
	if n := countRows(t, testDB, "tasks"); n != 1 {
		t.Errorf("expected 1 committed task before Flush, got %d", n)
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := sqlite.NewStore(setupTestDB(t))

	state := models.NewState()
	state.Global.Tasks = []models.Task{
		{ID: 1, Name: "g1", Expiration: exp(1790000000)},
		{ID: 2, Name: "g2", Finished: true},
	}
	state.Projects["/b"] = &models.Project{Key: "/b", Tasks: []models.Task{{ID: 1, Name: "b1"}}}
	state.Projects["/a"] = &models.Project{Key: "/a", Tasks: []models.Task{}}

	if err := store.Save(ctx, state); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := store.Save(ctx, loaded); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}
	reloaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}

	for _, s := range []*models.State{loaded, reloaded} {
		if got := taskNames(s.Global); len(got) != 2 || got[0] != "g1" || got[1] != "g2" {
			t.Errorf("unexpected global tasks %v", got)
		}
		if !s.Global.Tasks[1].Finished {
			t.Error("expected g2 to stay finished")
		}
		if e := s.Global.Tasks[0].Expiration; e == nil || *e != 1790000000 {
			t.Errorf("expected g1 expiration to survive, got %v", e)
		}
		if len(s.Projects) != 2 {
			t.Errorf("expected 2 projects, got %d", len(s.Projects))
		}
		if got := taskNames(s.Projects["/b"]); len(got) != 1 || got[0] != "b1" {
			t.Errorf("unexpected /b tasks %v", got)
		}
	}
}
