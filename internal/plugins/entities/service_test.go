package entities

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MrFrey75/WorldBuilder/internal/apperror"
)

// mockEntityRepo implements EntityRepository for testing.
type mockEntityRepo struct {
	createFn      func(ctx context.Context, e *Entity) error
	findByIDFn    func(ctx context.Context, id string) (*Entity, error)
	findBySlugFn  func(ctx context.Context, universeID, slug string) (*Entity, error)
	slugExistsFn  func(ctx context.Context, universeID, slug string) (bool, error)
	listFn        func(ctx context.Context, universeID string, opts ListOptions) ([]Entity, int, error)
	countByKindFn func(ctx context.Context, universeID string) (map[Kind]int, error)
	updateFn      func(ctx context.Context, e *Entity) error
	deleteFn      func(ctx context.Context, id string) error
}

func (m *mockEntityRepo) Create(ctx context.Context, e *Entity) error {
	if m.createFn != nil {
		return m.createFn(ctx, e)
	}
	return nil
}

func (m *mockEntityRepo) FindByID(ctx context.Context, id string) (*Entity, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockEntityRepo) FindBySlug(ctx context.Context, universeID, slug string) (*Entity, error) {
	if m.findBySlugFn != nil {
		return m.findBySlugFn(ctx, universeID, slug)
	}
	return nil, nil
}

func (m *mockEntityRepo) SlugExists(ctx context.Context, universeID, slug string) (bool, error) {
	if m.slugExistsFn != nil {
		return m.slugExistsFn(ctx, universeID, slug)
	}
	return false, nil
}

func (m *mockEntityRepo) List(ctx context.Context, universeID string, opts ListOptions) ([]Entity, int, error) {
	if m.listFn != nil {
		return m.listFn(ctx, universeID, opts)
	}
	return nil, 0, nil
}

func (m *mockEntityRepo) CountByKind(ctx context.Context, universeID string) (map[Kind]int, error) {
	if m.countByKindFn != nil {
		return m.countByKindFn(ctx, universeID)
	}
	return map[Kind]int{}, nil
}

func (m *mockEntityRepo) Update(ctx context.Context, e *Entity) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, e)
	}
	return nil
}

func (m *mockEntityRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// assertAppError checks that an error is an AppError with the expected code.
func assertAppError(t *testing.T, err error, expectedCode int) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T: %v", err, err)
	}
	if appErr.Code != expectedCode {
		t.Errorf("expected status code %d, got %d (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

func newTestService(repo EntityRepository) EntityService {
	return NewEntityService(repo, nil, 0)
}

// --- Slugify Tests ---

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Gandalf", "gandalf"},
		{"The Grey Havens", "the-grey-havens"},
		{"  Minas Tirith  ", "minas-tirith"},
		{"Khazad-dûm", "khazad-d-m"},
		{"!!!", "entity"},
		{"", "entity"},
		{"Orc #3 (scarred)", "orc-3-scarred"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Slugify(tt.input)
			if got != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// --- Create Tests ---

func TestCreate_Success(t *testing.T) {
	var created *Entity
	repo := &mockEntityRepo{
		createFn: func(_ context.Context, e *Entity) error {
			created = e
			return nil
		},
	}
	svc := newTestService(repo)

	e, err := svc.Create(context.Background(), CreateEntityInput{
		UniverseID: "uni-1",
		Kind:       KindFigure,
		Name:       "Gandalf the Grey",
		Attributes: map[string]any{"race": "Maia"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Slug != "gandalf-the-grey" {
		t.Errorf("expected slug 'gandalf-the-grey', got %q", e.Slug)
	}
	if created == nil {
		t.Fatal("expected repository create to be called")
	}
	if created.Attributes["race"] != "Maia" {
		t.Errorf("expected attributes to be passed through, got %v", created.Attributes)
	}
}

func TestCreate_SlugDedup(t *testing.T) {
	taken := map[string]bool{"gandalf": true, "gandalf-2": true}
	repo := &mockEntityRepo{
		slugExistsFn: func(_ context.Context, _ string, slug string) (bool, error) {
			return taken[slug], nil
		},
	}
	svc := newTestService(repo)

	e, err := svc.Create(context.Background(), CreateEntityInput{
		UniverseID: "uni-1",
		Kind:       KindFigure,
		Name:       "Gandalf",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Slug != "gandalf-3" {
		t.Errorf("expected slug 'gandalf-3', got %q", e.Slug)
	}
}

func TestCreate_SlugRandomFallback(t *testing.T) {
	repo := &mockEntityRepo{
		slugExistsFn: func(_ context.Context, _ string, _ string) (bool, error) {
			return true, nil
		},
	}
	svc := newTestService(repo)

	e, err := svc.Create(context.Background(), CreateEntityInput{
		UniverseID: "uni-1",
		Kind:       KindFigure,
		Name:       "Gandalf",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(e.Slug, "gandalf-") {
		t.Errorf("expected random-suffixed slug, got %q", e.Slug)
	}
	// 8 hex characters after the base.
	suffix := strings.TrimPrefix(e.Slug, "gandalf-")
	if len(suffix) != 8 {
		t.Errorf("expected 8-character random suffix, got %q", suffix)
	}
}

func TestCreate_InvalidKind(t *testing.T) {
	svc := newTestService(&mockEntityRepo{})
	_, err := svc.Create(context.Background(), CreateEntityInput{
		UniverseID: "uni-1",
		Kind:       Kind("dragon"),
		Name:       "Smaug",
	})
	assertAppError(t, err, 400)
}

func TestCreate_EmptyName(t *testing.T) {
	svc := newTestService(&mockEntityRepo{})
	_, err := svc.Create(context.Background(), CreateEntityInput{
		UniverseID: "uni-1",
		Kind:       KindFigure,
		Name:       "  ",
	})
	assertAppError(t, err, 400)
}

func TestCreate_SanitizesDescription(t *testing.T) {
	var created *Entity
	repo := &mockEntityRepo{
		createFn: func(_ context.Context, e *Entity) error {
			created = e
			return nil
		},
	}
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), CreateEntityInput{
		UniverseID:  "uni-1",
		Kind:        KindLore,
		Name:        "The One Ring",
		Description: `<p>Forged in secret</p><script>alert("x")</script>`,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Description == nil {
		t.Fatal("expected a description")
	}
	if strings.Contains(*created.Description, "<script") {
		t.Errorf("expected script tag to be stripped, got %q", *created.Description)
	}
	if !strings.Contains(*created.Description, "Forged in secret") {
		t.Errorf("expected safe content to survive, got %q", *created.Description)
	}
}

func TestCreate_ParentInDifferentUniverse(t *testing.T) {
	repo := &mockEntityRepo{
		findByIDFn: func(_ context.Context, id string) (*Entity, error) {
			return &Entity{ID: id, UniverseID: "other-uni"}, nil
		},
	}
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), CreateEntityInput{
		UniverseID: "uni-1",
		Kind:       KindLocation,
		Name:       "Bree",
		ParentID:   "parent-1",
	})
	assertAppError(t, err, 400)
}

// --- Update Tests ---

func TestUpdate_RenameRegeneratesSlug(t *testing.T) {
	repo := &mockEntityRepo{
		findByIDFn: func(_ context.Context, _ string) (*Entity, error) {
			return &Entity{ID: "ent-1", UniverseID: "uni-1", Kind: KindFigure,
				Name: "Strider", Slug: "strider"}, nil
		},
	}
	svc := newTestService(repo)

	e, err := svc.Update(context.Background(), "ent-1", UpdateEntityInput{Name: "Aragorn"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Slug != "aragorn" {
		t.Errorf("expected regenerated slug 'aragorn', got %q", e.Slug)
	}
}

func TestUpdate_SameNameKeepsSlug(t *testing.T) {
	repo := &mockEntityRepo{
		findByIDFn: func(_ context.Context, _ string) (*Entity, error) {
			return &Entity{ID: "ent-1", UniverseID: "uni-1", Kind: KindFigure,
				Name: "Strider", Slug: "strider-2"}, nil
		},
		slugExistsFn: func(_ context.Context, _ string, _ string) (bool, error) {
			t.Error("slug check should not run when the name is unchanged")
			return false, nil
		},
	}
	svc := newTestService(repo)

	e, err := svc.Update(context.Background(), "ent-1", UpdateEntityInput{Name: "Strider"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Slug != "strider-2" {
		t.Errorf("expected slug to be preserved, got %q", e.Slug)
	}
}

func TestUpdate_SelfParent(t *testing.T) {
	repo := &mockEntityRepo{
		findByIDFn: func(_ context.Context, _ string) (*Entity, error) {
			return &Entity{ID: "ent-1", UniverseID: "uni-1", Kind: KindLocation,
				Name: "Eriador", Slug: "eriador"}, nil
		},
	}
	svc := newTestService(repo)

	_, err := svc.Update(context.Background(), "ent-1", UpdateEntityInput{
		Name:     "Eriador",
		ParentID: "ent-1",
	})
	assertAppError(t, err, 400)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := newTestService(&mockEntityRepo{})
	_, err := svc.Update(context.Background(), "missing", UpdateEntityInput{Name: "X"})
	assertAppError(t, err, 404)
}

// --- List and Counts Tests ---

func TestList_InvalidKindFilter(t *testing.T) {
	svc := newTestService(&mockEntityRepo{})
	_, _, err := svc.List(context.Background(), "uni-1", ListOptions{Kind: Kind("vehicle")})
	assertAppError(t, err, 400)
}

func TestCounts_FillsZeroKinds(t *testing.T) {
	repo := &mockEntityRepo{
		countByKindFn: func(_ context.Context, _ string) (map[Kind]int, error) {
			return map[Kind]int{KindFigure: 3}, nil
		},
	}
	svc := newTestService(repo)

	counts, err := svc.Counts(context.Background(), "uni-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(counts) != len(Kinds()) {
		t.Errorf("expected %d kinds, got %d", len(Kinds()), len(counts))
	}
	if counts[KindFigure] != 3 {
		t.Errorf("expected 3 figures, got %d", counts[KindFigure])
	}
	if counts[KindArtifact] != 0 {
		t.Errorf("expected 0 artifacts, got %d", counts[KindArtifact])
	}
}

// --- Delete Tests ---

func TestDelete_NotFound(t *testing.T) {
	svc := newTestService(&mockEntityRepo{})
	err := svc.Delete(context.Background(), "missing")
	assertAppError(t, err, 404)
}

// --- ListOptions Tests ---

func TestListOptions_Normalize(t *testing.T) {
	opts := ListOptions{Page: 0, PerPage: 0}
	opts.Normalize()
	if opts.Page != 1 || opts.PerPage != defaultPerPage {
		t.Errorf("expected defaults (1, %d), got (%d, %d)", defaultPerPage, opts.Page, opts.PerPage)
	}

	opts = ListOptions{Page: 3, PerPage: 5000}
	opts.Normalize()
	if opts.PerPage != maxPerPage {
		t.Errorf("expected per_page capped at %d, got %d", maxPerPage, opts.PerPage)
	}
	if opts.Offset() != 2*maxPerPage {
		t.Errorf("expected offset %d, got %d", 2*maxPerPage, opts.Offset())
	}
}
