package itemstore

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-richtext/internal/persistence"
	"github.com/goliatone/go-richtext/items"
	"github.com/goliatone/go-richtext/pkg/testsupport"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqlDB, err := testsupport.NewSQLiteMemoryDB()
	if err != nil {
		t.Fatalf("new sqlite db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	bunDB, err := persistence.New(sqlDB, "sqlite")
	if err != nil {
		t.Fatalf("wrap sqlite db: %v", err)
	}
	bunDB.SetMaxOpenConns(1)
	if err := Migrate(context.Background(), bunDB); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return bunDB
}

func TestBunItemRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewBunItemRepository(newTestDB(t))

	record := &items.ContentItem{
		ID:       uuid.New(),
		Codename: "landing",
		Name:     "Landing",
		Type:     "page",
		Language: "default",
		Elements: map[string]any{
			"body": items.RichTextElement("<p>welcome</p>", "promo"),
		},
	}

	created, err := repo.Create(ctx, record)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != record.ID {
		t.Fatalf("expected ID preserved, got %s", created.ID)
	}

	fetched, err := repo.GetByCodename(ctx, "landing")
	if err != nil {
		t.Fatalf("get by codename: %v", err)
	}
	if fetched.Name != "Landing" {
		t.Fatalf("unexpected name %q", fetched.Name)
	}
	if _, ok := fetched.RichText("body"); !ok {
		t.Fatalf("expected rich text element to survive storage")
	}

	byID, err := repo.GetByID(ctx, record.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if byID.Codename != "landing" {
		t.Fatalf("unexpected codename %q", byID.Codename)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected one stored item, got %d", len(all))
	}
}

func TestBunItemRepositoryNotFoundMapsToDomainError(t *testing.T) {
	ctx := context.Background()
	repo := NewBunItemRepository(newTestDB(t))

	_, err := repo.GetByCodename(ctx, "ghost")
	if !errors.Is(err, items.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestServiceOverBunRepository(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewBunItemRepository(newTestDB(t)))

	if _, err := svc.Upsert(ctx, items.UpsertItemRequest{
		Codename: "promo",
		Name:     "Promo",
		Type:     "banner",
	}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if _, err := svc.Upsert(ctx, items.UpsertItemRequest{
		Codename: "promo",
		Name:     "Promo v2",
		Type:     "banner",
	}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := svc.Get(ctx, "promo")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Promo v2" {
		t.Fatalf("expected upsert to update in place, got %q", got.Name)
	}
}
