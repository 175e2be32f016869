package usage

import (
	"context"
	"database/sql"
	"testing"

	"listinghub/pkg/database"
)

func testSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewSQLiteStore(db)
}

func TestSQLiteStoreCounters(t *testing.T) {
	ctx := context.Background()
	store := testSQLiteStore(t)

	count, err := store.Count(ctx, "2026-08-24", "a@b.com")
	if err != nil || count != 0 {
		t.Fatalf("fresh count = %d, err = %v", count, err)
	}

	for i := 0; i < 3; i++ {
		if err := store.Increment(ctx, "2026-08-24", "a@b.com"); err != nil {
			t.Fatalf("increment: %v", err)
		}
	}
	_ = store.Increment(ctx, "2026-08-25", "a@b.com")

	count, err = store.Count(ctx, "2026-08-24", "a@b.com")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}
}

func TestSQLiteStorePro(t *testing.T) {
	ctx := context.Background()
	store := testSQLiteStore(t)

	if err := store.AddPro(ctx, "pro@example.com"); err != nil {
		t.Fatalf("add pro: %v", err)
	}
	// duplicate add is a no-op
	if err := store.AddPro(ctx, "pro@example.com"); err != nil {
		t.Fatalf("re-add pro: %v", err)
	}

	pro, err := store.IsPro(ctx, "pro@example.com")
	if err != nil || !pro {
		t.Fatalf("pro = %v, err = %v", pro, err)
	}

	emails, err := store.ProEmails(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(emails) != 1 || emails[0] != "pro@example.com" {
		t.Fatalf("emails = %v", emails)
	}

	if err := store.RemovePro(ctx, "pro@example.com"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	pro, err = store.IsPro(ctx, "pro@example.com")
	if err != nil || pro {
		t.Fatalf("pro = %v after remove, err = %v", pro, err)
	}
}

func TestSQLiteStoreUsageForDay(t *testing.T) {
	ctx := context.Background()
	store := testSQLiteStore(t)

	_ = store.Increment(ctx, "2026-08-24", "a@b.com")
	_ = store.Increment(ctx, "2026-08-24", "a@b.com")
	_ = store.Increment(ctx, "2026-08-24", "c@d.com")
	_ = store.Increment(ctx, "2026-08-23", "old@b.com")

	day, err := store.UsageForDay(ctx, "2026-08-24")
	if err != nil {
		t.Fatalf("usage for day: %v", err)
	}
	if len(day) != 2 || day["a@b.com"] != 2 || day["c@d.com"] != 1 {
		t.Fatalf("day = %v", day)
	}
}
