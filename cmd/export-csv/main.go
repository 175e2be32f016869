package main

import (
	"context"
	"encoding/csv"
	"flag"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"listinghub/internal/config"
	"listinghub/internal/usage"
)

func main() {
	var (
		usageOut = flag.String("usage", "data/usage_counts.csv", "output CSV path for usage counters")
		proOut   = flag.String("pro", "data/pro_users.csv", "output CSV path for pro emails")
		day      = flag.String("day", "", "day to export (YYYY-MM-DD, default today UTC)")
	)
	flag.Parse()

	exportDay := *day
	if exportDay == "" {
		exportDay = time.Now().UTC().Format("2006-01-02")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg := config.Load()
	store, closeStore, err := usage.OpenStore(cfg.Store)
	if err != nil {
		log.Fatalf("open store failed: %v", err)
	}
	defer func() { _ = closeStore() }()

	if err := exportUsage(ctx, store, exportDay, *usageOut); err != nil {
		log.Fatalf("export usage failed: %v", err)
	}
	if err := exportPro(ctx, store, *proOut); err != nil {
		log.Fatalf("export pro failed: %v", err)
	}

	log.Printf("✅ exported %s usage to %s and pro emails to %s", exportDay, *usageOut, *proOut)
}

func exportUsage(ctx context.Context, store usage.AdminStore, day, outPath string) error {
	counts, err := store.UsageForDay(ctx, day)
	if err != nil {
		return err
	}

	emails := make([]string, 0, len(counts))
	for email := range counts {
		emails = append(emails, email)
	}
	sort.Strings(emails)

	w, closeFile, err := createWriter(outPath)
	if err != nil {
		return err
	}
	defer closeFile()

	if err := w.Write([]string{"day", "email", "count"}); err != nil {
		return err
	}
	for _, email := range emails {
		if err := w.Write([]string{day, email, strconv.Itoa(counts[email])}); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func exportPro(ctx context.Context, store usage.AdminStore, outPath string) error {
	emails, err := store.ProEmails(ctx)
	if err != nil {
		return err
	}
	sort.Strings(emails)

	w, closeFile, err := createWriter(outPath)
	if err != nil {
		return err
	}
	defer closeFile()

	if err := w.Write([]string{"email"}); err != nil {
		return err
	}
	for _, email := range emails {
		if err := w.Write([]string{email}); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func createWriter(outPath string) (*csv.Writer, func(), error) {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return nil, nil, err
	}
	return csv.NewWriter(f), func() { _ = f.Close() }, nil
}
