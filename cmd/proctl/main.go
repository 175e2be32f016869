package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"listinghub/internal/admin"
	"listinghub/internal/config"
	"listinghub/internal/listing"
	"listinghub/internal/usage"
)

func main() {
	global := flag.NewFlagSet("proctl", flag.ExitOnError)
	if err := global.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	args := global.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	cfg := config.Load()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch args[0] {
	case "add":
		handleAdd(ctx, cfg, args[1:])
	case "remove":
		handleRemove(ctx, cfg, args[1:])
	case "list":
		handleList(ctx, cfg)
	case "token":
		handleToken(cfg, args[1:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func openStore(cfg config.Config) (usage.AdminStore, func() error) {
	store, closeStore, err := usage.OpenStore(cfg.Store)
	if err != nil {
		log.Fatalf("open store failed: %v", err)
	}
	return store, closeStore
}

func requireEmail(fs *flag.FlagSet, args []string) string {
	email := fs.String("email", "", "account email")
	_ = fs.Parse(args)

	canonical := listing.CanonicalEmail(*email)
	if !listing.ValidEmail(canonical) {
		log.Fatal("a valid -email is required")
	}
	return canonical
}

func handleAdd(ctx context.Context, cfg config.Config, args []string) {
	email := requireEmail(flag.NewFlagSet("proctl add", flag.ExitOnError), args)

	store, closeStore := openStore(cfg)
	defer func() { _ = closeStore() }()

	if err := store.AddPro(ctx, email); err != nil {
		log.Fatalf("add pro failed: %v", err)
	}
	fmt.Printf("✅ %s added to the pro allow-list\n", email)
}

func handleRemove(ctx context.Context, cfg config.Config, args []string) {
	email := requireEmail(flag.NewFlagSet("proctl remove", flag.ExitOnError), args)

	store, closeStore := openStore(cfg)
	defer func() { _ = closeStore() }()

	if err := store.RemovePro(ctx, email); err != nil {
		log.Fatalf("remove pro failed: %v", err)
	}
	fmt.Printf("✅ %s removed from the pro allow-list\n", email)
}

func handleList(ctx context.Context, cfg config.Config) {
	store, closeStore := openStore(cfg)
	defer func() { _ = closeStore() }()

	emails, err := store.ProEmails(ctx)
	if err != nil {
		log.Fatalf("list pro failed: %v", err)
	}
	if len(emails) == 0 {
		fmt.Println("pro allow-list is empty")
		return
	}
	for _, email := range emails {
		fmt.Println(email)
	}
}

func handleToken(cfg config.Config, args []string) {
	fs := flag.NewFlagSet("proctl token", flag.ExitOnError)
	operator := fs.String("operator", "", "operator name embedded in the token")
	_ = fs.Parse(args)

	if *operator == "" {
		log.Fatal("-operator is required")
	}

	tokens := admin.TokenService{
		Secret:   []byte(cfg.Admin.Secret),
		Issuer:   cfg.Admin.Issuer,
		Duration: cfg.Admin.TokenTTL,
	}
	token, exp, err := tokens.Sign(*operator)
	if err != nil {
		log.Fatalf("sign token failed: %v", err)
	}
	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires %s\n", exp.UTC().Format(time.RFC3339))
}

func printUsage() {
	fmt.Println(`proctl - pro allow-list administration

usage:
  proctl add -email user@example.com
  proctl remove -email user@example.com
  proctl list
  proctl token -operator name

The store backend is taken from the regular server configuration
(config file plus LISTINGHUB_* environment overrides).`)
}
