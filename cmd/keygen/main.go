// Command keygen mints an extension key for a shop directly against the
// database. Useful when a merchant loses their key and the embedded admin
// is unreachable.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"shipping-bridge.backend/internal/config"
	"shipping-bridge.backend/internal/domain/entities"
	"shipping-bridge.backend/internal/infrastructure/repositories"
	"shipping-bridge.backend/internal/usecases"
	"shipping-bridge.backend/pkg/logger"
)

func main() {
	shop := flag.String("shop", "", "shop domain (example.myshopify.com)")
	name := flag.String("name", entities.DefaultExtensionKeyName, "display name for the key")
	flag.Parse()

	if !entities.IsValidShopDomain(*shop) {
		log.Fatalf("invalid shop domain: %q", *shop)
	}

	_ = godotenv.Load()
	cfg := config.Load()
	logger.Init(cfg.Server.Env)

	db, err := openDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	shopRepo := repositories.NewShopRepository(db)
	keyRepo := repositories.NewExtensionKeyRepository(db)
	keyUsecase := usecases.NewExtensionKeyUsecase(keyRepo, shopRepo)

	ctx := context.Background()

	record, err := shopRepo.FindByDomain(ctx, *shop)
	if err != nil {
		log.Fatalf("shop not found: %v", err)
	}
	if !record.IsActive {
		log.Fatalf("shop %s is not active", *shop)
	}

	key, err := keyUsecase.Create(ctx, *shop, *name)
	if err != nil {
		log.Fatalf("failed to create key: %v", err)
	}

	fmt.Println("Generated extension key")
	fmt.Printf("SHOP=%s\n", key.ShopDomain)
	fmt.Printf("NAME=%s\n", key.Name)
	fmt.Printf("KEY=%s\n", key.Key)
}

func openDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	if !cfg.UseSQLite() {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.URL,
			PreferSimpleProtocol: true,
		}), &gorm.Config{})
	}
	if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755); err != nil {
		return nil, err
	}
	return gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
}
