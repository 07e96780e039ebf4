package database

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestSeedTipsIsIdempotent(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&Tip{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	if err := SeedTips(db); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	var first int64
	if err := db.Model(&Tip{}).Count(&first).Error; err != nil {
		t.Fatalf("count tips: %v", err)
	}
	if first == 0 {
		t.Fatal("expected seeded rows")
	}

	if err := SeedTips(db); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	var second int64
	if err := db.Model(&Tip{}).Count(&second).Error; err != nil {
		t.Fatalf("count tips: %v", err)
	}
	if second != first {
		t.Fatalf("seed duplicated rows: %d then %d", first, second)
	}
}
