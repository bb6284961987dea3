package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/cladjidane/k-stockhome/entities"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.Product{}); err != nil {
		log.Fatalf("Error migrating product database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ShoppingListItem{}); err != nil {
		log.Fatalf("Error migrating shopping list database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
