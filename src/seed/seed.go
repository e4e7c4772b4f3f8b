package seed

import (
	"log"

	"github.com/BiblioDesk/BiblioDesk-Backend/src/config"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed creates the admin user and a small starter catalog. Every step checks
// for existing rows first, so running it repeatedly is safe.
func Seed(db *gorm.DB, cfg *config.Config) {
	// Admin user
	var user models.UserModel
	result := db.Where("username = ?", cfg.AdminUsername).First(&user)
	if result.Error == nil {
		log.Printf("User %q already exists\n", cfg.AdminUsername)
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)

		newUser := models.UserModel{
			Username: cfg.AdminUsername,
			Password: string(hashedPassword),
		}
		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("Failed to create user: %v\n", err)
		} else {
			log.Printf("User %q created\n", cfg.AdminUsername)
		}
	}

	// Starter catalog
	books := []models.BookModel{
		{Title: "The Go Programming Language", Author: "Alan A. A. Donovan", PublishedYear: 2015},
		{Title: "Clean Architecture", Author: "Robert C. Martin", PublishedYear: 2017},
		{Title: "Designing Data-Intensive Applications", Author: "Martin Kleppmann", PublishedYear: 2017},
	}

	createdCount := 0
	for _, book := range books {
		var existing models.BookModel
		checkResult := db.Where("title = ? AND author = ?", book.Title, book.Author).First(&existing)
		if checkResult.Error == nil {
			continue
		}
		book.Status = models.BookAvailable
		if err := db.Create(&book).Error; err != nil {
			log.Printf("Failed to create book %q: %v\n", book.Title, err)
		} else {
			createdCount++
		}
	}
	if createdCount > 0 {
		log.Printf("Seeded %d starter books\n", createdCount)
	} else {
		log.Println("Starter catalog already present")
	}
}
