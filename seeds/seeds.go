package seeds

import (
	"errors"
	"fmt"
	"os"
	"time"

	"photo-portfolio-backend/config"
	"photo-portfolio-backend/db/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdminUser creates the bootstrap admin account if no admin exists yet.
// Credentials come from ADMIN_EMAIL / ADMIN_PASSWORD; without them the seed
// is skipped so production deployments never get a default password.
func SeedAdminUser(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		config.Logger.Info("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin user seeding")
		return nil
	}

	var existing models.User
	result := db.Where("email = ?", email).First(&existing)
	if result.Error == nil {
		config.Logger.Info("Admin user already exists, skipping", zap.String("email", email))
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		config.Logger.Error("Error checking for existing admin user", zap.Error(result.Error))
		return fmt.Errorf("error checking for admin user: %w", result.Error)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.User{
		ID:        uuid.New(),
		FirstName: "Site",
		LastName:  "Admin",
		Email:     email,
		Password:  string(hashed),
		Role:      models.AdminRole,
		Active:    true,
		CreatedBy: "system",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.Create(&admin).Error; err != nil {
		config.Logger.Error("Failed to create admin user", zap.Error(err))
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	config.Logger.Info("Created admin user", zap.String("email", email))
	return nil
}

// SeedSampleContent seeds a published gallery with images and a blog post so
// a fresh install has something to search. Matched by slug and updated in
// place, so reruns are safe.
func SeedSampleContent(db *gorm.DB) error {
	config.Logger.Info("Starting sample content seeding...")

	galleries := []models.Gallery{
		{
			ID:   uuid.New(),
			Slug: "chennai-monsoon",
			Title: models.LocalizedString(map[models.LocaleCode]string{
				models.LocaleEnglish: "Chennai in the Monsoon",
				models.LocaleTamil:   "மழைக்காலத்தில் சென்னை",
			}),
			Description: models.LocalizedString(map[models.LocaleCode]string{
				models.LocaleEnglish: "Street scenes from Chennai during the northeast monsoon, shot between November and January.",
				models.LocaleTamil:   "வடகிழக்கு பருவமழையின் போது சென்னையின் தெருக்காட்சிகள்.",
			}),
			Excerpt: models.LocalizedString(map[models.LocaleCode]string{
				models.LocaleEnglish: "Street scenes from the northeast monsoon",
			}),
			Tags: models.LocalizedStrings(map[models.LocaleCode][]string{
				models.LocaleEnglish: {"monsoon", "street", "chennai"},
				models.LocaleTamil:   {"மழைக்காலம்", "தெரு", "சென்னை"},
			}),
			Published: true,
			SortOrder: 1,
			CreatedBy: "system",
		},
		{
			ID:          uuid.New(),
			Slug:        "western-ghats",
			Title:       models.PlainText("Western Ghats"),
			Description: models.PlainText("Landscapes from the Nilgiris and Anamalai hills."),
			Tags:        models.PlainList([]string{"landscape", "hills"}),
			Published:   true,
			SortOrder:   2,
			CreatedBy:   "system",
		},
	}

	createdCount := 0
	updatedCount := 0

	for _, gallery := range galleries {
		var existingGallery models.Gallery
		result := db.Where("slug = ?", gallery.Slug).First(&existingGallery)

		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				if err := db.Create(&gallery).Error; err != nil {
					config.Logger.Error("Failed to create sample gallery",
						zap.String("slug", gallery.Slug),
						zap.Error(err))
					return fmt.Errorf("failed to create gallery %s: %w", gallery.Slug, err)
				}
				createdCount++
				config.Logger.Info("Created sample gallery", zap.String("slug", gallery.Slug))
			} else {
				return fmt.Errorf("error checking for gallery %s: %w", gallery.Slug, result.Error)
			}
		} else {
			gallery.ID = existingGallery.ID
			if err := db.Model(&existingGallery).Updates(gallery).Error; err != nil {
				return fmt.Errorf("failed to update gallery %s: %w", gallery.Slug, err)
			}
			updatedCount++
		}
	}

	if err := seedSampleImages(db); err != nil {
		return err
	}
	if err := seedSampleBlogPosts(db); err != nil {
		return err
	}

	config.Logger.Info("Sample content seeding completed",
		zap.Int("galleries_created", createdCount),
		zap.Int("galleries_updated", updatedCount))
	return nil
}

func seedSampleImages(db *gorm.DB) error {
	var monsoonGallery models.Gallery
	if err := db.Where("slug = ?", "chennai-monsoon").First(&monsoonGallery).Error; err != nil {
		return fmt.Errorf("sample gallery not found for image seeding: %w", err)
	}

	city := "Chennai"
	country := "India"

	images := []models.Image{
		{
			ID:        uuid.New(),
			Slug:      "marina-beach-rain",
			GalleryID: monsoonGallery.ID,
			Title: models.LocalizedString(map[models.LocaleCode]string{
				models.LocaleEnglish: "Rain over Marina Beach",
				models.LocaleTamil:   "மெரினா கடற்கரையில் மழை",
			}),
			Caption: models.LocalizedString(map[models.LocaleCode]string{
				models.LocaleEnglish: "Fishermen hauling nets as the first squall comes in",
			}),
			AltText: models.LocalizedString(map[models.LocaleCode]string{
				models.LocaleEnglish: "Fishermen pulling a net on a rain-swept beach under dark clouds",
			}),
			Tags:        models.PlainList([]string{"rain", "beach", "fishermen"}),
			City:        &city,
			Country:     &country,
			Style:       models.StyleStreet,
			Status:      models.StatusPublished,
			Featured:    true,
			OriginalURL: "https://cdn.example.com/images/marina-beach-rain.jpg",
			Width:       6000,
			Height:      4000,
			CreatedBy:   "system",
		},
		{
			ID:        uuid.New(),
			Slug:      "mylapore-lamps",
			GalleryID: monsoonGallery.ID,
			Title: models.LocalizedString(map[models.LocaleCode]string{
				models.LocaleEnglish: "Lamps at Mylapore",
			}),
			Tags:        models.PlainList([]string{"temple", "night"}),
			City:        &city,
			Country:     &country,
			Style:       models.StyleLongExpose,
			Status:      models.StatusPublished,
			OriginalURL: "https://cdn.example.com/images/mylapore-lamps.jpg",
			Width:       4000,
			Height:      6000,
			CreatedBy:   "system",
		},
	}

	for _, image := range images {
		var existingImage models.Image
		result := db.Where("slug = ?", image.Slug).First(&existingImage)

		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				if err := db.Create(&image).Error; err != nil {
					return fmt.Errorf("failed to create image %s: %w", image.Slug, err)
				}
				config.Logger.Info("Created sample image", zap.String("slug", image.Slug))
			} else {
				return fmt.Errorf("error checking for image %s: %w", image.Slug, result.Error)
			}
		} else {
			image.ID = existingImage.ID
			if err := db.Model(&existingImage).Updates(image).Error; err != nil {
				return fmt.Errorf("failed to update image %s: %w", image.Slug, err)
			}
		}
	}
	return nil
}

func seedSampleBlogPosts(db *gorm.DB) error {
	publishedAt := time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC)

	posts := []models.BlogPost{
		{
			ID:   uuid.New(),
			Slug: "shooting-the-monsoon",
			Title: models.LocalizedString(map[models.LocaleCode]string{
				models.LocaleEnglish: "Shooting the Monsoon",
				models.LocaleTamil:   "மழைக்காலத்தை படம்பிடித்தல்",
			}),
			Excerpt: models.LocalizedString(map[models.LocaleCode]string{
				models.LocaleEnglish: "Notes on keeping gear dry and exposures usable when the sky opens up.",
			}),
			Body: models.LocalizedString(map[models.LocaleCode]string{
				models.LocaleEnglish: "The monsoon is the best and worst season for street work in Chennai. The light goes soft and silver, the crowds thin out, and everything reflects. It is also the season that kills cameras...",
			}),
			Tags: models.LocalizedStrings(map[models.LocaleCode][]string{
				models.LocaleEnglish: {"monsoon", "technique", "street"},
			}),
			Status:      models.StatusPublished,
			PublishedAt: &publishedAt,
			ReadingTime: 4,
			CreatedBy:   "system",
		},
	}

	for _, post := range posts {
		var existingPost models.BlogPost
		result := db.Where("slug = ?", post.Slug).First(&existingPost)

		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				if err := db.Create(&post).Error; err != nil {
					return fmt.Errorf("failed to create blog post %s: %w", post.Slug, err)
				}
				config.Logger.Info("Created sample blog post", zap.String("slug", post.Slug))
			} else {
				return fmt.Errorf("error checking for blog post %s: %w", post.Slug, result.Error)
			}
		} else {
			post.ID = existingPost.ID
			if err := db.Model(&existingPost).Updates(post).Error; err != nil {
				return fmt.Errorf("failed to update blog post %s: %w", post.Slug, err)
			}
		}
	}
	return nil
}
