package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"identity-service-backend/internal/auth"
	"identity-service-backend/internal/config"
	"identity-service-backend/internal/database"
	"identity-service-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
	Phone     string `yaml:"phone,omitempty"`
}

type OrganisationData struct {
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description,omitempty"`
	CreatorEmail string   `yaml:"creator_email"`
	MemberEmails []string `yaml:"member_emails,omitempty"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type OrganisationsFile struct {
	Organisations []OrganisationData `yaml:"organisations"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	hasher := auth.NewPasswordHasher(cfg.BcryptCost)

	if err := loadDataFromYAMLFiles(db, hasher, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, hasher *auth.PasswordHasher, dataDir string) error {
	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	organisations, err := loadOrganisations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load organisations: %w", err)
	}

	// Create users first, keyed by email for membership wiring
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, hasher, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		userMap[userData.Email] = user
		if created {
			userCreated++
		}
	}
	log.Printf("Users: %d created, %d total", userCreated, len(users))

	// Create organisations and enroll members
	orgCreated := 0
	for _, orgData := range organisations {
		created, err := createOrganisation(db, orgData, userMap)
		if err != nil {
			return fmt.Errorf("failed to create organisation %s: %w", orgData.Name, err)
		}
		if created {
			orgCreated++
		}
	}
	log.Printf("Organisations: %d created, %d total", orgCreated, len(organisations))

	return nil
}

func loadUsers(dataDir string) ([]UserData, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, "users.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var file UsersFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file.Users, nil
}

func loadOrganisations(dataDir string) ([]OrganisationData, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, "organisations.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var file OrganisationsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file.Organisations, nil
}

// createUser creates the user unless a row with the same email already
// exists; reruns of the loader are idempotent.
func createUser(db *gorm.DB, hasher *auth.PasswordHasher, data UserData) (*models.User, bool, error) {
	var existing models.User
	err := db.First(&existing, "email = ?", data.Email).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	hash, err := hasher.Hash(data.Password)
	if err != nil {
		return nil, false, err
	}

	user := &models.User{
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        data.Email,
		PasswordHash: hash,
		Phone:        data.Phone,
	}
	if err := db.Create(user).Error; err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func createOrganisation(db *gorm.DB, data OrganisationData, userMap map[string]*models.User) (bool, error) {
	creator, ok := userMap[data.CreatorEmail]
	if !ok {
		return false, fmt.Errorf("creator %s not found in users.yaml", data.CreatorEmail)
	}

	var existing models.Organisation
	err := db.First(&existing, "name = ? AND created_by = ?", data.Name, creator.ID).Error
	created := false
	org := &existing
	if err == gorm.ErrRecordNotFound {
		org = &models.Organisation{
			Name:        data.Name,
			Description: data.Description,
			CreatedBy:   &creator.ID,
		}
		if err := db.Create(org).Error; err != nil {
			return false, err
		}
		created = true
	} else if err != nil {
		return false, err
	}

	// The creator is always a member; extra members come from member_emails
	memberEmails := append([]string{data.CreatorEmail}, data.MemberEmails...)
	for _, email := range memberEmails {
		user, ok := userMap[email]
		if !ok {
			return created, fmt.Errorf("member %s not found in users.yaml", email)
		}
		membership := &models.UserOrganisation{
			UserID:         user.ID,
			OrganisationID: org.ID,
		}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(membership).Error; err != nil {
			return created, err
		}
	}

	return created, nil
}
