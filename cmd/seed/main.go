package main

import (
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"casamx/internal/auth"
	"casamx/internal/config"
	"casamx/internal/db"
	"casamx/internal/model"
)

func strPtr(s string) *string { return &s }

// defaultPlans is the plan catalog seeded into billing_plans.
var defaultPlans = []model.BillingPlan{
	{
		Code:        "free",
		Name:        "Free",
		Description: strPtr("3 anonymous searches per day, account features unlocked"),
		Price:       decimal.Zero,
		Currency:    "EUR",
		Period:      "free",
		Credits:     0,
		IsActive:    true,
		SortOrder:   0,
	},
	{
		Code:        "starter",
		Name:        "Starter",
		Description: strPtr("100 search credits, valid 90 days"),
		Price:       decimal.NewFromFloat(9.90),
		Currency:    "EUR",
		Period:      "monthly",
		Credits:     100,
		IsActive:    true,
		SortOrder:   1,
	},
	{
		Code:        "pro",
		Name:        "Pro",
		Description: strPtr("500 search credits, valid 90 days"),
		Price:       decimal.NewFromFloat(29.90),
		Currency:    "EUR",
		Period:      "monthly",
		Credits:     500,
		IsActive:    true,
		SortOrder:   2,
	},
	{
		Code:        "business",
		Name:        "Business",
		Description: strPtr("5000 search credits, annual billing"),
		Price:       decimal.NewFromFloat(299.00),
		Currency:    "EUR",
		Period:      "annual",
		Credits:     5000,
		IsActive:    true,
		SortOrder:   3,
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.BillingPlan{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	if err := seedPlans(gormDB); err != nil {
		log.Fatalf("Failed to seed billing plans: %v", err)
	}
	log.Printf("Seeded %d billing plans", len(defaultPlans))

	if !cfg.IsProd() {
		if err := seedAdminUser(gormDB, cfg); err != nil {
			log.Fatalf("Failed to seed admin user: %v", err)
		}
		log.Println("Seeded dev admin user admin@casametrix.local")
	}

	log.Println("Seed completed successfully!")
}

// seedPlans upserts the plan catalog so re-running the script is safe.
func seedPlans(gormDB *gorm.DB) error {
	for _, plan := range defaultPlans {
		err := gormDB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "description", "price", "currency", "period", "credits", "is_active", "sort_order"}),
		}).Create(&plan).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// seedAdminUser creates a development admin account. Never runs in prod.
func seedAdminUser(gormDB *gorm.DB, cfg *config.Config) error {
	const email = "admin@casametrix.local"

	var existing model.User
	err := gormDB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hasher := auth.NewHasher(cfg.BcryptCost)
	hash, err := hasher.Hash("admin-dev-password")
	if err != nil {
		return err
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     "Dev Admin",
		IsAdmin:      true,
		Active:       true,
		PlanCode:     "free",
	}
	return gormDB.Create(user).Error
}
