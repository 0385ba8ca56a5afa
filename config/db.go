package config

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"tour-backend/models"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "tour_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

func highlights(items ...string) datatypes.JSON {
	raw, err := json.Marshal(items)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// SeedDatabase inserts the demo catalog and the hero row when the tables
// are empty. Bookings and customers are never seeded.
func SeedDatabase() {
	var siteCount int64
	DB.Model(&models.SiteSetting{}).Count(&siteCount)
	if siteCount == 0 {
		site := models.SiteSetting{
			Headline:   "Explore the World with Us",
			Subheading: "Hand-picked tour packages for every kind of traveler",
			Phone:      "+91-800-555-0199",
			Email:      "hello@tours.local",
		}
		if err := DB.Create(&site).Error; err != nil {
			log.Printf("warning: failed to seed site settings: %v", err)
		} else {
			log.Println("Site settings seeded")
		}
	}

	var pkgCount int64
	DB.Model(&models.Package{}).Count(&pkgCount)
	if pkgCount > 0 {
		log.Println("Packages already seeded")
		return
	}

	packages := []models.Package{
		{
			Title:       "Goa Beach Escape",
			Description: "Four relaxed days of sun, sand and seafood on North Goa's beaches.",
			Destination: "Goa",
			Category:    models.CategoryWeekend,
			Price:       price("8999.00"),
			Days:        4,
			Highlights:  highlights("Baga Beach", "Fort Aguada", "Sunset cruise"),
		},
		{
			Title:       "Goa Luxury Retreat",
			Description: "Five-star beachfront resort stay with private cabana and spa access.",
			Destination: "Goa",
			Category:    models.CategoryLuxury,
			Price:       price("34999.00"),
			Days:        5,
			Highlights:  highlights("Beachfront villa", "Couples spa", "Fine dining"),
		},
		{
			Title:       "Manali Adventure Week",
			Description: "Trekking, rafting and paragliding across the Kullu valley.",
			Destination: "Manali",
			Category:    models.CategoryAdventure,
			Price:       price("15499.00"),
			Days:        7,
			Highlights:  highlights("Solang paragliding", "Beas rafting", "Hampta trek"),
		},
		{
			Title:       "Kerala Honeymoon Cruise",
			Description: "Backwater houseboat, tea gardens and quiet hill stations for two.",
			Destination: "Kerala",
			Category:    models.CategoryHoneymoon,
			Price:       price("22999.00"),
			Days:        6,
			Highlights:  highlights("Alleppey houseboat", "Munnar tea estate", "Kovalam beach"),
		},
		{
			Title:       "Jaipur Family Heritage Tour",
			Description: "Forts, palaces and bazaars of the Pink City at a family pace.",
			Destination: "Jaipur",
			Category:    models.CategoryFamily,
			Price:       price("12499.00"),
			Days:        5,
			Highlights:  highlights("Amber Fort", "City Palace", "Elephant village"),
		},
		{
			Title:       "Rishikesh on a Shoestring",
			Description: "Hostel stay, yoga sessions and river walks without breaking the bank.",
			Destination: "Rishikesh",
			Category:    models.CategoryBudget,
			Price:       price("4999.00"),
			Days:        3,
			Highlights:  highlights("Ganga aarti", "Laxman Jhula", "Morning yoga"),
		},
	}

	if err := DB.Create(&packages).Error; err != nil {
		log.Printf("warning: failed to seed packages: %v", err)
		return
	}
	log.Println("Packages seeded")

	itineraries := []models.Itinerary{
		{PackageID: packages[0].ID, Day: 1, Description: "Arrival, check-in and Baga beach evening"},
		{PackageID: packages[0].ID, Day: 2, Description: "North Goa sightseeing and Fort Aguada"},
		{PackageID: packages[0].ID, Day: 3, Description: "Water sports and sunset cruise"},
		{PackageID: packages[0].ID, Day: 4, Description: "Flea market stop and departure"},
		{PackageID: packages[2].ID, Day: 1, Description: "Arrival in Manali, acclimatisation walk"},
		{PackageID: packages[2].ID, Day: 2, Description: "Solang valley paragliding"},
		{PackageID: packages[2].ID, Day: 3, Description: "Beas river rafting"},
		{PackageID: packages[2].ID, Day: 4, Description: "Hampta pass trek, day one"},
		{PackageID: packages[2].ID, Day: 5, Description: "Hampta pass trek, day two"},
		{PackageID: packages[2].ID, Day: 6, Description: "Old Manali cafes and rest day"},
		{PackageID: packages[2].ID, Day: 7, Description: "Departure"},
		{PackageID: packages[3].ID, Day: 1, Description: "Kochi arrival and harbour walk"},
		{PackageID: packages[3].ID, Day: 2, Description: "Drive to Munnar tea gardens"},
		{PackageID: packages[3].ID, Day: 3, Description: "Eravikulam park and spice market"},
		{PackageID: packages[3].ID, Day: 4, Description: "Alleppey houseboat boarding"},
		{PackageID: packages[3].ID, Day: 5, Description: "Backwater cruise and village visit"},
		{PackageID: packages[3].ID, Day: 6, Description: "Kovalam beach and departure"},
	}
	if err := DB.Create(&itineraries).Error; err != nil {
		log.Printf("warning: failed to seed itineraries: %v", err)
		return
	}
	log.Println("Itineraries seeded")
}

// ConnectDatabase opens the MySQL connection, runs migrations and seeds
// demo data. It sets the package-level DB handle.
func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := MigrateModels(DB); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}

// MigrateModels runs AutoMigrate for every entity, parents first.
func MigrateModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.SiteSetting{},
		&models.Customer{},
		&models.Session{},
		&models.Package{},
		&models.Itinerary{},
		&models.Booking{},
	)
}
