package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"restaurant-orders/models"
	"restaurant-orders/session"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	DB       *gorm.DB
	Sessions *session.Manager

	// AdminUsers are the static admin credentials, loaded once at startup
	// and never persisted.
	AdminUsers map[string]string

	// LocalTZ is the zone used to render delivery estimates. nil when the
	// configured zone cannot be loaded; timestamps are then shown as-is.
	LocalTZ *time.Location
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Init resolves all startup configuration: database, catalog, admin
// credentials, timezone and the session store.
func Init() {
	InitDB()
	Catalog = loadCatalog()
	AdminUsers = loadAdminUsers()
	LocalTZ = loadLocation()
	Sessions = session.NewManager(newSessionStore(), sessionTTL())
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "restaurant.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Order{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated")
}

// loadAdminUsers parses ADMIN_USERS as comma-separated user:password pairs.
func loadAdminUsers() map[string]string {
	admins := map[string]string{}
	for _, pair := range strings.Split(getEnv("ADMIN_USERS", "admin:admin123"), ",") {
		user, pass, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || user == "" {
			continue
		}
		admins[user] = pass
	}
	return admins
}

func loadLocation() *time.Location {
	name := getEnv("LOCAL_TZ", "Asia/Kolkata")
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("timezone %q not available, showing order times as stored: %v", name, err)
		return nil
	}
	return loc
}

func sessionTTL() time.Duration {
	hours, err := strconv.Atoi(getEnv("SESSION_TTL_HOURS", "24"))
	if err != nil || hours <= 0 {
		return session.DefaultTTL
	}
	return time.Duration(hours) * time.Hour
}

func newSessionStore() session.Store {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		log.Printf("Sessions stored in Redis at %s", addr)
		return session.NewRedisStore(addr)
	}
	log.Println("Sessions stored in process memory")
	return session.NewMemoryStore()
}
