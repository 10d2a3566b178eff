package postgresql

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a gorm handle to postgres. The handle is constructed once in
// main and passed down explicitly; there is no process-wide instance.
func Connect(host, user, password, dbname string, port int) (*gorm.DB, error) {

	dsn := fmt.Sprintf("host=%s port=%d user=%s dbname=%s password=%s",
		host,
		port,
		user,
		dbname,
		password,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}

	return db, nil
}
