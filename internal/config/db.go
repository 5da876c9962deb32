package config

import (
	"context"
	"errors"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

var ErrUnknownDriver = errors.New("unknown database driver")

// Connect abre o pool do banco usando o driver escolhido por configuração
// (postgres ou mysql), nunca por branching em tempo de execução.
func Connect(ctx context.Context, driver, dsn string) error {
	var dialector gorm.Dialector
	switch driver {
	case "mysql":
		dialector = mysql.Open(dsn)
	case "postgres", "":
		dialector = postgres.Open(dsn)
	default:
		return ErrUnknownDriver
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := sqlDB.PingContext(ctx); err != nil {
		return err
	}

	DB = db
	WithContext(ctx).WithField("driver", driverName(driver)).Info("Conexão com o banco estabelecida")
	return nil
}

func driverName(driver string) string {
	if driver == "" {
		return "postgres"
	}
	return driver
}

// AutoMigrateEnabled indica se o schema deve ser criado pelo próprio serviço.
// Em produção o schema é gerenciado fora daqui.
func AutoMigrateEnabled() bool {
	return os.Getenv("DB_AUTO_MIGRATE") == "true"
}
