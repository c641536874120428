// internal/config/database.go
package config

import (
	"fmt"
	"time"
)

func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Database, d.SSLMode,
	)
}

// ConnMaxLifetime is zero (no limit) when DB_MAX_LIFETIME is not positive.
func (d *DatabaseConfig) ConnMaxLifetime() time.Duration {
	if d.MaxLifetime <= 0 {
		return 0
	}
	return time.Duration(d.MaxLifetime) * time.Second
}

// IdleConns never exceeds the open-connection cap.
func (d *DatabaseConfig) IdleConns() int {
	if d.MaxIdleConns > d.MaxOpenConns {
		return d.MaxOpenConns
	}
	return d.MaxIdleConns
}
