package cli

import (
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/m04kA/SMC-CoachingService/internal/config"
	"github.com/m04kA/SMC-CoachingService/pkg/logger"
)

// Context общие зависимости команд coachctl
type Context struct {
	Config *config.Config
	Logger *logger.Logger
	Out    io.Writer

	// Now используется для даты по умолчанию ("today")
	Now func() time.Time

	db *sql.DB
}

// DB открывает соединение при первом обращении
func (c *Context) DB() (*sql.DB, error) {
	if c.db != nil {
		return c.db, nil
	}

	db, err := sql.Open("postgres", c.Config.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	c.db = db
	return db, nil
}

// Close закрывает соединение с БД, если оно было открыто
func (c *Context) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

func (c *Context) printf(format string, v ...interface{}) {
	fmt.Fprintf(c.Out, format, v...)
}
