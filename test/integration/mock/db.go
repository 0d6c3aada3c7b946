package mock

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// clearAttempts bounds the retry loop in ClearDB; shared-cache sqlite
// occasionally reports the schema as busy right after attach.
const clearAttempts = 5

var once sync.Once
var db *Db

// Db wraps a shared in-memory sqlite connection that stands in for
// postgres during the integration suite.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
	schema string
}

// NewDb opens (once per process) the in-memory database, migrates the
// given models and returns the shared handle.
func NewDb(schema string, models map[string]any) *Db {
	once.Do(func() {
		db = open(schema, models)
	})

	return db
}

func open(schema string, models map[string]any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps every goroutine on the same in-memory DB.
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: false,
	})
	if err != nil {
		panic("failed to connect to database: " + err.Error())
	}

	d := &Db{
		DbConn: dbConn,
		schema: schema,
		models: models,
	}

	if err := d.ClearDB(); err != nil {
		panic(fmt.Sprintf("failed to clear database: %s", err.Error()))
	}

	return d
}

// ClearDB drops and recreates every registered table, then empties them.
// Retries a few times because the shared-cache attach can race with the
// first migration.
func (d *Db) ClearDB() error {
	for attempt := 1; attempt <= clearAttempts; attempt++ {
		if err := d.DbConn.Exec("ATTACH ':memory:' AS " + d.schema).Error; err != nil {
			if !strings.Contains(err.Error(), "is already in use") {
				return err
			}
		} else {
			if err := d.migrate(); err != nil {
				continue
			}

			time.Sleep(200 * time.Millisecond)

			_ = d.DbConn.Exec("PRAGMA schema_version").Error

			if err := d.checkTables(); err != nil {
				continue
			}
		}

		if err := d.reset(); err != nil {
			continue
		}

		return nil
	}

	return fmt.Errorf("failed to clear database after %d attempts", clearAttempts)
}

func (d *Db) migrate() (err error) {
	tx := d.DbConn.Exec("BEGIN EXCLUSIVE")
	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
			err = fmt.Errorf("panic while migrating test DB: %v", rec)
		} else if err != nil {
			errTx := tx.Exec("ROLLBACK").Error
			if errTx != nil {
				panic(errTx)
			}
		} else {
			errTx := tx.Exec("COMMIT").Error
			if errTx != nil {
				panic(errTx)
			}
		}
	}()

	modelList := make([]any, 0, len(d.models))
	for _, model := range d.models {
		modelList = append(modelList, model)

		stmt := &gorm.Statement{DB: tx}
		if err := stmt.Parse(model); err != nil {
			return err
		}

		if err := tx.Exec("DROP TABLE IF EXISTS " + stmt.Schema.Table).Error; err != nil {
			return err
		}
	}

	if err := tx.AutoMigrate(modelList...); err != nil {
		return err
	}

	for _, model := range modelList {
		if !tx.Migrator().HasTable(model) {
			return fmt.Errorf("table for model %T was not created", model)
		}
	}

	return nil
}

// reset empties every table and rewinds sqlite's autoincrement bookkeeping.
func (d *Db) reset() error {
	for _, model := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return err
		}

		stmt := &gorm.Statement{DB: d.DbConn}
		if err := stmt.Parse(model); err != nil {
			return err
		}

		err = d.DbConn.Exec("DELETE FROM sqlite_sequence WHERE name = ?", stmt.Schema.Table).Error
		if err != nil && !strings.Contains(err.Error(), "no such table: sqlite_sequence") {
			return err
		}
	}

	return nil
}

func (d *Db) checkTables() error {
	for _, model := range d.models {
		if !d.DbConn.Migrator().HasTable(model) {
			return fmt.Errorf("table for model %T was not created", model)
		}
		if err := d.DbConn.Find(&model).Error; err != nil {
			return fmt.Errorf("failed to query table for model %T: %w", model, err)
		}
	}

	return nil
}

// GetModel returns the registered model for a table name, if any.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
