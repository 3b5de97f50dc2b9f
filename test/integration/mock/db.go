package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var once sync.Once
var db *Db

// Db is a shared in-memory SQLite database. Models are kept in dependency order,
// parents first, so tables can be cleared without tripping foreign keys.
type Db struct {
	DbConn *gorm.DB
	tables []string
	models map[string]any
}

// NewDb class is used to configure DB and create a connection pool using gorm
func NewDb(tables []string, models map[string]any) *Db {
	if db == nil {
		once.Do(
			func() {
				db = open(tables, models)
			},
		)
	}

	return db
}

func open(tables []string, models map[string]any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared&_pragma=foreign_keys(1)")
	if err != nil {
		panic(err)
	}

	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: false,
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	newDbMock := &Db{
		DbConn: dbConn,
		tables: tables,
		models: models,
	}

	if err := newDbMock.init(); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	return newDbMock
}

// ClearDB removes every row and resets the id sequences.
func (d *Db) ClearDB() error {
	if err := d.reset(); err != nil {
		return err
	}
	return d.checkTables()
}

func (d *Db) orderedModels() []any {
	modelList := make([]any, 0, len(d.tables))
	for _, table := range d.tables {
		modelList = append(modelList, d.models[table])
	}
	return modelList
}

func (d *Db) init() error {
	for i := len(d.tables) - 1; i >= 0; i-- {
		if err := d.DbConn.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", d.tables[i])).Error; err != nil {
			return err
		}
	}

	if err := d.DbConn.AutoMigrate(d.orderedModels()...); err != nil {
		return err
	}

	return d.checkTables()
}

func (d *Db) reset() error {
	for i := len(d.tables) - 1; i >= 0; i-- {
		table := d.tables[i]
		if err := d.DbConn.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
		if err := d.DbConn.Exec("DELETE FROM sqlite_sequence WHERE name = ?", table).Error; err != nil {
			// sqlite_sequence only exists once an AUTOINCREMENT table received a row
			if !d.DbConn.Migrator().HasTable("sqlite_sequence") {
				continue
			}
			return err
		}
	}
	return nil
}

func (d *Db) checkTables() error {
	for _, model := range d.orderedModels() {
		if !d.DbConn.Migrator().HasTable(model) {
			return fmt.Errorf("table for model %T was not created", model)
		}
	}
	return nil
}

// GetModel returns the model registered for a table name.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
