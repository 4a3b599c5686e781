package db

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"go-ayuda/types"
)

// ErrNotFound is returned when a lookup misses; handlers map it to 404.
var ErrNotFound = errors.New("record not found")

// Store is the record store for households, disasters and assessments.
type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

var (
	store     *Store
	storeErr  error
	storeOnce sync.Once
)

// Init opens the process-wide store exactly once and migrates the schema.
func Init(path string, logger *zap.Logger) (*Store, error) {
	storeOnce.Do(func() {
		store, storeErr = open(path, logger)
	})
	return store, storeErr
}

// OpenMemory opens an isolated in-memory store. Tests use it so they never
// touch the process singleton or the filesystem.
func OpenMemory(logger *zap.Logger) (*Store, error) {
	name := strings.ReplaceAll(uuid.NewString(), "-", "")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	return open(dsn, logger)
}

func open(dsn string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite at %s: %w", dsn, err)
	}
	if err := gdb.AutoMigrate(
		&types.Household{},
		&types.DisasterEvent{},
		&types.DamageAssessment{},
	); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}
	logger.Info("record store ready", zap.String("dsn", dsn))
	return &Store{db: gdb, log: logger}, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
