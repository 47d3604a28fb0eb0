package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store drivers understood by Open.
const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

// NewPool は PostgreSQL 接続プールを生成する
func NewPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// Store bundles the repositories of one backing store.
type Store struct {
	Driver        string
	DB            DB
	Services      ServiceRepository
	Quotes        QuoteRepository
	Consultations ConsultationRepository

	pool  *pgxpool.Pool
	mongo *MongoStore
}

// Open connects to the store selected by driver. dbName is only used by the
// MongoDB driver; PostgreSQL takes the database from the connection string.
func Open(ctx context.Context, driver, url, dbName string) (*Store, error) {
	switch driver {
	case DriverPostgres:
		pool, err := NewPool(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		return &Store{
			Driver:        driver,
			DB:            pool,
			Services:      NewPgServiceRepository(pool),
			Quotes:        NewPgQuoteRepository(pool),
			Consultations: NewPgConsultationRepository(pool),
			pool:          pool,
		}, nil
	case DriverMongo:
		ms, err := NewMongo(ctx, url, dbName)
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		return &Store{
			Driver:        driver,
			DB:            ms,
			Services:      NewMongoServiceRepository(ms),
			Quotes:        NewMongoQuoteRepository(ms),
			Consultations: NewMongoConsultationRepository(ms),
			mongo:         ms,
		}, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}

// Init creates tables (PostgreSQL) or indexes (MongoDB). Safe to run repeatedly.
func (s *Store) Init(ctx context.Context) error {
	if s.pool != nil {
		return EnsureSchema(ctx, s.pool)
	}
	if s.mongo != nil {
		return s.mongo.EnsureIndexes(ctx)
	}
	return nil
}

// Reset drops all application data and recreates the schema.
func (s *Store) Reset(ctx context.Context) error {
	if s.pool != nil {
		if err := DropSchema(ctx, s.pool); err != nil {
			return err
		}
	}
	if s.mongo != nil {
		if err := s.mongo.Drop(ctx); err != nil {
			return err
		}
	}
	return s.Init(ctx)
}

// Close releases the underlying connections.
func (s *Store) Close(ctx context.Context) {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.mongo != nil {
		_ = s.mongo.Close(ctx)
	}
}
