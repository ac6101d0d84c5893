package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"go-charts-api/logger"
	"go-charts-api/model"
)

// IChartRepository defines the contract for chart dataset store operations.
type IChartRepository interface {
	GetByKey(key string) (*model.Chart, error)
	Count() (int, error)
	InsertBatch(charts []*model.Chart) error
}

// ChartRepository implements IChartRepository over Postgres. Data points are
// stored as a JSONB column so the display order survives the round trip.
type ChartRepository struct {
	DB *sql.DB
}

func NewChartRepository(db *sql.DB) *ChartRepository {
	return &ChartRepository{DB: db}
}

// GetByKey retrieves a single chart dataset by its unique key.
// Returns sql.ErrNoRows when no record exists for the key.
func (r *ChartRepository) GetByKey(key string) (*model.Chart, error) {
	log := logger.Log.WithField("chart_key", key)
	log.Info("Executing query to get chart by key")

	chart := &model.Chart{}
	var data []byte
	query := `SELECT id, key, title, description, dataset_label, data, created_at FROM charts WHERE key = $1`
	err := r.DB.QueryRow(query, key).Scan(&chart.ID, &chart.Key, &chart.Title, &chart.Description, &chart.DatasetLabel, &data, &chart.CreatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			log.WithError(err).Error("Failed to execute get chart by key query")
		}
		return nil, err // Return sql.ErrNoRows if not found
	}

	if err := json.Unmarshal(data, &chart.Data); err != nil {
		log.WithError(err).Error("Failed to unmarshal chart data points")
		return nil, fmt.Errorf("failed to unmarshal chart data: %w", err)
	}
	return chart, nil
}

// Count returns the number of chart records currently stored.
func (r *ChartRepository) Count() (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM charts`
	if err := r.DB.QueryRow(query).Scan(&count); err != nil {
		logger.Log.WithError(err).Error("Failed to execute count charts query")
		return 0, err
	}
	return count, nil
}

// InsertBatch inserts all given charts inside a single transaction: either
// every record lands or none do. A unique-violation on key aborts the whole
// batch.
func (r *ChartRepository) InsertBatch(charts []*model.Chart) error {
	log := logger.Log.WithField("chart_count", len(charts))
	log.Info("Executing batch insert of chart records")

	tx, err := r.DB.Begin()
	if err != nil {
		log.WithError(err).Error("Failed to begin transaction for chart batch insert")
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO charts (key, title, description, dataset_label, data) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	for _, chart := range charts {
		data, err := json.Marshal(chart.Data)
		if err != nil {
			log.WithError(err).WithField("chart_key", chart.Key).Error("Failed to marshal chart data points")
			return fmt.Errorf("failed to marshal chart data: %w", err)
		}
		err = tx.QueryRow(query, chart.Key, chart.Title, chart.Description, chart.DatasetLabel, data).Scan(&chart.ID, &chart.CreatedAt)
		if err != nil {
			log.WithError(err).WithField("chart_key", chart.Key).Error("Failed to execute insert chart query")
			return err
		}
	}

	return tx.Commit()
}
