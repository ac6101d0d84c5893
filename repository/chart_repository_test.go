// file: repository/chart_repository_test.go

package repository

import (
	"database/sql"
	"encoding/json"
	"go-charts-api/model"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func newMockRepo(t *testing.T) (*ChartRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	return NewChartRepository(db), mock, func() { db.Close() }
}

func TestChartRepository_GetByKey(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	query := regexp.QuoteMeta(`SELECT id, key, title, description, dataset_label, data, created_at FROM charts WHERE key = $1`)

	t.Run("found", func(t *testing.T) {
		points := []model.DataPoint{
			{Label: "Descriptive Analytics", Value: 45},
			{Label: "Diagnostic Analytics", Value: 25},
		}
		data, _ := json.Marshal(points)

		rows := sqlmock.NewRows([]string{"id", "key", "title", "description", "dataset_label", "data", "created_at"}).
			AddRow(1, "summary", "AI Analytics Types", "desc", "Adoption Rate (%)", data, time.Now())
		mock.ExpectQuery(query).WithArgs("summary").WillReturnRows(rows)

		chart, err := repo.GetByKey("summary")

		assert.NoError(t, err)
		assert.Equal(t, "summary", chart.Key)
		assert.Equal(t, "Adoption Rate (%)", chart.DatasetLabel)
		assert.Equal(t, points, chart.Data)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("reports").WillReturnError(sql.ErrNoRows)

		chart, err := repo.GetByKey("reports")

		assert.Nil(t, chart)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestChartRepository_Count(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	query := regexp.QuoteMeta(`SELECT COUNT(*) FROM charts`)

	rows := sqlmock.NewRows([]string{"count"}).AddRow(2)
	mock.ExpectQuery(query).WillReturnRows(rows)

	count, err := repo.Count()

	assert.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChartRepository_InsertBatch(t *testing.T) {
	insertQuery := regexp.QuoteMeta(`INSERT INTO charts (key, title, description, dataset_label, data) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`)

	charts := []*model.Chart{
		{Key: "summary", Title: "Summary", DatasetLabel: "Value", Data: []model.DataPoint{{Label: "a", Value: 1}}},
		{Key: "reports", Title: "Reports", DatasetLabel: "Value", Data: []model.DataPoint{{Label: "b", Value: 2}}},
	}

	t.Run("all records land in one transaction", func(t *testing.T) {
		repo, mock, closeDB := newMockRepo(t)
		defer closeDB()

		mock.ExpectBegin()
		for i := range charts {
			rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow(i+1, time.Now())
			mock.ExpectQuery(insertQuery).
				WithArgs(charts[i].Key, charts[i].Title, charts[i].Description, charts[i].DatasetLabel, sqlmock.AnyArg()).
				WillReturnRows(rows)
		}
		mock.ExpectCommit()

		err := repo.InsertBatch(charts)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate key rolls the whole batch back", func(t *testing.T) {
		repo, mock, closeDB := newMockRepo(t)
		defer closeDB()

		mock.ExpectBegin()
		mock.ExpectQuery(insertQuery).
			WithArgs(charts[0].Key, charts[0].Title, charts[0].Description, charts[0].DatasetLabel, sqlmock.AnyArg()).
			WillReturnError(&pq.Error{Code: "23505"})
		mock.ExpectRollback()

		err := repo.InsertBatch(charts)

		assert.Error(t, err)
		var pqErr *pq.Error
		assert.ErrorAs(t, err, &pqErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
