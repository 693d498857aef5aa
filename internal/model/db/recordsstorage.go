// Package db - Работа с хранилищами (базой данных).
package db

// Работа с хранилищем финансовых записей.

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/vpogodin/gainspend-bot/internal/helpers/dbutils"
	types "github.com/vpogodin/gainspend-bot/internal/model/bottypes"
)

// recordDB - Тип, принимающий строку таблицы записей.
type recordDB struct {
	ID          int64          `db:"id"`
	UserID      int64          `db:"user_id"`
	Kind        string         `db:"kind"`
	Category    sql.NullString `db:"category"`
	Amount      float64        `db:"amount"`
	Description string         `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
}

// kindSumDB - Тип, принимающий итог по виду записи.
type kindSumDB struct {
	Kind  string  `db:"kind"`
	Total float64 `db:"total"`
}

// categoryTotalDB - Тип, принимающий итог по категории.
type categoryTotalDB struct {
	Category string  `db:"category"`
	Total    float64 `db:"total"`
}

// RecordStorage - Хранилище финансовых записей. Записи неизменяемы,
// таблица пополняется только вставками.
type RecordStorage struct {
	db *sqlx.DB
}

// NewRecordStorage - Инициализация хранилища финансовых записей.
func NewRecordStorage(db *sqlx.DB) *RecordStorage {
	return &RecordStorage{db: db}
}

// InitSchema Создание таблицы записей, если она еще не существует.
func (storage *RecordStorage) InitSchema(ctx context.Context) error {
	const sqlString = `
		CREATE TABLE IF NOT EXISTS records (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL,
			kind TEXT NOT NULL,
			category TEXT,
			amount NUMERIC(12,2) NOT NULL,
			description TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		);`

	if _, err := dbutils.Exec(ctx, storage.db, sqlString); err != nil {
		return errors.Wrap(err, "Init records schema error")
	}
	return nil
}

// InsertRecord Добавление финансовой записи.
// Инварианты записи проверяются до обращения к базе: сумма строго
// положительна, категория заполнена только у расходов.
func (storage *RecordStorage) InsertRecord(ctx context.Context, rec types.Record) error {
	if rec.Amount <= 0 {
		return errors.New("Сумма записи должна быть положительной.")
	}
	if (rec.Kind == types.KindExpense) != (rec.Category != "") {
		return errors.New("Категория заполняется только для расходов.")
	}

	// Запрос на добавление данных.
	const sqlString = `
		INSERT INTO records (user_id, kind, category, amount, description, created_at)
			VALUES (:user_id, :kind, :category, :amount, :description, :created_at);`

	var category any
	if rec.Category != "" {
		category = rec.Category
	}

	// Именованные параметры запроса.
	args := map[string]any{
		"user_id":     rec.UserID,
		"kind":        string(rec.Kind),
		"category":    category,
		"amount":      rec.Amount,
		"description": rec.Description,
		"created_at":  rec.CreatedAt,
	}

	if _, err := dbutils.NamedExec(ctx, storage.db, sqlString, args); err != nil {
		return err
	}
	return nil
}

// GetKindSums Получение итогов по видам записей (доход/расход) за период.
func (storage *RecordStorage) GetKindSums(ctx context.Context, filter types.RecordFilter) (map[types.RecordKind]float64, error) {
	whereClause, args := buildRecordWhere(filter)
	sqlString := fmt.Sprintf(`
		SELECT kind, SUM(amount)::float8 AS total
		FROM records
		WHERE %s
		GROUP BY kind;`, whereClause)

	var recs []kindSumDB
	if err := dbutils.Select(ctx, storage.db, &recs, sqlString, args...); err != nil {
		return nil, errors.Wrap(err, "Get kind sums error")
	}

	result := make(map[types.RecordKind]float64, len(recs))
	for _, rec := range recs {
		result[types.RecordKind(rec.Kind)] = rec.Total
	}
	return result, nil
}

// GetCategoryTotals Получение итогов по категориям расходов за период.
func (storage *RecordStorage) GetCategoryTotals(ctx context.Context, filter types.RecordFilter) ([]types.CategoryTotal, error) {
	filter.Kind = types.KindExpense
	whereClause, args := buildRecordWhere(filter)
	sqlString := fmt.Sprintf(`
		SELECT COALESCE(category, '') AS category, SUM(amount)::float8 AS total
		FROM records
		WHERE %s
		GROUP BY category
		ORDER BY category;`, whereClause)

	var recs []categoryTotalDB
	if err := dbutils.Select(ctx, storage.db, &recs, sqlString, args...); err != nil {
		return nil, errors.Wrap(err, "Get category totals error")
	}

	result := make([]types.CategoryTotal, len(recs))
	for ind, rec := range recs {
		result[ind] = types.CategoryTotal{Category: rec.Category, Total: rec.Total}
	}
	return result, nil
}

// GetRecords Получение всех записей за период для детального отчета.
// Порядок: сначала доходы, затем расходы по категориям (пустая категория
// первой), внутри - по времени создания.
func (storage *RecordStorage) GetRecords(ctx context.Context, filter types.RecordFilter) ([]types.Record, error) {
	whereClause, args := buildRecordWhere(filter)
	sqlString := fmt.Sprintf(`
		SELECT id, user_id, kind, category, amount::float8 AS amount, description, created_at
		FROM records
		WHERE %s
		ORDER BY CASE WHEN kind = 'income' THEN 0 ELSE 1 END,
				 COALESCE(category, ''),
				 created_at;`, whereClause)

	var recs []recordDB
	if err := dbutils.Select(ctx, storage.db, &recs, sqlString, args...); err != nil {
		return nil, errors.Wrap(err, "Get records error")
	}

	result := make([]types.Record, len(recs))
	for ind, rec := range recs {
		result[ind] = types.Record{
			ID:          rec.ID,
			UserID:      rec.UserID,
			Kind:        types.RecordKind(rec.Kind),
			Category:    rec.Category.String,
			Amount:      rec.Amount,
			Description: rec.Description,
			CreatedAt:   rec.CreatedAt,
		}
	}
	return result, nil
}

// buildRecordWhere Построение условия WHERE из типизированного фильтра.
// Значения передаются только позиционными параметрами.
func buildRecordWhere(filter types.RecordFilter) (string, []any) {
	where := []string{"user_id = $1"}
	args := []any{filter.UserID}

	if filter.From != nil {
		args = append(args, *filter.From)
		where = append(where, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		where = append(where, fmt.Sprintf("created_at < $%d", len(args)))
	}
	if filter.Kind != "" {
		args = append(args, string(filter.Kind))
		where = append(where, fmt.Sprintf("kind = $%d", len(args)))
	}

	return strings.Join(where, " AND "), args
}
