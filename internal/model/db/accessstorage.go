package db

// Работа с хранилищем списка допущенных пользователей.

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/vpogodin/gainspend-bot/internal/helpers/dbutils"
	types "github.com/vpogodin/gainspend-bot/internal/model/bottypes"
)

// AccessStorage - Хранилище списка допущенных пользователей.
// Владелец бота в списке не хранится, он допущен всегда.
type AccessStorage struct {
	db *sqlx.DB
}

// NewAccessStorage - Инициализация хранилища списка допущенных пользователей.
func NewAccessStorage(db *sqlx.DB) *AccessStorage {
	return &AccessStorage{db: db}
}

// InitSchema Создание таблицы списка допуска, если она еще не существует.
func (storage *AccessStorage) InitSchema(ctx context.Context) error {
	const sqlString = `
		CREATE TABLE IF NOT EXISTS allowed_users (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL UNIQUE,
			username TEXT,
			first_name TEXT,
			created_at TIMESTAMP NOT NULL DEFAULT now()
		);`

	if _, err := dbutils.Exec(ctx, storage.db, sqlString); err != nil {
		return errors.Wrap(err, "Init allowed_users schema error")
	}
	return nil
}

// IsUserAllowed Проверка наличия пользователя в списке допуска.
func (storage *AccessStorage) IsUserAllowed(ctx context.Context, userID int64) (bool, error) {
	const sqlString = `SELECT COUNT(id) AS countusers FROM allowed_users WHERE user_id = $1;`

	cnt, err := dbutils.GetMap(ctx, storage.db, sqlString, userID)
	if err != nil {
		return false, err
	}
	// Приведение результата запроса к нужному типу.
	countusers, ok := cnt["countusers"].(int64)
	if !ok {
		return false, errors.New("Ошибка приведения типа результата запроса.")
	}
	return countusers > 0, nil
}

// UpsertAllowedUser Добавление пользователя в список допуска.
// Повторное добавление обновляет имя и username.
func (storage *AccessStorage) UpsertAllowedUser(ctx context.Context, user types.AllowedUser) error {
	const sqlString = `
		INSERT INTO allowed_users (user_id, username, first_name)
			VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
			SET username = EXCLUDED.username, first_name = EXCLUDED.first_name;`

	if _, err := dbutils.Exec(ctx, storage.db, sqlString, user.UserID, user.UserName, user.FirstName); err != nil {
		return errors.Wrap(err, "Upsert allowed user error")
	}
	return nil
}

// DeleteAllowedUser Удаление пользователя из списка допуска.
func (storage *AccessStorage) DeleteAllowedUser(ctx context.Context, userID int64) error {
	const sqlString = `DELETE FROM allowed_users WHERE user_id = $1;`

	if _, err := dbutils.Exec(ctx, storage.db, sqlString, userID); err != nil {
		return errors.Wrap(err, "Delete allowed user error")
	}
	return nil
}
