package db

import (
	"context"
	"regexp"
	"testing"

	sqlxmock "github.com/zhashkevych/go-sqlxmock"

	types "github.com/vpogodin/gainspend-bot/internal/model/bottypes"
)

func Test_AccessStorage_IsUserAllowed(t *testing.T) {

	ctx := context.Background()
	db, mock, err := sqlxmock.Newx()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	s := NewAccessStorage(db)

	tests := []struct {
		name    string
		userID  int64
		mock    func()
		want    bool
		wantErr bool
	}{
		{
			name:   "Тест 1. Должно быть без ошибок (пользователь допущен).",
			userID: 15236,
			mock: func() {
				rows := sqlxmock.NewRows([]string{"countusers"}).AddRow(1)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(id) AS countusers FROM allowed_users WHERE user_id = $1;")).
					WithArgs(15236).WillReturnRows(rows)
			},
			wantErr: false,
			want:    true,
		},
		{
			name:   "Тест 2. Должно быть без ошибок (пользователь не допущен).",
			userID: 15237,
			mock: func() {
				rows := sqlxmock.NewRows([]string{"countusers"}).AddRow(0)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(id) AS countusers FROM allowed_users WHERE user_id = $1;")).
					WithArgs(15237).WillReturnRows(rows)
			},
			wantErr: false,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()
			got, err := s.IsUserAllowed(ctx, tt.userID)
			if (err != nil) != tt.wantErr {
				t.Errorf("Не совпало ожидание ошибки: IsUserAllowed() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err == nil && got != tt.want {
				t.Errorf("Не совпало ожидание получаемого значения: IsUserAllowed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_AccessStorage_UpsertAllowedUser(t *testing.T) {

	ctx := context.Background()
	db, mock, err := sqlxmock.Newx()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	s := NewAccessStorage(db)

	mock.ExpectExec("INSERT INTO allowed_users").
		WithArgs(int64(15236), "testuser", "Test").
		WillReturnResult(sqlxmock.NewResult(1, 1))

	err = s.UpsertAllowedUser(ctx, types.AllowedUser{UserID: 15236, UserName: "testuser", FirstName: "Test"})
	if err != nil {
		t.Errorf("Неожиданная ошибка: %v", err)
	}
}

func Test_AccessStorage_DeleteAllowedUser(t *testing.T) {

	ctx := context.Background()
	db, mock, err := sqlxmock.Newx()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	s := NewAccessStorage(db)

	mock.ExpectExec("DELETE FROM allowed_users").
		WithArgs(int64(15236)).
		WillReturnResult(sqlxmock.NewResult(0, 1))

	err = s.DeleteAllowedUser(ctx, 15236)
	if err != nil {
		t.Errorf("Неожиданная ошибка: %v", err)
	}
}
