// Package session Состояния диалогов пользователей.
//
// Каждое состояние - отдельный тип, несущий только свои данные.
// Хранилище сессий живет в памяти: у пользователя одновременно не более
// одного активного диалога, начало нового диалога затирает прежний.
package session

import (
	"sync"
	"time"
)

// State Состояние диалога пользователя.
type State interface {
	dialogState()
}

// Idle Нет активного диалога.
type Idle struct{}

// IncomeLine Ожидание строки "сумма, описание" для дохода.
type IncomeLine struct{}

// ExpenseCategory Ожидание выбора категории расхода.
type ExpenseCategory struct{}

// ExpenseLine Ожидание строки "сумма, описание" для расхода
// по уже выбранной категории.
type ExpenseLine struct {
	Category string
}

// StatsPeriod Ожидание выбора периода статистики.
type StatsPeriod struct{}

// StatsMonth Ожидание ввода месяца в формате ММ-ГГ.
type StatsMonth struct{}

// StatsDetail Ожидание выбора вида отчета по уже определенному периоду.
// Границы периода - полуинтервал [From, To), nil - без ограничения.
type StatsDetail struct {
	From  *time.Time
	To    *time.Time
	Label string
}

func (Idle) dialogState()            {}
func (IncomeLine) dialogState()      {}
func (ExpenseCategory) dialogState() {}
func (ExpenseLine) dialogState()     {}
func (StatsPeriod) dialogState()     {}
func (StatsMonth) dialogState()      {}
func (StatsDetail) dialogState()     {}

// Store Хранилище сессий пользователей.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]State
}

// NewStore Инициализация хранилища сессий.
func NewStore() *Store {
	return &Store{
		sessions: make(map[int64]State),
	}
}

// Get Получение состояния диалога пользователя.
// Если активного диалога нет, возвращается Idle.
func (s *Store) Get(userID int64) State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if st, ok := s.sessions[userID]; ok {
		return st
	}
	return Idle{}
}

// Set Установка состояния диалога пользователя.
func (s *Store) Set(userID int64, st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = st
}

// Clear Завершение диалога: состояние и временные данные отбрасываются.
func (s *Store) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}
