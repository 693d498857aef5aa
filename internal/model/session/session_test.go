package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_Get_noSession_returnsIdle(t *testing.T) {
	store := NewStore()

	assert.Equal(t, Idle{}, store.Get(123))
}

func TestStore_Set_overwritesPreviousDialog(t *testing.T) {
	store := NewStore()
	store.Set(123, ExpenseLine{Category: "Еда"})

	// Начало нового диалога затирает незавершенный прежний.
	store.Set(123, IncomeLine{})

	assert.Equal(t, IncomeLine{}, store.Get(123))
}

func TestStore_Clear_dropsScratchData(t *testing.T) {
	store := NewStore()
	store.Set(123, ExpenseLine{Category: "Дом"})

	store.Clear(123)

	assert.Equal(t, Idle{}, store.Get(123))
}

func TestStore_Set_isScopedPerUser(t *testing.T) {
	store := NewStore()
	store.Set(1, StatsPeriod{})
	store.Set(2, ExpenseCategory{})

	assert.Equal(t, StatsPeriod{}, store.Get(1))
	assert.Equal(t, ExpenseCategory{}, store.Get(2))
}

func TestStore_Async_allSessionsStored(t *testing.T) {
	store := NewStore()
	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		store.Set(1, IncomeLine{})
		wg.Done()
	}()
	go func() {
		store.Set(2, StatsMonth{})
		wg.Done()
	}()
	wg.Wait()

	assert.Equal(t, IncomeLine{}, store.Get(1))
	assert.Equal(t, StatsMonth{}, store.Get(2))
}
