package bottypes

import (
	"time"
)

// RecordKind Вид финансовой записи: доход или расход.
type RecordKind string

const (
	KindIncome  RecordKind = "income"
	KindExpense RecordKind = "expense"
)

// ExpenseCategories Фиксированный набор категорий расходов.
var ExpenseCategories = []string{"Еда", "Дом", "Коммуналка", "Досуг", "НЗ"}

// ReserveCategory Категория-запас (НЗ), в отчетах всегда выводится отдельным блоком.
const ReserveCategory = "НЗ"

// CategoryEmoji Эмодзи категорий для вывода в сообщениях.
var CategoryEmoji = map[string]string{
	"Еда":        "🍽️",
	"Дом":        "🏠",
	"Коммуналка": "💡",
	"Досуг":      "🎉",
	"НЗ":         "📦",
}

// Record Запись о доходе или расходе пользователя.
// Категория заполняется только для расходов.
type Record struct {
	ID          int64
	UserID      int64
	Kind        RecordKind
	Category    string
	Amount      float64
	Description string
	CreatedAt   time.Time
}

// CategoryTotal Сумма расходов по одной категории.
type CategoryTotal struct {
	Category string
	Total    float64
}

// AllowedUser Пользователь из списка допущенных к боту.
type AllowedUser struct {
	UserID    int64
	UserName  string
	FirstName string
	CreatedAt time.Time
}

// RecordFilter Типизированный набор условий отбора записей.
// Нулевые границы означают отсутствие ограничения, диапазон - полуинтервал [From, To).
type RecordFilter struct {
	UserID int64
	From   *time.Time
	To     *time.Time
	Kind   RecordKind
}

// Типы для описания состава кнопок телеграм сообщения.
// Кнопка обычной (reply) клавиатуры.
type TgButton struct {
	Text string
}

// Строка с кнопками клавиатуры.
type TgRowButtons []TgButton
