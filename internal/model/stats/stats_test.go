package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	types "github.com/vpogodin/gainspend-bot/internal/model/bottypes"
)

func Test_BuildSummary_ShouldComputeBalanceAndSeparateReserve(t *testing.T) {
	// Доход 1000 (зарплата), расход 200 (Еда) и 50 (НЗ).
	sums := map[types.RecordKind]float64{
		types.KindIncome:  1000,
		types.KindExpense: 250,
	}
	categoryTotals := []types.CategoryTotal{
		{Category: "Еда", Total: 200},
		{Category: "НЗ", Total: 50},
	}

	s := BuildSummary(sums, categoryTotals)

	assert.Equal(t, 1000.0, s.Income)
	assert.Equal(t, 250.0, s.Expense)
	assert.Equal(t, 750.0, s.Balance)
	assert.Equal(t, 50.0, s.Reserve)
	// НЗ не попадает в общий список категорий.
	assert.Equal(t, []types.CategoryTotal{{Category: "Еда", Total: 200}}, s.Categories)
}

func Test_BuildSummary_ShouldTreatMissingKindAsZero(t *testing.T) {
	s := BuildSummary(map[types.RecordKind]float64{}, nil)

	assert.Equal(t, 0.0, s.Income)
	assert.Equal(t, 0.0, s.Expense)
	assert.Equal(t, 0.0, s.Balance)
	assert.Equal(t, 0.0, s.Reserve)
	assert.Empty(t, s.Categories)
}

func Test_BuildSummary_ShouldBeIdempotent(t *testing.T) {
	sums := map[types.RecordKind]float64{types.KindIncome: 300}
	totals := []types.CategoryTotal{{Category: "Дом", Total: 100}}

	first := BuildSummary(sums, totals)
	second := BuildSummary(sums, totals)

	assert.Equal(t, first, second)
}

func Test_CurrentMonthRange_ShouldBeHalfOpenMonth(t *testing.T) {
	now := time.Date(2025, 11, 16, 15, 22, 30, 0, time.Local)

	r := CurrentMonthRange(now)

	assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.Local), *r.From)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.Local), *r.To)
	assert.Equal(t, "Текущий месяц", r.Label)
}

func Test_AllTimeRange_ShouldHaveNoBounds(t *testing.T) {
	r := AllTimeRange()

	assert.Nil(t, r.From)
	assert.Nil(t, r.To)
	assert.Equal(t, "За всё время", r.Label)
}

func Test_MonthRange_ShouldFormatLabelAsMMYY(t *testing.T) {
	r := MonthRange(2025, time.November)

	assert.Equal(t, "Месяц 11-25", r.Label)
	assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.Local), *r.From)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.Local), *r.To)
}

func Test_FormatSummary_ShouldRenderAmountsWithTwoDigits(t *testing.T) {
	s := Summary{
		Income:     1000,
		Expense:    250,
		Balance:    750,
		Reserve:    50,
		Categories: []types.CategoryTotal{{Category: "Еда", Total: 200}},
	}

	text := FormatSummary(s, "Текущий месяц")

	assert.Contains(t, text, "📊 Статистика: Текущий месяц")
	assert.Contains(t, text, "Доход: 1000.00 ₽")
	assert.Contains(t, text, "Расход: 250.00 ₽")
	assert.Contains(t, text, "На руках: 750.00 ₽")
	assert.Contains(t, text, "• 🍽️ Еда: 200.00 ₽")
	assert.Contains(t, text, "НЗ (Запас):")
	assert.Contains(t, text, "• 📦 НЗ: 50.00 ₽")
}

func Test_FormatSummary_ShouldSkipEmptySections(t *testing.T) {
	text := FormatSummary(Summary{}, "За всё время")

	assert.NotContains(t, text, "Расходы по категориям:")
	assert.NotContains(t, text, "НЗ (Запас):")
}

func Test_FormatDetailed_ShouldRenderEveryRecord(t *testing.T) {
	day := time.Date(2025, 11, 2, 12, 0, 0, 0, time.Local)
	recs := []types.Record{
		{Kind: types.KindIncome, Amount: 1000, Description: "зарплата", CreatedAt: day},
		{Kind: types.KindExpense, Category: "Еда", Amount: 200, Description: "обед", CreatedAt: day},
		{Kind: types.KindExpense, Category: "НЗ", Amount: 50, Description: "отложил", CreatedAt: day},
	}

	text := FormatDetailed(recs, "Месяц 11-25")

	assert.Contains(t, text, "📊 Статистика (подробно): Месяц 11-25")
	assert.Contains(t, text, "➕ 02.11.2025 1000.00 ₽ зарплата")
	assert.Contains(t, text, "🍽️ Еда 02.11.2025 200.00 ₽ обед")
	assert.Contains(t, text, "📦 НЗ 02.11.2025 50.00 ₽ отложил")
}

func Test_FormatDetailed_ShouldReturnEmptyMessage_WhenNoRecords(t *testing.T) {
	text := FormatDetailed(nil, "Месяц 01-25")

	assert.Equal(t, "За указанный период записей нет.", text)
}
