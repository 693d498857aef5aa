// Package stats Движок статистики: построение периодов, агрегаты
// и форматирование отчетов.
package stats

import (
	"fmt"
	"strings"
	"time"

	"github.com/vpogodin/gainspend-bot/internal/helpers/timeutils"
	types "github.com/vpogodin/gainspend-bot/internal/model/bottypes"
)

const (
	txtReportTitle    = "📊 Статистика: %v"
	txtDetailedTitle  = "📊 Статистика (подробно): %v"
	txtReportEmpty    = "За указанный период записей нет."
	txtIncomeLine     = "Доход: %v"
	txtExpenseLine    = "Расход: %v"
	txtOnHandLine     = "На руках: %v"
	txtCategoriesHead = "Расходы по категориям:"
	txtReserveHead    = "НЗ (Запас):"

	labelCurrentMonth = "Текущий месяц"
	labelAllTime      = "За всё время"
	labelMonth        = "Месяц %02d-%02d"
)

// DateRange Период отчета: полуинтервал [From, To) с подписью для вывода.
// Нулевая граница означает отсутствие ограничения.
type DateRange struct {
	From  *time.Time
	To    *time.Time
	Label string
}

// CurrentMonthRange Период текущего месяца в локальном календаре.
func CurrentMonthRange(now time.Time) DateRange {
	from := timeutils.BeginOfMonth(now)
	to := timeutils.BeginOfNextMonth(now)
	return DateRange{From: &from, To: &to, Label: labelCurrentMonth}
}

// AllTimeRange Период без ограничений - все записи пользователя.
func AllTimeRange() DateRange {
	return DateRange{Label: labelAllTime}
}

// MonthRange Период заданного месяца (по данным разбора ММ-ГГ).
func MonthRange(year int, month time.Month) DateRange {
	from, to := timeutils.MonthInterval(year, month)
	return DateRange{
		From:  &from,
		To:    &to,
		Label: fmt.Sprintf(labelMonth, int(month), year%100),
	}
}

// Summary Сводные показатели за период.
type Summary struct {
	Income     float64
	Expense    float64
	Balance    float64               // Доход минус расход.
	Reserve    float64               // Сумма по категории НЗ.
	Categories []types.CategoryTotal // Категории расходов без НЗ.
}

// BuildSummary Расчет сводных показателей по результатам запросов к хранилищу.
// Отсутствующий вид записи трактуется как ноль.
func BuildSummary(sums map[types.RecordKind]float64, categoryTotals []types.CategoryTotal) Summary {
	s := Summary{
		Income:  sums[types.KindIncome],
		Expense: sums[types.KindExpense],
	}
	s.Balance = s.Income - s.Expense

	for _, ct := range categoryTotals {
		if ct.Category == types.ReserveCategory {
			s.Reserve = ct.Total
			continue
		}
		s.Categories = append(s.Categories, ct)
	}
	return s
}

// FormatAmount Форматирование суммы: два знака после запятой и знак валюты.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("%.2f ₽", amount)
}

// categoryPrefix Эмодзи категории с разделителем; для неизвестной
// категории префикса нет.
func categoryPrefix(category string) string {
	if emoji, ok := types.CategoryEmoji[category]; ok {
		return emoji + " "
	}
	return ""
}

// FormatSummary Форматирование сводного отчета.
// НЗ всегда выводится отдельным блоком после остальных категорий.
func FormatSummary(s Summary, periodLabel string) string {
	var res strings.Builder
	res.WriteString(fmt.Sprintf(txtReportTitle, periodLabel) + "\n\n")
	res.WriteString(fmt.Sprintf(txtIncomeLine, FormatAmount(s.Income)) + "\n")
	res.WriteString(fmt.Sprintf(txtExpenseLine, FormatAmount(s.Expense)) + "\n")
	res.WriteString(fmt.Sprintf(txtOnHandLine, FormatAmount(s.Balance)) + "\n")

	if len(s.Categories) > 0 {
		res.WriteString("\n" + txtCategoriesHead + "\n")
		for _, ct := range s.Categories {
			res.WriteString(fmt.Sprintf("• %v%v: %v", categoryPrefix(ct.Category), ct.Category, FormatAmount(ct.Total)) + "\n")
		}
	}

	if s.Reserve > 0 {
		res.WriteString("\n" + txtReserveHead + "\n")
		res.WriteString(fmt.Sprintf("• %v%v: %v", categoryPrefix(types.ReserveCategory), types.ReserveCategory, FormatAmount(s.Reserve)) + "\n")
	}

	return strings.TrimRight(res.String(), "\n")
}

// FormatDetailed Форматирование детального отчета: каждая запись периода
// отдельной строкой (порядок записей задает хранилище). При отсутствии
// записей возвращается отдельное сообщение, а не пустая таблица.
func FormatDetailed(recs []types.Record, periodLabel string) string {
	if len(recs) == 0 {
		return txtReportEmpty
	}

	var res strings.Builder
	res.WriteString(fmt.Sprintf(txtDetailedTitle, periodLabel) + "\n\n")
	for _, rec := range recs {
		res.WriteString(formatRecordLine(rec) + "\n")
	}
	return strings.TrimRight(res.String(), "\n")
}

// formatRecordLine Одна строка детального отчета.
func formatRecordLine(rec types.Record) string {
	date := rec.CreatedAt.Format("02.01.2006")
	if rec.Kind == types.KindIncome {
		return fmt.Sprintf("➕ %v %v %v", date, FormatAmount(rec.Amount), rec.Description)
	}
	return fmt.Sprintf("%v%v %v %v %v", categoryPrefix(rec.Category), rec.Category, date, FormatAmount(rec.Amount), rec.Description)
}
