// Package parser Разбор пользовательского ввода: суммы, строки записи,
// категории и месяца для статистики.
package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	types "github.com/vpogodin/gainspend-bot/internal/model/bottypes"
)

// Ключевое слово отмены активного диалога (регистр не важен).
const cancelKeyword = "отмена"

// Классы ошибок разбора. По классу ошибки выбирается текст повторного запроса.
var (
	ErrCancelRequested      = errors.New("запрошена отмена")
	ErrMalformedLine        = errors.New("строка без разделителя")
	ErrInvalidAmount        = errors.New("некорректная сумма")
	ErrEmptyDescription     = errors.New("пустое описание")
	ErrUnrecognizedCategory = errors.New("категория не распознана")
	ErrInvalidMonthFormat   = errors.New("неверный формат месяца")
)

// IsCancel Проверка, что введено ключевое слово отмены.
func IsCancel(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), cancelKeyword)
}

// ParseAmount Разбор суммы. Запятая-разделитель дробной части заменяется
// на точку, сумма должна быть положительным числом.
func ParseAmount(text string) (float64, error) {
	normalized := strings.Replace(strings.TrimSpace(text), ",", ".", 1)
	amount, err := strconv.ParseFloat(normalized, 64)
	if err != nil || amount <= 0 {
		return 0, ErrInvalidAmount
	}
	return amount, nil
}

// ParseEntryLine Разбор строки записи вида "сумма, описание".
// Строка делится по первой запятой: слева сумма, справа описание.
func ParseEntryLine(text string) (float64, string, error) {
	text = strings.TrimSpace(text)
	if IsCancel(text) {
		return 0, "", ErrCancelRequested
	}

	amountPart, descPart, found := strings.Cut(text, ",")
	if !found {
		return 0, "", ErrMalformedLine
	}

	// В части с суммой запятой уже нет, но допускается дробная точка.
	amount, err := ParseAmount(amountPart)
	if err != nil {
		return 0, "", err
	}

	description := strings.TrimSpace(descPart)
	if description == "" {
		return 0, "", ErrEmptyDescription
	}

	return amount, description, nil
}

// ExtractCategory Распознавание категории по тексту кнопки.
// Возвращается первая по порядку категория, название которой входит в текст.
func ExtractCategory(text string) (string, error) {
	text = strings.TrimSpace(text)
	for _, cat := range types.ExpenseCategories {
		if strings.Contains(text, cat) {
			return cat, nil
		}
	}
	return "", ErrUnrecognizedCategory
}

// ParseMonth Разбор месяца в формате ММ-ГГ, например "11-25" - ноябрь 2025.
// Год трактуется как 2000 + ГГ: окно двухзначного года зафиксировано
// на 2000-е, даты 19xx и после 2099 этим форматом не выражаются.
func ParseMonth(text string) (int, time.Month, error) {
	parts := strings.Split(strings.TrimSpace(text), "-")
	if len(parts) != 2 {
		return 0, 0, ErrInvalidMonthFormat
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, ErrInvalidMonthFormat
	}
	yy, err := strconv.Atoi(parts[1])
	if err != nil || yy < 0 {
		return 0, 0, ErrInvalidMonthFormat
	}
	return 2000 + yy, time.Month(month), nil
}
