package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_ParseEntryLine_ShouldFillFields(t *testing.T) {
	amount, desc, err := ParseEntryLine("1500.50, зарплата за март")

	assert.NoError(t, err)
	assert.Equal(t, 1500.50, amount)
	assert.Equal(t, "зарплата за март", desc)
}

func Test_ParseEntryLine_ShouldSplitOnFirstComma(t *testing.T) {
	amount, desc, err := ParseEntryLine("250, кофе, выпечка")

	assert.NoError(t, err)
	assert.Equal(t, 250.0, amount)
	// Делится только по первой запятой, запятые в описании сохраняются.
	assert.Equal(t, "кофе, выпечка", desc)
}

func Test_ParseEntryLine_ShouldReturnError_WhenNoSeparator(t *testing.T) {
	_, _, err := ParseEntryLine("1500 зарплата")

	assert.ErrorIs(t, err, ErrMalformedLine)
}

func Test_ParseEntryLine_ShouldReturnError_WhenBadAmount(t *testing.T) {
	tests := []string{"abc, что-то", "0, ничего", "-20, возврат"}
	for _, line := range tests {
		_, _, err := ParseEntryLine(line)
		assert.ErrorIs(t, err, ErrInvalidAmount, line)
	}
}

func Test_ParseEntryLine_ShouldReturnError_WhenEmptyDescription(t *testing.T) {
	_, _, err := ParseEntryLine("1500,   ")

	assert.ErrorIs(t, err, ErrEmptyDescription)
}

func Test_ParseEntryLine_ShouldReturnCancel_CaseInsensitive(t *testing.T) {
	for _, text := range []string{"отмена", "Отмена", "ОТМЕНА", "  отмена "} {
		_, _, err := ParseEntryLine(text)
		assert.ErrorIs(t, err, ErrCancelRequested, text)
	}
}

func Test_ParseAmount_ShouldNormalizeComma(t *testing.T) {
	amount, err := ParseAmount("1500,50")

	assert.NoError(t, err)
	assert.Equal(t, 1500.50, amount)
}

func Test_ParseAmount_ShouldReturnError_WhenNotPositive(t *testing.T) {
	for _, text := range []string{"0", "-1", "ноль"} {
		_, err := ParseAmount(text)
		assert.ErrorIs(t, err, ErrInvalidAmount, text)
	}
}

func Test_ExtractCategory_ShouldMatchButtonText(t *testing.T) {
	cat, err := ExtractCategory("🍽️ Еда")

	assert.NoError(t, err)
	assert.Equal(t, "Еда", cat)
}

func Test_ExtractCategory_ShouldReturnFirstMatchInListOrder(t *testing.T) {
	// Текст содержит сразу две категории - берется первая по порядку списка.
	cat, err := ExtractCategory("Еда и Досуг")

	assert.NoError(t, err)
	assert.Equal(t, "Еда", cat)
}

func Test_ExtractCategory_ShouldReturnError_WhenUnknown(t *testing.T) {
	_, err := ExtractCategory("Путешествия")

	assert.ErrorIs(t, err, ErrUnrecognizedCategory)
}

func Test_ParseMonth_ShouldReturnYearAndMonth(t *testing.T) {
	year, month, err := ParseMonth("11-25")

	assert.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.November, month)
}

func Test_ParseMonth_ShouldReturnError_WhenMonthOutOfRange(t *testing.T) {
	_, _, err := ParseMonth("13-25")

	assert.ErrorIs(t, err, ErrInvalidMonthFormat)
}

func Test_ParseMonth_ShouldReturnError_WhenSingleField(t *testing.T) {
	_, _, err := ParseMonth("11")

	assert.ErrorIs(t, err, ErrInvalidMonthFormat)
}

func Test_ParseMonth_ShouldReturnError_WhenNotNumeric(t *testing.T) {
	_, _, err := ParseMonth("ноя-25")

	assert.ErrorIs(t, err, ErrInvalidMonthFormat)
}
