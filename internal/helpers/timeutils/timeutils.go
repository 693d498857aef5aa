// Package timeutils Хелпер для операций с датами и временем
package timeutils

import "time"

// BeginOfMonth Функция возвращает момент начала месяца указанной даты
// в локальном календаре. Например, при t = "16.10.2022 15:22:30"
// функция вернет дату "01.10.2022 00:00:00".
func BeginOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local)
}

// BeginOfNextMonth Функция возвращает момент начала следующего месяца
// указанной даты. Например, при t = "16.10.2022 15:22:30" функция
// вернет дату "01.11.2022 00:00:00".
func BeginOfNextMonth(t time.Time) time.Time {
	return BeginOfMonth(t).AddDate(0, 1, 0)
}

// MonthInterval Функция возвращает полуинтервал [начало месяца, начало
// следующего месяца) для заданных года и месяца.
func MonthInterval(year int, month time.Month) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	return from, from.AddDate(0, 1, 0)
}
