package messages

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"github.com/vpogodin/gainspend-bot/internal/logger"
	types "github.com/vpogodin/gainspend-bot/internal/model/bottypes"
	"github.com/vpogodin/gainspend-bot/internal/model/parser"
	"github.com/vpogodin/gainspend-bot/internal/model/session"
	"github.com/vpogodin/gainspend-bot/internal/model/stats"
)

// Область "Константы и переменные": начало.

const (
	txtStart          = "Привет, *%v*. Я помогаю вести учет доходов и расходов. Выберите действие."
	txtUnknownCommand = "К сожалению, данная команда мне неизвестна. Для начала работы введите /start"
	txtMyID           = "Ваш идентификатор: %v"
	txtCancel         = "Действие отменено."

	txtAccessDenied = "⛔ У вас нет доступа к боту. Узнать свой идентификатор: /myid"
	txtAccessCheck  = "Не удалось проверить доступ. Попробуйте ещё раз."
	txtOwnerOnly     = "Команда доступна только владельцу бота."
	txtGrantUsage    = "Использование: /grant <id>"
	txtRevokeUsage   = "Использование: /revoke <id>"
	txtGranted       = "Пользователю %v выдан доступ."
	txtRevoked       = "У пользователя %v отозван доступ."
	txtAccessError   = "Не удалось изменить список доступа."

	txtIncomePrompt   = "Введите доход в формате: сумма, описание.\nНапример: 1500.50, зарплата.\nДля отмены введите «отмена»."
	txtExpenseCat     = "Выберите категорию расхода:"
	txtExpensePrompt  = "Категория: %v\nВведите расход в формате: сумма, описание.\nНапример: 350, продукты.\nДля отмены введите «отмена»."
	txtIncomeSaved    = "✅ Доход %v сохранён.\nОписание: %v"
	txtExpenseSaved   = "✅ Расход %v сохранён.\nКатегория: %v\nОписание: %v"
	txtSaveError      = "Не удалось сохранить запись. Попробуйте ещё раз."
	txtReportError    = "Не удалось получить данные. Попробуйте ещё раз."
	txtBadLine        = "Неверный формат. Нужно: сумма, описание. Например: 1500.50, зарплата."
	txtBadAmount      = "Некорректная сумма. Введите положительное число, например: 1500.50."
	txtEmptyDesc      = "Описание не должно быть пустым. Введите: сумма, описание."
	txtBadCategory    = "Пожалуйста, выберите категорию с клавиатуры."
	txtStatsPeriod    = "За какой период показать статистику?"
	txtStatsMonth     = "Введите месяц в формате ММ-ГГ (последние 2 цифры года), например: 11-25"
	txtStatsDetail    = "Какой отчет показать?"
	txtBadPeriod      = "Пожалуйста, выберите вариант с клавиатуры."
	txtBadMonth       = "Неверный формат. Нужен ММ-ГГ, например: 11-25 (ноябрь 2025)."
	txtBadDetailLevel = "Пожалуйста, выберите «Кратко» или «Подробно»."
)

// Тексты кнопок главного меню и диалогов.
const (
	btnIncome        = "➕ Доход"
	btnExpense       = "➖ Расход"
	btnStats         = "📊 Статистика"
	btnPeriodCurrent = "Текущий месяц"
	btnPeriodChoose  = "Выбрать месяц"
	btnPeriodAll     = "За всё время"
	btnDetailShort   = "Кратко"
	btnDetailFull    = "Подробно"
)

// Кнопки стартовых действий.
var btnMain = []types.TgRowButtons{
	{types.TgButton{Text: btnIncome}, types.TgButton{Text: btnExpense}},
	{types.TgButton{Text: btnStats}},
}

// Кнопки выбора периода статистики.
var btnPeriods = []types.TgRowButtons{
	{types.TgButton{Text: btnPeriodCurrent}, types.TgButton{Text: btnPeriodChoose}},
	{types.TgButton{Text: btnPeriodAll}},
}

// Кнопки выбора вида отчета.
var btnDetails = []types.TgRowButtons{
	{types.TgButton{Text: btnDetailShort}, types.TgButton{Text: btnDetailFull}},
}

// Кнопки выбора категории расхода (по одной в строке, с эмодзи).
func categoryButtons() []types.TgRowButtons {
	buttons := make([]types.TgRowButtons, 0, len(types.ExpenseCategories))
	for _, cat := range types.ExpenseCategories {
		buttons = append(buttons, types.TgRowButtons{types.TgButton{Text: types.CategoryEmoji[cat] + " " + cat}})
	}
	return buttons
}

// Область "Константы и переменные": конец.

// Область "Внешний интерфейс": начало.

// MessageSender Интерфейс для работы с сообщениями.
type MessageSender interface {
	SendMessage(text string, userID int64) error
	ShowKeyboardButtons(text string, buttons []types.TgRowButtons, userID int64) error
	HideKeyboard(text string, userID int64) error
}

// UserDataStorage Интерфейс для работы с хранилищем финансовых записей.
type UserDataStorage interface {
	InsertRecord(ctx context.Context, rec types.Record) error
	GetKindSums(ctx context.Context, filter types.RecordFilter) (map[types.RecordKind]float64, error)
	GetCategoryTotals(ctx context.Context, filter types.RecordFilter) ([]types.CategoryTotal, error)
	GetRecords(ctx context.Context, filter types.RecordFilter) ([]types.Record, error)
}

// AccessStorage Интерфейс для работы со списком допущенных пользователей.
type AccessStorage interface {
	IsUserAllowed(ctx context.Context, userID int64) (bool, error)
	UpsertAllowedUser(ctx context.Context, user types.AllowedUser) error
	DeleteAllowedUser(ctx context.Context, userID int64) error
}

// SessionStore Интерфейс хранилища состояний диалогов.
type SessionStore interface {
	Get(userID int64) session.State
	Set(userID int64, st session.State)
	Clear(userID int64)
}

// AccessCache Интерфейс кэша решений о допуске.
type AccessCache interface {
	Add(key int64, value any)
	Get(key int64) any
	Remove(key int64)
}

// OwnerNotifier Интерфейс уведомления владельца о попытках доступа.
// Уведомление не должно блокировать ответ пользователю, его ошибка
// не влияет на основной путь обработки.
type OwnerNotifier interface {
	NotifyAccessRequest(userID int64, userName string, displayName string)
}

// eventProducer Интерфейс для отправки событий аудита в кафку.
type eventProducer interface {
	SendMessage(key string, value string) (partition int32, offset int64, err error)
	GetTopic() string
}

// Model Модель бота (клиент, хранилища, сессии диалогов, допуск).
type Model struct {
	ctx         context.Context
	tgClient    MessageSender   // Клиент.
	storage     UserDataStorage // Хранилище финансовых записей.
	access      AccessStorage   // Список допущенных пользователей.
	sessions    SessionStore    // Состояния диалогов пользователей.
	accessCache AccessCache     // Кэш решений о допуске.
	notifier    OwnerNotifier   // Уведомления владельца.
	producer    eventProducer   // Кафка для событий аудита (nil - аудит выключен).
	ownerUserID int64           // Владелец бота: всегда допущен, в списке не хранится.
}

// New Генерация сущности модели бота.
func New(ctx context.Context, tgClient MessageSender, storage UserDataStorage, access AccessStorage,
	sessions SessionStore, accessCache AccessCache, notifier OwnerNotifier, producer eventProducer,
	ownerUserID int64) *Model {
	return &Model{
		ctx:         ctx,
		tgClient:    tgClient,
		storage:     storage,
		access:      access,
		sessions:    sessions,
		accessCache: accessCache,
		notifier:    notifier,
		producer:    producer,
		ownerUserID: ownerUserID,
	}
}

// Message Структура сообщения для обработки.
type Message struct {
	Text            string
	UserID          int64
	UserName        string
	UserDisplayName string
}

func (s *Model) GetCtx() context.Context {
	return s.ctx
}

func (s *Model) SetCtx(ctx context.Context) {
	s.ctx = ctx
}

// IncomingMessage Обработка входящего сообщения.
func (s *Model) IncomingMessage(msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(s.ctx, "IncomingMessage")
	s.ctx = ctx
	defer span.Finish()

	text := strings.TrimSpace(msg.Text)

	// Команда /myid отвечает всем: идентификатор нужен, чтобы запросить доступ.
	if text == "/myid" {
		return s.tgClient.SendMessage(fmt.Sprintf(txtMyID, msg.UserID), msg.UserID)
	}

	// Проверка допуска до любых переходов состояний.
	allowed, err := s.checkAccess(msg)
	if err != nil {
		logger.Error("Ошибка проверки доступа", "err", err)
		return s.tgClient.SendMessage(txtAccessCheck, msg.UserID)
	}
	if !allowed {
		// Уведомление владельца асинхронное, его судьба не влияет на отказ.
		if s.notifier != nil {
			s.notifier.NotifyAccessRequest(msg.UserID, msg.UserName, msg.UserDisplayName)
		}
		return s.tgClient.SendMessage(txtAccessDenied, msg.UserID)
	}

	// Глобальные команды: распознаются в любом состоянии и прерывают
	// незавершенный диалог без предупреждения.
	if isNeedReturn, err := s.checkGlobalCommands(msg, text); err != nil || isNeedReturn {
		return err
	}

	// Диспетчеризация по текущему состоянию диалога.
	switch st := s.sessions.Get(msg.UserID).(type) {
	case session.IncomeLine:
		return s.processIncomeLine(msg, text)
	case session.ExpenseCategory:
		return s.processExpenseCategory(msg, text)
	case session.ExpenseLine:
		return s.processExpenseLine(msg, text, st)
	case session.StatsPeriod:
		return s.processStatsPeriod(msg, text)
	case session.StatsMonth:
		return s.processStatsMonth(msg, text)
	case session.StatsDetail:
		return s.processStatsDetail(msg, text, st)
	default:
		// Нет активного диалога, команда не распознана.
		return s.tgClient.SendMessage(txtUnknownCommand, msg.UserID)
	}
}

// Область "Внешний интерфейс": конец.

// Область "Распознавание входящих команд": начало.

// checkGlobalCommands Обработка команд, действующих в любом состоянии.
func (s *Model) checkGlobalCommands(msg Message, text string) (bool, error) {
	switch text {
	case "/start":
		s.sessions.Clear(msg.UserID)
		displayName := msg.UserDisplayName
		if len(displayName) == 0 {
			displayName = msg.UserName
		}
		return true, s.tgClient.ShowKeyboardButtons(fmt.Sprintf(txtStart, displayName), btnMain, msg.UserID)
	case "/income", btnIncome:
		s.sessions.Set(msg.UserID, session.IncomeLine{})
		return true, s.tgClient.HideKeyboard(txtIncomePrompt, msg.UserID)
	case "/expense", btnExpense:
		s.sessions.Set(msg.UserID, session.ExpenseCategory{})
		return true, s.tgClient.ShowKeyboardButtons(txtExpenseCat, categoryButtons(), msg.UserID)
	case "/stats", btnStats:
		s.sessions.Set(msg.UserID, session.StatsPeriod{})
		return true, s.tgClient.ShowKeyboardButtons(txtStatsPeriod, btnPeriods, msg.UserID)
	case "/cancel":
		return true, s.cancelDialog(msg.UserID)
	}

	// Ключевое слово отмены действует в любом незавершенном диалоге.
	if parser.IsCancel(text) {
		if _, idle := s.sessions.Get(msg.UserID).(session.Idle); !idle {
			return true, s.cancelDialog(msg.UserID)
		}
	}

	// Команды управления списком допуска.
	if strings.HasPrefix(text, "/grant") || strings.HasPrefix(text, "/revoke") {
		return true, s.processAccessCommand(msg, text)
	}

	return false, nil
}

// cancelDialog Отмена активного диалога: временные данные отбрасываются,
// ничего не сохраняется.
func (s *Model) cancelDialog(userID int64) error {
	s.sessions.Clear(userID)
	return s.tgClient.ShowKeyboardButtons(txtCancel, btnMain, userID)
}

// Область "Распознавание входящих команд": конец.

// Область "Диалоги ввода записей": начало.

// processIncomeLine Обработка строки дохода "сумма, описание".
func (s *Model) processIncomeLine(msg Message, text string) error {
	amount, description, err := parser.ParseEntryLine(text)
	if err != nil {
		return s.replyOnParseError(err, msg.UserID)
	}

	rec := types.Record{
		UserID:      msg.UserID,
		Kind:        types.KindIncome,
		Amount:      amount,
		Description: description,
		CreatedAt:   time.Now(),
	}
	if err := s.saveRecord(rec); err != nil {
		// Состояние диалога сохраняется: пользователь может повторить ввод.
		if sendErr := s.tgClient.SendMessage(txtSaveError, msg.UserID); sendErr != nil {
			logger.Error("Ошибка отправки сообщения", "err", sendErr)
		}
		return errors.Wrap(err, "Insert income record error")
	}

	s.sessions.Clear(msg.UserID)
	answer := fmt.Sprintf(txtIncomeSaved, stats.FormatAmount(amount), description)
	return s.tgClient.ShowKeyboardButtons(answer, btnMain, msg.UserID)
}

// processExpenseCategory Обработка выбора категории расхода.
func (s *Model) processExpenseCategory(msg Message, text string) error {
	category, err := parser.ExtractCategory(text)
	if err != nil {
		return s.tgClient.SendMessage(txtBadCategory, msg.UserID)
	}

	s.sessions.Set(msg.UserID, session.ExpenseLine{Category: category})
	title := types.CategoryEmoji[category] + " " + category
	return s.tgClient.HideKeyboard(fmt.Sprintf(txtExpensePrompt, title), msg.UserID)
}

// processExpenseLine Обработка строки расхода "сумма, описание"
// по выбранной категории.
func (s *Model) processExpenseLine(msg Message, text string, st session.ExpenseLine) error {
	amount, description, err := parser.ParseEntryLine(text)
	if err != nil {
		return s.replyOnParseError(err, msg.UserID)
	}

	rec := types.Record{
		UserID:      msg.UserID,
		Kind:        types.KindExpense,
		Category:    st.Category,
		Amount:      amount,
		Description: description,
		CreatedAt:   time.Now(),
	}
	if err := s.saveRecord(rec); err != nil {
		if sendErr := s.tgClient.SendMessage(txtSaveError, msg.UserID); sendErr != nil {
			logger.Error("Ошибка отправки сообщения", "err", sendErr)
		}
		return errors.Wrap(err, "Insert expense record error")
	}

	s.sessions.Clear(msg.UserID)
	title := types.CategoryEmoji[st.Category] + " " + st.Category
	answer := fmt.Sprintf(txtExpenseSaved, stats.FormatAmount(amount), title, description)
	return s.tgClient.ShowKeyboardButtons(answer, btnMain, msg.UserID)
}

// replyOnParseError Выбор текста повторного запроса по классу ошибки разбора.
// Отмена завершает диалог, остальные ошибки оставляют состояние прежним.
func (s *Model) replyOnParseError(err error, userID int64) error {
	switch {
	case errors.Is(err, parser.ErrCancelRequested):
		return s.cancelDialog(userID)
	case errors.Is(err, parser.ErrMalformedLine):
		return s.tgClient.SendMessage(txtBadLine, userID)
	case errors.Is(err, parser.ErrInvalidAmount):
		return s.tgClient.SendMessage(txtBadAmount, userID)
	case errors.Is(err, parser.ErrEmptyDescription):
		return s.tgClient.SendMessage(txtEmptyDesc, userID)
	default:
		return s.tgClient.SendMessage(txtBadLine, userID)
	}
}

// saveRecord Сохранение записи и публикация события аудита.
func (s *Model) saveRecord(rec types.Record) error {
	span, ctx := opentracing.StartSpanFromContext(s.ctx, "saveRecord")
	s.ctx = ctx
	defer span.Finish()

	if err := s.storage.InsertRecord(s.ctx, rec); err != nil {
		logger.Error("Ошибка сохранения записи", "err", err)
		return err
	}
	s.publishAuditEvent(rec)
	return nil
}

// Область "Диалоги ввода записей": конец.

// Область "Диалог статистики": начало.

// processStatsPeriod Обработка выбора периода статистики.
func (s *Model) processStatsPeriod(msg Message, text string) error {
	switch text {
	case btnPeriodCurrent:
		return s.askDetailLevel(msg.UserID, stats.CurrentMonthRange(time.Now()))
	case btnPeriodAll:
		return s.askDetailLevel(msg.UserID, stats.AllTimeRange())
	case btnPeriodChoose:
		s.sessions.Set(msg.UserID, session.StatsMonth{})
		return s.tgClient.HideKeyboard(txtStatsMonth, msg.UserID)
	default:
		return s.tgClient.SendMessage(txtBadPeriod, msg.UserID)
	}
}

// processStatsMonth Обработка ввода месяца в формате ММ-ГГ.
func (s *Model) processStatsMonth(msg Message, text string) error {
	year, month, err := parser.ParseMonth(text)
	if err != nil {
		return s.tgClient.SendMessage(txtBadMonth, msg.UserID)
	}
	return s.askDetailLevel(msg.UserID, stats.MonthRange(year, month))
}

// askDetailLevel Переход к выбору вида отчета по определенному периоду.
func (s *Model) askDetailLevel(userID int64, r stats.DateRange) error {
	s.sessions.Set(userID, session.StatsDetail{From: r.From, To: r.To, Label: r.Label})
	return s.tgClient.ShowKeyboardButtons(txtStatsDetail, btnDetails, userID)
}

// processStatsDetail Обработка выбора вида отчета и отправка отчета.
func (s *Model) processStatsDetail(msg Message, text string, st session.StatsDetail) error {
	switch text {
	case btnDetailShort:
		return s.sendSummaryReport(msg.UserID, st)
	case btnDetailFull:
		return s.sendDetailedReport(msg.UserID, st)
	default:
		return s.tgClient.SendMessage(txtBadDetailLevel, msg.UserID)
	}
}

// sendSummaryReport Формирование и отправка сводного отчета.
func (s *Model) sendSummaryReport(userID int64, st session.StatsDetail) error {
	span, ctx := opentracing.StartSpanFromContext(s.ctx, "sendSummaryReport")
	s.ctx = ctx
	defer span.Finish()

	filter := types.RecordFilter{UserID: userID, From: st.From, To: st.To}
	sums, err := s.storage.GetKindSums(s.ctx, filter)
	if err != nil {
		logger.Error("Ошибка получения итогов", "err", err)
		if sendErr := s.tgClient.SendMessage(txtReportError, userID); sendErr != nil {
			logger.Error("Ошибка отправки сообщения", "err", sendErr)
		}
		return errors.Wrap(err, "Get kind sums error")
	}
	categoryTotals, err := s.storage.GetCategoryTotals(s.ctx, filter)
	if err != nil {
		logger.Error("Ошибка получения итогов по категориям", "err", err)
		if sendErr := s.tgClient.SendMessage(txtReportError, userID); sendErr != nil {
			logger.Error("Ошибка отправки сообщения", "err", sendErr)
		}
		return errors.Wrap(err, "Get category totals error")
	}

	s.sessions.Clear(userID)
	answer := stats.FormatSummary(stats.BuildSummary(sums, categoryTotals), st.Label)
	return s.tgClient.ShowKeyboardButtons(answer, btnMain, userID)
}

// sendDetailedReport Формирование и отправка детального отчета.
func (s *Model) sendDetailedReport(userID int64, st session.StatsDetail) error {
	span, ctx := opentracing.StartSpanFromContext(s.ctx, "sendDetailedReport")
	s.ctx = ctx
	defer span.Finish()

	filter := types.RecordFilter{UserID: userID, From: st.From, To: st.To}
	recs, err := s.storage.GetRecords(s.ctx, filter)
	if err != nil {
		logger.Error("Ошибка получения записей", "err", err)
		if sendErr := s.tgClient.SendMessage(txtReportError, userID); sendErr != nil {
			logger.Error("Ошибка отправки сообщения", "err", sendErr)
		}
		return errors.Wrap(err, "Get records error")
	}

	s.sessions.Clear(userID)
	return s.tgClient.ShowKeyboardButtons(stats.FormatDetailed(recs, st.Label), btnMain, userID)
}

// Область "Диалог статистики": конец.

// Область "Допуск и аудит": начало.

// checkAccess Проверка, что пользователю разрешено пользоваться ботом.
// Владелец допущен всегда, решения по остальным кэшируются.
func (s *Model) checkAccess(msg Message) (bool, error) {
	if msg.UserID == s.ownerUserID {
		return true, nil
	}

	if s.accessCache != nil {
		if allowed, ok := s.accessCache.Get(msg.UserID).(bool); ok && allowed {
			return true, nil
		}
	}

	allowed, err := s.access.IsUserAllowed(s.ctx, msg.UserID)
	if err != nil {
		return false, err
	}
	if allowed {
		if s.accessCache != nil {
			s.accessCache.Add(msg.UserID, true)
		}
		// Обновление имени в списке допуска (не чаще одного раза
		// на вытеснение из кэша), ошибка не мешает работе.
		if upErr := s.access.UpsertAllowedUser(s.ctx, types.AllowedUser{
			UserID:    msg.UserID,
			UserName:  msg.UserName,
			FirstName: msg.UserDisplayName,
		}); upErr != nil {
			logger.Warn("Ошибка обновления списка допуска", "err", upErr)
		}
	}
	return allowed, nil
}

// processAccessCommand Обработка команд владельца /grant и /revoke.
func (s *Model) processAccessCommand(msg Message, text string) error {
	if msg.UserID != s.ownerUserID {
		return s.tgClient.SendMessage(txtOwnerOnly, msg.UserID)
	}

	isGrant := strings.HasPrefix(text, "/grant")
	usage := txtGrantUsage
	if !isGrant {
		usage = txtRevokeUsage
	}

	parts := strings.Fields(text)
	if len(parts) != 2 {
		return s.tgClient.SendMessage(usage, msg.UserID)
	}
	targetID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return s.tgClient.SendMessage(usage, msg.UserID)
	}

	if isGrant {
		if err := s.access.UpsertAllowedUser(s.ctx, types.AllowedUser{UserID: targetID}); err != nil {
			logger.Error("Ошибка добавления в список допуска", "err", err)
			if sendErr := s.tgClient.SendMessage(txtAccessError, msg.UserID); sendErr != nil {
				logger.Error("Ошибка отправки сообщения", "err", sendErr)
			}
			return errors.Wrap(err, "Grant access error")
		}
		if s.accessCache != nil {
			s.accessCache.Add(targetID, true)
		}
		return s.tgClient.SendMessage(fmt.Sprintf(txtGranted, targetID), msg.UserID)
	}

	if err := s.access.DeleteAllowedUser(s.ctx, targetID); err != nil {
		logger.Error("Ошибка удаления из списка допуска", "err", err)
		if sendErr := s.tgClient.SendMessage(txtAccessError, msg.UserID); sendErr != nil {
			logger.Error("Ошибка отправки сообщения", "err", sendErr)
		}
		return errors.Wrap(err, "Revoke access error")
	}
	if s.accessCache != nil {
		// Отзыв должен действовать сразу, кэш чистится до ответа.
		s.accessCache.Remove(targetID)
	}
	return s.tgClient.SendMessage(fmt.Sprintf(txtRevoked, targetID), msg.UserID)
}

// auditEvent Событие аудита для отправки в кафку.
type auditEvent struct {
	UserID    int64     `json:"user_id"`
	Kind      string    `json:"kind"`
	Category  string    `json:"category,omitempty"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// publishAuditEvent Публикация события о сохраненной записи.
// Отправка не блокирует ответ пользователю, ошибка только логируется.
func (s *Model) publishAuditEvent(rec types.Record) {
	if s.producer == nil {
		return
	}

	go func() {
		value, err := json.Marshal(auditEvent{
			UserID:    rec.UserID,
			Kind:      string(rec.Kind),
			Category:  rec.Category,
			Amount:    rec.Amount,
			CreatedAt: rec.CreatedAt,
		})
		if err != nil {
			logger.Error("Ошибка сериализации события аудита", "err", err)
			return
		}
		partition, offset, err := s.producer.SendMessage(strconv.FormatInt(rec.UserID, 10), string(value))
		if err != nil {
			logger.Error("Ошибка отправки события аудита в кафку", "err", err)
			return
		}
		logger.Debug(fmt.Sprintf("[KAFKA] Successful to write message, topic %s, offset:%d, partition: %d", s.producer.GetTopic(), offset, partition))
	}()
}

// Область "Допуск и аудит": конец.
