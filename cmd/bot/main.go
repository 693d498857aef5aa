package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/multierr"

	"github.com/vpogodin/gainspend-bot/internal/cache"
	"github.com/vpogodin/gainspend-bot/internal/clients/tg"
	"github.com/vpogodin/gainspend-bot/internal/config"
	"github.com/vpogodin/gainspend-bot/internal/helpers/dbutils"
	"github.com/vpogodin/gainspend-bot/internal/helpers/kafka"
	"github.com/vpogodin/gainspend-bot/internal/logger"
	"github.com/vpogodin/gainspend-bot/internal/metrics"
	"github.com/vpogodin/gainspend-bot/internal/model/db"
	"github.com/vpogodin/gainspend-bot/internal/model/messages"
	"github.com/vpogodin/gainspend-bot/internal/model/notifier"
	"github.com/vpogodin/gainspend-bot/internal/model/session"
	"github.com/vpogodin/gainspend-bot/internal/tracing"
)

// Емкость кэша решений о допуске.
const accessCacheSize = 100

func main() {

	logger.Info("Старт приложения")

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		logger.Fatal("Ошибка получения файла конфигурации:", "err", err)
	}
	settings := cfg.GetConfig()

	// Оборачивание в Middleware функции обработки сообщения для метрик и трейсинга.
	tgProcessingFuncHandler := tg.HandlerFunc(tg.ProcessingMessages)
	tgProcessingFuncHandler = metrics.MetricsMiddleware(tgProcessingFuncHandler)
	tgProcessingFuncHandler = tracing.TracingMiddleware(tgProcessingFuncHandler)

	// Инициализация телеграм клиента.
	tgClient, err := tg.New(cfg, tgProcessingFuncHandler)
	if err != nil {
		logger.Fatal("Ошибка инициализации ТГ-клиента:", "err", err)
	}

	// Инициализация хранилищ (подключение к базе данных).
	dbconn, err := dbutils.NewDBConnect(settings.ConnectionStringDB)
	if err != nil {
		logger.Fatal("Ошибка подключения к базе данных:", "err", err)
	}
	// БД финансовых записей.
	recordStorage := db.NewRecordStorage(dbconn)
	if err := recordStorage.InitSchema(ctx); err != nil {
		logger.Fatal("Ошибка инициализации таблицы записей:", "err", err)
	}
	// БД списка допущенных пользователей.
	accessStorage := db.NewAccessStorage(dbconn)
	if err := accessStorage.InitSchema(ctx); err != nil {
		logger.Fatal("Ошибка инициализации таблицы допуска:", "err", err)
	}

	// Хранилище состояний диалогов (в памяти, по одному диалогу на пользователя).
	sessions := session.NewStore()

	// Инициализация кэша решений о допуске.
	cacheLRU := cache.NewLRU(accessCacheSize)

	// Уведомление владельца о попытках доступа.
	ownerNotifier := notifier.New(tgClient, settings.OwnerUserID)

	// Инициализация кафки для событий аудита (опционально).
	var msgModel *messages.Model
	var kafkaProducer *kafka.KafkaProducer
	if len(settings.BrokersList) > 0 && settings.KafkaTopic != "" {
		kafkaProducer, err = kafka.NewSyncProducer(settings.BrokersList, settings.KafkaTopic)
		if err != nil {
			logger.Fatal("Ошибка инициализации кафки для отправки событий:", "err", err)
		}
		msgModel = messages.New(ctx, tgClient, recordStorage, accessStorage, sessions, cacheLRU, ownerNotifier, kafkaProducer, settings.OwnerUserID)
	} else {
		logger.Info("Кафка не настроена, события аудита отключены")
		msgModel = messages.New(ctx, tgClient, recordStorage, accessStorage, sessions, cacheLRU, ownerNotifier, nil, settings.OwnerUserID)
	}

	// Запуск ТГ-клиента.
	go tgClient.ListenUpdates(msgModel)

	<-ctx.Done()

	// Освобождение ресурсов при завершении.
	closeErr := dbconn.Close()
	if kafkaProducer != nil {
		closeErr = multierr.Append(closeErr, kafkaProducer.Close())
	}
	if closeErr != nil {
		logger.Error("Ошибка освобождения ресурсов:", "err", closeErr)
	}

	logger.Info("Завершение приложения")
}
