package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/vpogodin/gainspend-bot/internal/logger"
)

const configFile = "data/config.yaml"

type Config struct {
	Token              string   `yaml:"token"`              // Токен бота в телеграме.
	ConnectionStringDB string   `yaml:"ConnectionStringDB"` // Строка подключения к базе данных.
	OwnerUserID        int64    `yaml:"OwnerUserID"`        // Идентификатор владельца бота (всегда допущен, управляет списком допуска).
	KafkaTopic         string   `yaml:"KafkaTopic"`         // Наименование топика Kafka для событий аудита (опционально).
	BrokersList        []string `yaml:"BrokersList"`        // Список адресов брокеров сообщений (опционально).
}

type Service struct {
	config Config
}

func New() (*Service, error) {
	s := &Service{}

	rawYAML, err := os.ReadFile(configFile)
	if err != nil {
		logger.Error("Ошибка reading config file", "err", err)
		return nil, errors.Wrap(err, "reading config file")
	}

	err = yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		logger.Error("Ошибка parsing yaml", "err", err)
		return nil, errors.Wrap(err, "parsing yaml")
	}

	// Отсутствие обязательного параметра - фатальная ошибка запуска.
	if s.config.Token == "" {
		return nil, errors.New("не задан токен бота (token)")
	}
	if s.config.ConnectionStringDB == "" {
		return nil, errors.New("не задана строка подключения к БД (ConnectionStringDB)")
	}
	if s.config.OwnerUserID == 0 {
		return nil, errors.New("не задан идентификатор владельца (OwnerUserID)")
	}

	return s, nil
}

func (s *Service) Token() string {
	return s.config.Token
}

func (s *Service) GetConfig() Config {
	return s.config
}
