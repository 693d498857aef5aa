// Package kafka Хелпер для отправки событий аудита в кафку.
package kafka

import (
	"time"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
)

type KafkaProducer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewSyncProducer Инициализация синхронного продюсера для топика событий.
func NewSyncProducer(brokerList []string, topic string) (*KafkaProducer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_8_0_0
	// Ответ приходит после подтверждения всеми синхронными репликами.
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Retry.Backoff = time.Millisecond * 250
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokerList, config)
	if err != nil {
		return nil, errors.Wrap(err, "Starting Sarama producer")
	}

	return &KafkaProducer{
		producer: producer,
		topic:    topic,
	}, nil
}

// SendMessage Отправка сообщения в топик.
func (k *KafkaProducer) SendMessage(key string, value string) (partition int32, offset int64, err error) {
	msg := sarama.ProducerMessage{
		Topic: k.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.StringEncoder(value),
	}
	p, o, err := k.producer.SendMessage(&msg)
	if err != nil {
		return 0, 0, err
	}
	return p, o, nil
}

func (k *KafkaProducer) GetTopic() string {
	return k.topic
}

// Close Завершение работы продюсера.
func (k *KafkaProducer) Close() error {
	return k.producer.Close()
}
