package tg

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"

	"github.com/vpogodin/gainspend-bot/internal/logger"
	types "github.com/vpogodin/gainspend-bot/internal/model/bottypes"
	"github.com/vpogodin/gainspend-bot/internal/model/messages"
)

type HandlerFunc func(tgUpdate tgbotapi.Update, c *Client, msgModel *messages.Model)

func (f HandlerFunc) RunFunc(tgUpdate tgbotapi.Update, c *Client, msgModel *messages.Model) {
	f(tgUpdate, c, msgModel)
}

type Client struct {
	client                *tgbotapi.BotAPI
	handlerProcessingFunc HandlerFunc // Функция обработки входящих сообщений.
}

type TokenGetter interface {
	Token() string
}

func New(tokenGetter TokenGetter, handlerProcessingFunc HandlerFunc) (*Client, error) {
	client, err := tgbotapi.NewBotAPI(tokenGetter.Token())
	if err != nil {
		return nil, errors.Wrap(err, "Ошибка NewBotAPI")
	}

	return &Client{
		client:                client,
		handlerProcessingFunc: handlerProcessingFunc,
	}, nil
}

func (c *Client) SendMessage(text string, userID int64) error {
	msg := tgbotapi.NewMessage(userID, text)
	msg.ParseMode = "markdown"
	_, err := c.client.Send(msg)
	if err != nil {
		return errors.Wrap(err, "Ошибка отправки сообщения client.Send")
	}
	return nil
}

func (c *Client) ListenUpdates(msgModel *messages.Model) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := c.client.GetUpdatesChan(u)

	logger.Info("Start listening for tg messages")

	for update := range updates {
		// Функция обработки сообщений (обернутая в middleware).
		c.handlerProcessingFunc.RunFunc(update, c, msgModel)
	}
}

// ProcessingMessages функция обработки сообщений.
// Нажатия кнопок обычной клавиатуры приходят как текстовые сообщения,
// отдельной ветки для них не требуется.
func ProcessingMessages(tgUpdate tgbotapi.Update, c *Client, msgModel *messages.Model) {
	if tgUpdate.Message == nil {
		return
	}
	logger.Info(fmt.Sprintf("[%s][%v] %s", tgUpdate.Message.From.UserName, tgUpdate.Message.From.ID, tgUpdate.Message.Text))
	err := msgModel.IncomingMessage(messages.Message{
		Text:            tgUpdate.Message.Text,
		UserID:          tgUpdate.Message.From.ID,
		UserName:        tgUpdate.Message.From.UserName,
		UserDisplayName: strings.TrimSpace(tgUpdate.Message.From.FirstName + " " + tgUpdate.Message.From.LastName),
	})
	if err != nil {
		logger.Error("error processing message:", "err", err)
	}
}

// ShowKeyboardButtons Отправка сообщения с кнопками обычной клавиатуры.
// Клавиатура подгоняется по размеру и скрывается после нажатия.
func (c *Client) ShowKeyboardButtons(text string, buttons []types.TgRowButtons, userID int64) error {
	keyboard := make([][]tgbotapi.KeyboardButton, len(buttons))
	for i := 0; i < len(buttons); i++ {
		tgRowButtons := buttons[i]
		keyboard[i] = make([]tgbotapi.KeyboardButton, len(tgRowButtons))
		for j := 0; j < len(tgRowButtons); j++ {
			keyboard[i][j] = tgbotapi.NewKeyboardButton(tgRowButtons[j].Text)
		}
	}
	replyKeyboard := tgbotapi.NewReplyKeyboard(keyboard...)
	replyKeyboard.ResizeKeyboard = true
	replyKeyboard.OneTimeKeyboard = true
	msg := tgbotapi.NewMessage(userID, text)
	msg.ReplyMarkup = replyKeyboard
	msg.ParseMode = "markdown"
	_, err := c.client.Send(msg)
	if err != nil {
		logger.Error("Ошибка отправки сообщения", "err", err)
		return errors.Wrap(err, "client.Send with keyboard-buttons")
	}
	return nil
}

// HideKeyboard Отправка сообщения со скрытием клавиатуры.
func (c *Client) HideKeyboard(text string, userID int64) error {
	msg := tgbotapi.NewMessage(userID, text)
	msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	msg.ParseMode = "markdown"
	_, err := c.client.Send(msg)
	if err != nil {
		logger.Error("Ошибка отправки сообщения", "err", err)
		return errors.Wrap(err, "client.Send remove keyboard")
	}
	return nil
}
