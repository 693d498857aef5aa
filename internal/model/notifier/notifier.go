package notifier

import (
	"fmt"

	"github.com/vpogodin/gainspend-bot/internal/logger"
)

const txtAccessRequest = "Пользователь %v (id %v) пытался воспользоваться ботом. Выдать доступ: /grant %v"

// messageSender Интерфейс отправки сообщения пользователю.
type messageSender interface {
	SendMessage(text string, userID int64) error
}

// OwnerNotifier Уведомление владельца бота о попытках доступа.
// Отправка идет в отдельной горутине, ответ пользователю не ждет ее.
type OwnerNotifier struct {
	sender      messageSender
	ownerUserID int64
}

// New Генерация сущности уведомителя владельца.
func New(sender messageSender, ownerUserID int64) *OwnerNotifier {
	return &OwnerNotifier{
		sender:      sender,
		ownerUserID: ownerUserID,
	}
}

// NotifyAccessRequest Асинхронное уведомление владельца о том, что
// пользователь без доступа написал боту. Ошибка только логируется.
func (n *OwnerNotifier) NotifyAccessRequest(userID int64, userName string, displayName string) {
	name := displayName
	if len(name) == 0 {
		name = userName
	}
	text := fmt.Sprintf(txtAccessRequest, name, userID, userID)
	go func() {
		if err := n.sender.SendMessage(text, n.ownerUserID); err != nil {
			logger.Warn("Ошибка уведомления владельца", "err", err)
		}
	}()
}
