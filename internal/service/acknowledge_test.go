package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/ravipangali7/luna-alert-engine/internal/models"
	"github.com/ravipangali7/luna-alert-engine/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"
)

// newTestAckNotifier — вспомогательная функция для создания уведомителя с мок-шлюзом.
func newTestAckNotifier(t *testing.T) (*ackNotifier, *mocks.MockSMSGateway) {
	ctrl := gomock.NewController(t)
	smsMock := mocks.NewMockSMSGateway(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	notifier := NewAckNotifier(smsMock, logger)
	return notifier.(*ackNotifier), smsMock
}

func newAckAlert() *models.AlertEvent {
	return &models.AlertEvent{
		ID:            uuid.New(),
		Name:          "Сита Шарма",
		PrimaryPhone:  "9841000000",
		AlertTypeName: "Fire",
		InstituteName: "Kathmandu Rescue",
		Status:        models.StatusAccepted,
		Remarks:       "Team dispatched",
	}
}

func TestNotifyIfChanged_NothingChanged(t *testing.T) {
	// Подготовка
	notifier, smsMock := newTestAckNotifier(t)
	ctx := context.Background()
	alert := newAckAlert()

	// Ожидания
	// Обновление без изменения статуса и комментария не шлет SMS
	smsMock.EXPECT().SendSMS(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	notifier.NotifyIfChanged(ctx, alert.Status, alert.Remarks, alert)
}

func TestNotifyIfChanged_StatusChanged(t *testing.T) {
	// Подготовка
	notifier, smsMock := newTestAckNotifier(t)
	ctx := context.Background()
	alert := newAckAlert()

	// Ожидания
	smsMock.EXPECT().
		SendSMS(ctx, "9841000000", "Kathmandu Rescue accepted help for your Fire").
		Return(nil).
		Times(1)

	// Действие
	notifier.NotifyIfChanged(ctx, models.StatusPending, alert.Remarks, alert)
}

func TestNotifyIfChanged_RemarksChangedOnly(t *testing.T) {
	// Подготовка
	notifier, smsMock := newTestAckNotifier(t)
	ctx := context.Background()
	alert := newAckAlert()

	// Ожидания
	// Достаточно изменившегося комментария при том же статусе
	smsMock.EXPECT().
		SendSMS(ctx, alert.PrimaryPhone, gomock.Any()).
		Return(nil).
		Times(1)

	// Действие
	notifier.NotifyIfChanged(ctx, alert.Status, "", alert)
}

func TestNotifyIfChanged_FallbackNames(t *testing.T) {
	// Подготовка
	notifier, smsMock := newTestAckNotifier(t)
	ctx := context.Background()
	alert := newAckAlert()
	alert.InstituteName = ""
	alert.AlertTypeName = ""

	// Ожидания
	smsMock.EXPECT().
		SendSMS(ctx, alert.PrimaryPhone, "Unknown Institute accepted help for your Unknown").
		Return(nil).
		Times(1)

	// Действие
	notifier.NotifyIfChanged(ctx, models.StatusPending, alert.Remarks, alert)
}

func TestNotifyIfChanged_SendFailureSwallowed(t *testing.T) {
	// Подготовка
	notifier, smsMock := newTestAckNotifier(t)
	ctx := context.Background()
	alert := newAckAlert()

	// Ожидания
	smsMock.EXPECT().
		SendSMS(ctx, alert.PrimaryPhone, gomock.Any()).
		Return(fmt.Errorf("sms gateway error: ERR: no credit")).
		Times(1)

	// Действие
	// Сбой шлюза не должен паниковать и не виден вызывающему
	notifier.NotifyIfChanged(ctx, models.StatusPending, alert.Remarks, alert)
}
