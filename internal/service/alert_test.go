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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type alertMocks struct {
	repo       *mocks.MockAlertRepository
	dispatcher *mocks.MockDispatchService
	ack        *mocks.MockAckNotifier
	forwarder  *mocks.MockForwarder
}

// newTestAlertService — вспомогательная функция для создания сервиса тревог с моками.
func newTestAlertService(t *testing.T) (*alertService, *alertMocks) {
	ctrl := gomock.NewController(t)
	m := &alertMocks{
		repo:       mocks.NewMockAlertRepository(ctrl),
		dispatcher: mocks.NewMockDispatchService(ctrl),
		ack:        mocks.NewMockAckNotifier(ctrl),
		forwarder:  mocks.NewMockForwarder(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewAlertService(m.repo, m.dispatcher, m.ack, m.forwarder, logger)
	return service.(*alertService), m
}

func TestCreateAlert_Success(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	alert := &models.AlertEvent{
		Source:       models.SourceApp,
		Name:         "Сита Шарма",
		PrimaryPhone: "9841000000",
		InstituteID:  uuid.New(),
	}

	// Ожидания
	m.repo.EXPECT().
		CreateAlert(ctx, alert).
		DoAndReturn(func(ctx context.Context, a *models.AlertEvent) error {
			// Симулируем, что БД присвоила ID
			a.ID = uuid.New()
			return nil
		}).Times(1)
	m.dispatcher.EXPECT().Dispatch(ctx, alert).Return(&models.DispatchOutcome{}).Times(1)
	m.forwarder.EXPECT().ForwardIfEligible(ctx, alert).Times(1)

	// Действие
	err := service.CreateAlert(ctx, alert)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, alert.Status)
	assert.False(t, alert.Datetime.IsZero())
	assert.NotEqual(t, uuid.Nil, alert.ID)
}

func TestCreateAlert_ManualSourceNotDispatched(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	alert := &models.AlertEvent{
		Source:       models.SourceManual,
		Name:         "Ручная запись",
		PrimaryPhone: "9841000000",
	}

	// Ожидания
	// Ручная тревога сохраняется, но рассылку не запускает
	m.repo.EXPECT().CreateAlert(ctx, alert).Return(nil).Times(1)
	m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Times(0)
	m.forwarder.EXPECT().ForwardIfEligible(ctx, alert).Times(1)

	// Действие
	err := service.CreateAlert(ctx, alert)

	// Проверки
	require.NoError(t, err)
}

func TestCreateAlert_RepositoryFailure(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	alert := &models.AlertEvent{
		Source: models.SourceApp,
		Name:   "Сита Шарма",
	}
	repoErr := fmt.Errorf("соединение разорвано")

	// Ожидания
	// Несохраненная тревога никуда не рассылается и не пересылается
	m.repo.EXPECT().CreateAlert(ctx, alert).Return(repoErr).Times(1)
	m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Times(0)
	m.forwarder.EXPECT().ForwardIfEligible(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.CreateAlert(ctx, alert)

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "could not create alert")
}

func TestCreateAlert_PresetStatusKept(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	alert := &models.AlertEvent{
		Source: models.SourceApp,
		Status: models.StatusResolved,
	}

	// Ожидания
	m.repo.EXPECT().CreateAlert(ctx, alert).Return(nil).Times(1)
	m.dispatcher.EXPECT().Dispatch(ctx, alert).Return(&models.DispatchOutcome{}).Times(1)
	m.forwarder.EXPECT().ForwardIfEligible(ctx, alert).Times(1)

	// Действие
	err := service.CreateAlert(ctx, alert)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, alert.Status)
}

func TestUpdateAlert_Success(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	existing := &models.AlertEvent{
		ID:           alertID,
		Status:       models.StatusPending,
		Remarks:      "",
		PrimaryPhone: "9841000000",
	}

	// Ожидания
	m.repo.EXPECT().GetAlertByID(ctx, alertID).Return(existing, nil).Times(1)
	m.repo.EXPECT().UpdateAlert(ctx, existing).Return(nil).Times(1)
	// Уведомитель получает старые значения и уже измененную тревогу
	m.ack.EXPECT().
		NotifyIfChanged(ctx, models.StatusPending, "", existing).
		Do(func(ctx context.Context, oldStatus models.AlertStatus, oldRemarks string, a *models.AlertEvent) {
			assert.Equal(t, models.StatusAccepted, a.Status)
			assert.Equal(t, "Team dispatched", a.Remarks)
		}).Times(1)

	// Действие
	updated, err := service.UpdateAlert(ctx, alertID, models.StatusAccepted, "Team dispatched")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, updated.Status)
	assert.Equal(t, "Team dispatched", updated.Remarks)
}

func TestUpdateAlert_NotFound(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	repoErr := fmt.Errorf("не найдено")

	// Ожидания
	m.repo.EXPECT().GetAlertByID(ctx, alertID).Return(nil, repoErr).Times(1)
	m.ack.EXPECT().NotifyIfChanged(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	updated, err := service.UpdateAlert(ctx, alertID, models.StatusAccepted, "")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorContains(t, err, "not found for update")
}

func TestUpdateAlert_PersistFailure(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	existing := &models.AlertEvent{ID: alertID, Status: models.StatusPending}
	repoErr := fmt.Errorf("соединение разорвано")

	// Ожидания
	// Несохраненное обновление заявителю не подтверждается
	m.repo.EXPECT().GetAlertByID(ctx, alertID).Return(existing, nil).Times(1)
	m.repo.EXPECT().UpdateAlert(ctx, existing).Return(repoErr).Times(1)
	m.ack.EXPECT().NotifyIfChanged(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	updated, err := service.UpdateAlert(ctx, alertID, models.StatusAccepted, "")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorContains(t, err, "could not update alert")
}

func TestGetAlert_Success(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	expected := &models.AlertEvent{ID: alertID, Name: "Сита Шарма"}

	// Ожидания
	m.repo.EXPECT().GetAlertByID(ctx, alertID).Return(expected, nil).Times(1)

	// Действие
	alert, err := service.GetAlert(ctx, alertID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, alert)
}

func TestListAlerts_Success(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	page, pageSize := 1, 10
	expected := []*models.AlertEvent{
		{ID: uuid.New(), Name: "Тревога 1"},
		{ID: uuid.New(), Name: "Тревога 2"},
	}

	// Ожидания
	m.repo.EXPECT().ListAlerts(ctx, page, pageSize).Return(expected, nil).Times(1)

	// Действие
	alerts, err := service.ListAlerts(ctx, page, pageSize)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, alerts)
}

func TestGetAlert_NotFound(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	repoErr := fmt.Errorf("не найдено")

	// Ожидания
	m.repo.EXPECT().GetAlertByID(ctx, alertID).Return(nil, repoErr).Times(1)

	// Действие
	alert, err := service.GetAlert(ctx, alertID)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, alert)
	assert.ErrorContains(t, err, "could not get alert")
}
