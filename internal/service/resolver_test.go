package service

import (
	"bytes"
	"context"
	"encoding/json"
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

// newTestResolver — вспомогательная функция для создания резолвера с мок-репозиторием.
func newTestResolver(t *testing.T) (*recipientResolver, *mocks.MockRecipientRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockRecipientRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	resolver := NewRecipientResolver(repoMock, logger)
	return resolver.(*recipientResolver), repoMock
}

// squareBoundary — квадрат GeoJSON Polygon в координатах [lng, lat],
// содержащий точку (1, 1) и не содержащий точку (5, 5).
func squareBoundary() json.RawMessage {
	return json.RawMessage(`{"type":"Polygon","coordinates":[[[0,0],[0,2],[2,2],[2,0],[0,0]]]}`)
}

func newTestResolverAlert(instituteID uuid.UUID) *models.AlertEvent {
	return &models.AlertEvent{
		ID:          uuid.New(),
		Source:      models.SourceApp,
		Name:        "Рам Бахадур",
		Latitude:    1,
		Longitude:   1,
		InstituteID: instituteID,
	}
}

func TestResolve_GeofenceLoadError(t *testing.T) {
	// Подготовка
	resolver, repoMock := newTestResolver(t)
	ctx := context.Background()
	alert := newTestResolverAlert(uuid.New())
	repoErr := fmt.Errorf("хранилище недоступно")

	// Ожидания
	repoMock.EXPECT().
		GeofencesByInstitute(ctx, alert.InstituteID).
		Return(nil, repoErr).
		Times(1)

	// Действие
	set, err := resolver.Resolve(ctx, alert)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, set)
}

func TestResolve_NoMatchingGeofences(t *testing.T) {
	// Подготовка
	resolver, repoMock := newTestResolver(t)
	ctx := context.Background()
	alert := newTestResolverAlert(uuid.New())
	alert.Latitude, alert.Longitude = 5, 5 // Вне квадрата

	geofences := []*models.Geofence{
		{ID: uuid.New(), Title: "Центральный район", Boundary: squareBoundary()},
	}

	// Ожидания
	// Без совпавших геозон получатели вообще не загружаются
	repoMock.EXPECT().
		GeofencesByInstitute(ctx, alert.InstituteID).
		Return(geofences, nil).
		Times(1)

	// Действие
	set, err := resolver.Resolve(ctx, alert)

	// Проверки
	require.NoError(t, err)
	assert.True(t, set.Empty())
}

func TestResolve_EmptyBoundarySkipped(t *testing.T) {
	// Подготовка
	resolver, repoMock := newTestResolver(t)
	ctx := context.Background()
	alert := newTestResolverAlert(uuid.New())

	geofences := []*models.Geofence{
		{ID: uuid.New(), Title: "Геозона без границы", Boundary: nil},
	}

	// Ожидания
	repoMock.EXPECT().
		GeofencesByInstitute(ctx, alert.InstituteID).
		Return(geofences, nil).
		Times(1)

	// Действие
	set, err := resolver.Resolve(ctx, alert)

	// Проверки
	require.NoError(t, err)
	assert.True(t, set.Empty())
}

func TestResolve_RadarTokensDeduplicated(t *testing.T) {
	// Подготовка
	resolver, repoMock := newTestResolver(t)
	ctx := context.Background()
	alert := newTestResolverAlert(uuid.New())
	geofenceID := uuid.New()

	geofences := []*models.Geofence{
		{ID: geofenceID, Title: "Центральный район", Boundary: squareBoundary()},
	}
	radars := []*models.Radar{
		{ID: uuid.New(), Token: "token-a", RegionIDs: []uuid.UUID{geofenceID}},
		{ID: uuid.New(), Token: "token-a", RegionIDs: []uuid.UUID{geofenceID}}, // Дубликат токена
		{ID: uuid.New(), Token: "", RegionIDs: []uuid.UUID{geofenceID}},        // Пустой токен
		{ID: uuid.New(), Token: "token-b", RegionIDs: []uuid.UUID{uuid.New()}}, // Чужая геозона
	}

	// Ожидания
	repoMock.EXPECT().GeofencesByInstitute(ctx, alert.InstituteID).Return(geofences, nil).Times(1)
	repoMock.EXPECT().RadarsByInstitute(ctx, alert.InstituteID).Return(radars, nil).Times(1)
	repoMock.EXPECT().ContactsByInstitute(ctx, alert.InstituteID).Return(nil, nil).Times(1)
	repoMock.EXPECT().BuzzersByInstitute(ctx, alert.InstituteID).Return(nil, nil).Times(1)

	// Действие
	set, err := resolver.Resolve(ctx, alert)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, []string{"token-a"}, set.RadarTokens)
}

func TestResolve_ContactEligibility(t *testing.T) {
	// Подготовка
	resolver, repoMock := newTestResolver(t)
	ctx := context.Background()
	typeID := uuid.New()
	alert := newTestResolverAlert(uuid.New())
	alert.AlertTypeID = &typeID
	geofenceID := uuid.New()

	geofences := []*models.Geofence{
		{ID: geofenceID, Title: "Центральный район", Boundary: squareBoundary()},
	}

	globalContact := &models.Contact{
		ID: uuid.New(), Name: "Глобальный", Phone: "9800000001",
		SMSEnabled: true,
		Regions:    models.GlobalRegions(),
		Types:      models.GlobalTypes(),
	}
	regionContact := &models.Contact{
		ID: uuid.New(), Name: "По геозоне", Phone: "9800000002",
		SMSEnabled: true,
		Regions:    models.SpecificRegions([]uuid.UUID{geofenceID}),
		Types:      models.SpecificTypes([]uuid.UUID{typeID}),
	}
	wrongRegion := &models.Contact{
		ID: uuid.New(), Name: "Чужая геозона", Phone: "9800000003",
		SMSEnabled: true,
		Regions:    models.SpecificRegions([]uuid.UUID{uuid.New()}),
		Types:      models.GlobalTypes(),
	}
	wrongType := &models.Contact{
		ID: uuid.New(), Name: "Чужой тип", Phone: "9800000004",
		SMSEnabled: true,
		Regions:    models.GlobalRegions(),
		Types:      models.SpecificTypes([]uuid.UUID{uuid.New()}),
	}
	smsDisabled := &models.Contact{
		ID: uuid.New(), Name: "Без SMS", Phone: "9800000005",
		SMSEnabled: false,
		Regions:    models.GlobalRegions(),
		Types:      models.GlobalTypes(),
	}

	contacts := []*models.Contact{globalContact, regionContact, wrongRegion, wrongType, smsDisabled}

	// Ожидания
	repoMock.EXPECT().GeofencesByInstitute(ctx, alert.InstituteID).Return(geofences, nil).Times(1)
	repoMock.EXPECT().RadarsByInstitute(ctx, alert.InstituteID).Return(nil, nil).Times(1)
	repoMock.EXPECT().ContactsByInstitute(ctx, alert.InstituteID).Return(contacts, nil).Times(1)
	repoMock.EXPECT().BuzzersByInstitute(ctx, alert.InstituteID).Return(nil, nil).Times(1)

	// Действие
	set, err := resolver.Resolve(ctx, alert)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, []*models.Contact{globalContact, regionContact}, set.Contacts)
}

func TestResolve_ContactTypeScopeWithUntypedAlert(t *testing.T) {
	// Подготовка
	resolver, repoMock := newTestResolver(t)
	ctx := context.Background()
	alert := newTestResolverAlert(uuid.New()) // AlertTypeID == nil
	geofenceID := uuid.New()

	geofences := []*models.Geofence{
		{ID: geofenceID, Boundary: squareBoundary()},
	}
	typedContact := &models.Contact{
		ID: uuid.New(), Name: "Только пожары", Phone: "9800000006",
		SMSEnabled: true,
		Regions:    models.GlobalRegions(),
		Types:      models.SpecificTypes([]uuid.UUID{uuid.New()}),
	}
	globalContact := &models.Contact{
		ID: uuid.New(), Name: "Любой тип", Phone: "9800000007",
		SMSEnabled: true,
		Regions:    models.GlobalRegions(),
		Types:      models.GlobalTypes(),
	}

	// Ожидания
	repoMock.EXPECT().GeofencesByInstitute(ctx, alert.InstituteID).Return(geofences, nil).Times(1)
	repoMock.EXPECT().RadarsByInstitute(ctx, alert.InstituteID).Return(nil, nil).Times(1)
	repoMock.EXPECT().ContactsByInstitute(ctx, alert.InstituteID).
		Return([]*models.Contact{typedContact, globalContact}, nil).Times(1)
	repoMock.EXPECT().BuzzersByInstitute(ctx, alert.InstituteID).Return(nil, nil).Times(1)

	// Действие
	set, err := resolver.Resolve(ctx, alert)

	// Проверки
	// Тревога без типа подходит только контактам с глобальной областью типов
	require.NoError(t, err)
	assert.Equal(t, []*models.Contact{globalContact}, set.Contacts)
}

func TestResolve_BuzzersByRegionIntersection(t *testing.T) {
	// Подготовка
	resolver, repoMock := newTestResolver(t)
	ctx := context.Background()
	alert := newTestResolverAlert(uuid.New())
	geofenceID := uuid.New()

	geofences := []*models.Geofence{
		{ID: geofenceID, Boundary: squareBoundary()},
	}
	inRegion := &models.Buzzer{
		ID: uuid.New(), Title: "Сирена школы", DevicePhone: "9810000001",
		DelaySeconds: 120, RegionIDs: []uuid.UUID{geofenceID},
	}
	outOfRegion := &models.Buzzer{
		ID: uuid.New(), Title: "Дальняя сирена", DevicePhone: "9810000002",
		DelaySeconds: 60, RegionIDs: []uuid.UUID{uuid.New()},
	}

	// Ожидания
	repoMock.EXPECT().GeofencesByInstitute(ctx, alert.InstituteID).Return(geofences, nil).Times(1)
	repoMock.EXPECT().RadarsByInstitute(ctx, alert.InstituteID).Return(nil, nil).Times(1)
	repoMock.EXPECT().ContactsByInstitute(ctx, alert.InstituteID).Return(nil, nil).Times(1)
	repoMock.EXPECT().BuzzersByInstitute(ctx, alert.InstituteID).
		Return([]*models.Buzzer{inRegion, outOfRegion}, nil).Times(1)

	// Действие
	set, err := resolver.Resolve(ctx, alert)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, []*models.Buzzer{inRegion}, set.Buzzers)
}

func TestResolve_PartialLoadFailureDegrades(t *testing.T) {
	// Подготовка
	resolver, repoMock := newTestResolver(t)
	ctx := context.Background()
	alert := newTestResolverAlert(uuid.New())
	geofenceID := uuid.New()

	geofences := []*models.Geofence{
		{ID: geofenceID, Boundary: squareBoundary()},
	}
	contact := &models.Contact{
		ID: uuid.New(), Name: "Выживший", Phone: "9800000008",
		SMSEnabled: true,
		Regions:    models.GlobalRegions(),
		Types:      models.GlobalTypes(),
	}

	// Ожидания
	// Сбой загрузки радаров гасит только push-канал
	repoMock.EXPECT().GeofencesByInstitute(ctx, alert.InstituteID).Return(geofences, nil).Times(1)
	repoMock.EXPECT().RadarsByInstitute(ctx, alert.InstituteID).
		Return(nil, fmt.Errorf("таблица радаров недоступна")).Times(1)
	repoMock.EXPECT().ContactsByInstitute(ctx, alert.InstituteID).
		Return([]*models.Contact{contact}, nil).Times(1)
	repoMock.EXPECT().BuzzersByInstitute(ctx, alert.InstituteID).Return(nil, nil).Times(1)

	// Действие
	set, err := resolver.Resolve(ctx, alert)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, set.RadarTokens)
	assert.Equal(t, []*models.Contact{contact}, set.Contacts)
}
