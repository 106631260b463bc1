package scheduler

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRelayGateway записывает отправленные реле-команды
type fakeRelayGateway struct {
	mu    sync.Mutex
	calls []relayCall
	err   error
	panic bool
	fired chan struct{}
}

type relayCall struct {
	device string
	on     bool
}

func newFakeRelayGateway() *fakeRelayGateway {
	return &fakeRelayGateway{fired: make(chan struct{}, 16)}
}

func (f *fakeRelayGateway) SendRelayCommand(_ context.Context, devicePhone string, on bool) error {
	f.mu.Lock()
	f.calls = append(f.calls, relayCall{device: devicePhone, on: on})
	f.mu.Unlock()
	f.fired <- struct{}{}
	if f.panic {
		panic("gateway exploded")
	}
	return f.err
}

func (f *fakeRelayGateway) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func newTestScheduler(relay RelayGateway) *RelayScheduler {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	// Минимальная задержка уменьшена, чтобы тесты не спали по секунде
	return &RelayScheduler{
		relay:       relay,
		logger:      logger,
		minDelay:    10 * time.Millisecond,
		callTimeout: time.Second,
	}
}

func TestScheduleOff_FiresExactlyOnce(t *testing.T) {
	// Подготовка
	gateway := newFakeRelayGateway()
	s := newTestScheduler(gateway)

	// Действие
	s.ScheduleOff("9851000000", 20*time.Millisecond, uuid.New(), uuid.New())

	// Проверки
	select {
	case <-gateway.fired:
	case <-time.After(time.Second):
		t.Fatal("relay OFF command was not sent")
	}

	// Даем время на возможные лишние срабатывания
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, 1, gateway.callCount())

	gateway.mu.Lock()
	defer gateway.mu.Unlock()
	assert.Equal(t, "9851000000", gateway.calls[0].device)
	assert.False(t, gateway.calls[0].on)
}

func TestScheduleOff_ClampsNonPositiveDelay(t *testing.T) {
	gateway := newFakeRelayGateway()
	s := newTestScheduler(gateway)

	start := time.Now()
	s.ScheduleOff("9851000000", -5*time.Second, uuid.New(), uuid.New())

	select {
	case <-gateway.fired:
		// Отрицательная задержка поднята до минимальной, а не сработала мгновенно в прошлом
		assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
	case <-time.After(time.Second):
		t.Fatal("relay OFF command was not sent")
	}
}

func TestScheduleOff_ReturnsImmediately(t *testing.T) {
	gateway := newFakeRelayGateway()
	s := newTestScheduler(gateway)

	start := time.Now()
	s.ScheduleOff("9851000000", 100*time.Millisecond, uuid.New(), uuid.New())

	// Вызов не должен блокироваться на время задержки
	assert.Less(t, time.Since(start), 50*time.Millisecond)

	select {
	case <-gateway.fired:
	case <-time.After(time.Second):
		t.Fatal("relay OFF command was not sent")
	}
}

func TestScheduleOff_GatewayErrorIsSwallowed(t *testing.T) {
	gateway := newFakeRelayGateway()
	gateway.err = fmt.Errorf("device unreachable")
	s := newTestScheduler(gateway)

	s.ScheduleOff("9851000000", 10*time.Millisecond, uuid.New(), uuid.New())

	select {
	case <-gateway.fired:
	case <-time.After(time.Second):
		t.Fatal("relay OFF command was not attempted")
	}
	// Ошибка шлюза логируется и не роняет процесс
}

func TestScheduleOff_PanicIsRecovered(t *testing.T) {
	gateway := newFakeRelayGateway()
	gateway.panic = true
	s := newTestScheduler(gateway)

	s.ScheduleOff("9851000000", 10*time.Millisecond, uuid.New(), uuid.New())

	select {
	case <-gateway.fired:
	case <-time.After(time.Second):
		t.Fatal("relay OFF command was not attempted")
	}
	// Паника внутри задачи перехвачена; даем горутине завершиться
	time.Sleep(20 * time.Millisecond)
}

func TestScheduleOff_ManyConcurrentSchedules(t *testing.T) {
	gateway := newFakeRelayGateway()
	gateway.fired = make(chan struct{}, 64)
	s := newTestScheduler(gateway)

	for i := 0; i < 10; i++ {
		s.ScheduleOff(fmt.Sprintf("98510000%02d", i), 10*time.Millisecond, uuid.New(), uuid.New())
	}

	deadline := time.After(2 * time.Second)
	for i := 0; i < 10; i++ {
		select {
		case <-gateway.fired:
		case <-deadline:
			t.Fatalf("only %d of 10 relay OFF commands fired", i)
		}
	}
	assert.Equal(t, 10, gateway.callCount())
}
