package models

// RecipientSet - результат подбора получателей для одной тревоги
type RecipientSet struct {
	RadarTokens []string
	Contacts    []*Contact
	Buzzers     []*Buzzer
}

// Empty сообщает, что оповещать некого
func (s *RecipientSet) Empty() bool {
	return len(s.RadarTokens) == 0 && len(s.Contacts) == 0 && len(s.Buzzers) == 0
}

// ChannelOutcome - счетчики попыток по одному каналу доставки.
// Инвариант: Attempted = Succeeded + Failed.
type ChannelOutcome struct {
	Attempted int `json:"attempted"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// Success учитывает удавшуюся попытку доставки
func (c *ChannelOutcome) Success() { c.Attempted++; c.Succeeded++ }

// Failure учитывает неудавшуюся попытку доставки
func (c *ChannelOutcome) Failure() { c.Attempted++; c.Failed++ }

// DispatchOutcome - итог рассылки одной тревоги по всем каналам.
// Используется только для логов и телеметрии, никуда не сохраняется.
type DispatchOutcome struct {
	Push  ChannelOutcome `json:"push"`
	SMS   ChannelOutcome `json:"sms"`
	Relay ChannelOutcome `json:"relay"`
}
