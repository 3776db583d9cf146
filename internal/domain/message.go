package domain

import (
	"fmt"
	"strings"
)

// Locale selects the label set used when rendering a summary line.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleRU Locale = "ru"
)

// ParseLocale normalises a locale name; empty input yields LocaleEN.
func ParseLocale(value string) (Locale, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(LocaleEN):
		return LocaleEN, nil
	case string(LocaleRU):
		return LocaleRU, nil
	default:
		return "", fmt.Errorf("unsupported locale %q", value)
	}
}

const (
	messageTemplateEN = "Activity type: %s; Duration: %.3f h.; Distance: %.3f km; Avg speed: %.3f km/h; Calories burned: %.3f."
	messageTemplateRU = "Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f."
)

// InfoMessage is the computed summary of one workout.
type InfoMessage struct {
	TrainingType string
	Duration     float64 // hours
	Distance     float64 // km
	Speed        float64 // km/h
	Calories     float64 // kcal
}

// Message renders the summary with English labels.
func (m InfoMessage) Message() string {
	return m.MessageIn(LocaleEN)
}

// MessageIn renders the summary with the labels of the given locale.
// Unknown locales fall back to English.
func (m InfoMessage) MessageIn(locale Locale) string {
	template := messageTemplateEN
	if locale == LocaleRU {
		template = messageTemplateRU
	}
	return fmt.Sprintf(template, m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}
