package services

import (
	"testing"

	"github.com/KSJEJWI8282/electronic-practice-diary/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateTelegramPartial(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingsService(repository.NewSettingsRepository(db), func() error { return nil })

	enabled := true
	token := "123456:ABC"
	chatID := "@practice_diary"
	settings, err := svc.UpdateTelegram(TelegramUpdate{
		Enabled:  &enabled,
		BotToken: &token,
		ChatID:   &chatID,
	})
	require.NoError(t, err)
	assert.True(t, settings.Enabled)
	assert.Equal(t, token, settings.BotToken)

	// Частичный апдейт не трогает остальные поля
	disabled := false
	settings, err = svc.UpdateTelegram(TelegramUpdate{Enabled: &disabled})
	require.NoError(t, err)
	assert.False(t, settings.Enabled)
	assert.Equal(t, token, settings.BotToken)
	assert.Equal(t, chatID, settings.ChatID)

	stored, err := svc.GetTelegram()
	require.NoError(t, err)
	assert.Equal(t, token, stored.BotToken)
	assert.True(t, stored.Notifications.NewEntry)
}

func TestResetAllDataDelegates(t *testing.T) {
	db := newTestDB(t)

	called := false
	svc := NewSettingsService(repository.NewSettingsRepository(db), func() error {
		called = true
		return nil
	})

	require.NoError(t, svc.ResetAllData())
	assert.True(t, called)
}
