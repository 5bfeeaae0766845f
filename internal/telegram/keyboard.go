package telegram

import (
	"github.com/go-telegram/bot/models"

	"github.com/earnbase/earnbot/internal/view"
)

// InlineButton creates a single inline keyboard button.
func InlineButton(text, callbackData string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{
		Text:         text,
		CallbackData: callbackData,
	}
}

// InlineKeyboard creates an inline keyboard from rows of buttons.
func InlineKeyboard(rows ...[]models.InlineKeyboardButton) *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: rows,
	}
}

// Markup materializes a fragment's button view-models into Telegram markup.
// Returns nil when the fragment has no buttons.
func Markup(f view.Fragment) *models.InlineKeyboardMarkup {
	if len(f.Buttons) == 0 {
		return nil
	}
	rows := make([][]models.InlineKeyboardButton, 0, len(f.Buttons))
	for _, row := range f.Buttons {
		tgRow := make([]models.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			tgRow = append(tgRow, InlineButton(b.Label, b.Data))
		}
		rows = append(rows, tgRow)
	}
	return InlineKeyboard(rows...)
}
