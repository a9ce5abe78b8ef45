package ui

import (
	"fmt"
	"sync"
)

// Localization manages UI text translations. The language can change on the
// UI goroutine while completion alerts read texts from the tick goroutine.
type Localization struct {
	mu              sync.RWMutex
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyTimerName          = "timer_name"
	KeyDuration           = "duration"
	KeyCategory           = "category"
	KeyAddTimer           = "add_timer"
	KeyValidationTitle    = "validation_title"
	KeyFillAllFields      = "fill_all_fields"
	KeyFilterCategory     = "filter_category"
	KeyStart              = "start"
	KeyPause              = "pause"
	KeyReset              = "reset"
	KeyDelete             = "delete"
	KeyStartAll           = "start_all"
	KeyPauseAll           = "pause_all"
	KeyResetAll           = "reset_all"
	KeyClearAll           = "clear_all"
	KeyClearAllConfirm    = "clear_all_confirm"
	KeyStatusRunning      = "status_running"
	KeyStatusPaused       = "status_paused"
	KeyStatusCompleted    = "status_completed"
	KeyTimerCompleted     = "timer_completed"
	KeyTimerFinished      = "timer_finished"
	KeyNoTimers           = "no_timers"
	KeyNotifyOnComplete   = "notify_on_complete"
	KeyConfirmClearAll    = "confirm_clear_all"
	KeySettingsSaved      = "settings_saved"
	KeyStorageError       = "storage_error"
	KeyCorruptTimersSaved = "corrupt_timers_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.mu.Lock()
		l.currentLanguage = lang
		l.mu.Unlock()
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.GetCurrentLanguage()]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns localized text for key with args applied
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "TimerBox",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyTimerName:          "Timer name",
		KeyDuration:           "Duration (seconds)",
		KeyCategory:           "Category",
		KeyAddTimer:           "Add Timer",
		KeyValidationTitle:    "Validation Error",
		KeyFillAllFields:      "Please fill all fields",
		KeyFilterCategory:     "Category filter",
		KeyStart:              "Start",
		KeyPause:              "Pause",
		KeyReset:              "Reset",
		KeyDelete:             "Delete",
		KeyStartAll:           "Start All",
		KeyPauseAll:           "Pause All",
		KeyResetAll:           "Reset All",
		KeyClearAll:           "Clear All",
		KeyClearAllConfirm:    "Delete all timers?",
		KeyStatusRunning:      "Running",
		KeyStatusPaused:       "Paused",
		KeyStatusCompleted:    "Completed",
		KeyTimerCompleted:     "Timer Completed",
		KeyTimerFinished:      "%s has finished!",
		KeyNoTimers:           "No timers yet",
		KeyNotifyOnComplete:   "System notification on completion",
		KeyConfirmClearAll:    "Confirm before clearing all timers",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyStorageError:       "Could not save timers",
		KeyCorruptTimersSaved: "Saved timers could not be read and were set aside",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "TimerBox",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyTimerName:          "Название таймера",
		KeyDuration:           "Длительность (секунды)",
		KeyCategory:           "Категория",
		KeyAddTimer:           "Добавить таймер",
		KeyValidationTitle:    "Ошибка ввода",
		KeyFillAllFields:      "Пожалуйста, заполните все поля",
		KeyFilterCategory:     "Фильтр категорий",
		KeyStart:              "Старт",
		KeyPause:              "Пауза",
		KeyReset:              "Сброс",
		KeyDelete:             "Удалить",
		KeyStartAll:           "Запустить все",
		KeyPauseAll:           "Приостановить все",
		KeyResetAll:           "Сбросить все",
		KeyClearAll:           "Очистить все",
		KeyClearAllConfirm:    "Удалить все таймеры?",
		KeyStatusRunning:      "Идёт",
		KeyStatusPaused:       "Пауза",
		KeyStatusCompleted:    "Завершён",
		KeyTimerCompleted:     "Таймер завершён",
		KeyTimerFinished:      "%s завершён!",
		KeyNoTimers:           "Таймеров пока нет",
		KeyNotifyOnComplete:   "Системное уведомление по завершении",
		KeyConfirmClearAll:    "Подтверждать очистку всех таймеров",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyStorageError:       "Не удалось сохранить таймеры",
		KeyCorruptTimersSaved: "Сохранённые таймеры не прочитаны и отложены",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "TimerBox",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeyTimerName:          "Nome do timer",
		KeyDuration:           "Duração (segundos)",
		KeyCategory:           "Categoria",
		KeyAddTimer:           "Adicionar Timer",
		KeyValidationTitle:    "Erro de validação",
		KeyFillAllFields:      "Por favor, preencha todos os campos",
		KeyFilterCategory:     "Filtro de categoria",
		KeyStart:              "Iniciar",
		KeyPause:              "Pausar",
		KeyReset:              "Reiniciar",
		KeyDelete:             "Excluir",
		KeyStartAll:           "Iniciar todos",
		KeyPauseAll:           "Pausar todos",
		KeyResetAll:           "Reiniciar todos",
		KeyClearAll:           "Limpar tudo",
		KeyClearAllConfirm:    "Excluir todos os timers?",
		KeyStatusRunning:      "Em execução",
		KeyStatusPaused:       "Pausado",
		KeyStatusCompleted:    "Concluído",
		KeyTimerCompleted:     "Timer concluído",
		KeyTimerFinished:      "%s terminou!",
		KeyNoTimers:           "Nenhum timer ainda",
		KeyNotifyOnComplete:   "Notificação do sistema ao concluir",
		KeyConfirmClearAll:    "Confirmar antes de limpar todos os timers",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyStorageError:       "Não foi possível salvar os timers",
		KeyCorruptTimersSaved: "Os timers salvos não puderam ser lidos e foram separados",
	}
}
