package domain

// Сетка расписания
const (
	SlotMinutes = 30      // длительность одного слота
	DayMinutes  = 24 * 60 // минут в сутках

	// LastCheckedSlot последний слот, который проверяется при поиске свободного времени.
	// Аудитории бронируются только до 22:00, слоты 2200-2330 никогда не опрашиваются.
	LastCheckedSlot Slot = 21*60 + 30

	// EndOfDay граница суток, допустима только как исключающий конец интервала
	EndOfDay Slot = DayMinutes
)

// Default configuration values
const (
	DefaultNumResults       = 10
	DefaultSuggestionCutoff = 0.5
	DefaultTimezone         = "Asia/Singapore"
)

// Time format constants
const (
	SlotFormat      = "HHMM"      // 24-часовой формат без разделителя, например 0930
	TimeRangeFormat = "HHMM-HHMM" // например 0930-1450
)

// MapsSearchURL шаблон ссылки на точку в Google Maps
const MapsSearchURL = "https://www.google.com/maps/search/?api=1&query=%s%%2C%s"
