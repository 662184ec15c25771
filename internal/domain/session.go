package domain

import "time"

// NearbySession сессия поиска рядом: пользователь поделился геопозицией
// и следующим сообщением присылает интервал времени.
// Хранится только точка, ранжирование пересчитывается на каждый запрос.
type NearbySession struct {
	ID        string
	Origin    Coordinates
	CreatedAt time.Time
}
