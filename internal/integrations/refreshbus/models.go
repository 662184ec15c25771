package refreshbus

import (
	"encoding/json"
	"fmt"
	"time"
)

// RefreshEvent событие "снапшот обновлен"
type RefreshEvent struct {
	Source      string    `json:"source"` // откуда собран снапшот, например nusmods
	Venues      int       `json:"venues"`
	GeneratedAt time.Time `json:"generatedAt"`
}

func (e RefreshEvent) encode() ([]byte, error) {
	return json.Marshal(e)
}

func decodeEvent(data []byte) (RefreshEvent, error) {
	var e RefreshEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return RefreshEvent{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return e, nil
}
