package schedule

import (
	"errors"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
)

var (
	// ErrVenueNotFound возвращается, когда аудитории нет в снапшоте
	ErrVenueNotFound = errors.New("venue not found")

	// ErrCorruptSnapshot возвращается, когда в снапшоте нет обязательных полей
	ErrCorruptSnapshot = domain.ErrCorruptSnapshot

	// ErrNotLoaded возвращается, когда снапшот еще ни разу не был загружен
	ErrNotLoaded = errors.New("snapshot is not loaded")

	// ErrInternal возвращается при ошибках источника снапшота
	ErrInternal = errors.New("schedule: internal error")
)
