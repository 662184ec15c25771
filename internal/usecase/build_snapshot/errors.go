package build_snapshot

import "errors"

var (
	// ErrFetch возвращается, если не удалось загрузить исходные данные
	ErrFetch = errors.New("build snapshot: failed to fetch source data")

	// ErrEmptySnapshot возвращается, если после объединения не осталось ни одной аудитории
	ErrEmptySnapshot = errors.New("build snapshot: no venues with coordinates")

	// ErrWrite возвращается, если снапшот не удалось записать
	ErrWrite = errors.New("build snapshot: failed to write snapshot")
)
