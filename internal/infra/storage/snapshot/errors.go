package snapshot

import "errors"

var (
	// ErrReadFile возвращается при ошибке чтения файла снапшота
	ErrReadFile = errors.New("snapshot.storage: failed to read file")

	// ErrWriteFile возвращается при ошибке записи файла снапшота
	ErrWriteFile = errors.New("snapshot.storage: failed to write file")

	// ErrDecode возвращается, когда файл снапшота не является корректным JSON
	ErrDecode = errors.New("snapshot.storage: failed to decode snapshot")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("snapshot.storage: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("snapshot.storage: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("snapshot.storage: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("snapshot.storage: failed to scan row")
)
