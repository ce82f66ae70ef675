package services

import "errors"

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Ошибки валидации и бизнес-правил
	ErrValidationFailed  = errors.New("validation failed")
	ErrTeamNameRequired  = errors.New("team name is required")
	ErrUnknownGroup      = errors.New("unknown group label")
	ErrTeamsIdentical    = errors.New("a match requires two distinct teams")
	ErrTeamNotInGroup    = errors.New("team is not registered in the match group")
	ErrScoreOutOfRange   = errors.New("score must be between 0 and the per-game maximum")
	ErrResultMissing     = errors.New("cannot complete a match without both scores")
	ErrMatchNotEditable  = errors.New("invalid match status for this operation")
	ErrUnknownExportKind = errors.New("unknown export kind")

	// Ошибки конфликтов
	ErrTeamNameConflict = errors.New("team name is already registered")

	// Аутентификация
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Сетка плей-офф
	ErrGroupsNotReady  = errors.New("bracket cannot be seeded until every group is ready")
	ErrNoDrawGenerated = errors.New("no bracket draw has been generated")

	// Целостность данных: результат ссылается на команду вне ростера группы.
	// Это сигнал о поломке данных, не тихий пропуск.
	ErrStandingsIntegrity = errors.New("standings data integrity violation")

	// Внешние коллабораторы не сконфигурированы
	ErrUploaderNotConfigured = errors.New("file storage is not configured")
	ErrWeatherUnavailable    = errors.New("weather service is not configured")
)
