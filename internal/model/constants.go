package model

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

const (
	LocaleFR = "fr"
	LocaleEN = "en"
)

type ContextKey string

const KeyContextLogger ContextKey = "logger"

const KeyLoggerError = "error"
