package consts

import "time"

// Loop intervals and pacing (spec §4.5, §5).
const (
	NewVideoLoopInterval = 15 * time.Minute
	HistoryLoopInterval  = 8 * time.Hour
	FormatsLoopInterval  = HistoryLoopInterval
	HistoryColdStart     = 10 * time.Second

	InterChannelPause = 2 * time.Second

	TelegramHTTPTimeout = 60 * time.Second

	FormatsBatchLimit       = 50
	DataAPIBatchSize        = 50
	UploadDateBatchLimit    = 30
	NewVsKnownDefaultCap    = 500
)

// Notifier pacing and retry discipline (spec §4.6).
const (
	NewsDispatchDelay    = 30 * time.Second
	NotifierSendRetries  = 3
	NotifierRetryDelay   = 5 * time.Second
	BotStartupRetries    = 3
	BotStartupBaseDelay  = 5 * time.Second
	TelegramVideoMaxSize = 50 * 1024 * 1024 // 50MB (spec §6)
)
