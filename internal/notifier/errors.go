// Package notifier is the Notifier (N) component: the single
// outbound Telegram writer. It drains the news and shorts queues,
// renders Markdown V2 templates, enforces the send retry policy, and
// runs the interactive /start + admin-relay handler (spec §4.6).
package notifier

import "errors"

// ErrBotStartupFailed is the only error in this component that
// crashes the process, raised after startup retries are exhausted
// (spec §4.6 "Startup resilience", §7 error table).
var ErrBotStartupFailed = errors.New("notifier: bot failed to start")

// errNonRetryable marks a send failure the retry loop should not
// retry (spec §4.6 "on non-retryable error log and drop").
var errNonRetryable = errors.New("notifier: non-retryable send error")
