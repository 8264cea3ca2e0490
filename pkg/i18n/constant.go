package i18n

var ALLOW_LANG = map[string]bool{
	"en": true,
	"es": true,
}

const DEFAULT_LANG = "es"

const (
	ERROR_INTERNAL        = "error.internal"
	ERROR_NOT_FOUND       = "error.notfound"
	ERROR_INVALIDARGUMENT = "error.invalidargument"
	ERROR_UNAUTHORIZED    = "error.unauthorized"
	ERROR_FORBIDDEN       = "error.forbidden"

	ERROR_LOGIN_ACCOUNT_INCORRECT = "error.login.account.incorrect"
	ERROR_INVALID_TOKEN           = "error.invalid.token"
	ERROR_SQL_NOT_ALLOWED         = "error.sql.not.allowed"
	ERROR_TRAINING_INVALID_KIND   = "error.training.invalid.kind"
	ERROR_TRAINING_FAILED         = "error.training.failed"
	ERROR_DATASOURCE_UNAVAILABLE  = "error.datasource.unavailable"

	MESSAGE_CHAT_CANNOT_GENERATE  = "message.chat.cannot.generate"
	MESSAGE_CHAT_EXECUTION_FAILED = "message.chat.execution.failed"
	MESSAGE_SUMMARY_NO_RESULTS    = "message.summary.no.results"
	MESSAGE_SUMMARY_COUNT_RESULT  = "message.summary.count.result"
	MESSAGE_SUMMARY_SINGLE_VALUE  = "message.summary.single.value"
	MESSAGE_SUMMARY_SINGLE_FIELD  = "message.summary.single.field"
	MESSAGE_SUMMARY_ROW_TOTAL     = "message.summary.row.total"
	MESSAGE_TRAINING_REMOVED      = "message.training.removed"
	MESSAGE_TRAINING_COMPLETED    = "message.training.completed"
)
