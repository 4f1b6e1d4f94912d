package logx

const (
	FieldAppName        = "app-name"
	FieldAppVersion     = "app-version"
	FieldCountry        = "country"
	FieldDurationMs     = "duration-ms"
	FieldEndpoint       = "endpoint"
	FieldError          = "error"
	FieldHTTPRequest    = "http-request"
	FieldHTTPResponse   = "http-response"
	FieldNumber         = "number"
	FieldRequestBody    = "request-body"
	FieldRequestID      = "request-id"
	FieldResponseBody   = "response-body"
	FieldResponseStatus = "response-status"
	FieldTraceID        = "trace-id"
	FieldURL            = "url"
)
