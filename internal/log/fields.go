package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldUserAgent  = "user_agent"
	FieldError      = "error"
	FieldUser       = "user"
	FieldEmail      = "email"
	FieldPayer      = "payer"
	FieldItem       = "item"
	FieldAmount     = "amount_cents"
	FieldSplitRatio = "split_ratio"
	FieldRowRef     = "row_ref"
	FieldSheet      = "sheet"
	FieldBackend    = "backend"
	FieldWindow     = "window"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentIntake  = "intake"
	ComponentSummary = "summary"
	ComponentStorage = "storage"
	ComponentAMQP    = "amqp"
	ComponentWorker  = "worker"
	ComponentSheets  = "sheets"
	ComponentAuth    = "auth"
	ComponentBackend = "backend"
)
