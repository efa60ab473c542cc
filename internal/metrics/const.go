package metrics

const Namespace = "invoice_dashboard"

const (
	CacheTypeRedis  = "redis"
	CacheTypeMemory = "memory"
)

const (
	CacheOperationTypeGet          = "get"
	CacheOperationTypeSet          = "set"
	CacheOperationTypeDelete       = "delete"
	CacheOperationTypeCountEntries = "count_entries"
)

const (
	BackendOperationUpload        = "upload_invoice"
	BackendOperationGetInvoice    = "get_invoice"
	BackendOperationVendorInvoice = "get_invoices_by_vendor"
	BackendOperationStats         = "get_dashboard_stats"
)

const (
	LoginResultSuccess  = "success"
	LoginResultRejected = "rejected"
	LoginResultError    = "error"
)

const (
	JobOutcomeSuccess = "success"
	JobOutcomeFailure = "failure"
)
