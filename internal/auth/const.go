package auth

type SessionKey string

const (
	SessionKeyAuthenticated SessionKey = "authenticated"
	SessionKeyUsername      SessionKey = "username"
	SessionKeyFlashLevel    SessionKey = "flash_level"
	SessionKeyFlashMessage  SessionKey = "flash_message"
)

const sessionKeyInvoiceDraftPrefix = "invoice_draft:"

func invoiceDraftKey(invoiceID string) string {
	return sessionKeyInvoiceDraftPrefix + invoiceID
}
