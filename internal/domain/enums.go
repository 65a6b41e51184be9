package domain

type DeliveryStatus string

const (
	DeliveryPending    DeliveryStatus = "pending"
	DeliveryInProgress DeliveryStatus = "in_progress"
	DeliveryDelivered  DeliveryStatus = "delivered"
)

// ValidDeliveryStatuses is the canonical set of accepted delivery status strings.
var ValidDeliveryStatuses = map[string]bool{
	"pending": true, "in_progress": true, "delivered": true,
}

type InvoiceTheme string

const (
	InvoiceClassic InvoiceTheme = "classic"
	InvoiceMinimal InvoiceTheme = "minimal"
)

type Language string

const (
	LangEnglish Language = "en"
	LangBengali Language = "bn"
)
