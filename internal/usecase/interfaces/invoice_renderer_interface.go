package interfaces

import "okbikes_admin/internal/domain/entities"

// IInvoiceRenderer produces the printable form of an invoice.
type IInvoiceRenderer interface {
	RenderPDF(inv entities.Invoice) ([]byte, error)
}
