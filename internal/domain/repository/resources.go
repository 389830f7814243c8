package repository

import "github.com/jhoicas/progarden-crm/internal/domain/entity"

// Resources with no queries beyond CRUD.
type (
	SupplierRepository    = CRUDRepository[entity.Supplier]
	DeliveryRepository    = CRUDRepository[entity.DeliveryLog]
	MarketingRepository   = CRUDRepository[entity.MarketingPost]
	AppointmentRepository = CRUDRepository[entity.Appointment]
	ClientRepository      = CRUDRepository[entity.Client]
	InvoiceRepository     = CRUDRepository[entity.Invoice]
)
