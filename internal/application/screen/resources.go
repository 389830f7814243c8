package screen

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/progarden-crm/internal/application/dto"
	"github.com/jhoicas/progarden-crm/internal/domain/entity"
	"github.com/jhoicas/progarden-crm/pkg/money"
)

var (
	paymentStatuses  = []string{"Pending", "Paid", "Partial"}
	deliveryStatuses = []string{"Pending", "In Transit", "Delivered"}
	customerTypes    = []string{entity.CustomerTypeNew, entity.CustomerTypeReturning}
	channels         = []string{"Walk-in", "Phone", "Online", "Referral"}
	itemCategories   = []string{"Seeds", "Fertilizer", "Tools", "Equipment", "Pesticides", "Other"}
	transactionTypes = []string{entity.TransactionIncome, entity.TransactionExpense}
	clientStatuses   = []string{entity.ClientActive, entity.ClientInactive}
)

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func itoa(n int) string { return strconv.Itoa(n) }

func dec(d decimal.Decimal) string { return d.String() }

// Customers the customers screen.
func Customers() *Definition[dto.CustomerResponse] {
	return &Definition[dto.CustomerResponse]{
		Name:  "customers",
		Title: "Customers",
		Fields: []Field{
			{Name: "customer_name", Label: "Customer name", Kind: Text, Required: true},
			{Name: "phone_number", Label: "Phone number", Kind: Text, Required: true},
			{Name: "address", Label: "Address", Kind: Text},
			{Name: "product_purchased", Label: "Product purchased", Kind: Text},
			{Name: "quantity", Label: "Quantity", Kind: Integer},
			{Name: "total_amount", Label: "Total amount", Kind: Decimal},
			{Name: "purchase_date", Label: "Purchase date", Kind: Date},
			{Name: "payment_status", Label: "Payment status", Kind: Select, Options: paymentStatuses, Default: entity.StatusPending},
			{Name: "payment_method", Label: "Payment method", Kind: Text},
			{Name: "delivery_status", Label: "Delivery status", Kind: Select, Options: deliveryStatuses, Default: entity.StatusPending},
			{Name: "customer_type", Label: "Customer type", Kind: Select, Options: customerTypes, Default: entity.CustomerTypeNew},
			{Name: "channel", Label: "Channel", Kind: Select, Options: channels},
			{Name: "preferred_product", Label: "Preferred product", Kind: Text},
			{Name: "follow_up_date", Label: "Follow-up date", Kind: Date},
			{Name: "notes", Label: "Notes", Kind: TextArea},
		},
		Columns: []Column[dto.CustomerResponse]{
			{"Name", func(c dto.CustomerResponse) string { return c.CustomerName }},
			{"Phone", func(c dto.CustomerResponse) string { return c.PhoneNumber }},
			{"Product", func(c dto.CustomerResponse) string { return str(c.ProductPurchased) }},
			{"Qty", func(c dto.CustomerResponse) string { return itoa(c.Quantity) }},
			{"Amount", func(c dto.CustomerResponse) string { return money.Format(c.TotalAmount) }},
			{"Payment", func(c dto.CustomerResponse) string { return c.PaymentStatus }},
			{"Delivery", func(c dto.CustomerResponse) string { return c.DeliveryStatus }},
			{"Type", func(c dto.CustomerResponse) string { return c.CustomerType }},
		},
		Search: func(c dto.CustomerResponse) []string {
			return []string{c.CustomerName, c.PhoneNumber, str(c.ProductPurchased)}
		},
		Stats: func(list []dto.CustomerResponse) []Stat {
			returning := 0
			revenue := decimal.Zero
			for _, c := range list {
				if c.CustomerType == entity.CustomerTypeReturning {
					returning++
				}
				revenue = revenue.Add(c.TotalAmount)
			}
			return []Stat{
				{"Total customers", money.Int(len(list))},
				{"Returning customers", money.Int(returning)},
				{"Total revenue", money.Format(revenue)},
			}
		},
		ID: func(c dto.CustomerResponse) int64 { return c.ID },
		Values: func(c dto.CustomerResponse) map[string]string {
			return map[string]string{
				"customer_name":     c.CustomerName,
				"phone_number":      c.PhoneNumber,
				"address":           str(c.Address),
				"product_purchased": str(c.ProductPurchased),
				"quantity":          itoa(c.Quantity),
				"total_amount":      dec(c.TotalAmount),
				"purchase_date":     str(c.PurchaseDate),
				"payment_status":    c.PaymentStatus,
				"payment_method":    str(c.PaymentMethod),
				"delivery_status":   c.DeliveryStatus,
				"customer_type":     c.CustomerType,
				"channel":           str(c.Channel),
				"preferred_product": str(c.PreferredProduct),
				"follow_up_date":    str(c.FollowUpDate),
				"notes":             str(c.Notes),
			}
		},
	}
}

// Inventory the inventory screen. Status is computed by the backend, so the
// form has no status input.
func Inventory() *Definition[dto.InventoryResponse] {
	return &Definition[dto.InventoryResponse]{
		Name:  "inventory",
		Title: "Inventory",
		Fields: []Field{
			{Name: "item_name", Label: "Item name", Kind: Text, Required: true},
			{Name: "category", Label: "Category", Kind: Select, Options: itemCategories},
			{Name: "quantity_in_stock", Label: "Quantity in stock", Kind: Integer},
			{Name: "unit", Label: "Unit", Kind: Text},
			{Name: "cost_price", Label: "Cost price", Kind: Decimal, Required: true},
			{Name: "selling_price", Label: "Selling price", Kind: Decimal, Required: true},
			{Name: "supplier", Label: "Supplier", Kind: Text},
			{Name: "restock_level", Label: "Restock level", Kind: Integer, Nullable: true, Default: itoa(entity.DefaultRestockLevel)},
		},
		Columns: []Column[dto.InventoryResponse]{
			{"Item", func(i dto.InventoryResponse) string { return i.ItemName }},
			{"Category", func(i dto.InventoryResponse) string { return str(i.Category) }},
			{"In stock", func(i dto.InventoryResponse) string { return itoa(i.QuantityInStock) + " " + str(i.Unit) }},
			{"Cost", func(i dto.InventoryResponse) string { return money.Format(i.CostPrice) }},
			{"Price", func(i dto.InventoryResponse) string { return money.Format(i.SellingPrice) }},
			{"Supplier", func(i dto.InventoryResponse) string { return str(i.Supplier) }},
			{"Status", func(i dto.InventoryResponse) string { return i.Status }},
		},
		Search: func(i dto.InventoryResponse) []string {
			return []string{i.ItemName, str(i.Category), str(i.Supplier)}
		},
		Stats: func(list []dto.InventoryResponse) []Stat {
			low := 0
			value := decimal.Zero
			for _, i := range list {
				if entity.StockStatusFor(i.QuantityInStock, i.RestockLevel) != entity.StockInStock {
					low++
				}
				value = value.Add(i.CostPrice.Mul(decimal.NewFromInt(int64(i.QuantityInStock))))
			}
			return []Stat{
				{"Total items", money.Int(len(list))},
				{"Low stock", money.Int(low)},
				{"Stock value", money.Format(value)},
			}
		},
		ID: func(i dto.InventoryResponse) int64 { return i.ID },
		Values: func(i dto.InventoryResponse) map[string]string {
			return map[string]string{
				"item_name":         i.ItemName,
				"category":          str(i.Category),
				"quantity_in_stock": itoa(i.QuantityInStock),
				"unit":              str(i.Unit),
				"cost_price":        dec(i.CostPrice),
				"selling_price":     dec(i.SellingPrice),
				"supplier":          str(i.Supplier),
				"restock_level":     itoa(i.RestockLevel),
			}
		},
	}
}

// Suppliers the suppliers screen.
func Suppliers() *Definition[dto.SupplierResponse] {
	return &Definition[dto.SupplierResponse]{
		Name:  "suppliers",
		Title: "Suppliers",
		Fields: []Field{
			{Name: "supplier_name", Label: "Supplier name", Kind: Text, Required: true},
			{Name: "product_supplied", Label: "Product supplied", Kind: Text},
			{Name: "contact", Label: "Contact", Kind: Text},
			{Name: "payment_terms", Label: "Payment terms", Kind: Text},
			{Name: "last_purchase", Label: "Last purchase", Kind: Date},
			{Name: "amount_paid", Label: "Amount paid", Kind: Decimal},
			{Name: "balance", Label: "Balance", Kind: Decimal},
			{Name: "notes", Label: "Notes", Kind: TextArea},
		},
		Columns: []Column[dto.SupplierResponse]{
			{"Supplier", func(s dto.SupplierResponse) string { return s.SupplierName }},
			{"Product", func(s dto.SupplierResponse) string { return str(s.ProductSupplied) }},
			{"Contact", func(s dto.SupplierResponse) string { return str(s.Contact) }},
			{"Terms", func(s dto.SupplierResponse) string { return str(s.PaymentTerms) }},
			{"Last purchase", func(s dto.SupplierResponse) string { return str(s.LastPurchase) }},
			{"Paid", func(s dto.SupplierResponse) string { return money.Format(s.AmountPaid) }},
			{"Balance", func(s dto.SupplierResponse) string { return money.Format(s.Balance) }},
		},
		Search: func(s dto.SupplierResponse) []string {
			return []string{s.SupplierName, str(s.ProductSupplied)}
		},
		Stats: func(list []dto.SupplierResponse) []Stat {
			paid, balance := decimal.Zero, decimal.Zero
			for _, s := range list {
				paid = paid.Add(s.AmountPaid)
				balance = balance.Add(s.Balance)
			}
			return []Stat{
				{"Total suppliers", money.Int(len(list))},
				{"Total paid", money.Format(paid)},
				{"Outstanding balance", money.Format(balance)},
			}
		},
		ID: func(s dto.SupplierResponse) int64 { return s.ID },
		Values: func(s dto.SupplierResponse) map[string]string {
			return map[string]string{
				"supplier_name":    s.SupplierName,
				"product_supplied": str(s.ProductSupplied),
				"contact":          str(s.Contact),
				"payment_terms":    str(s.PaymentTerms),
				"last_purchase":    str(s.LastPurchase),
				"amount_paid":      dec(s.AmountPaid),
				"balance":          dec(s.Balance),
				"notes":            str(s.Notes),
			}
		},
	}
}

// Financial the financial records screen.
func Financial() *Definition[dto.FinancialResponse] {
	return &Definition[dto.FinancialResponse]{
		Name:  "financial",
		Title: "Financial records",
		Fields: []Field{
			{Name: "customer_id", Label: "Customer", Kind: Integer, Nullable: true},
			{Name: "customer_name", Label: "Customer name", Kind: Text, ReadOnly: true},
			{Name: "date", Label: "Date", Kind: Date, Required: true},
			{Name: "transaction_type", Label: "Type", Kind: Select, Options: transactionTypes, Required: true},
			{Name: "description", Label: "Description", Kind: Text},
			{Name: "category", Label: "Category", Kind: Text},
			{Name: "amount", Label: "Amount", Kind: Decimal, Required: true},
			{Name: "payment_method", Label: "Payment method", Kind: Text},
			{Name: "status", Label: "Status", Kind: Select, Options: paymentStatuses, Default: entity.StatusPending},
			{Name: "notes", Label: "Notes", Kind: TextArea},
		},
		Columns: []Column[dto.FinancialResponse]{
			{"Date", func(f dto.FinancialResponse) string { return f.Date }},
			{"Type", func(f dto.FinancialResponse) string { return f.TransactionType }},
			{"Description", func(f dto.FinancialResponse) string { return str(f.Description) }},
			{"Category", func(f dto.FinancialResponse) string { return str(f.Category) }},
			{"Customer", func(f dto.FinancialResponse) string { return str(f.CustomerName) }},
			{"Amount", func(f dto.FinancialResponse) string { return money.Format(f.Amount) }},
			{"Status", func(f dto.FinancialResponse) string { return f.Status }},
		},
		Search: func(f dto.FinancialResponse) []string {
			return []string{str(f.Description), str(f.Category), str(f.CustomerName)}
		},
		Stats: func(list []dto.FinancialResponse) []Stat {
			income, expense := decimal.Zero, decimal.Zero
			for _, f := range list {
				switch f.TransactionType {
				case entity.TransactionIncome:
					income = income.Add(f.Amount)
				case entity.TransactionExpense:
					expense = expense.Add(f.Amount)
				}
			}
			return []Stat{
				{"Total income", money.Format(income)},
				{"Total expenses", money.Format(expense)},
				{"Net profit", money.Format(income.Sub(expense))},
			}
		},
		ID: func(f dto.FinancialResponse) int64 { return f.ID },
		Values: func(f dto.FinancialResponse) map[string]string {
			v := map[string]string{
				"customer_name":    str(f.CustomerName),
				"date":             f.Date,
				"transaction_type": f.TransactionType,
				"description":      str(f.Description),
				"category":         str(f.Category),
				"amount":           dec(f.Amount),
				"payment_method":   str(f.PaymentMethod),
				"status":           f.Status,
				"notes":            str(f.Notes),
			}
			if f.CustomerID != nil {
				v["customer_id"] = strconv.FormatInt(*f.CustomerID, 10)
			}
			return v
		},
	}
}

// Deliveries the delivery log screen.
func Deliveries() *Definition[dto.DeliveryResponse] {
	return &Definition[dto.DeliveryResponse]{
		Name:  "deliveries",
		Title: "Deliveries",
		Fields: []Field{
			{Name: "date", Label: "Date", Kind: Date, Required: true},
			{Name: "customer_name", Label: "Customer name", Kind: Text, Required: true},
			{Name: "location", Label: "Location", Kind: Text},
			{Name: "item_delivered", Label: "Item delivered", Kind: Text},
			{Name: "quantity", Label: "Quantity", Kind: Integer},
			{Name: "delivery_person", Label: "Delivery person", Kind: Text},
			{Name: "delivery_cost", Label: "Delivery cost", Kind: Decimal},
			{Name: "notes", Label: "Notes", Kind: TextArea},
		},
		Columns: []Column[dto.DeliveryResponse]{
			{"Date", func(d dto.DeliveryResponse) string { return d.Date }},
			{"Customer", func(d dto.DeliveryResponse) string { return d.CustomerName }},
			{"Location", func(d dto.DeliveryResponse) string { return str(d.Location) }},
			{"Item", func(d dto.DeliveryResponse) string { return str(d.ItemDelivered) }},
			{"Qty", func(d dto.DeliveryResponse) string { return itoa(d.Quantity) }},
			{"Delivered by", func(d dto.DeliveryResponse) string { return str(d.DeliveryPerson) }},
			{"Cost", func(d dto.DeliveryResponse) string { return money.Format(d.DeliveryCost) }},
		},
		Search: func(d dto.DeliveryResponse) []string {
			return []string{d.CustomerName, str(d.ItemDelivered), str(d.DeliveryPerson)}
		},
		Stats: func(list []dto.DeliveryResponse) []Stat {
			cost := decimal.Zero
			units := 0
			for _, d := range list {
				cost = cost.Add(d.DeliveryCost)
				units += d.Quantity
			}
			return []Stat{
				{"Total deliveries", money.Int(len(list))},
				{"Total cost", money.Format(cost)},
				{"Units delivered", money.Int(units)},
			}
		},
		ID: func(d dto.DeliveryResponse) int64 { return d.ID },
		Values: func(d dto.DeliveryResponse) map[string]string {
			return map[string]string{
				"date":            d.Date,
				"customer_name":   d.CustomerName,
				"location":        str(d.Location),
				"item_delivered":  str(d.ItemDelivered),
				"quantity":        itoa(d.Quantity),
				"delivery_person": str(d.DeliveryPerson),
				"delivery_cost":   dec(d.DeliveryCost),
				"notes":           str(d.Notes),
			}
		},
	}
}

// Marketing the marketing posts screen.
func Marketing() *Definition[dto.MarketingResponse] {
	return &Definition[dto.MarketingResponse]{
		Name:  "marketing",
		Title: "Marketing",
		Fields: []Field{
			{Name: "platform", Label: "Platform", Kind: Text, Required: true},
			{Name: "post_date", Label: "Post date", Kind: Date},
			{Name: "content_type", Label: "Content type", Kind: Text},
			{Name: "description", Label: "Description", Kind: TextArea},
			{Name: "engagement", Label: "Engagement", Kind: Integer},
			{Name: "sales_from_post", Label: "Sales from post", Kind: Decimal},
			{Name: "notes", Label: "Notes", Kind: TextArea},
		},
		Columns: []Column[dto.MarketingResponse]{
			{"Platform", func(m dto.MarketingResponse) string { return m.Platform }},
			{"Date", func(m dto.MarketingResponse) string { return str(m.PostDate) }},
			{"Content", func(m dto.MarketingResponse) string { return str(m.ContentType) }},
			{"Description", func(m dto.MarketingResponse) string { return str(m.Description) }},
			{"Engagement", func(m dto.MarketingResponse) string { return money.Int(m.Engagement) }},
			{"Sales", func(m dto.MarketingResponse) string { return money.Format(m.SalesFromPost) }},
		},
		Search: func(m dto.MarketingResponse) []string {
			return []string{m.Platform, str(m.ContentType), str(m.Description)}
		},
		Stats: func(list []dto.MarketingResponse) []Stat {
			engagement := 0
			sales := decimal.Zero
			for _, m := range list {
				engagement += m.Engagement
				sales = sales.Add(m.SalesFromPost)
			}
			return []Stat{
				{"Total posts", money.Int(len(list))},
				{"Total engagement", money.Int(engagement)},
				{"Sales from posts", money.Format(sales)},
			}
		},
		ID: func(m dto.MarketingResponse) int64 { return m.ID },
		Values: func(m dto.MarketingResponse) map[string]string {
			return map[string]string{
				"platform":        m.Platform,
				"post_date":       str(m.PostDate),
				"content_type":    str(m.ContentType),
				"description":     str(m.Description),
				"engagement":      itoa(m.Engagement),
				"sales_from_post": dec(m.SalesFromPost),
				"notes":           str(m.Notes),
			}
		},
	}
}

// Appointments the appointments screen, rows grouped by date.
func Appointments() *Definition[dto.AppointmentResponse] {
	return &Definition[dto.AppointmentResponse]{
		Name:  "appointments",
		Title: "Appointments",
		Fields: []Field{
			{Name: "client_name", Label: "Client name", Kind: Text, Required: true},
			{Name: "service", Label: "Service", Kind: Text, Required: true},
			{Name: "date", Label: "Date", Kind: Date, Required: true},
			{Name: "time", Label: "Time", Kind: Time},
			{Name: "status", Label: "Status", Kind: Select, Options: entity.AppointmentStatuses, Default: entity.AppointmentScheduled},
			{Name: "notes", Label: "Notes", Kind: TextArea},
		},
		Columns: []Column[dto.AppointmentResponse]{
			{"Time", func(a dto.AppointmentResponse) string { return str(a.Time) }},
			{"Client", func(a dto.AppointmentResponse) string { return a.ClientName }},
			{"Service", func(a dto.AppointmentResponse) string { return a.Service }},
			{"Status", func(a dto.AppointmentResponse) string { return a.Status }},
			{"Notes", func(a dto.AppointmentResponse) string { return str(a.Notes) }},
		},
		Search: func(a dto.AppointmentResponse) []string {
			return []string{a.ClientName, a.Service}
		},
		Stats: func(list []dto.AppointmentResponse) []Stat {
			scheduled, completed := 0, 0
			for _, a := range list {
				switch a.Status {
				case entity.AppointmentScheduled:
					scheduled++
				case entity.AppointmentCompleted:
					completed++
				}
			}
			return []Stat{
				{"Total appointments", money.Int(len(list))},
				{"Scheduled", money.Int(scheduled)},
				{"Completed", money.Int(completed)},
			}
		},
		ID:    func(a dto.AppointmentResponse) int64 { return a.ID },
		Group: func(a dto.AppointmentResponse) string { return a.Date },
		Values: func(a dto.AppointmentResponse) map[string]string {
			return map[string]string{
				"client_name": a.ClientName,
				"service":     a.Service,
				"date":        a.Date,
				"time":        str(a.Time),
				"status":      a.Status,
				"notes":       str(a.Notes),
			}
		},
	}
}

// Clients the clients screen.
func Clients() *Definition[dto.ClientResponse] {
	return &Definition[dto.ClientResponse]{
		Name:  "clients",
		Title: "Clients",
		Fields: []Field{
			{Name: "name", Label: "Name", Kind: Text, Required: true},
			{Name: "email", Label: "Email", Kind: Email},
			{Name: "phone", Label: "Phone", Kind: Text},
			{Name: "address", Label: "Address", Kind: Text},
			{Name: "status", Label: "Status", Kind: Select, Options: clientStatuses, Default: entity.ClientActive},
		},
		Columns: []Column[dto.ClientResponse]{
			{"Name", func(c dto.ClientResponse) string { return c.Name }},
			{"Email", func(c dto.ClientResponse) string { return str(c.Email) }},
			{"Phone", func(c dto.ClientResponse) string { return str(c.Phone) }},
			{"Address", func(c dto.ClientResponse) string { return str(c.Address) }},
			{"Status", func(c dto.ClientResponse) string { return c.Status }},
		},
		Search: func(c dto.ClientResponse) []string {
			return []string{c.Name, str(c.Email), str(c.Phone)}
		},
		Stats: func(list []dto.ClientResponse) []Stat {
			active := 0
			for _, c := range list {
				if c.Status == entity.ClientActive {
					active++
				}
			}
			return []Stat{
				{"Total clients", money.Int(len(list))},
				{"Active clients", money.Int(active)},
			}
		},
		ID: func(c dto.ClientResponse) int64 { return c.ID },
		Values: func(c dto.ClientResponse) map[string]string {
			return map[string]string{
				"name":    c.Name,
				"email":   str(c.Email),
				"phone":   str(c.Phone),
				"address": str(c.Address),
				"status":  c.Status,
			}
		},
	}
}

// Invoices the invoices screen.
func Invoices() *Definition[dto.InvoiceResponse] {
	return &Definition[dto.InvoiceResponse]{
		Name:  "invoices",
		Title: "Invoices",
		Fields: []Field{
			{Name: "invoice_number", Label: "Invoice number", Kind: Text, Required: true},
			{Name: "client_name", Label: "Client name", Kind: Text, Required: true},
			{Name: "amount", Label: "Amount", Kind: Decimal},
			{Name: "status", Label: "Status", Kind: Select, Options: entity.InvoiceStatuses, Default: entity.InvoicePending},
			{Name: "due_date", Label: "Due date", Kind: Date},
			{Name: "services", Label: "Services (one per line)", Kind: List},
		},
		Columns: []Column[dto.InvoiceResponse]{
			{"Number", func(i dto.InvoiceResponse) string { return i.InvoiceNumber }},
			{"Client", func(i dto.InvoiceResponse) string { return i.ClientName }},
			{"Amount", func(i dto.InvoiceResponse) string { return money.Format(i.Amount) }},
			{"Status", func(i dto.InvoiceResponse) string { return i.Status }},
			{"Due", func(i dto.InvoiceResponse) string { return str(i.DueDate) }},
			{"Services", func(i dto.InvoiceResponse) string { return strings.Join(i.Services, ", ") }},
		},
		Search: func(i dto.InvoiceResponse) []string {
			return []string{i.InvoiceNumber, i.ClientName}
		},
		Stats: func(list []dto.InvoiceResponse) []Stat {
			paid, pending := decimal.Zero, decimal.Zero
			overdue := 0
			for _, i := range list {
				switch i.Status {
				case entity.InvoicePaid:
					paid = paid.Add(i.Amount)
				case entity.InvoicePending:
					pending = pending.Add(i.Amount)
				case entity.InvoiceOverdue:
					overdue++
				}
			}
			return []Stat{
				{"Paid revenue", money.Format(paid)},
				{"Pending revenue", money.Format(pending)},
				{"Overdue invoices", money.Int(overdue)},
			}
		},
		ID: func(i dto.InvoiceResponse) int64 { return i.ID },
		Values: func(i dto.InvoiceResponse) map[string]string {
			return map[string]string{
				"invoice_number": i.InvoiceNumber,
				"client_name":    i.ClientName,
				"amount":         dec(i.Amount),
				"status":         i.Status,
				"due_date":       str(i.DueDate),
				"services":       strings.Join(i.Services, "\n"),
			}
		},
	}
}

// Users the user accounts screen, administrators only. The password is
// write-only: the edit form opens blank and a blank value keeps it.
func Users() *Definition[dto.UserResponse] {
	return &Definition[dto.UserResponse]{
		Name:      "users",
		Title:     "Users",
		AdminOnly: true,
		Fields: []Field{
			{Name: "username", Label: "Username", Kind: Text, Required: true},
			{Name: "email", Label: "Email", Kind: Email},
			{Name: "password", Label: "Password (leave blank to keep)", Kind: Password},
			{Name: "is_admin", Label: "Administrator", Kind: Bool},
			{Name: "is_active", Label: "Active", Kind: Bool, Default: "true"},
		},
		Columns: []Column[dto.UserResponse]{
			{"Username", func(u dto.UserResponse) string { return u.Username }},
			{"Email", func(u dto.UserResponse) string { return str(u.Email) }},
			{"Role", func(u dto.UserResponse) string {
				if u.IsAdmin {
					return "Administrator"
				}
				return "Staff"
			}},
			{"Active", func(u dto.UserResponse) string {
				if u.IsActive {
					return "Yes"
				}
				return "No"
			}},
		},
		Search: func(u dto.UserResponse) []string {
			return []string{u.Username, str(u.Email)}
		},
		Stats: func(list []dto.UserResponse) []Stat {
			admins, active := 0, 0
			for _, u := range list {
				if u.IsAdmin {
					admins++
				}
				if u.IsActive {
					active++
				}
			}
			return []Stat{
				{"Total users", money.Int(len(list))},
				{"Administrators", money.Int(admins)},
				{"Active users", money.Int(active)},
			}
		},
		ID: func(u dto.UserResponse) int64 { return u.ID },
		Values: func(u dto.UserResponse) map[string]string {
			return map[string]string{
				"username":  u.Username,
				"email":     str(u.Email),
				"is_admin":  strconv.FormatBool(u.IsAdmin),
				"is_active": strconv.FormatBool(u.IsActive),
			}
		},
	}
}
