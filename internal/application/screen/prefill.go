package screen

import (
	"strconv"
	"time"

	"github.com/jhoicas/progarden-crm/internal/application/dto"
	"github.com/jhoicas/progarden-crm/internal/application/usecase"
	"github.com/jhoicas/progarden-crm/internal/domain/entity"
)

// FinancialPrefill the financial form values implied by picking customer c:
// an income record for the customer's last sale, dated on the purchase date
// (or today when the customer has none).
func FinancialPrefill(c dto.CustomerResponse, today time.Time) map[string]string {
	date := str(c.PurchaseDate)
	if date == "" {
		date = today.Format(DateLayout)
	}
	status := c.PaymentStatus
	if status == "" {
		status = entity.StatusPending
	}
	return map[string]string{
		"customer_id":      strconv.FormatInt(c.ID, 10),
		"customer_name":    c.CustomerName,
		"date":             date,
		"transaction_type": entity.TransactionIncome,
		"description":      usecase.SaleDescription(c.CustomerName, c.ProductPurchased),
		"category":         entity.CategorySales,
		"amount":           c.TotalAmount.String(),
		"payment_method":   str(c.PaymentMethod),
		"status":           status,
	}
}
