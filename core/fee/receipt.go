package fee

import (
	"net/mail"

	"github.com/su-ri-ya/littlechampions/core"
	"github.com/su-ri-ya/littlechampions/core/student"
)

const receiptTemplate = "payment_receipt"

// ReceiptData feeds the payment receipt email templates.
type ReceiptData struct {
	StudentName     string
	FeeName         string
	Amount          string
	PaidAmount      string
	RemainingAmount string
	Status          string
	PaymentMethod   string
	TransactionID   string
	PaymentDate     string
}

func (svc *Service) receiptMessage(stud student.Student, struc Structure, pmt Payment) *core.EmailMessage {
	return &core.EmailMessage{
		To:           []mail.Address{{Name: stud.Name, Address: stud.Email}},
		Subject:      "Payment Receipt",
		TemplateName: receiptTemplate,
		TemplateData: ReceiptData{
			StudentName:     stud.Name,
			FeeName:         struc.Name,
			Amount:          core.FormatAmount(svc.currency, pmt.Amount),
			PaidAmount:      core.FormatAmount(svc.currency, pmt.PaidAmount),
			RemainingAmount: core.FormatAmount(svc.currency, pmt.RemainingAmount),
			Status:          pmt.Status,
			PaymentMethod:   pmt.PaymentMethod,
			TransactionID:   pmt.TransactionID,
			PaymentDate:     pmt.PaymentDate,
		},
	}
}

func (svc *Service) sendReceipt(stud student.Student, struc Structure, pmt Payment) {
	if svc.mailSvc == nil || stud.Email == "" || pmt.PaidAmount <= 0 {
		return
	}
	svc.mailSvc.SendMessages(svc.receiptMessage(stud, struc, pmt))
}
