package payment

import (
	"errors"

	"github.com/Aamirnihanms/RestuarentFoodOrder/internal/utils"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var ErrPaymentFailed = errors.New("payment processing failed")

type (
	// PaymentService issues a hosted payment page for online orders. The order
	// workflow treats it as best-effort: a gateway failure never voids an order.
	PaymentService interface {
		CreateInvoice(orderID string, amount int64, email string) (string, error)
	}

	paymentService struct {
		client snap.Client
	}
)

func NewPaymentService() PaymentService {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(utils.GetConfig("SERVER_KEY"), env)

	return &paymentService{client: client}
}

func (s *paymentService) CreateInvoice(orderID string, amount int64, email string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			Email: email,
		},
	}

	resp, err := s.client.CreateTransaction(req)
	if err != nil {
		return "", ErrPaymentFailed
	}
	return resp.RedirectURL, nil
}
