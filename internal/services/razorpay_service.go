package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"studio-backend/internal/models"
	"studio-backend/internal/repositories"

	razorpay "github.com/razorpay/razorpay-go"
)

// RazorpayService raises online payment orders against pending income
// instalments and settles them on signature-verified confirmation.
type RazorpayService struct {
	txnRepo    *repositories.OnlineTransactionRepository
	incomeRepo *repositories.IncomeRepository

	keyID         string
	keySecret     string
	webhookSecret string
}

func NewRazorpayService(
	keyID, keySecret, webhookSecret string,
	txnRepo *repositories.OnlineTransactionRepository,
	incomeRepo *repositories.IncomeRepository,
) *RazorpayService {
	return &RazorpayService{
		txnRepo:       txnRepo,
		incomeRepo:    incomeRepo,
		keyID:         keyID,
		keySecret:     keySecret,
		webhookSecret: webhookSecret,
	}
}

func (s *RazorpayService) client() *razorpay.Client {
	if s.keyID == "" || s.keySecret == "" {
		return nil
	}
	return razorpay.NewClient(s.keyID, s.keySecret)
}

// Enabled reports whether credentials are configured. The payment routes
// answer 503 when they are not.
func (s *RazorpayService) Enabled() bool {
	return s.keyID != "" && s.keySecret != ""
}

func (s *RazorpayService) KeyID() string {
	return s.keyID
}

// CreateOrder raises a Razorpay order for a pending income instalment and
// records the transaction. Amounts go out in paise.
func (s *RazorpayService) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.OnlineTransaction, error) {
	client := s.client()
	if client == nil {
		return nil, fmt.Errorf("razorpay client not configured")
	}

	income, err := s.incomeRepo.Get(ctx, req.IncomeID)
	if err != nil {
		return nil, ErrNotFound
	}
	if income.Status != models.IncomeStatusPending {
		return nil, fmt.Errorf("income %d is not pending", income.ID)
	}

	orderData := map[string]interface{}{
		"amount":   int(income.Amount * 100),
		"currency": "INR",
		"receipt":  fmt.Sprintf("rcpt_%d_%d", income.ID, time.Now().Unix()),
		"notes": map[string]interface{}{
			"income_id": income.ID,
			"client_id": income.ClientID,
		},
	}

	order, err := client.Order.Create(orderData, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create razorpay order: %w", err)
	}
	orderID, _ := order["id"].(string)
	if orderID == "" {
		return nil, fmt.Errorf("razorpay order response missing id")
	}

	txn := &models.OnlineTransaction{
		IncomeID:        income.ID,
		ClientID:        income.ClientID,
		RazorpayOrderID: orderID,
		Amount:          income.Amount,
		Status:          models.TxnStatusCreated,
	}
	if err := s.txnRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to store transaction: %w", err)
	}
	return txn, nil
}

// VerifyPayment checks the checkout signature and settles the instalment.
func (s *RazorpayService) VerifyPayment(ctx context.Context, req *models.VerifyPaymentRequest) (*models.OnlineTransaction, error) {
	if !s.verifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		_ = s.txnRepo.MarkFailed(ctx, req.RazorpayOrderID)
		return nil, fmt.Errorf("invalid payment signature")
	}

	txn, err := s.txnRepo.GetByOrderID(ctx, req.RazorpayOrderID)
	if err != nil {
		return nil, ErrNotFound
	}
	if txn.Status == models.TxnStatusPaid {
		return txn, nil
	}

	if err := s.settle(ctx, txn, req.RazorpayPaymentID); err != nil {
		return nil, err
	}
	return s.txnRepo.GetByOrderID(ctx, req.RazorpayOrderID)
}

func (s *RazorpayService) verifySignature(orderID, paymentID, signature string) bool {
	if s.keySecret == "" {
		return false
	}
	h := hmac.New(sha256.New, []byte(s.keySecret))
	h.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifyWebhookSignature checks the webhook HMAC. Verification is skipped
// when no webhook secret is configured.
func (s *RazorpayService) VerifyWebhookSignature(body []byte, signature string) bool {
	if s.webhookSecret == "" {
		return true
	}
	h := hmac.New(sha256.New, []byte(s.webhookSecret))
	h.Write(body)
	expected := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// ProcessWebhook handles payment.captured and payment.failed events; other
// events are logged and ignored.
func (s *RazorpayService) ProcessWebhook(ctx context.Context, event string, payload map[string]interface{}) error {
	entity := paymentEntity(payload)
	orderID, _ := entity["order_id"].(string)
	if orderID == "" {
		return fmt.Errorf("missing order_id in webhook")
	}

	switch event {
	case "payment.captured":
		txn, err := s.txnRepo.GetByOrderID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("transaction not found: %w", err)
		}
		if txn.Status == models.TxnStatusPaid {
			log.Printf("[Razorpay] Payment already processed: %s", orderID)
			return nil
		}
		paymentID, _ := entity["id"].(string)
		return s.settle(ctx, txn, paymentID)
	case "payment.failed":
		return s.txnRepo.MarkFailed(ctx, orderID)
	default:
		log.Printf("[Razorpay] Unhandled webhook event: %s", event)
		return nil
	}
}

// settle marks the transaction paid and flips the underlying income record
// to collected with method online.
func (s *RazorpayService) settle(ctx context.Context, txn *models.OnlineTransaction, paymentID string) error {
	if err := s.txnRepo.MarkPaid(ctx, txn.RazorpayOrderID, paymentID); err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	income, err := s.incomeRepo.Get(ctx, txn.IncomeID)
	if err != nil {
		log.Printf("[Razorpay] Income %d missing for order %s: %v", txn.IncomeID, txn.RazorpayOrderID, err)
		return nil
	}
	method := models.IncomeMethodOnline
	income.Status = models.IncomeStatusPaid
	income.Method = &method
	income.MarkedBy = "razorpay"
	if err := s.incomeRepo.Update(ctx, income); err != nil {
		log.Printf("[Razorpay] Failed to mark income %d paid: %v", income.ID, err)
	}
	return nil
}

// ListTransactions returns every online transaction, newest first.
func (s *RazorpayService) ListTransactions(ctx context.Context) ([]*models.OnlineTransaction, error) {
	return s.txnRepo.List(ctx)
}

// paymentEntity digs the payment entity out of the webhook payload; Razorpay
// nests it as payload.payment.entity.
func paymentEntity(payload map[string]interface{}) map[string]interface{} {
	payment, ok := payload["payment"].(map[string]interface{})
	if !ok {
		payment = payload
	}
	entity, ok := payment["entity"].(map[string]interface{})
	if !ok {
		entity = payment
	}
	return entity
}
