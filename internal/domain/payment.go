package domain

// PaymentStatus enumerates settlement states.
type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// PaymentMethod enumerates how the customer paid.
type PaymentMethod string

const (
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodVirtual      PaymentMethod = "virtual_account"
	PaymentMethodMobile       PaymentMethod = "mobile"
	PaymentMethodKakaoPay     PaymentMethod = "kakao_pay"
	PaymentMethodNaverPay     PaymentMethod = "naver_pay"
)

// Payment is a transaction row on the payments page. Amount is in whole won.
type Payment struct {
	Meta
	TransactionID string        `json:"transaction_id" toml:"transaction_id"`
	UserID        string        `json:"user_id" toml:"user_id"`
	UserName      string        `json:"user_name" toml:"user_name" validate:"required"`
	Amount        int64         `json:"amount" toml:"amount" validate:"gte=0"`
	Method        PaymentMethod `json:"method" toml:"method" validate:"omitempty,oneof=card bank_transfer virtual_account mobile kakao_pay naver_pay"`
	Status        PaymentStatus `json:"status" toml:"status" validate:"omitempty,oneof=completed pending failed refunded"`
	Description   string        `json:"description" toml:"description"`
	RefundReason  string        `json:"refund_reason,omitempty" toml:"refund_reason"`
}

// PaymentPatch is a partial update for a payment.
type PaymentPatch struct {
	UserName     *string        `json:"user_name"`
	Amount       *int64         `json:"amount"`
	Method       *PaymentMethod `json:"method"`
	Status       *PaymentStatus `json:"status"`
	Description  *string        `json:"description"`
	RefundReason *string        `json:"refund_reason"`
}

// Apply merges the patch into p.
func (pp PaymentPatch) Apply(p *Payment) {
	if pp.UserName != nil {
		p.UserName = *pp.UserName
	}
	if pp.Amount != nil {
		p.Amount = *pp.Amount
	}
	if pp.Method != nil {
		p.Method = *pp.Method
	}
	if pp.Status != nil {
		p.Status = *pp.Status
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
	if pp.RefundReason != nil {
		p.RefundReason = *pp.RefundReason
	}
}
