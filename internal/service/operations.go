package service

import (
	"context"
	"strings"

	"github.com/spec-kit/backoffice/internal/domain"
	"github.com/spec-kit/backoffice/internal/events"
	apperrors "github.com/spec-kit/backoffice/pkg/util/errorutil"
)

// Payments adds settlement operations to the payments collection.
type Payments struct {
	*paymentStore
}

// Refund marks a payment refunded. Refunding twice is a conflict.
func (p *Payments) Refund(ctx context.Context, id, reason string) (domain.Payment, error) {
	return p.modify(ctx, "refund", id, func(item *domain.Payment) error {
		if item.Status == domain.PaymentStatusRefunded {
			return apperrors.NewConflict("payment already refunded", map[string]any{"id": id})
		}
		item.Status = domain.PaymentStatusRefunded
		if reason = strings.TrimSpace(reason); reason != "" {
			item.RefundReason = reason
		}
		return nil
	}, func(before, after domain.Payment) []events.Event {
		return []events.Event{{
			Type: events.EventPaymentRefunded,
			Payload: events.PaymentRefundedPayload{
				Amount:    after.Amount,
				OldStatus: string(before.Status),
				Reason:    after.RefundReason,
			},
		}}
	})
}

// Inquiries adds support workflow operations to the inquiries collection.
type Inquiries struct {
	*inquiryStore
	admins *Permissions
}

// Assign hands an inquiry to an operator. A pending inquiry moves to
// in_progress. When the permissions collection is wired the operator must exist.
func (i *Inquiries) Assign(ctx context.Context, id, adminID string) (domain.Inquiry, error) {
	adminID = strings.TrimSpace(adminID)
	if adminID == "" {
		return domain.Inquiry{}, i.fail("assign", id, apperrors.NewValidationError("assignee is required", map[string]any{"assignee_id": "required"}))
	}
	if i.admins != nil {
		if _, err := i.admins.Get(ctx, adminID); err != nil {
			return domain.Inquiry{}, i.fail("assign", id, err)
		}
	}
	return i.modify(ctx, "assign", id, func(item *domain.Inquiry) error {
		item.AssignedTo = adminID
		if item.Status == domain.InquiryStatusPending {
			item.Status = domain.InquiryStatusInProgress
		}
		return nil
	}, func(before, after domain.Inquiry) []events.Event {
		return []events.Event{{
			Type: events.EventInquiryAssigned,
			Payload: events.InquiryAssignedPayload{
				AssigneeID: after.AssignedTo,
				Previous:   before.AssignedTo,
			},
		}}
	})
}

// Answer records the reply and resolves the inquiry.
func (i *Inquiries) Answer(ctx context.Context, id, answer string) (domain.Inquiry, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return domain.Inquiry{}, i.fail("answer", id, apperrors.NewValidationError("answer is required", map[string]any{"answer": "required"}))
	}
	return i.modify(ctx, "answer", id, func(item *domain.Inquiry) error {
		now := i.now()
		item.Answer = answer
		item.AnsweredAt = &now
		item.Status = domain.InquiryStatusResolved
		return nil
	}, func(_, after domain.Inquiry) []events.Event {
		return []events.Event{{Type: events.EventInquiryAnswered, Payload: after}}
	})
}

// Notifications adds delivery operations to the notifications collection.
type Notifications struct {
	*noticeStore
}

// MarkRead flags a notification as read.
func (n *Notifications) MarkRead(ctx context.Context, id string) (domain.Notification, error) {
	return n.modify(ctx, "mark_read", id, func(item *domain.Notification) error {
		item.Read = true
		return nil
	}, func(_, after domain.Notification) []events.Event {
		return []events.Event{{Type: events.EventEntityUpdated, Payload: after}}
	})
}

// Send marks a notification sent and stamps the send time. Sending twice is
// a conflict.
func (n *Notifications) Send(ctx context.Context, id string) (domain.Notification, error) {
	return n.modify(ctx, "send", id, func(item *domain.Notification) error {
		if item.Status == domain.NotificationStatusSent {
			return apperrors.NewConflict("notification already sent", map[string]any{"id": id})
		}
		now := n.now()
		item.Status = domain.NotificationStatusSent
		item.SentAt = &now
		return nil
	}, func(_, after domain.Notification) []events.Event {
		return []events.Event{{Type: events.EventNotificationSent, Payload: after}}
	})
}
