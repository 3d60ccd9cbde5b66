package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/backoffice/internal/domain"
)

func payment(id string, status domain.PaymentStatus, amount int64) domain.Payment {
	p := domain.Payment{UserName: "user-" + id, Status: status, Amount: amount}
	p.ID = id
	return p
}

func TestPaymentsTwoRowScenario(t *testing.T) {
	items := []domain.Payment{
		payment("1", domain.PaymentStatusPending, 50000),
		payment("2", domain.PaymentStatusCompleted, 100000),
	}
	got := Payments(items)
	assert.Equal(t, int64(150000), got.TotalAmount)
	assert.Equal(t, int64(100000), got.CompletedAmount)
	assert.Equal(t, 1, got.Pending)
	assert.Equal(t, 1, got.Completed)
	assert.Equal(t, 0, got.Refunded)
	assert.Equal(t, 2, got.Total)
}

func TestCountByTotalsEqualLength(t *testing.T) {
	items := []domain.Payment{
		payment("1", domain.PaymentStatusPending, 1),
		payment("2", "", 2),
		payment("3", domain.PaymentStatusFailed, 3),
		payment("4", "", 4),
	}
	counts := CountBy(items, func(p *domain.Payment) string { return string(p.Status) })
	assert.Equal(t, len(items), counts.Total())
	assert.Equal(t, 2, counts.Get(Unset))
	assert.Equal(t, []string{"failed", "pending", Unset}, counts.Buckets())
}

func TestEmptyStoreYieldsZeroes(t *testing.T) {
	assert.Equal(t, 0, Payments(nil).Total)
	assert.Equal(t, int64(0), Payments(nil).TotalAmount)
	assert.Equal(t, 0, Payments(nil).ByStatus.Total())
	assert.Equal(t, 0, Users(nil).Active)
	assert.Equal(t, 0, Employees(nil).Male)
	assert.Equal(t, int64(0), Contents(nil).TotalViews)
	assert.Equal(t, 0, Inquiries(nil).Unassigned)
	assert.Equal(t, 0, Notifications(nil).Unread)
	assert.Equal(t, 0, Admins(nil).Total)
	assert.Equal(t, 0, Settings(nil).ByCategory.Total())
}

func TestAggregationIsIdempotent(t *testing.T) {
	items := []domain.Inquiry{
		{Title: "a", Status: domain.InquiryStatusPending, Priority: domain.InquiryPriorityHigh},
		{Title: "b", Status: domain.InquiryStatusResolved, AssignedTo: "admin-1"},
	}
	assert.Equal(t, Inquiries(items), Inquiries(items))
}

func TestInquiriesUnsetBucketsAndAssignment(t *testing.T) {
	items := []domain.Inquiry{
		{Title: "a", Status: domain.InquiryStatusPending, Priority: domain.InquiryPriorityHigh},
		{Title: "b", Status: domain.InquiryStatusInProgress, AssignedTo: "admin-1"},
		{Title: "c", Status: domain.InquiryStatusResolved, AssignedTo: "admin-2", Category: "결제"},
	}
	got := Inquiries(items)
	assert.Equal(t, 1, got.Pending)
	assert.Equal(t, 1, got.InProgress)
	assert.Equal(t, 1, got.Resolved)
	assert.Equal(t, 1, got.Unassigned)
	assert.Equal(t, 2, got.ByPriority.Get(Unset))
	assert.Equal(t, 2, got.ByCategory.Get(Unset))
	assert.Equal(t, 1, got.ByCategory.Get("결제"))
}

func TestEmployeesByGenderAndDepartment(t *testing.T) {
	items := []domain.Employee{
		{Name: "a", Gender: domain.GenderMale, Department: "개발", Status: domain.EmployeeStatusActive},
		{Name: "b", Gender: domain.GenderFemale, Department: "개발", Status: domain.EmployeeStatusOnLeave},
		{Name: "c", Department: "영업", Status: domain.EmployeeStatusActive},
	}
	got := Employees(items)
	assert.Equal(t, 1, got.Male)
	assert.Equal(t, 1, got.Female)
	assert.Equal(t, 1, got.ByGender.Get(Unset))
	assert.Equal(t, 2, got.ByDepartment.Get("개발"))
	assert.Equal(t, 2, got.Active)
}

func TestContentsAndNotifications(t *testing.T) {
	contents := []domain.Content{
		{Title: "a", Status: domain.ContentStatusPublished, Views: 10, Type: domain.ContentTypeNotice},
		{Title: "b", Status: domain.ContentStatusDraft, Views: 5},
	}
	cs := Contents(contents)
	assert.Equal(t, int64(15), cs.TotalViews)
	assert.Equal(t, 1, cs.Published)
	assert.Equal(t, 1, cs.Draft)
	assert.Equal(t, 1, cs.ByType.Get(Unset))

	notes := []domain.Notification{
		{Title: "a", Status: domain.NotificationStatusSent, Read: true},
		{Title: "b", Status: domain.NotificationStatusSent},
		{Title: "c", Status: domain.NotificationStatusDraft},
	}
	ns := Notifications(notes)
	assert.Equal(t, 2, ns.Sent)
	assert.Equal(t, 2, ns.Unread)
}

func TestCountIfAndSumIf(t *testing.T) {
	items := []int{1, 2, 3, 4}
	even := func(n *int) bool { return *n%2 == 0 }
	assert.Equal(t, 2, CountIf(items, even))
	assert.Equal(t, int64(6), SumIf(items, even, func(n *int) int64 { return int64(*n) }))
	assert.Equal(t, int64(10), SumBy(items, func(n *int) int64 { return int64(*n) }))
}
