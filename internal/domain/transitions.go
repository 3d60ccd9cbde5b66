package domain

// Transitions lists, per status, the statuses it may move to.
type Transitions map[string][]string

// Allows reports whether current may move to next. Staying put is always allowed.
func (t Transitions) Allows(current, next string) bool {
	if current == next {
		return true
	}
	for _, candidate := range t[current] {
		if candidate == next {
			return true
		}
	}
	return false
}

// PaymentTransitions is the settlement flow enforced in strict mode.
var PaymentTransitions = Transitions{
	string(PaymentStatusPending):   {string(PaymentStatusCompleted), string(PaymentStatusFailed)},
	string(PaymentStatusCompleted): {string(PaymentStatusRefunded)},
	string(PaymentStatusFailed):    {string(PaymentStatusPending)},
	string(PaymentStatusRefunded):  {},
}

// InquiryTransitions is the support flow enforced in strict mode.
var InquiryTransitions = Transitions{
	string(InquiryStatusPending):    {string(InquiryStatusInProgress), string(InquiryStatusResolved), string(InquiryStatusClosed)},
	string(InquiryStatusInProgress): {string(InquiryStatusPending), string(InquiryStatusResolved), string(InquiryStatusClosed)},
	string(InquiryStatusResolved):   {string(InquiryStatusClosed), string(InquiryStatusInProgress)},
	string(InquiryStatusClosed):     {},
}
