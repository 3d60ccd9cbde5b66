// Package export renders collections into downloadable files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/spec-kit/backoffice/internal/domain"
)

// PaymentHeader is the column layout of the payments download.
var PaymentHeader = []string{"거래ID", "사용자", "금액", "결제방법", "상태", "결제일시", "설명"}

// PaymentSheet names the worksheet in the XLSX download.
const PaymentSheet = "결제내역"

const utf8BOM = "\ufeff"

// KST is the default zone for rendered timestamps.
var KST = time.FixedZone("KST", 9*60*60)

var paymentMethodLabels = map[domain.PaymentMethod]string{
	domain.PaymentMethodCard:         "카드",
	domain.PaymentMethodBankTransfer: "계좌이체",
	domain.PaymentMethodVirtual:      "가상계좌",
	domain.PaymentMethodMobile:       "휴대폰",
	domain.PaymentMethodKakaoPay:     "카카오페이",
	domain.PaymentMethodNaverPay:     "네이버페이",
}

var paymentStatusLabels = map[domain.PaymentStatus]string{
	domain.PaymentStatusCompleted: "완료",
	domain.PaymentStatusPending:   "대기",
	domain.PaymentStatusFailed:    "실패",
	domain.PaymentStatusRefunded:  "환불",
}

// Options controls rendering.
type Options struct {
	// Location for 결제일시; defaults to KST.
	Location *time.Location
	// BOM prefixes CSV output with a UTF-8 byte order mark.
	BOM bool
}

func (o Options) location() *time.Location {
	if o.Location == nil {
		return KST
	}
	return o.Location
}

// MethodLabel returns the display label for a payment method.
func MethodLabel(m domain.PaymentMethod) string {
	if label, ok := paymentMethodLabels[m]; ok {
		return label
	}
	return string(m)
}

// StatusLabel returns the display label for a payment status.
func StatusLabel(s domain.PaymentStatus) string {
	if label, ok := paymentStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// FormatDateTime renders t the way a ko-KR browser locale string does,
// e.g. "2024. 3. 1. 오후 3:04:05".
func FormatDateTime(t time.Time, loc *time.Location) string {
	t = t.In(loc)
	period := "오전"
	if t.Hour() >= 12 {
		period = "오후"
	}
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d. %d. %d. %s %d:%02d:%02d",
		t.Year(), int(t.Month()), t.Day(), period, hour, t.Minute(), t.Second())
}

// PaymentRow converts one payment into its export columns.
func PaymentRow(p domain.Payment, loc *time.Location) []string {
	txID := p.TransactionID
	if txID == "" {
		txID = p.ID
	}
	return []string{
		txID,
		p.UserName,
		strconv.FormatInt(p.Amount, 10),
		MethodLabel(p.Method),
		StatusLabel(p.Status),
		FormatDateTime(p.CreatedAt, loc),
		p.Description,
	}
}

// WritePaymentsCSV writes the header followed by one line per payment.
func WritePaymentsCSV(w io.Writer, items []domain.Payment, opts Options) error {
	if opts.BOM {
		if _, err := io.WriteString(w, utf8BOM); err != nil {
			return err
		}
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(PaymentHeader); err != nil {
		return err
	}
	loc := opts.location()
	for _, p := range items {
		if err := cw.Write(PaymentRow(p, loc)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePaymentsXLSX writes the same columns as a single-sheet workbook.
// Amounts are stored as numbers so spreadsheets can sum them.
func WritePaymentsXLSX(w io.Writer, items []domain.Payment, opts Options) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := f.SetSheetName("Sheet1", PaymentSheet); err != nil {
		return err
	}

	header := make([]interface{}, len(PaymentHeader))
	for i, h := range PaymentHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(PaymentSheet, "A1", &header); err != nil {
		return err
	}

	loc := opts.location()
	for i, p := range items {
		cols := PaymentRow(p, loc)
		row := []interface{}{cols[0], cols[1], p.Amount, cols[3], cols[4], cols[5], cols[6]}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(PaymentSheet, cell, &row); err != nil {
			return err
		}
	}
	return f.Write(w)
}
