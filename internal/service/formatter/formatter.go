package formatter

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/angeliquesouvant/bank-account/internal/model"
	"github.com/angeliquesouvant/bank-account/internal/model/operation"
)

const (
	dateLayout        = "2006-01-02 15:04:05"
	maxFractionDigits = 2
	// int64 holds every 18-digit integer.
	maxGroupedDigits = 18
)

// Template is one statement line layout. Line takes, in order: the
// operation type label, the operation label, the date, the amount and the
// balance after the operation.
type Template struct {
	Locale          language.Tag
	Line            string
	DepositLabel    string
	WithdrawalLabel string
}

var TemplateFR = Template{
	Locale: language.French,
	Line: "Type d'opération : %s, " +
		"libelle: %s, " +
		"date : %s, " +
		"montant de l'opération : %s euros, " +
		"solde après opération : %s euros",
	DepositLabel:    "Dépot",
	WithdrawalLabel: "Retrait",
}

var TemplateEN = Template{
	Locale: language.English,
	Line: "Operation type: %s, " +
		"label: %s, " +
		"date: %s, " +
		"amount: %s euros, " +
		"balance after operation: %s euros",
	DepositLabel:    "Deposit",
	WithdrawalLabel: "Withdrawal",
}

// TemplateFor returns the template of a locale name, French by default.
func TemplateFor(locale string) Template {
	if locale == model.LocaleEN {
		return TemplateEN
	}
	return TemplateFR
}

type TextFormatter struct {
	printer   *message.Printer
	separator string
	template  Template
}

func New(template Template) *TextFormatter {
	p := message.NewPrinter(template.Locale)
	return &TextFormatter{
		printer:   p,
		separator: decimalSeparator(p),
		template:  template,
	}
}

func (f *TextFormatter) Format(ops []operation.Operation) []string {
	lines := make([]string, 0, len(ops))
	for _, op := range ops {
		lines = append(lines, fmt.Sprintf(f.template.Line,
			f.typeLabel(op.Type),
			op.Label,
			op.Timestamp.Format(dateLayout),
			f.formatDecimal(op.Amount),
			f.formatDecimal(op.BalanceAfter),
		))
	}
	return lines
}

func (f *TextFormatter) typeLabel(tp operation.Type) string {
	switch tp {
	case operation.TypeDeposit:
		return f.template.DepositLabel
	case operation.TypeWithdrawal:
		return f.template.WithdrawalLabel
	default:
		panic(fmt.Sprintf("unknown operation type %q", tp))
	}
}

// formatDecimal keeps at most two fraction digits, rounding half to even.
// Only the integer part goes through x/text for grouping, so no digit is
// lost to float conversion.
func (f *TextFormatter) formatDecimal(d decimal.Decimal) string {
	rounded := d.RoundBank(maxFractionDigits)
	whole, frac, _ := strings.Cut(rounded.Abs().String(), ".")

	var b strings.Builder
	if rounded.IsNegative() {
		b.WriteByte('-')
	}
	if len(whole) <= maxGroupedDigits {
		b.WriteString(f.printer.Sprintf("%v", number.Decimal(rounded.Abs().IntPart())))
	} else {
		b.WriteString(whole)
	}
	if frac != "" {
		b.WriteString(f.separator)
		b.WriteString(frac)
	}
	return b.String()
}

// decimalSeparator reads the locale's separator off a rendered 1.5.
func decimalSeparator(p *message.Printer) string {
	rendered := p.Sprintf("%v", number.Decimal(1.5))
	return strings.TrimSuffix(strings.TrimPrefix(rendered, "1"), "5")
}
