package views

import (
	"fmt"
	"io"
	"strings"

	ledgererrors "bank-ledger/internal/errors"
	"bank-ledger/internal/models"

	"github.com/fatih/color"
)

const ruleWidth = 56

// Console renders ledger data as plain text. It is the only place in the
// module that writes to an output stream.
type Console struct {
	out     io.Writer
	heading *color.Color
	muted   *color.Color
	success *color.Color
	failure *color.Color
}

// NewConsole creates a console writing to out. Colors are emitted only when
// colorize is true.
func NewConsole(out io.Writer, colorize bool) *Console {
	c := &Console{
		out:     out,
		heading: color.New(color.FgCyan, color.Bold),
		muted:   color.New(color.FgHiBlack),
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed, color.Bold),
	}
	if !colorize {
		for _, style := range []*color.Color{c.heading, c.muted, c.success, c.failure} {
			style.DisableColor()
		}
	}
	return c
}

// Statement prints the statement header, one line per transaction with its
// running balance, and the summary totals.
func (c *Console) Statement(stmt *models.AccountStatement) {
	c.rule("=")
	c.heading.Fprintln(c.out, center("ACCOUNT STATEMENT", ruleWidth))
	c.rule("=")
	fmt.Fprintf(c.out, "Account: %s (%s)\n", stmt.AccountNumber, stmt.AccountType)
	fmt.Fprintf(c.out, "Holder:  %s\n", stmt.HolderName)
	fmt.Fprintf(c.out, "%-38s %17s\n", "Opening balance:", money(stmt.OpeningBalance.StringFixed(2)))
	c.rule("-")

	if len(stmt.Transactions) == 0 {
		c.muted.Fprintln(c.out, "No transactions")
	}
	for _, line := range stmt.Transactions {
		fmt.Fprintf(c.out, "%s  %-22s %12s %14s\n",
			line.Date.Format("2006-01-02"),
			truncate(line.Description, 22),
			line.Amount.StringFixed(2),
			line.RunningBalance.StringFixed(2))
	}

	c.rule("-")
	fmt.Fprintf(c.out, "%-38s %17s\n", "Credits ("+fmt.Sprint(stmt.Summary.CreditCount)+"):", money(stmt.Summary.TotalCredits.StringFixed(2)))
	fmt.Fprintf(c.out, "%-38s %17s\n", "Debits ("+fmt.Sprint(stmt.Summary.DebitCount)+"):", money(stmt.Summary.TotalDebits.StringFixed(2)))
	if stmt.Summary.TotalFees.IsPositive() {
		fmt.Fprintf(c.out, "%-38s %17s\n", "Fees:", money(stmt.Summary.TotalFees.StringFixed(2)))
	}
	c.rule("=")
	fmt.Fprintf(c.out, "%-38s %17s\n", "Current balance:", money(stmt.ClosingBalance.StringFixed(2)))
	c.rule("=")
	fmt.Fprintln(c.out)
}

// AccountList prints a customer's accounts, numbered from 1
func (c *Console) AccountList(holderName string, accounts []models.Account) {
	c.heading.Fprintf(c.out, "\nAccounts of %s:\n", holderName)
	if len(accounts) == 0 {
		c.muted.Fprintln(c.out, "No accounts registered")
		return
	}
	for i, a := range accounts {
		fmt.Fprintf(c.out, "%d. %-8s %s | Balance: %s\n", i+1, a.Type(), a.Number(), money(a.Balance().StringFixed(2)))
	}
}

// BranchList prints every branch of a bank with its address and phone
func (c *Console) BranchList(bankName string, branches []*models.Branch) {
	c.heading.Fprintf(c.out, "\nBranches of %s:\n", bankName)
	if len(branches) == 0 {
		c.muted.Fprintln(c.out, "No branches registered")
		return
	}
	for _, b := range branches {
		fmt.Fprintf(c.out, "- %s | No. %s | %s | %s\n", b.Name(), b.Number(), b.Address(), b.Phone())
	}
}

// Success prints a confirmation line
func (c *Console) Success(format string, args ...any) {
	c.success.Fprintf(c.out, format+"\n", args...)
}

// Error prints the error code, message and details. Errors without a code
// are shown as internal errors.
func (c *Console) Error(err error) {
	resp := ledgererrors.FromError(err, "")
	c.failure.Fprintf(c.out, "Error [%s]: %s\n", resp.Error.Code, resp.Error.Message)
	for _, detail := range resp.Error.Details {
		fmt.Fprintf(c.out, "  %s\n", detail)
	}
}

func (c *Console) rule(ch string) {
	fmt.Fprintln(c.out, strings.Repeat(ch, ruleWidth))
}

func money(amount string) string {
	return "R$ " + amount
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
