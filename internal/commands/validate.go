package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	ledgererrors "bank-ledger/internal/errors"
	"bank-ledger/internal/validation"
)

type identifierCheck struct {
	use   string
	short string
	kind  ledgererrors.IdentifierKind
	valid func(string) bool
}

var identifierChecks = []identifierCheck{
	{"person-id", "Validate a CPF (with or without punctuation)", ledgererrors.KindPersonID, validation.ValidatePersonID},
	{"company-id", "Validate a CNPJ (with or without punctuation)", ledgererrors.KindCompanyID, validation.ValidateCompanyID},
	{"postal-code", "Validate a CEP", ledgererrors.KindPostalCode, validation.ValidatePostalCode},
	{"phone", "Validate a phone number with area code", ledgererrors.KindPhone, validation.ValidatePhone},
	{"state", "Validate a two-letter state code", ledgererrors.KindStateCode, validation.ValidateStateCode},
	{"license", "Validate a driver's license number", ledgererrors.KindLicenseNumber, validation.ValidateLicenseNumber},
}

func newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check national identifiers and contact data",
	}

	for _, check := range identifierChecks {
		cmd.AddCommand(newIdentifierCommand(check))
	}

	return cmd
}

func newIdentifierCommand(check identifierCheck) *cobra.Command {
	return &cobra.Command{
		Use:   check.use + " <value>",
		Short: check.short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !check.valid(args[0]) {
				return ledgererrors.NewInvalidIdentifier(check.kind, args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %q is valid\n", check.use, args[0])
			return nil
		},
	}
}
