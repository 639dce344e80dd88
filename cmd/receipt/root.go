package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"goflare.io/receipt/config"
	"goflare.io/receipt/models"
	"goflare.io/receipt/models/enum"
)

type app struct {
	configPath string
}

func newRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "receipt",
		Short:        "Email receipts for paid Stripe invoices",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", string(config.DefaultPath), "path to the YAML config file")

	cmd.AddCommand(addSendCommand(a))
	cmd.AddCommand(addPreviewCommand(a))
	cmd.AddCommand(addServeCommand(a))

	return cmd
}

func (a *app) path() config.Path {
	return config.Path(a.configPath)
}

// requestFlags holds the per-invoice overrides shared by send and preview.
type requestFlags struct {
	invoiceID      string
	subject        string
	businessName   string
	businessEmail  string
	from           string
	recipientField string
	noInvoicePDF   bool
	noReceiptPDF   bool
}

func (f *requestFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.invoiceID, "invoice", "", "Stripe invoice id")
	cmd.Flags().StringVar(&f.subject, "subject", "", "email subject")
	cmd.Flags().StringVar(&f.businessName, "business-name", "", "business name shown on the receipt")
	cmd.Flags().StringVar(&f.businessEmail, "business-email", "", "contact address shown on the receipt")
	cmd.Flags().StringVar(&f.from, "from", "", "sender address")
	cmd.Flags().StringVar(&f.recipientField, "recipient-field", "", "customer field used as recipient (name or email)")
	cmd.Flags().BoolVar(&f.noInvoicePDF, "no-invoice-pdf", false, "do not attach the invoice PDF")
	cmd.Flags().BoolVar(&f.noReceiptPDF, "no-receipt-pdf", false, "do not attach the receipt PDF")
}

// invoice reads the invoice id from --invoice or the first argument.
func (f *requestFlags) invoice(args []string) (string, error) {
	if f.invoiceID != "" {
		return f.invoiceID, nil
	}
	if len(args) > 0 {
		return args[0], nil
	}
	return "", errors.New("an invoice id is required, pass --invoice or an argument")
}

// apply overwrites the configured defaults of req with every flag that was set.
func (f *requestFlags) apply(cmd *cobra.Command, req *models.SendRequest) error {
	flags := cmd.Flags()

	if flags.Changed("subject") {
		req.Subject = f.subject
	}
	if flags.Changed("business-name") {
		req.Business.Name = f.businessName
	}
	if flags.Changed("business-email") {
		req.Business.Email = f.businessEmail
	}
	if flags.Changed("from") {
		req.From = f.from
	}
	if flags.Changed("recipient-field") {
		field := enum.RecipientField(f.recipientField)
		if !field.Valid() {
			return errors.Newf("invalid recipient field %q", f.recipientField)
		}
		req.RecipientField = field
	}
	if f.noInvoicePDF {
		req.AttachInvoicePDF = false
	}
	if f.noReceiptPDF {
		req.AttachReceiptPDF = false
	}
	return nil
}
