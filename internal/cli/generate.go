package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/passforge/passforge-go/internal/config"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/password"
	"github.com/passforge/passforge-go/internal/service"
)

type generateOptions struct {
	length       int
	count        int
	showStrength bool
	jsonOutput   bool

	// Class toggles registered for flag parsing; only the ones the user set
	// explicitly are forwarded, so the service's defaults stay authoritative.
	lowercase      bool
	uppercase      bool
	digits         bool
	symbols        bool
	excludeSimilar bool
}

func newGenerateCommand(cfg config.Config, svc *service.GeneratorService) *cobra.Command {
	o := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more random passwords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, svc)
		},
	}

	cmd.Flags().IntVarP(&o.length, "length", "l", cfg.DefaultLength, "password length (8-128)")
	cmd.Flags().IntVarP(&o.count, "count", "c", 1, "number of passwords to generate")
	cmd.Flags().BoolVar(&o.lowercase, "lowercase", true, "include lowercase letters")
	cmd.Flags().BoolVar(&o.uppercase, "uppercase", true, "include uppercase letters")
	cmd.Flags().BoolVar(&o.digits, "digits", true, "include digits")
	cmd.Flags().BoolVar(&o.symbols, "symbols", true, "include symbols")
	cmd.Flags().BoolVar(&o.excludeSimilar, "exclude-similar", true, "exclude similar-looking characters (l, o, I, O, 0, 1)")
	cmd.Flags().BoolVarP(&o.showStrength, "strength", "s", false, "print a strength report for each password")
	cmd.Flags().BoolVar(&o.jsonOutput, "json", false, "write output as JSON")

	return cmd
}

func (o *generateOptions) run(cmd *cobra.Command, svc *service.GeneratorService) error {
	// The service treats a zero length as unset; an explicit zero is an
	// out-of-range request rather than a default.
	if cmd.Flags().Changed("length") && o.length == 0 {
		return password.ErrLengthTooShort
	}

	req := model.GenerateRequest{
		Length:         o.length,
		Count:          o.count,
		Lowercase:      changedBool(cmd.Flags(), "lowercase"),
		Uppercase:      changedBool(cmd.Flags(), "uppercase"),
		Digits:         changedBool(cmd.Flags(), "digits"),
		Symbols:        changedBool(cmd.Flags(), "symbols"),
		ExcludeSimilar: changedBool(cmd.Flags(), "exclude-similar"),
	}

	slog.Debug("generating passwords", "length", req.Length, "count", req.Count)

	if o.count == 1 {
		resp, err := svc.Generate(req)
		if err != nil {
			return err
		}
		o.attachStrength(&resp, svc)
		return o.printSingle(cmd, resp)
	}

	responses, err := svc.GenerateBatch(req)
	if err != nil {
		return err
	}
	for i := range responses {
		o.attachStrength(&responses[i], svc)
	}
	return o.printBatch(cmd, responses)
}

func (o *generateOptions) attachStrength(resp *model.GenerateResponse, svc *service.GeneratorService) {
	if !o.showStrength {
		return
	}
	report := svc.EstimateStrength(resp.Password)
	resp.Strength = &report
}

func (o *generateOptions) printSingle(cmd *cobra.Command, resp model.GenerateResponse) error {
	if o.jsonOutput {
		return encodeJSON(cmd, resp)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, resp.Password)
	if resp.Strength != nil {
		fmt.Fprintln(out, strengthSummary(*resp.Strength))
	}
	return nil
}

func (o *generateOptions) printBatch(cmd *cobra.Command, responses []model.GenerateResponse) error {
	if o.jsonOutput {
		return encodeJSON(cmd, responses)
	}

	out := cmd.OutOrStdout()
	for i, resp := range responses {
		fmt.Fprintf(out, "%d. %s\n", i+1, resp.Password)
		if resp.Strength != nil {
			fmt.Fprintf(out, "   %s\n", strengthSummary(*resp.Strength))
		}
	}
	return nil
}

// changedBool returns a pointer to the flag's value when the user set it
// explicitly, nil otherwise.
func changedBool(flags *pflag.FlagSet, name string) *bool {
	if !flags.Changed(name) {
		return nil
	}
	v, _ := flags.GetBool(name)
	return &v
}
