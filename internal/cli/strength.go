package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/passforge/passforge-go/internal/password"
	"github.com/passforge/passforge-go/internal/service"
)

type strengthOptions struct {
	jsonOutput bool
}

func newStrengthCommand(svc *service.GeneratorService) *cobra.Command {
	o := &strengthOptions{}

	cmd := &cobra.Command{
		Use:   "strength [password]",
		Short: "Estimate the strength of a password",
		Long: `Estimate the strength of a password without generating one.

With no argument the password is read from standard input: interactively it
is prompted for without echo, otherwise the first line of piped input is
used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args, svc)
		},
	}

	cmd.Flags().BoolVar(&o.jsonOutput, "json", false, "write the report as JSON")

	return cmd
}

func (o *strengthOptions) run(cmd *cobra.Command, args []string, svc *service.GeneratorService) error {
	var pw string
	if len(args) == 1 {
		pw = args[0]
	} else {
		var err error
		pw, err = readPassword(cmd)
		if err != nil {
			return err
		}
	}

	report := svc.EstimateStrength(pw)

	if o.jsonOutput {
		return encodeJSON(cmd, report)
	}

	printStrengthReport(cmd.OutOrStdout(), report)
	return nil
}

// readPassword reads the password to assess from the command's input,
// without echoing it back when that input is a terminal.
func readPassword(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// printStrengthReport writes the full text report.
func printStrengthReport(w io.Writer, report password.StrengthReport) {
	label := strengthColor(report.Strength).Sprint(report.Strength)
	fmt.Fprintf(w, "Password Strength: %s (%d/100)\n", label, report.Score)
	fmt.Fprintf(w, "Length: %d characters\n", report.Length)
	fmt.Fprintf(w, "Entropy: %.1f bits\n", report.EntropyBits)

	names := presentClasses(report)
	if len(names) == 0 {
		fmt.Fprintln(w, "Classes: none")
		return
	}
	fmt.Fprintf(w, "Classes: %s\n", strings.Join(names, ", "))
}

// strengthSummary renders the one-line strength note shown under a generated
// password.
func strengthSummary(report password.StrengthReport) string {
	label := strengthColor(report.Strength).Sprint(report.Strength)
	return fmt.Sprintf("Strength: %s (%d/100)", label, report.Score)
}

// strengthColor picks the rendering color for a strength label.
func strengthColor(label string) *color.Color {
	switch label {
	case "Very Strong":
		return color.New(color.FgGreen, color.Bold)
	case "Strong":
		return color.New(color.FgGreen)
	case "Moderate":
		return color.New(color.FgYellow)
	case "Weak":
		return color.New(color.FgRed)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

// presentClasses lists the names of the classes found in the password, in
// pool order.
func presentClasses(report password.StrengthReport) []string {
	present := map[password.CharacterClass]bool{
		password.Lowercase: report.HasLowercase,
		password.Uppercase: report.HasUppercase,
		password.Digit:     report.HasDigits,
		password.Symbol:    report.HasSymbols,
	}

	var names []string
	for _, class := range password.Classes() {
		if present[class] {
			names = append(names, class.String())
		}
	}
	return names
}
