package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/mdscan/internal/logging"
	"github.com/yaklabco/mdscan/internal/ui/pretty"
	"github.com/yaklabco/mdscan/pkg/config"
	"github.com/yaklabco/mdscan/pkg/construct"
	"github.com/yaklabco/mdscan/pkg/token"
	"github.com/yaklabco/mdscan/pkg/tokenizer"
)

// ErrNoMatch is returned when the construct does not match the input.
// It signals the exit code; it is not logged as a failure.
var ErrNoMatch = errors.New("construct did not match")

type scanFlags struct {
	construct string
	format    string
}

func newScanCommand() *cobra.Command {
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "scan [source]",
		Short: "Scan one construct and print its event stream",
		Long:  scanLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.construct, "construct", "",
		"construct to scan with (see 'mdscan constructs')")
	cmd.Flags().StringVar(&flags.format, "format", "",
		"output format: pretty, yaml")

	return cmd
}

const scanLongDescription = `Scan one construct at the start of the input and print the event
stream it produces. The input comes from the argument, or from stdin
when no argument is given.

The exit code reports the outcome: 0 when the construct matched, 1
when it did not.

Examples:
  mdscan scan '"a title"'                 # Scan a double-quoted title
  mdscan scan '(multi' < file.md          # Scan stdin
  mdscan scan --format yaml "'t'"         # Emit events as YAML
  mdscan scan --construct resource-title '(a)'`

func runScan(cmd *cobra.Command, args []string, flags *scanFlags) error {
	logger := logging.FromContext(cmd.Context())

	// Load configuration; explicit flags win over the config file.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}
	cfg, err := config.LoadOrDefault(configPath, ".")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if flags.construct != "" {
		cfg.Construct = flags.construct
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if cmd.Flags().Changed("color") {
		color, err := cmd.Flags().GetString("color")
		if err != nil {
			return fmt.Errorf("get color flag: %w", err)
		}
		cfg.Color = config.ColorMode(color)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	source, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	c, ok := construct.Default().Get(cfg.Construct)
	if !ok {
		return fmt.Errorf("unknown construct %q", cfg.Construct)
	}

	tok := tokenizer.New(source)
	matched := tok.Run(c.Start())

	logger.Debug("scan finished",
		logging.FieldConstruct, cfg.Construct,
		logging.FieldEvents, len(tok.Events),
		logging.FieldConsumed, tok.Point().Offset,
	)

	out := cmd.OutOrStdout()
	switch cfg.Format {
	case config.FormatYAML:
		err = writeYAML(out, tok, matched, source)
	default:
		err = writePretty(out, tok, matched, source, cfg.Color)
	}
	if err != nil {
		return err
	}

	if !matched {
		return ErrNoMatch
	}
	return nil
}

// readSource takes the input from the argument, or stdin without one.
func readSource(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 1 {
		return []byte(args[0]), nil
	}

	source, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return source, nil
}

func writePretty(out io.Writer, tok *tokenizer.Tokenizer, matched bool, source []byte, color config.ColorMode) error {
	styles := pretty.NewStyles(pretty.IsColorEnabled(string(color), out))

	if _, err := fmt.Fprintln(out, styles.FormatOutcome(matched)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if _, err := io.WriteString(out, styles.FormatEvents(tok.Events, source)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// yamlEvent is the YAML shape of one event-log marker.
type yamlEvent struct {
	Index    int    `yaml:"index"`
	Kind     string `yaml:"kind"`
	Token    string `yaml:"token"`
	Line     int    `yaml:"line"`
	Column   int    `yaml:"column"`
	Offset   int    `yaml:"offset"`
	Content  string `yaml:"content,omitempty"`
	Previous *int   `yaml:"previous,omitempty"`
	Next     *int   `yaml:"next,omitempty"`
	Text     string `yaml:"text,omitempty"`
}

// yamlResult is the YAML shape of one scan.
type yamlResult struct {
	Matched  bool        `yaml:"matched"`
	Consumed int         `yaml:"consumed"`
	Events   []yamlEvent `yaml:"events"`
}

func writeYAML(out io.Writer, tok *tokenizer.Tokenizer, matched bool, source []byte) error {
	result := yamlResult{
		Matched:  matched,
		Consumed: tok.Point().Offset,
		Events:   make([]yamlEvent, 0, len(tok.Events)),
	}

	for i, ev := range tok.Events {
		entry := yamlEvent{
			Index:  i,
			Kind:   ev.Kind.String(),
			Token:  ev.Token.String(),
			Line:   ev.Point.Line,
			Column: ev.Point.Column,
			Offset: ev.Point.Offset,
		}
		if ev.Content != token.ContentNone {
			entry.Content = ev.Content.String()
		}
		if ev.Previous != token.NoLink {
			prev := ev.Previous
			entry.Previous = &prev
		}
		if ev.Next != token.NoLink {
			next := ev.Next
			entry.Next = &next
		}
		if ev.Kind == token.Enter {
			entry.Text = string(token.SpanText(tok.Events, i, source))
		}
		result.Events = append(result.Events, entry)
	}

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("encode events: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("close encoder: %w", err)
	}
	return nil
}
