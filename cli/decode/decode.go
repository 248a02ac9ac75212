package decode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	json "github.com/nspcc-dev/go-ordered-json"
	"github.com/nspcc-dev/txdump/cli/input"
	"github.com/nspcc-dev/txdump/cli/options"
	"github.com/nspcc-dev/txdump/pkg/config"
	"github.com/nspcc-dev/txdump/pkg/payload"
	"github.com/nspcc-dev/txdump/pkg/util"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// NoPromptKey is the cli.App metadata key that disables interactive payload
// prompt when set to true.
const NoPromptKey = "noPrompt"

var (
	errMissingPayload = errors.New("missing payload")
	errConflictingIn  = errors.New("payload argument conflicts with --in flag")
	errTooManyArgs    = errors.New("too many arguments, a single payload is expected")
)

// NewCommands returns payload decoding commands for txdump CLI.
func NewCommands() []cli.Command {
	decodeFlags := append([]cli.Flag{
		cli.StringFlag{
			Name:  "in, i",
			Usage: "Input file containing hex-encoded payload",
		},
		cli.BoolFlag{
			Name:  "json",
			Usage: "Print fields as JSON (overrides configured output format)",
		},
	}, options.Common...)
	typesFlags := append([]cli.Flag{
		cli.BoolFlag{
			Name:  "yaml",
			Usage: "Print schemas in the configuration file format",
		},
	}, options.Common...)
	return []cli.Command{
		{
			Name:      "decode",
			Usage:     "Decode hex-encoded transaction payload into fields",
			UsageText: "decode [--in <file>] [--json] [--config-file <file>] [<hex>]",
			Description: `Splits the payload into header fields (size, signature, public key,
   version, type, fee and deadline) and type-specific body fields. Values are
   printed as they are in the payload (raw hex). If neither <hex> nor --in is
   given, the payload is read from the terminal. Surrounding whitespace and 0x
   prefix are ignored, hex is case-insensitive.
`,
			Action: handleDecode,
			Flags:  decodeFlags,
		},
		{
			Name:      "types",
			Usage:     "List supported transaction types and their body layouts",
			UsageText: "types [--yaml] [--config-file <file>]",
			Action:    handleTypes,
			Flags:     typesFlags,
		},
		{
			Name:      "swap",
			Usage:     "Reverse byte order of hex string (little-endian to big-endian and back)",
			UsageText: "swap <hex>",
			Action:    handleSwap,
		},
	}
}

func handleDecode(ctx *cli.Context) error {
	cfg, log, cerr := options.GetEnvironment(ctx)
	if cerr != nil {
		return cerr
	}
	defer func() { _ = log.Sync() }()

	tbl, err := cfg.Table()
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	p, err := readPayload(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	log.Debug("decoding payload", zap.Int("length", len(p)), zap.Int("schemas", tbl.Len()))

	tx, err := payload.Decode(tbl, p)
	if err != nil {
		return cli.NewExitError(fmt.Errorf("failed to decode payload: %w", err), 1)
	}
	log.Debug("payload decoded",
		zap.String("type", tx.Header.Type),
		zap.String("name", tx.Name),
		zap.Int("body fields", len(tx.Body)))

	// Nothing is printed unless everything is decoded and formatted.
	var buf bytes.Buffer
	if ctx.Bool("json") || cfg.ApplicationConfiguration.Output == config.OutputJSON {
		err = writeJSON(&buf, tx)
	} else {
		err = writeText(&buf, tx)
	}
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	_, err = ctx.App.Writer.Write(buf.Bytes())
	return err
}

func readPayload(ctx *cli.Context) (string, error) {
	var s string
	switch in := ctx.String("in"); {
	case len(in) != 0:
		if ctx.Args().Present() {
			return "", errConflictingIn
		}
		b, err := os.ReadFile(in)
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		s = string(b)
	case ctx.Args().Present():
		if len(ctx.Args()) > 1 {
			return "", errTooManyArgs
		}
		s = ctx.Args().First()
	default:
		if noPrompt, _ := ctx.App.Metadata[NoPromptKey].(bool); noPrompt {
			return "", errMissingPayload
		}
		w := ctx.App.ErrWriter
		if w == nil {
			w = os.Stderr
		}
		line, err := input.ReadLine(w, "Enter payload > ")
		if err != nil {
			return "", fmt.Errorf("failed to read payload: %w", err)
		}
		s = line
	}
	p, err := util.NormalizeHex(s)
	if err != nil {
		return "", err
	}
	if len(p) == 0 {
		return "", errMissingPayload
	}
	return p, nil
}

// writeText prints every field on its own line as "Name:<tabs>value".
func writeText(w io.Writer, tx *payload.Transaction) error {
	tw := tabwriter.NewWriter(w, 0, 8, 1, '\t', 0)
	for _, f := range tx.Fields() {
		_, _ = fmt.Fprintf(tw, "%s:\t%s\n", f.Name, f.Value)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, tx *payload.Transaction) error {
	obj := json.OrderedObject{
		{Key: "name", Value: tx.Name},
		{Key: "header", Value: fieldsObject(tx.Header.Fields())},
		{Key: "body", Value: fieldsObject(tx.Body)},
	}
	b, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal fields: %w", err)
	}
	_, err = w.Write(append(b, '\n'))
	return err
}

func fieldsObject(fs []payload.Field) json.OrderedObject {
	obj := make(json.OrderedObject, 0, len(fs))
	for _, f := range fs {
		obj = append(obj, json.Member{Key: f.Name, Value: f.Value})
	}
	return obj
}

func handleTypes(ctx *cli.Context) error {
	cfg, log, cerr := options.GetEnvironment(ctx)
	if cerr != nil {
		return cerr
	}
	defer func() { _ = log.Sync() }()

	tbl, err := cfg.Table()
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	if ctx.Bool("yaml") {
		b, err := yaml.Marshal(tbl.Schemas())
		if err != nil {
			return cli.NewExitError(fmt.Errorf("failed to marshal schemas: %w", err), 1)
		}
		_, err = ctx.App.Writer.Write(b)
		return err
	}
	tw := tabwriter.NewWriter(ctx.App.Writer, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "TAG\tNAME\tFIELDS")
	for _, s := range tbl.Schemas() {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Tag, s.Name, s.Layout())
	}
	return tw.Flush()
}

func handleSwap(ctx *cli.Context) error {
	if !ctx.Args().Present() {
		return cli.NewExitError("missing hex string", 1)
	}
	s, err := util.NormalizeHex(ctx.Args().First())
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	swapped, err := util.SwapHexBytes(s)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	tw := tabwriter.NewWriter(ctx.App.Writer, 0, 8, 1, '\t', 0)
	_, _ = fmt.Fprintf(tw, "Swapped:\t%s\n", swapped)
	if n, err := util.Uint64FromHexLE(s); err == nil && len(s) != 0 {
		_, _ = fmt.Fprintf(tw, "Integer:\t%d\n", n)
	}
	return tw.Flush()
}
