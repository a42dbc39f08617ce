package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/easyperl/fairbanks/internal/logging"
	"github.com/easyperl/fairbanks/internal/menu"
	"github.com/easyperl/fairbanks/internal/render"
	"github.com/easyperl/fairbanks/internal/solver"
)

func main() {
	kingpinApp := kingpin.New("fairbanks", "Exact-price combination solver - finds every item combination matching a target amount")
	inputPath := kingpinApp.Arg("input", "Input file: a target amount line followed by \"name,price\" lines; blank lines separate groups").Required().String()
	verbose := kingpinApp.Flag("verbose", "Enable debug logging").Short('v').Bool()
	quiet := kingpinApp.Flag("quiet", "Suppress malformed-line reports").Short('q').Bool()

	kingpin.MustParse(kingpinApp.Parse(os.Args[1:]))

	logger, err := logging.NewConsole(*verbose)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(*inputPath, *quiet, logger, os.Stdout); err != nil {
		logger.Error("solver failed", zap.Error(err))
		os.Exit(1)
	}
}

// run solves every group in the input file sequentially, in file order,
// writing rendered solution lines to out. Malformed lines and groups without
// a solution are reported, not failures.
func run(path string, quiet bool, logger *zap.Logger, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	parser := menu.NewParser(menu.WithLogger(logger), menu.WithSilentErrors(quiet))
	groups, parseErrs, err := parser.ParseGroups(f)
	if err != nil {
		return err
	}
	logger.Debug("input parsed",
		zap.Int("groups", len(groups)),
		zap.Int("malformed_lines", len(parseErrs)),
	)

	sv := solver.New()
	for i, group := range groups {
		if i > 0 {
			fmt.Fprintln(out)
		}

		combos, err := sv.Enumerate(group.Target, group.Prices())
		if err != nil {
			return fmt.Errorf("solve target %s: %w", group.Target, err)
		}

		result := render.Format(combos, menu.NewPriceIndex(group.Items))

		fmt.Fprintf(out, "target %s\n", group.Target)
		if result.Count == 0 {
			fmt.Fprintln(out, render.NoCombination)
		}
		for _, line := range result.Lines {
			fmt.Fprintln(out, line)
		}
		fmt.Fprintln(out, result.Summary())
	}

	return nil
}
