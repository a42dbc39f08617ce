package menu

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/easyperl/fairbanks/internal/money"
)

// ParseError describes an input line the parser rejected.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e ParseError) Error() string {
	return fmt.Sprintf("line %d: %v (%q)", e.Line, e.Err, e.Text)
}

// Parser converts line-oriented input into target/menu groups.
//
// The format is: a group starts with a target line holding a bare currency
// amount, followed by one item per line as "name,price". Blank lines separate
// groups and lines starting with '#' are comments. Malformed lines are
// collected and skipped; a malformed target line invalidates its whole group.
type Parser struct {
	logger *zap.Logger
	silent bool
}

// ParserOption configures Parser behaviour.
type ParserOption func(*Parser)

// WithLogger attaches a logger used to report malformed lines.
func WithLogger(logger *zap.Logger) ParserOption {
	return func(p *Parser) {
		p.logger = logger
	}
}

// WithSilentErrors suppresses malformed-line logging. The errors are still
// returned to the caller.
func WithSilentErrors(silent bool) ParserOption {
	return func(p *Parser) {
		p.silent = silent
	}
}

// NewParser constructs a Parser with the provided options.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseGroups reads every target/menu group from r in input order. Malformed
// lines are returned as ParseErrors; the error return is non-nil only when
// reading itself fails.
func (p *Parser) ParseGroups(r io.Reader) ([]Group, []ParseError, error) {
	var (
		groups    []Group
		parseErrs []ParseError
		current   *Group
		skipping  bool
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			if current != nil {
				groups = append(groups, *current)
				current = nil
			}
			skipping = false
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		if current == nil {
			if skipping {
				continue
			}
			target, err := parseTargetLine(line)
			if err != nil {
				parseErrs = append(parseErrs, p.report(lineNo, line, err))
				skipping = true
				continue
			}
			current = &Group{Target: target}
			continue
		}

		item, err := parseItemLine(line)
		if err != nil {
			parseErrs = append(parseErrs, p.report(lineNo, line, err))
			continue
		}
		current.Items = append(current.Items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, parseErrs, fmt.Errorf("read input: %w", err)
	}

	if current != nil {
		groups = append(groups, *current)
	}

	return groups, parseErrs, nil
}

// ParseMenu reads an item-only file, one "name,price" entry per line.
func (p *Parser) ParseMenu(r io.Reader) ([]Item, []ParseError, error) {
	var (
		items     []Item
		parseErrs []ParseError
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		item, err := parseItemLine(line)
		if err != nil {
			parseErrs = append(parseErrs, p.report(lineNo, line, err))
			continue
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, parseErrs, fmt.Errorf("read input: %w", err)
	}

	return items, parseErrs, nil
}

func (p *Parser) report(lineNo int, text string, err error) ParseError {
	parseErr := ParseError{Line: lineNo, Text: text, Err: err}
	if !p.silent {
		p.logger.Warn("skipping malformed line",
			zap.Int("line", lineNo),
			zap.String("text", text),
			zap.Error(err),
		)
	}
	return parseErr
}

func parseTargetLine(line string) (money.Cents, error) {
	if strings.Contains(line, ",") {
		return 0, fmt.Errorf("expected a target amount, found an item line")
	}
	target, err := money.Parse(line)
	if err != nil {
		return 0, fmt.Errorf("invalid target: %w", err)
	}
	return target, nil
}

// parseItemLine splits on the last comma so item names may themselves
// contain commas.
func parseItemLine(line string) (Item, error) {
	sep := strings.LastIndex(line, ",")
	if sep < 0 {
		return Item{}, fmt.Errorf("expected \"name,price\"")
	}

	name := strings.TrimSpace(line[:sep])
	if name == "" {
		return Item{}, fmt.Errorf("empty item name")
	}

	price, err := money.Parse(line[sep+1:])
	if err != nil {
		return Item{}, fmt.Errorf("invalid price: %w", err)
	}

	return Item{Name: name, Price: price}, nil
}
