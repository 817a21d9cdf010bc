package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"refoundly/internal/config"
	"refoundly/internal/knowledge"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
)

const (
	banner = "--- ReFoundly Chatbot: Community Assistant ---"
	prompt = "\nYou: "
)

// args is the kong grammar. Defaults come from config via kong.Vars.
type args struct {
	Table        string `short:"t" default:"${table_path}" help:"Question/answer spreadsheet (TABLE_PATH)"`
	Sheet        string `default:"${table_sheet}" help:"Sheet to read, first sheet when empty (TABLE_SHEET)"`
	RequireTable bool   `default:"${require_table}" help:"Exit with an error if the table cannot be loaded (REQUIRE_TABLE)"`
	JSON         bool   `name:"json" help:"Output JSON format"`
	Query        string `arg:"" optional:"" help:"Answer a single question and exit"`
}

type Runner struct {
	cfg    config.Config
	logger *zap.Logger
	loader *knowledge.Loader
}

func NewRunner(cfg config.Config, logger *zap.Logger, loader *knowledge.Loader) *Runner {
	return &Runner{
		cfg:    cfg,
		logger: logger.Named("cli"),
		loader: loader,
	}
}

func (r *Runner) Execute() error {
	return r.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func (r *Runner) Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, ok, err := r.parseOptions(argv, stdout, stderr)
	if err != nil || !ok {
		return err
	}

	table, err := r.loadTable(opts, stdout)
	if err != nil {
		return err
	}

	session := NewSession(table, r.logger)
	if opts.Query != "" {
		return runOneShot(session, &opts, r.logger, stdout)
	}
	return runREPL(session, &opts, r.logger, stdin, stdout)
}

// parseOptions returns ok=false when kong handled the invocation itself,
// e.g. --help.
func (r *Runner) parseOptions(argv []string, stdout, stderr io.Writer) (Options, bool, error) {
	var (
		parsed args
		exited bool
	)

	parser, err := kong.New(&parsed,
		kong.Name("refoundly"),
		kong.Description("Answers community questions from a fixed question/answer table."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }),
		kong.Vars{
			"table_path":    r.cfg.TablePath,
			"table_sheet":   r.cfg.TableSheet,
			"require_table": strconv.FormatBool(r.cfg.RequireTable),
		},
	)
	if err != nil {
		return Options{}, false, fmt.Errorf("create parser: %w", err)
	}

	_, err = parser.Parse(argv)
	if exited {
		return Options{}, false, nil
	}
	if err != nil {
		return Options{}, false, err
	}

	return Options{
		Query:        strings.TrimSpace(parsed.Query),
		TablePath:    strings.TrimSpace(parsed.Table),
		TableSheet:   strings.TrimSpace(parsed.Sheet),
		RequireTable: parsed.RequireTable,
		JSON:         parsed.JSON,
	}, true, nil
}

// loadTable reads the table once. On failure it reports the error and
// continues with an empty table, unless RequireTable is set.
func (r *Runner) loadTable(opts Options, stdout io.Writer) (*knowledge.Table, error) {
	table, err := r.loader.Load(opts.TablePath, opts.TableSheet)
	if err == nil {
		return table, nil
	}
	if opts.RequireTable {
		return nil, err
	}

	fmt.Fprintf(stdout, "System Error: %v\n", err)
	return knowledge.NewTable(nil), nil
}

func runOneShot(session *Session, opts *Options, logger *zap.Logger, out io.Writer) error {
	resp, ok := session.Handle(opts.Query)
	session.End()
	if !ok {
		logSessionEnd(logger, "one-shot", 0)
		return nil
	}
	logResponse(logger, resp)
	logSessionEnd(logger, "one-shot", 1)
	return writeResponse(out, resp, opts.JSON)
}

// runREPL reads whole lines of any length until an exit keyword or end of
// input.
func runREPL(session *Session, opts *Options, logger *zap.Logger, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)
	fmt.Fprintln(out, banner)

	turns := 0
	for session.State() == StateAwaitingInput {
		fmt.Fprint(out, prompt)
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			session.End()
			logSessionEnd(logger, "read error", turns)
			return fmt.Errorf("read input: %w", err)
		}
		atEOF := err != nil
		if atEOF && line == "" {
			session.End()
			logSessionEnd(logger, "end of input", turns)
			return nil
		}

		resp, ok := session.Handle(strings.TrimRight(line, "\r\n"))
		if ok {
			turns++
			logResponse(logger, resp)
			if err := writeResponse(out, resp, opts.JSON); err != nil {
				return err
			}
		}

		if session.State() == StateTerminated {
			logSessionEnd(logger, "exit keyword", turns)
			return nil
		}
		if atEOF {
			session.End()
			logSessionEnd(logger, "end of input", turns)
			return nil
		}
	}
	return nil
}

func logSessionEnd(logger *zap.Logger, reason string, turns int) {
	logger.Info("session ended",
		zap.String("reason", reason),
		zap.Int("turns", turns),
	)
}
