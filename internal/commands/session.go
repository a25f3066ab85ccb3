package commands

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/spendscope-dev/spendscope/internal/importer"
	"github.com/spendscope-dev/spendscope/internal/ledger"
	"github.com/spendscope-dev/spendscope/internal/model"
	"github.com/spendscope-dev/spendscope/internal/rules"
)

// sessionFlags are the flags shared by every command that reads
// statements: where to find them, which schema to classify with, and
// the optional transaction filters.
type sessionFlags struct {
	dir      string
	schema   string
	from     string
	to       string
	search   string
	category string
}

func (f *sessionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.dir, "dir", "statements", "directory containing statement CSVs")
	cmd.Flags().StringVar(&f.schema, "schema", "", "category schema YAML (default: built-in categories)")
	cmd.Flags().StringVar(&f.from, "from", "", "include transactions on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.to, "to", "", "include transactions on or before this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.search, "search", "", "filter by description or category substring")
	cmd.Flags().StringVar(&f.category, "category", "", "filter by exact category label, e.g. \"Fast Food\"")
}

func (f *sessionFlags) engine() (*rules.Engine, error) {
	schema := rules.DefaultSchema()
	if f.schema != "" {
		var err error
		schema, err = rules.Load(f.schema)
		if err != nil {
			return nil, err
		}
	}
	return rules.NewEngine(schema)
}

func (f *sessionFlags) filter() (ledger.Filter, error) {
	var flt ledger.Filter
	var err error
	if f.from != "" {
		flt.From, err = time.Parse("2006-01-02", f.from)
		if err != nil {
			return flt, fmt.Errorf("parsing --from: %w", err)
		}
	}
	if f.to != "" {
		flt.To, err = time.Parse("2006-01-02", f.to)
		if err != nil {
			return flt, fmt.Errorf("parsing --to: %w", err)
		}
	}
	flt.Search = f.search
	flt.Category = f.category
	return flt, nil
}

// readConcurrency caps parallel statement file reads.
const readConcurrency = 4

// loadSession discovers the statement files, reads them concurrently,
// and parses them in discovery order into a fresh ledger. A file that
// cannot be read is reported on stderr and skipped; parse errors abort.
func (f *sessionFlags) loadSession(cmd *cobra.Command, engine *rules.Engine) (*ledger.Service, error) {
	files, err := importer.Discover(f.dir)
	if err != nil {
		return nil, fmt.Errorf("discovering statements: %w", err)
	}

	contents := make([][]byte, len(files))
	var g errgroup.Group
	g.SetLimit(readConcurrency)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			data, err := os.ReadFile(file.Path)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: skipping %s: %v\n", file.Name, err)
				return nil
			}
			contents[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	registry := importer.NewRegistry()
	registry.Register(importer.NewCardParser(engine))
	parser := registry.Get("card")

	svc := ledger.NewService()
	for i, file := range files {
		if contents[i] == nil {
			continue
		}
		txns, err := parser.Parse(bytes.NewReader(contents[i]), file.Name)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", file.Name, err)
		}
		svc.Add(file.Name, txns)
	}
	return svc, nil
}

// session loads the engine, the ledger, and the filtered transaction
// slice in one call, for commands that only need the end result.
func (f *sessionFlags) session(cmd *cobra.Command) (*rules.Engine, *ledger.Service, []model.Transaction, error) {
	engine, err := f.engine()
	if err != nil {
		return nil, nil, nil, err
	}
	flt, err := f.filter()
	if err != nil {
		return nil, nil, nil, err
	}
	svc, err := f.loadSession(cmd, engine)
	if err != nil {
		return nil, nil, nil, err
	}
	return engine, svc, svc.Filter(flt), nil
}

// money formats an amount for display.
func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
