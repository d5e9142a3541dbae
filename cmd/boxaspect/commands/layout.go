package commands

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	"github.com/agiangrant/boxaspect"
)

// SceneReport is the computed geometry of one scene file.
type SceneReport struct {
	Scene string          `json:"scene"`
	Rows  []boxaspect.Row `json:"rows"`
}

// Layout implements the 'boxaspect layout' command
func Layout(args []string) error {
	return runLayout(os.Stdout, args)
}

func runLayout(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("layout", flag.ContinueOnError)
	asJSON := fs.Bool("json", false, "Print JSON instead of a table")
	debug := fs.Bool("debug", false, "Trace layout passes to stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	paths := fs.Args()
	if len(paths) == 0 {
		return errNoScenes
	}

	boxaspect.SetLayoutDebug(*debug)
	defer boxaspect.SetLayoutDebug(false)

	reports, err := layoutScenes(context.Background(), paths, *debug)
	if err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}
	return writeTable(w, reports)
}

// layoutScenes loads and lays out every scene concurrently. Reports keep
// the order of paths. Traced runs go one scene at a time so their output
// does not interleave.
func layoutScenes(ctx context.Context, paths []string, serial bool) ([]SceneReport, error) {
	reports := make([]SceneReport, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	if serial {
		g.SetLimit(1)
	}

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			scene, err := boxaspect.LoadScene(path)
			if err != nil {
				return err
			}
			tree, err := scene.Build()
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			reports[i] = SceneReport{Scene: path, Rows: tree.Report()}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func writeTable(w io.Writer, reports []SceneReport) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "# %s\n", r.Scene)
		fmt.Fprintln(tw, "NAME\tID\tX\tY\tW\tH\tSTRATEGY")
		for _, row := range r.Rows {
			name := strings.Repeat("  ", row.Depth) + row.Path[strings.LastIndex(row.Path, "/")+1:]
			if !row.Visible {
				name += " (hidden)"
			}
			fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%s\n",
				name, row.ID, row.X, row.Y, row.Width, row.Height, row.Strategy)
		}
	}
	return tw.Flush()
}
