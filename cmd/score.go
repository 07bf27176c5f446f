package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/consensus-cli/internal/artifact"
	"github.com/sells-group/consensus-cli/internal/score"
)

var scoreCmd = &cobra.Command{
	Use:   "score <artifact.json>...",
	Short: "Grade extraction artifacts against structural expectations",
	Long: `Scores each artifact independently on structural validity (required keys
present with correct primitive types), completeness (optional fields
filled), and category assignment. Percentages are 0-100; the overall
score is a weighted mean controlled by scorer.weights in config.

Examples:
  # Table of scores for every provider output
  score out/*.json

  # Machine-readable report for one artifact
  score out/claude.json --format json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScoreCmd,
}

func init() {
	f := scoreCmd.Flags()
	f.String("format", "table", "output format: table or json")
	f.String("output", "", "output file path (default: stdout)")

	rootCmd.AddCommand(scoreCmd)
}

// scoredArtifact pairs a path with its report for output ordering.
type scoredArtifact struct {
	Path   string       `json:"path"`
	Error  string       `json:"error,omitempty"`
	Report *score.Report `json:"report,omitempty"`
}

func runScoreCmd(cmd *cobra.Command, args []string) error {
	log := zap.L().With(zap.String("command", "score"))

	results := make([]scoredArtifact, len(args))

	// Each artifact scores independently; a broken one reports its error
	// instead of failing the batch.
	g, _ := errgroup.WithContext(cmd.Context())
	g.SetLimit(4)
	for i, path := range args {
		g.Go(func() error {
			results[i].Path = path
			a, err := artifact.Load(path)
			if err != nil {
				log.Warn("artifact not scorable", zap.String("path", path), zap.Error(err))
				results[i].Error = eris.Cause(err).Error()
				return nil
			}
			rep := score.Score(a, cfg.Scorer.Weights)
			results[i].Report = &rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return eris.Wrap(err, "score")
	}

	format, _ := cmd.Flags().GetString("format")
	var out []byte
	switch format {
	case "table":
		var b strings.Builder
		formatScoreTable(&b, results)
		out = []byte(b.String())
	case "json":
		encoded, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return eris.Wrap(err, "score: encode json")
		}
		out = append(encoded, '\n')
	default:
		return eris.Errorf("unsupported format: %s", format)
	}

	outputPath, _ := cmd.Flags().GetString("output")
	return writeOutput(outputPath, out)
}

func formatScoreTable(w io.Writer, results []scoredArtifact) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tOVERALL\tSTRUCTURAL\tCOMPLETE\tCATEGORY\tMISSING")
	for _, r := range results {
		if r.Report == nil {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\t%s\n", r.Path, r.Error)
			continue
		}
		missing := strings.Join(r.Report.MissingFields, ",")
		if missing == "" {
			missing = "-"
		}
		fmt.Fprintf(tw, "%s\t%.1f\t%.1f\t%.1f\t%.1f\t%s\n",
			r.Path, r.Report.Overall, r.Report.StructuralValidity,
			r.Report.Completeness, r.Report.CategoryAssignment, missing)
	}
	tw.Flush() //nolint:errcheck
}
