package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/consensus-cli/internal/artifact"
	"github.com/sells-group/consensus-cli/internal/consensus"
	"github.com/sells-group/consensus-cli/internal/model"
)

var fuseCmd = &cobra.Command{
	Use:   "fuse <artifact.json>...",
	Short: "Fuse provider artifacts into one consensus record",
	Long: `Reads N extraction artifacts of the same source document and fuses them
into a single reconciled record with a confidence score per field.

Artifacts that fail to read, parse, or match a known shape are excluded
from the contributing set with a warning; the run only fails when no
valid artifact remains.

Examples:
  # Fuse three provider outputs
  fuse out/claude.json out/gpt.json out/gemini.json

  # Write YAML to a file and record the run
  fuse out/*.json --format yaml --output fused.yaml --save --label "jane-doe-resume"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFuse,
}

func init() {
	f := fuseCmd.Flags()
	f.String("output", "", "output file path (default: stdout)")
	f.String("format", "json", "output format: json or yaml")
	f.Float64("threshold", 0, "title similarity threshold (overrides config)")
	f.Bool("save", false, "record the run in the run-history store")
	f.String("label", "", "label for the saved run (default: first artifact path)")

	rootCmd.AddCommand(fuseCmd)
}

func runFuse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := zap.L().With(zap.String("command", "fuse"))

	threshold, _ := cmd.Flags().GetFloat64("threshold")
	if threshold <= 0 {
		threshold = cfg.Consensus.SimilarityThreshold
	}

	artifacts := artifact.LoadAll(args)
	log.Info("artifacts loaded",
		zap.Int("requested", len(args)),
		zap.Int("valid", len(artifacts)))

	result, err := consensus.Build(artifacts, consensus.Options{
		SimilarityThreshold: threshold,
	})
	if err != nil {
		return eris.Wrap(err, "fuse")
	}

	format, _ := cmd.Flags().GetString("format")
	encoded, err := encodeResult(result, format)
	if err != nil {
		return err
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if err := writeOutput(outputPath, encoded); err != nil {
		return err
	}

	save, _ := cmd.Flags().GetBool("save")
	if !save {
		return nil
	}

	label, _ := cmd.Flags().GetString("label")
	if label == "" {
		label = args[0]
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return eris.Wrap(err, "fuse: marshal result for store")
	}

	st, err := initStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close() //nolint:errcheck
	if err := st.Migrate(ctx); err != nil {
		return err
	}

	run, err := st.CreateRun(ctx, model.Run{
		Label:             label,
		ProviderCount:     result.Metadata.ProviderCount,
		OverallConfidence: result.Overall,
		Status:            model.RunStatusComplete,
		Result:            resultJSON,
	})
	if err != nil {
		return eris.Wrap(err, "fuse: save run")
	}

	log.Info("run saved", zap.String("run_id", run.ID), zap.String("label", label))
	return nil
}

func encodeResult(result *consensus.Result, format string) ([]byte, error) {
	switch format {
	case "json":
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return nil, eris.Wrap(err, "fuse: encode json")
		}
		return append(out, '\n'), nil
	case "yaml":
		out, err := yaml.Marshal(result)
		if err != nil {
			return nil, eris.Wrap(err, "fuse: encode yaml")
		}
		return out, nil
	default:
		return nil, eris.Errorf("unsupported format: %s", format)
	}
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return eris.Wrap(err, "write stdout")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "write %s", path)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
	return nil
}
