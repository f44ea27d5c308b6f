package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/henderiw/idxrange/pkg/input"
	"github.com/henderiw/idxrange/pkg/logging"
	"github.com/henderiw/idxrange/pkg/solver"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const envPrefix = "IDXRANGE"

func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "idxrange",
		Short:         "Coalesce integer ranges and answer membership and coverage queries",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v, cmd)
		},
	}
	rootCmd.PersistentFlags().String("config", "", "optional yaml config file")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve part 1 (query points covered) or part 2 (integers covered) for an input file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, v)
		},
	}
	solveCmd.Flags().StringP("input", "i", "", "input file: ranges, a blank line, then query points")
	solveCmd.Flags().StringP("part", "p", "1", "1 counts covered query points, 2 counts covered integers")
	solveCmd.Flags().StringP("output", "o", "text", "output format (text, yaml, json)")

	rootCmd.AddCommand(solveCmd)
	return rootCmd
}

// loadConfig binds flags and IDXRANGE_* environment variables, then reads
// the config file when one is given. Flags win over env, env over file.
func loadConfig(v *viper.Viper, cmd *cobra.Command) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	return nil
}

func runSolve(cmd *cobra.Command, v *viper.Viper) error {
	log, err := logging.New(cmd.ErrOrStderr(), v.GetString("log-level"))
	if err != nil {
		return err
	}
	part, err := solver.ParsePart(v.GetString("part"))
	if err != nil {
		return err
	}
	path := v.GetString("input")
	if path == "" {
		return fmt.Errorf("no input file, set --input")
	}

	doc, err := input.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	log.Debug("input loaded", "path", path, "ranges", len(doc.Ranges), "points", len(doc.Points))

	res, err := solver.New(log).Solve(cmd.Context(), doc, part)
	if err != nil {
		return err
	}
	return writeResult(cmd.OutOrStdout(), v.GetString("output"), res)
}

func writeResult(w io.Writer, format string, res *solver.Result) error {
	switch format {
	case "", "text":
		_, err := fmt.Fprintln(w, res.Answer)
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	return fmt.Errorf("unknown output format %q", format)
}
