// Command bstmeasure times insert, remove and lookup workloads on the trees of
// this module and on other ordered sets.
package main

import (
	"flag"
	"fmt"
	"os"
	"testing"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

var (
	profilePath string
	flagProfile = DefaultProfile()
)

var rootCmd = &cobra.Command{
	Use:   "bstmeasure",
	Short: "Measure the binary search trees against other ordered sets",
	Long: `bstmeasure inserts random keys into every subject, removes an increasing
share of them step by step and probes the rest, then reports the average and
standard deviation of the time per step.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	fs := rootCmd.Flags()
	fs.StringVar(&profilePath, "profile", "", "YAML profile; flags given explicitly override it")
	fs.Uint32Var(&flagProfile.Adds, "adds", flagProfile.Adds, "keys inserted per step")
	fs.Uint32Var(&flagProfile.Steps, "steps", flagProfile.Steps, "number of removal shares")
	fs.Int64Var(&flagProfile.Seed, "seed", flagProfile.Seed, "random seed of the keys")
	fs.StringSliceVar(&flagProfile.Subjects, "subjects", flagProfile.Subjects, "subjects to measure")
}

func resolveProfile(cmd *cobra.Command) (Profile, error) {
	if profilePath == "" {
		return flagProfile, flagProfile.Validate()
	}
	p, err := LoadProfile(profilePath)
	if err != nil {
		return p, err
	}
	fs := cmd.Flags()
	if fs.Changed("adds") {
		p.Adds = flagProfile.Adds
	}
	if fs.Changed("steps") {
		p.Steps = flagProfile.Steps
	}
	if fs.Changed("seed") {
		p.Seed = flagProfile.Seed
	}
	if fs.Changed("subjects") {
		p.Subjects = flagProfile.Subjects
	}
	return p, p.Validate()
}

func run(cmd *cobra.Command, _ []string) error {
	p, err := resolveProfile(cmd)
	if err != nil {
		return err
	}
	glog.Infof("measuring %v with %d keys over %d steps, seed %d", p.Subjects, p.Adds, p.Steps, p.Seed)
	out := cmd.OutOrStdout()
	for _, r := range measure(p) {
		fmt.Fprintf(out, "%-10s average: %fms/op stddev: %fms/op\n", r.Subject, r.Avg, r.Stddev)
	}
	return nil
}

func main() {
	testing.Init()
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	err := rootCmd.Execute()
	glog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
