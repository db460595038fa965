/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/kparrigan/mathnet-numerics/internal/config"
	"github.com/kparrigan/mathnet-numerics/internal/runner"
	"github.com/spf13/cobra"
)

var (
	configPath string
	override   = config.Default()
	noCheck    bool

	cmd = &cobra.Command{
		Use:   "discreteuniform",
		Short: "Discrete uniform distribution calculator and sampler",
	}

	statsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Print moments and the probability table",
		RunE:  runStats,
	}

	sampleCmd = &cobra.Command{
		Use:   "sample",
		Short: "Draw values from the distribution",
		RunE:  runSample,
	}
)

func init() {
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config YAML")
	cmd.PersistentFlags().IntVarP(&override.Lower, "lower", "l", override.Lower, "Inclusive lower bound")
	cmd.PersistentFlags().IntVarP(&override.Upper, "upper", "u", override.Upper, "Inclusive upper bound")
	cmd.PersistentFlags().BoolVar(&noCheck, "no-check", false, "Disable the lower <= upper check")

	sampleCmd.Flags().IntVarP(&override.Count, "count", "n", override.Count, "Number of draws")
	sampleCmd.Flags().StringVarP(&override.Source, "source", "s", override.Source, "Random source: system, crypto or salsa20")
	sampleCmd.Flags().Int64Var(&override.Seed, "seed", override.Seed, "Seed of the system source, 0 seeds from the clock")
	sampleCmd.Flags().StringVar(&override.Key, "key", override.Key, "Hex key of the salsa20 source")
	sampleCmd.Flags().Float64Var(&override.Rate, "rate", override.Rate, "Draws per second, 0 for unlimited")

	cmd.AddCommand(statsCmd, sampleCmd)
}

// loadConfig reads the config file and applies the flags
// that were set explicitly.
func loadConfig(c *cobra.Command) (*config.Config, error) {
	conf, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	flags := c.Flags()
	if flags.Changed("lower") {
		conf.Lower = override.Lower
	}
	if flags.Changed("upper") {
		conf.Upper = override.Upper
	}
	if flags.Changed("count") {
		conf.Count = override.Count
	}
	if flags.Changed("source") {
		conf.Source = override.Source
	}
	if flags.Changed("seed") {
		conf.Seed = override.Seed
	}
	if flags.Changed("key") {
		conf.Key = override.Key
	}
	if flags.Changed("rate") {
		conf.Rate = override.Rate
	}
	if noCheck {
		conf.CheckParameters = false
	}
	return conf, conf.Validate()
}

func runStats(c *cobra.Command, args []string) error {
	conf, err := loadConfig(c)
	if err != nil {
		return err
	}
	d, err := runner.Build(conf)
	if err != nil {
		return err
	}
	return runner.Stats(c.OutOrStdout(), d)
}

func runSample(c *cobra.Command, args []string) error {
	conf, err := loadConfig(c)
	if err != nil {
		return err
	}
	slog.Info("Load configuration", slog.Any("config", conf))
	d, err := runner.Build(conf)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s, err := runner.Run(ctx, c.OutOrStdout(), d, conf)
	if err != nil {
		return err
	}
	slog.Info(s.String())
	return nil
}

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
