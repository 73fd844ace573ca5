/*
Copyright 2024-2025 the Unikorn Authors.
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/nscaledev/petfriends/pkg/client"
	"github.com/nscaledev/petfriends/pkg/constants"
	"github.com/nscaledev/petfriends/pkg/janitor"
	"github.com/nscaledev/petfriends/pkg/log"
)

func main() {
	var options janitor.Options

	options.AddFlags(pflag.CommandLine)

	pflag.Parse()

	logger := log.New(log.Options{
		Level:  options.LogLevel,
		Output: os.Stderr,
	})

	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("janitor starting", zap.String("application", constants.Application), zap.String("version", constants.Version), zap.String("revision", constants.Revision))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli, err := client.New(options.BaseURL, client.WithTimeout(options.Timeout), client.WithLogger(logger))
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	result, err := janitor.New(cli, &options, logger).Run(ctx)
	if result != nil {
		logger.Info("janitor finished", zap.Int("matched", len(result.Matched)), zap.Int("deleted", len(result.Deleted)), zap.Int("failed", len(result.Failed)), zap.Bool("dryRun", options.DryRun))
	}

	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
