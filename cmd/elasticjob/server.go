// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tochemey/elasticjob/internal/server"
	"github.com/tochemey/elasticjob/log"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Operate the servers of a job",
}

var serverDisableCmd = &cobra.Command{
	Use:   "disable <server-id>",
	Short: "Exclude a server from the sharding of the job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServers(cmd.Context(), func(ctx context.Context, servers *server.Service) error {
			return servers.Disable(ctx, args[0])
		})
	},
}

var serverEnableCmd = &cobra.Command{
	Use:   "enable <server-id>",
	Short: "Include a disabled server in the sharding of the job again",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServers(cmd.Context(), func(ctx context.Context, servers *server.Service) error {
			return servers.Enable(ctx, args[0])
		})
	},
}

var serverStopCmd = &cobra.Command{
	Use:   "stop <server-id>",
	Short: "Stop the executions of the job on a server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServers(cmd.Context(), func(ctx context.Context, servers *server.Service) error {
			return servers.StopJob(ctx, args[0])
		})
	},
}

var serverListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the live servers of the job",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withServers(cmd.Context(), func(ctx context.Context, servers *server.Service) error {
			live, err := servers.LiveServers(ctx)
			if err != nil {
				return err
			}
			for _, id := range live {
				registration, err := servers.Registration(ctx, id)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", id, registration.Status)
			}
			return nil
		})
	},
}

func init() {
	serverCmd.AddCommand(serverDisableCmd, serverEnableCmd, serverStopCmd, serverListCmd)
	rootCmd.AddCommand(serverCmd)
}

func withServers(ctx context.Context, fn func(context.Context, *server.Service) error) error {
	st, err := newEtcdStore(ctx, log.DiscardLogger)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	// the operator session never registers itself
	return fn(ctx, server.New(st, viper.GetString("job.name"), "", log.DiscardLogger))
}
