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
	"encoding/json"
	"fmt"
	"io"
	stdhttp "net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tochemey/elasticjob/internal/http"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the coordination data of a running server",
	Long: `Dump queries the monitor endpoint of a running server and prints the
coordination data of its job as JSON.`,
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)

	flags := dumpCmd.Flags()
	flags.String("monitor.host", viper.GetString("monitor.host"), "host of the monitor endpoint")
	flags.Int("monitor.port", viper.GetInt("monitor.port"), "port of the monitor endpoint")
}

// monitorAddress reads the dump flags first: the run command binds the same
// configuration keys
func monitorAddress(cmd *cobra.Command) (string, int) {
	host, port := viper.GetString("monitor.host"), viper.GetInt("monitor.port")
	if cmd.Flags().Changed("monitor.host") {
		host, _ = cmd.Flags().GetString("monitor.host")
	}
	if cmd.Flags().Changed("monitor.port") {
		port, _ = cmd.Flags().GetInt("monitor.port")
	}
	return host, port
}

func runDump(cmd *cobra.Command, _ []string) error {
	host, port := monitorAddress(cmd)
	if port <= 0 {
		return fmt.Errorf("the monitor port is required")
	}

	url := http.URL(host, port) + "/dump"
	request, err := stdhttp.NewRequestWithContext(cmd.Context(), stdhttp.MethodGet, url, nil)
	if err != nil {
		return err
	}

	response, err := http.NewClient(10 * time.Second).Do(request)
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", url, err)
	}
	defer response.Body.Close()

	if response.StatusCode != stdhttp.StatusOK {
		body, _ := io.ReadAll(response.Body)
		return fmt.Errorf("monitor returned %s: %s", response.Status, body)
	}

	var nodes map[string]string
	if err := json.NewDecoder(response.Body).Decode(&nodes); err != nil {
		return fmt.Errorf("failed to decode the dump: %w", err)
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(nodes)
}
