package main

import (
	"encoding/json"
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var probeCmd = &cobra.Command{
	Use:   "probe <url>",
	Short: "Probe a single website and print the extracted signals as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prober, err := newProber()
		if err != nil {
			return err
		}

		result := prober.Probe(cmd.Context(), args[0])

		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return eris.Wrap(err, "probe: marshal result")
		}
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(probeCmd)
}
