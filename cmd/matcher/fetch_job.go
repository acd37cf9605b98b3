package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/fetch"
)

var fetchJobCmd = &cobra.Command{
	Use:   "fetch-job",
	Short: "Fetch and extract job posting text from a URL",
	Long:  "Fetch a job posting page, strip navigation and boilerplate, and print the extracted description text.",
	RunE:  runFetchJob,
}

var (
	fetchURL        string
	fetchOutFile    string
	fetchUseBrowser bool
	fetchTimeout    time.Duration
)

func init() {
	fetchJobCmd.Flags().StringVarP(&fetchURL, "url", "u", "", "URL to fetch job posting from (required)")
	fetchJobCmd.Flags().StringVarP(&fetchOutFile, "out", "o", "", "Write extracted text to this file instead of stdout")
	fetchJobCmd.Flags().BoolVar(&fetchUseBrowser, "use-browser", false, "Render with a headless browser when static fetch yields too little text")
	fetchJobCmd.Flags().DurationVar(&fetchTimeout, "timeout", 60*time.Second, "Fetch timeout")

	fetchJobCmd.MarkFlagRequired("url")

	rootCmd.AddCommand(fetchJobCmd)
}

func runFetchJob(cmd *cobra.Command, args []string) error {
	opts := &fetch.Options{
		Timeout:    fetchTimeout,
		UseBrowser: fetchUseBrowser,
	}

	text, err := fetch.JobText(cmd.Context(), fetchURL, opts)
	if err != nil {
		return fmt.Errorf("failed to fetch job posting: %w", err)
	}

	if fetchOutFile != "" {
		if err := os.WriteFile(fetchOutFile, []byte(text+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Extracted text written to %s\n", fetchOutFile)
		return nil
	}

	fmt.Fprintln(os.Stdout, text)
	return nil
}
