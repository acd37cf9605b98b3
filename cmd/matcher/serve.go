package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/server"
	"github.com/jonathan/resume-matcher/internal/skills"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Start the REST API server exposing scoring, resume/job storage, and match history endpoints.",
	RunE:  runServe,
}

var (
	servePort       int
	serveConfigPath string
	serveVocabPath  string
	serveUseBrowser bool
)

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Path to JSON config file")
	serveCmd.Flags().StringVar(&serveVocabPath, "vocabulary", "", "Path to skill vocabulary JSON file")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Render job pages with a headless browser when static fetch yields too little text")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := &config.Config{}
	if serveConfigPath != "" {
		loaded, err := config.Load(serveConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	merged := cfg.MergeWithDefaults(config.Config{Port: 8080})
	if err := merged.Validate(); err != nil {
		return err
	}

	// Flags override file config.
	if servePort != 0 {
		merged.Port = servePort
	}
	if serveVocabPath != "" {
		merged.Vocabulary = serveVocabPath
	}
	if serveUseBrowser {
		merged.UseBrowser = true
	}

	databaseURL := merged.DatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required (set it in the environment or config file)")
	}

	var vocabulary []string
	if merged.Vocabulary != "" {
		loaded, err := skills.LoadVocabulary(merged.Vocabulary)
		if err != nil {
			return fmt.Errorf("failed to load vocabulary: %w", err)
		}
		vocabulary = loaded
	}

	srv, err := server.New(server.Config{
		Port:           merged.Port,
		DatabaseURL:    databaseURL,
		Vocabulary:     vocabulary,
		FuzzyThreshold: merged.FuzzyThreshold,
		UseBrowser:     merged.UseBrowser,
	})
	if err != nil {
		return err
	}

	return srv.Start()
}
