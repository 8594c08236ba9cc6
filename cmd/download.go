package cmd

import (
	"fmt"
	"strconv"

	"hameln-publish/config"
	"hameln-publish/downloader"
	"hameln-publish/downloader/hameln"
	"hameln-publish/epub"
	"hameln-publish/model"
	"hameln-publish/text"

	"github.com/spf13/cobra"
)

var downloadCmd = &cobra.Command{
	Use:   "download IDS...",
	Short: "Download novels by id",
	Long:  "Download novels by id and write one book per novel",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDownload,
}

type downloadArgs struct {
	outputPath string
	format     string
	language   string
	failFast   bool
}

var dlArgs downloadArgs

func init() {
	downloadCmd.Flags().StringVarP(&dlArgs.outputPath, "output-path", "o", "", "output path")
	downloadCmd.Flags().StringVarP(&dlArgs.format, "format", "f", "", "output format: epub or text")
	downloadCmd.Flags().StringVar(&dlArgs.language, "lang", "", "book language")
	downloadCmd.Flags().BoolVar(&dlArgs.failFast, "fail-fast", false, "stop at the first novel that fails")
	RootCmd.AddCommand(downloadCmd)
}

func parseIds(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid novel id: %q", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func newAssembler(c config.Config) model.Assembler {
	if c.Format == config.FormatText {
		return text.Writer{}
	}
	return &epub.Writer{Options: epub.Options{Language: c.Language}}
}

func runDownload(cmd *cobra.Command, args []string) error {
	ids, err := parseIds(args)
	if err != nil {
		return err
	}

	c := cfg
	flags := cmd.Flags()
	if flags.Changed("output-path") {
		c.OutputPath = dlArgs.outputPath
	}
	if flags.Changed("format") {
		c.Format = dlArgs.format
	}
	if flags.Changed("lang") {
		c.Language = dlArgs.language
	}
	if flags.Changed("fail-fast") {
		c.FailFast = dlArgs.failFast
	}
	if err := c.Validate(); err != nil {
		return err
	}

	fetcher := hameln.New(hameln.Options{
		BaseURL:    c.HTTP.BaseURL,
		UserAgent:  c.HTTP.UserAgent,
		Timeout:    c.HTTP.Timeout,
		RetryCount: c.HTTP.RetryCount,
		RetryWait:  c.HTTP.RetryWait,
	})
	d := downloader.New(fetcher, newAssembler(c), downloader.Options{
		OutputPath: c.OutputPath,
		FailFast:   c.FailFast,
	})
	results, err := d.Download(cmd.Context(), ids)
	for _, r := range results {
		if r.Err == nil {
			fmt.Fprintln(cmd.OutOrStdout(), r.Path)
		}
	}
	if err != nil {
		return fmt.Errorf("failed to download novels: %w", err)
	}
	return nil
}
