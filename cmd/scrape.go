package cmd

import (
	"fmt"
	"io"
	"os"

	"hameln-publish/scraper"

	"github.com/dustin/go-humanize"
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape FILE",
	Short: "Scrape a saved \"view all\" page",
	Long:  "Scrape a saved \"view all\" page and print what was found. Use - to read stdin.",
	Args:  cobra.ExactArgs(1),
	RunE:  runScrape,
}

var scrapeDump bool

func init() {
	scrapeCmd.Flags().BoolVar(&scrapeDump, "dump", false, "pretty print the scraped novel")
	RootCmd.AddCommand(scrapeCmd)
}

func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(name)
}

func runScrape(cmd *cobra.Command, args []string) error {
	data, err := readInput(cmd, args[0])
	if err != nil {
		return fmt.Errorf("failed to read page: %w", err)
	}
	novel, err := scraper.Scrape(string(data))
	if err != nil {
		return fmt.Errorf("failed to scrape %s: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	if scrapeDump {
		pp.ColoringEnabled = false
		_, err = pp.Fprintln(out, novel)
		return err
	}
	fmt.Fprintf(out, "title:    %s\n", novel.Title)
	fmt.Fprintf(out, "author:   %s\n", novel.Author)
	fmt.Fprintf(out, "episodes: %d\n", len(novel.Episodes))
	for i, episode := range novel.Episodes {
		fmt.Fprintf(out, "%4d  %s (%s)\n", i+1, episode.Title, humanize.Bytes(uint64(len(episode.Body))))
	}
	return nil
}
