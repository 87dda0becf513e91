package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Nomadcxx/sourcesift/internal/config"
	"github.com/Nomadcxx/sourcesift/internal/match"
	"github.com/Nomadcxx/sourcesift/internal/reporter"
	"github.com/Nomadcxx/sourcesift/internal/source"
	"github.com/Nomadcxx/sourcesift/internal/ui"
)

var (
	apostropheFlag string
	metaFile       string
	titlesFile     string
	originalTitle  string
	workersFlag    int
	noReport       bool
	streamReport   bool

	// Version information (set via -ldflags during build)
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

const exampleConfig = `[filtering]
max_resolution = "4K"   # 4K, 1080p, 720p, SD
min_resolution = "SD"
workers = 0             # 0 = number of CPUs

[reports]
dir = ""                # empty = ~/.local/share/sourcesift/filter_results
`

var rootCmd = &cobra.Command{
	Use:   "sourcesift",
	Short: "Release title parsing and matching engine",
	Long: ui.FormatBannerWithSubtext("release title parsing and matching") + "\n\n" +
		"sourcesift normalizes scraped release titles, extracts quality and codec\n" +
		"information, and matches titles against movie and episode metadata.",
}

var cleanCmd = &cobra.Command{
	Use:   "clean <title>...",
	Short: "Normalize release titles",
	Args:  cobra.MinimumNArgs(1),
	Run:   runClean,
}

var qualityCmd = &cobra.Command{
	Use:   "quality <title>...",
	Short: "Detect the resolution of release titles",
	Args:  cobra.MinimumNArgs(1),
	Run:   runQuality,
}

var infoCmd = &cobra.Command{
	Use:   "info <title>...",
	Short: "Extract quality/codec/audio tags from release titles",
	Args:  cobra.MinimumNArgs(1),
	Run:   runInfo,
}

var sizeCmd = &cobra.Command{
	Use:   "size <size-string>...",
	Short: "Convert size strings like 1.4GB to megabytes",
	Args:  cobra.MinimumNArgs(1),
	Run:   runSize,
}

var filterCmd = &cobra.Command{
	Use:   "filter <episode|season|pack>",
	Short: "Filter a title list against show metadata",
	Long: "Reads release titles from --titles (or stdin, one per line), builds the\n" +
		"requested filter from --meta, and reports which titles match.",
	Args: cobra.ExactArgs(1),
	Run:  runFilter,
}

var matchCmd = &cobra.Command{
	Use:   "match <release-title>",
	Short: "Check a release title against movie metadata",
	Args:  cobra.ExactArgs(1),
	Run:   runMatch,
}

var bestCmd = &cobra.Command{
	Use:   "best [file-path]...",
	Short: "Pick the pack file that best matches an episode",
	Long: "Reads file paths from arguments or --titles (or stdin), drops extras and\n" +
		"samples, and prints the path that best matches the episode in --meta.",
	Run: runBest,
}

var viewCmd = &cobra.Command{
	Use:   "view [report-file]",
	Short: "View a filter report in the TUI",
	Args:  cobra.MaximumNArgs(1),
	Run:   runView,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration file location and contents",
	Run:   runConfig,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sourcesift %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
	},
}

func init() {
	cleanCmd.Flags().StringVar(&apostropheFlag, "apostrophe", "default", "apostrophe handling: default, strip, space")

	filterCmd.Flags().StringVar(&metaFile, "meta", "", "JSON file with show metadata (required)")
	filterCmd.Flags().StringVar(&titlesFile, "titles", "", "file with one release title per line (default stdin)")
	filterCmd.Flags().IntVar(&workersFlag, "workers", 0, "worker count (0 = config value)")
	filterCmd.Flags().BoolVar(&noReport, "no-report", false, "skip writing a report file")
	filterCmd.Flags().BoolVar(&streamReport, "stream", false, "write report items incrementally as a JSONL stream")
	filterCmd.MarkFlagRequired("meta")

	matchCmd.Flags().StringVar(&metaFile, "meta", "", "JSON file with movie metadata (required)")
	matchCmd.Flags().StringVar(&originalTitle, "original", "", "un-cleaned release title for the year check")
	matchCmd.MarkFlagRequired("meta")

	bestCmd.Flags().StringVar(&metaFile, "meta", "", "JSON file with episode metadata (required)")
	bestCmd.Flags().StringVar(&titlesFile, "titles", "", "file with one file path per line (default stdin)")
	bestCmd.MarkFlagRequired("meta")

	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(qualityCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(sizeCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runClean(cmd *cobra.Command, args []string) {
	mode, err := parseApostropheMode(apostropheFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, title := range args {
		fmt.Println(source.Clean(title, mode))
	}
}

func runQuality(cmd *cobra.Command, args []string) {
	for _, title := range args {
		fmt.Printf("%s\t%s\n", source.GetQuality(title), title)
	}
}

func runInfo(cmd *cobra.Command, args []string) {
	for _, title := range args {
		tags := source.GetInfo(title).Sorted()
		fmt.Printf("%s\t%s\n", strings.Join(tags, " "), title)
	}
}

func runSize(cmd *cobra.Command, args []string) {
	for _, arg := range args {
		mb, ok := source.ParseSize(arg)
		if !ok {
			fmt.Printf("?\t%s\n", arg)
			continue
		}
		fmt.Printf("%d MB\t%s\n", mb, arg)
	}
}

func runFilter(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	info, err := loadMeta(metaFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading metadata: %v\n", err)
		os.Exit(1)
	}

	var filter match.Filter
	switch args[0] {
	case "episode":
		filter, err = match.NewEpisodeFilter(info)
	case "season":
		filter, err = match.NewSeasonPackFilter(info)
	case "pack":
		filter, err = match.NewShowPackFilter(info)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown filter %q (must be episode, season, or pack)\n", args[0])
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building filter: %v\n", err)
		os.Exit(1)
	}

	titles, err := readLines(titlesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading titles: %v\n", err)
		os.Exit(1)
	}

	// Handle interrupt signals for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println()
		fmt.Println(ui.FormatStatusWarn("Cancelling filter run..."))
		cancel()
	}()

	workers := workersFlag
	if workers <= 0 {
		workers = cfg.Filtering.Workers
	}

	verdicts, err := match.ApplyFilter(ctx, titles, filter, match.ParallelConfig{Workers: workers})
	if err != nil {
		if err == context.Canceled {
			fmt.Fprintf(os.Stderr, "Filter run cancelled by user\n")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Filter run failed: %v\n", err)
		os.Exit(1)
	}

	accepted := source.AcceptedResolutions(
		source.Quality(cfg.Filtering.MaxResolution),
		source.Quality(cfg.Filtering.MinResolution),
	)

	// Streaming mode writes each item as its verdict prints, so large
	// title lists never have to be held as a report in memory.
	var stream *reporter.StreamingReporter
	if streamReport && !noReport {
		stream, err = reporter.NewStreamingReporter(args[0], filterQuery(args[0], info), cfg.Reports.Dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening report stream: %v\n", err)
			os.Exit(1)
		}
		defer stream.Close()
	}

	report := reporter.Report{
		GeneratedAt: time.Now(),
		Kind:        args[0],
		Query:       filterQuery(args[0], info),
	}
	for i, title := range titles {
		quality := source.GetQuality(title)
		matched := verdicts[i] && accepted[quality]
		item := reporter.Item{
			Title:      title,
			CleanTitle: source.Clean(title, source.ApostropheDefault),
			Quality:    string(quality),
			Info:       source.GetInfo(title).Sorted(),
			Matched:    matched,
		}

		if stream != nil {
			if err := stream.WriteItem(ctx, item); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing report stream: %v\n", err)
				os.Exit(1)
			}
		} else {
			report.Items = append(report.Items, item)
		}

		if matched {
			fmt.Println(ui.FormatStatusOK(title))
		} else {
			fmt.Println(ui.FormatStatusFail(title))
		}
	}

	if noReport {
		return
	}

	if stream != nil {
		if err := stream.Finalize(); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report stream: %v\n", err)
			os.Exit(1)
		}
		fmt.Println()
		fmt.Println(reporter.Summary(stream.Summary()))
		fmt.Println(ui.FormatStatusInfo("Item stream saved to " + stream.GetPath()))
		return
	}

	report.TotalItems = len(report.Items)
	for _, item := range report.Items {
		if item.Matched {
			report.TotalKept++
		}
	}

	reportPath, err := reporter.Generate(report, cfg.Reports.Dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println(reporter.Summary(report))
	fmt.Println(ui.FormatStatusInfo("Report saved to " + reportPath))
	fmt.Printf("View report with: sourcesift view %s\n", reportPath)
}

func runMatch(cmd *cobra.Command, args []string) {
	info, err := loadMeta(metaFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading metadata: %v\n", err)
		os.Exit(1)
	}

	releaseTitle := args[0]
	original := originalTitle
	if original == "" {
		original = releaseTitle
	}

	if match.MovieMatch(original, releaseTitle, info.MovieTitle, info) {
		fmt.Println(ui.FormatStatusOK(releaseTitle))
		return
	}
	fmt.Println(ui.FormatStatusFail(releaseTitle))
	os.Exit(1)
}

func runBest(cmd *cobra.Command, args []string) {
	info, err := loadMeta(metaFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading metadata: %v\n", err)
		os.Exit(1)
	}

	paths := args
	if len(paths) == 0 {
		paths, err = readLines(titlesFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file paths: %v\n", err)
			os.Exit(1)
		}
	}

	paths = match.FilterExtras(paths, match.PlaybackMeta{
		Title:        info.EpisodeTitle,
		ShowTitle:    info.ShowTitle,
		SeasonNumber: info.SeasonNumber,
	})

	idx, ok := match.BestEpisodeIndex(paths, info)
	if !ok {
		fmt.Fprintln(os.Stderr, ui.FormatStatusFail("no file matched the episode"))
		os.Exit(1)
	}
	fmt.Println(paths[idx])
}

func runView(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	var reportPath string
	if len(args) > 0 {
		reportPath = args[0]
	} else {
		// No argument: open the newest report
		paths, err := reporter.ListReports(cfg.Reports.Dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing reports: %v\n", err)
			os.Exit(1)
		}
		if len(paths) == 0 {
			fmt.Fprintln(os.Stderr, ui.FormatStatusWarn("No reports found. Run a filter first."))
			os.Exit(1)
		}
		reportPath = paths[0]
	}

	report, err := reporter.Load(reportPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading report: %v\n", err)
		os.Exit(1)
	}

	if err := ui.Run(*report); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func runConfig(cmd *cobra.Command, args []string) {
	configPath, err := config.ConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Configuration file: %s\n\n", configPath)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Println("Config file does not exist. Create it with:")
		fmt.Println("\n  mkdir -p ~/.config/sourcesift")
		fmt.Println("  cat > ~/.config/sourcesift/config.toml <<EOF")
		fmt.Print(exampleConfig)
		fmt.Println("EOF")
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Current configuration:")
	fmt.Printf("\nFiltering:\n")
	fmt.Printf("  Max resolution: %s\n", cfg.Filtering.MaxResolution)
	fmt.Printf("  Min resolution: %s\n", cfg.Filtering.MinResolution)
	fmt.Printf("  Workers: %d\n", cfg.Filtering.Workers)
	fmt.Printf("\nReports:\n")
	if cfg.Reports.Dir != "" {
		fmt.Printf("  Directory: %s\n", cfg.Reports.Dir)
	} else {
		fmt.Printf("  Directory: %s (default)\n", reporter.DefaultReportDir())
	}
}

func parseApostropheMode(name string) (source.ApostropheMode, error) {
	switch name {
	case "default":
		return source.ApostropheDefault, nil
	case "strip":
		return source.ApostropheStrip, nil
	case "space":
		return source.ApostropheSpace, nil
	}
	return source.ApostropheDefault, fmt.Errorf("unknown apostrophe mode %q (must be default, strip, or space)", name)
}

func loadMeta(path string) (match.SimpleInfo, error) {
	var info match.SimpleInfo

	data, err := os.ReadFile(path)
	if err != nil {
		return info, fmt.Errorf("failed to read metadata file: %w", err)
	}
	if err := json.Unmarshal(data, &info); err != nil {
		return info, fmt.Errorf("failed to parse metadata: %w", err)
	}

	return info, nil
}

// readLines reads non-empty lines from a file, or from stdin when path is
// empty.
func readLines(path string) ([]string, error) {
	f := os.Stdin
	if path != "" {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
	}

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// filterQuery builds the human-readable report query. Metadata show
// titles arrive in whatever casing the scraper produced, so the display
// form is rebuilt from the cleaned title.
func filterQuery(kind string, info match.SimpleInfo) string {
	show := source.DisplayTitle(source.Clean(info.ShowTitle, source.ApostropheDefault))
	switch kind {
	case "episode":
		return fmt.Sprintf("%s S%sE%s", show, info.SeasonNumber, info.EpisodeNumber)
	case "season":
		return fmt.Sprintf("%s season %s", show, info.SeasonNumber)
	case "pack":
		return fmt.Sprintf("%s (%s seasons)", show, info.SeasonCount)
	}
	return show
}
