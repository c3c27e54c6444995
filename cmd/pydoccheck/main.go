package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"pydoccheck/internal/checker"
	"pydoccheck/internal/config"
	"pydoccheck/internal/crawler"
	"pydoccheck/internal/report"
	"pydoccheck/internal/stats"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "pydoccheck",
		Short: "Compares names and types in docstrings with function signatures",
	}
	cfgPath string

	checkVerbose     bool
	checkIgnoreFiles []string
	checkIgnoreNames []string
	checkFormat      string
	checkOutput      string

	countVerbose bool
	countExts    []string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "pydoccheck.yaml", "Path to the YAML config file")

	checkCmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false, "Enable the soft warnings (untyped parameters, argument order)")
	checkCmd.Flags().StringSliceVarP(&checkIgnoreFiles, "files", "f", nil, "File names to ignore, like: file1.py,file2.py")
	checkCmd.Flags().StringSliceVarP(&checkIgnoreNames, "names", "n", nil, "Function names to ignore, like: func1,func2")
	checkCmd.Flags().StringVar(&checkFormat, "format", "text", "Output format: text or json")
	checkCmd.Flags().StringVarP(&checkOutput, "output", "o", "", "Write the JSON report to a file instead of stdout")

	countCmd.Flags().BoolVarP(&countVerbose, "verbose", "v", false, "Per-file breakdown")
	countCmd.Flags().StringSliceVarP(&countExts, "ext", "e", nil, "File extensions to count, like: py,pyw")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(countCmd)
}

// loadCheckConfig merges config file, environment and check flags, flags
// winning.
func loadCheckConfig(cmd *cobra.Command) *config.Config {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = checkVerbose
	}
	if cmd.Flags().Changed("files") {
		cfg.Ignore.Files = checkIgnoreFiles
	}
	if cmd.Flags().Changed("names") {
		cfg.Ignore.Names = checkIgnoreNames
	}
	return cfg
}

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Check docstrings against function signatures in the given files or directories",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadCheckConfig(cmd)
		if checkFormat != "text" && checkFormat != "json" {
			log.Fatalf("Unknown format: %s", checkFormat)
		}

		ignoredNames := make(map[string]bool, len(cfg.Ignore.Names))
		for _, n := range cfg.Ignore.Names {
			ignoredNames[n] = true
		}

		chk, err := checker.New(checker.Options{
			Verbose:      cfg.Verbose,
			IgnoredNames: ignoredNames,
		})
		if err != nil {
			log.Fatalf("Failed to create checker: %v", err)
		}

		cr := crawler.New(crawler.Options{
			IgnoreDirs:  cfg.Ignore.Dirs,
			IgnoreFiles: cfg.Ignore.Files,
		})

		reporter := report.NewTextReporter(os.Stdout)
		totals := &report.RunTotals{}
		rep := &report.Report{Files: []*checker.FileReport{}}
		textMode := checkFormat == "text"

		handleFile := func(path string, src []byte) {
			fr, err := chk.CheckSource(path, src)
			if err != nil {
				totals.AddSkipped()
				if textMode {
					reporter.Skipped(path, err)
				}
				return
			}
			totals.AddFile(fr)
			if textMode {
				reporter.File(fr)
			} else {
				rep.Files = append(rep.Files, fr)
			}
		}
		handleError := func(path string, err error) {
			totals.AddSkipped()
			if textMode {
				reporter.Skipped(path, err)
			}
		}

		validPaths := 0
		for _, arg := range args {
			abs, err := filepath.Abs(arg)
			var info os.FileInfo
			if err == nil {
				info, err = os.Stat(abs)
			}
			if err != nil {
				fmt.Printf("Invalid path: %s\n", arg)
				continue
			}
			validPaths++

			if info.IsDir() {
				if err := cr.ScanTree(abs, handleFile, handleError); err != nil {
					log.Fatalf("Failed to scan %s: %v", abs, err)
				}
			} else {
				src, err := os.ReadFile(abs)
				if err != nil {
					handleError(abs, err)
				} else {
					handleFile(abs, src)
				}
			}
			if textMode {
				reporter.Summary(abs, totals)
			}
			if rep.Root == "" {
				rep.Root = abs
			}
		}

		if validPaths == 0 {
			log.Fatalf("No valid paths supplied.")
		}

		if !textMode {
			rep.Totals = *totals
			if checkOutput != "" {
				if err := report.SaveReport(checkOutput, rep); err != nil {
					log.Fatalf("Failed to write report: %v", err)
				}
			} else {
				data, err := report.MarshalReport(rep)
				if err != nil {
					log.Fatalf("Failed to render report: %v", err)
				}
				fmt.Println(string(data))
			}
		}

		if totals.Findings > 0 {
			os.Exit(1)
		}
	},
}

var countCmd = &cobra.Command{
	Use:   "count [paths...]",
	Short: "Count code and total lines in the given files or directories",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		exts := cfg.Count.Extensions
		if cmd.Flags().Changed("ext") {
			exts = countExts
		}

		cr := crawler.New(crawler.Options{
			IgnoreDirs:  cfg.Ignore.Dirs,
			IgnoreFiles: cfg.Ignore.Files,
			Extensions:  exts,
		})

		summary := &stats.Summary{}
		validPaths := 0
		for _, arg := range args {
			abs, err := filepath.Abs(arg)
			var info os.FileInfo
			if err == nil {
				info, err = os.Stat(abs)
			}
			if err != nil {
				fmt.Printf("Invalid path: %s\n", arg)
				continue
			}
			validPaths++

			if info.IsDir() {
				err := cr.ScanTree(abs, summary.Add, func(path string, err error) {
					fmt.Printf("Error while reading %s: %v\n", path, err)
				})
				if err != nil {
					log.Fatalf("Failed to scan %s: %v", abs, err)
				}
			} else {
				src, err := os.ReadFile(abs)
				if err != nil {
					fmt.Printf("Error while reading %s: %v\n", abs, err)
				} else {
					summary.Add(abs, src)
				}
			}
		}

		if validPaths == 0 {
			log.Fatalf("No valid paths supplied.")
		}
		summary.Print(os.Stdout, countVerbose)
	},
}
