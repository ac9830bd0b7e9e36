package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sevigo/code-critic/internal/config"
	"github.com/sevigo/code-critic/internal/core"
	"github.com/sevigo/code-critic/internal/gitutil"
	"github.com/sevigo/code-critic/internal/wire"
)

var (
	languageFlag string
	repoFlag     string
	rawOutput    bool
	verbose      bool
)

// Color definitions
var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	dimColor     = color.New(color.FgHiBlack)
)

var reviewCmd = &cobra.Command{
	Use:   "review [file]",
	Short: "Run an AI code review for a source file",
	Long: `Run an AI code review for a source file.

The review command sends the file to the configured model backend and
prints the critique, the corrected code and an optimized version. The
language is detected from the file extension unless --language is given.

Examples:
  critic review main.py
  critic review --language js src/app.mjs
  critic review --repo https://github.com/owner/repo.git src/main.py`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	reviewCmd.Flags().StringVarP(&languageFlag, "language", "l", "", "Language of the source file (python, js, java, c++, go)")
	reviewCmd.Flags().StringVar(&repoFlag, "repo", "", "Git repository URL; the file argument is a path inside the repository")
	reviewCmd.Flags().BoolVar(&rawOutput, "raw", false, "Print the raw review text without Markdown rendering")
	reviewCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output with timing information")
	rootCmd.AddCommand(reviewCmd)
}

// stepTimer tracks timing for verbose output
type stepTimer struct {
	stepNum    int
	totalSteps int
	start      time.Time
	verbose    bool
}

func newStepTimer(totalSteps int, verbose bool) *stepTimer {
	return &stepTimer{totalSteps: totalSteps, verbose: verbose}
}

func (t *stepTimer) step(name string) {
	t.stepNum++
	t.start = time.Now()
	if t.verbose {
		titleColor.Printf("\n🔧 Step %d/%d: %s...\n", t.stepNum, t.totalSteps, name)
	} else {
		fmt.Printf("%s...\n", name)
	}
}

func (t *stepTimer) done(details ...string) {
	if t.verbose {
		elapsed := time.Since(t.start).Round(time.Millisecond)
		successColor.Printf("   ✓ Done (%s)\n", elapsed)
		for _, d := range details {
			dimColor.Printf("   └── %s\n", d)
		}
	}
}

func runReview(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	filePath := args[0]

	timer := newStepTimer(3, verbose)

	titleColor.Println("🧑‍💻 Code Critic - AI Code Review")
	dimColor.Printf("   Target: %s\n\n", filePath)

	// 1. Initialize application
	timer.step("Initializing application")
	appInstance, cleanup, err := wire.InitializeApp(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w\n\nTip: Check that your config.yaml exists and is valid", err)
	}
	defer cleanup()
	timer.done()

	// 2. Load source and detect language
	timer.step("Loading source")
	source, err := loadSource(ctx, filePath)
	if err != nil {
		return err
	}
	if strings.TrimSpace(source) == "" {
		return errors.New("please enter code to analyze: the file is empty")
	}

	lang, err := resolveLanguage(filePath)
	if err != nil {
		return err
	}
	timer.done(fmt.Sprintf("language: %s", lang), fmt.Sprintf("%d bytes", len(source)))

	guidance := loadGuidance()

	// 3. Run the review
	timer.step("Generating review")
	result := appInstance.Reviewer.Review(ctx, core.ReviewRequest{
		Language: lang,
		Code:     source,
		Guidance: guidance,
	})
	if result.Failed() {
		errorColor.Printf("\n✗ Review failed: %s\n", result.Error)
		return errors.New(result.Error)
	}
	timer.done()

	return printReview(result.Review)
}

// loadSource reads the file locally or, when --repo is set, out of a
// shallow clone of the remote repository.
func loadSource(ctx context.Context, filePath string) (string, error) {
	if repoFlag != "" {
		fetcher := gitutil.NewClient(nil)
		data, err := fetcher.FetchFile(ctx, repoFlag, filePath)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	return string(data), nil
}

func resolveLanguage(filePath string) (core.Language, error) {
	if languageFlag != "" {
		return core.ParseLanguage(languageFlag)
	}
	lang, err := core.DetectLanguage(filePath)
	if err != nil {
		return "", fmt.Errorf("%w\n\nTip: pass --language explicitly", err)
	}
	return lang, nil
}

// loadGuidance folds the optional .code-critic.yml profile from the
// working directory into the prompt.
func loadGuidance() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	profile, err := config.LoadReviewProfile(cwd)
	if err != nil {
		if !errors.Is(err, config.ErrProfileNotFound) {
			dimColor.Printf("   ⚠ ignoring %s: %v\n", filepath.Join(cwd, ".code-critic.yml"), err)
		}
		return ""
	}
	return strings.Join(profile.Guidance, "\n")
}

func printReview(review string) error {
	fmt.Println()
	titleColor.Println("📋 Analysis Results")
	fmt.Println()

	if rawOutput {
		fmt.Println(review)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Println(review)
		return nil
	}

	rendered, err := renderer.Render(review)
	if err != nil {
		fmt.Println(review)
		return nil
	}
	fmt.Print(rendered)
	return nil
}
