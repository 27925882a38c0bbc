// Package cli wires flags, prompts and the engine into the playscaffold
// command.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/playscaffold/playscaffold/assets"
	"github.com/playscaffold/playscaffold/internal/answers"
	"github.com/playscaffold/playscaffold/internal/clock"
	"github.com/playscaffold/playscaffold/internal/engine"
	"github.com/playscaffold/playscaffold/internal/fsops"
	"github.com/playscaffold/playscaffold/internal/nodepm"
)

var (
	flagLang        string
	flagCT          string
	flagBrowsers    []string
	flagGHA         bool
	flagNoBrowsers  bool
	flagWithDeps    bool
	flagBeta        bool
	flagNext        bool
	flagQuiet       bool
	flagDryRun      bool
	flagAnswersFile string
)

// rootCmd is the root command for playscaffold.
var rootCmd = &cobra.Command{
	Use:     "playscaffold [directory]",
	Version: "dev",
	Short:   "Scaffold a new Playwright end-to-end test project",
	Long: `playscaffold sets up a new Playwright test project in the given directory.

It asks a handful of setup questions, renders the project files (config,
example tests, optional CI workflow), patches .gitignore and package.json,
and installs dependencies and browsers with your package manager.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&flagLang, "lang", "", "Language of the generated files: ts or js")
	flags.StringVar(&flagCT, "ct", "", "Generate a component-testing project for the given framework (react, vue, svelte)")
	flags.StringArrayVar(&flagBrowsers, "browser", nil, "Restrict config and downloads to a browser engine (repeatable: chromium, firefox, webkit)")
	flags.BoolVar(&flagGHA, "gha", false, "Add a GitHub Actions workflow")
	flags.BoolVar(&flagNoBrowsers, "no-browsers", false, "Skip the browser download")
	flags.BoolVar(&flagWithDeps, "install-deps", false, "Also install OS dependencies for the browsers")
	flags.BoolVar(&flagBeta, "beta", false, "Install the @beta dist tag")
	flags.BoolVar(&flagNext, "next", false, "Install the @next dist tag")
	flags.BoolVarP(&flagQuiet, "quiet", "q", false, "Do not ask questions; accept defaults and flags")
	flags.BoolVar(&flagDryRun, "dry-run", false, "Print the plan and file list without changing anything")
	flags.StringVar(&flagAnswersFile, "answers", "", "Read setup answers from a YAML file instead of prompting")
}

func runRoot(cmd *cobra.Command, args []string) error {
	targetDir := "."
	if len(args) == 1 {
		targetDir = args[0]
	}

	resolved, err := resolveAnswers(cmd)
	if err != nil {
		return err
	}

	pm := nodepm.Detect()
	eng := engine.New(
		assets.Templates(),
		fsops.NewRealFS(),
		&engine.ShellRunner{Stdout: os.Stdout, Stderr: os.Stderr},
		pm,
		&clock.RealClock{},
	)
	eng.OnProgress = PrintStep

	PrintHeader(fmt.Sprintf("Scaffolding a Playwright project into %s", targetDir))

	result, err := eng.Generate(cmd.Context(), &engine.Request{
		RootDir: targetDir,
		Answers: resolved,
		DryRun:  flagDryRun,
	})
	if err != nil {
		return err
	}

	if flagDryRun {
		printDryRun(result)
		return nil
	}

	printSummary(targetDir, result, resolved, pm)
	return nil
}

// resolveAnswers layers defaults, the answers file, flags and prompts
// into the final answers record.
func resolveAnswers(cmd *cobra.Command) (answers.Answers, error) {
	base := answers.Defaults()

	if flagAnswersFile != "" {
		loaded, err := answers.Load(flagAnswersFile)
		if err != nil {
			return base, err
		}
		base = loaded
	}

	fixed := map[string]bool{}
	flags := cmd.Flags()

	if flags.Changed("lang") {
		switch flagLang {
		case "ts":
			base.Language = answers.TypeScript
		case "js":
			base.Language = answers.JavaScript
		default:
			return base, fmt.Errorf("unknown --lang %q (expected ts or js)", flagLang)
		}
		fixed["language"] = true
	}
	if flags.Changed("ct") {
		base.Framework = answers.Framework(flagCT)
	}
	if flags.Changed("browser") {
		base.Browsers = flagBrowsers
		fixed["browsers"] = true
		base.InstallBrowsers = true
	}
	if flags.Changed("gha") {
		base.AddGitHubActions = flagGHA
		fixed["gha"] = true
	}
	if flagNoBrowsers {
		base.InstallBrowsers = false
		fixed["browsers"] = true
	}
	if flagWithDeps {
		base.WithDeps = true
	}
	switch {
	case flagBeta && flagNext:
		return base, fmt.Errorf("--beta and --next are mutually exclusive")
	case flagBeta:
		base.Tag = "beta"
	case flagNext:
		base.Tag = "next"
	}

	interactive := !flagQuiet && flagAnswersFile == "" && answers.Interactive()
	if interactive {
		prompted, err := answers.NewPrompter(os.Stdin, os.Stdout).Collect(base, fixed)
		if err != nil {
			return base, err
		}
		base = prompted
	}

	if err := base.Validate(); err != nil {
		return base, err
	}
	return base, nil
}

func printDryRun(result *engine.Result) {
	PrintInfo("Commands that would run:")
	for _, c := range result.Plan.Pre {
		PrintDim(fmt.Sprintf("[%s] %s", c.Phase, c.Command))
	}
	for _, c := range result.Plan.Post {
		PrintDim(fmt.Sprintf("[%s] %s", c.Phase, c.Command))
	}
	PrintInfo("Files that would be written:")
	for _, f := range result.Written {
		PrintDim(f)
	}
}

func printSummary(targetDir string, result *engine.Result, a answers.Answers, pm nodepm.PackageManager) {
	fmt.Println()
	PrintSuccess(fmt.Sprintf("Done in %s", result.Duration.Round(time.Millisecond)))
	fmt.Println()

	PrintInfo("Files written:")
	for _, f := range result.Written {
		PrintDim(filepath.Join(targetDir, filepath.FromSlash(f)))
	}
	if result.PatchedGitignore {
		PrintDim(filepath.Join(targetDir, ".gitignore") + " (updated)")
	}
	if result.PatchedManifest {
		PrintDim(filepath.Join(targetDir, "package.json") + " (updated)")
	}

	fmt.Println()
	PrintInfo("Inside that directory, you can run several commands:")
	fmt.Println()
	if a.IsComponentTesting() {
		PrintDim(pm.RunScript("test-ct"))
		PrintInfo("    Runs the component tests.")
	} else {
		PrintDim(pm.Exec("playwright test"))
		PrintInfo("    Runs the end-to-end tests.")
		PrintDim(pm.Exec("playwright test --ui"))
		PrintInfo("    Starts the interactive UI mode.")
		PrintDim(pm.Exec("playwright codegen"))
		PrintInfo("    Auto generate tests with Codegen.")
	}
	fmt.Println()
	PrintInfo("Happy hacking! 🎭")
}
