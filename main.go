package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/socialfeed/app"
	"github.com/CrestNiraj12/socialfeed/infra/clock"
	"github.com/CrestNiraj12/socialfeed/infra/config"
	"github.com/CrestNiraj12/socialfeed/infra/editor"
	"github.com/CrestNiraj12/socialfeed/infra/index"
	"github.com/CrestNiraj12/socialfeed/infra/seed"
	"github.com/CrestNiraj12/socialfeed/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type cliMode int

const (
	cliRun cliMode = iota
	cliVersion
	cliHelp
	cliInvalid
)

func parseCLIArgs(args []string) (cliMode, string) {
	if len(args) == 0 {
		return cliRun, ""
	}

	switch args[0] {
	case "--version", "-version", "-v":
		return cliVersion, ""
	case "--help", "-h", "help":
		return cliHelp, ""
	default:
		return cliInvalid, fmt.Sprintf("unexpected argument: %s", strings.Join(args, " "))
	}
}

func usage() string {
	return "Usage: socialfeed [--version|-version|-v] [--help|-h]\n\n" +
		"Environment:\n" +
		"  SOCIALFEED_ENV_FILE     dotenv file (default .env)\n" +
		"  SOCIALFEED_LOG          write a debug log to this file\n" +
		"  SOCIALFEED_SEED         load profiles and posts from a JSON file\n" +
		"  SOCIALFEED_VIEW_BUDGET  default view budget for advanced posts\n" +
		"  SOCIALFEED_WRAP         render width for post text"
}

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

// seedNotice summarises a seed load for the menu status line.
func seedNotice(path string, r seed.Report) string {
	msg := fmt.Sprintf("Loaded %d profiles, %d posts and %d comments from %s.", r.Profiles, r.Posts, r.Comments, path)
	if n := len(r.Errors); n > 0 {
		msg += fmt.Sprintf(" %d records rejected.", n)
	}
	return msg
}

func main() {
	mode, msg := parseCLIArgs(os.Args[1:])
	switch mode {
	case cliVersion:
		v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
		fmt.Printf("socialfeed %s\ncommit: %s\nbuilt: %s\n", v, c, d)
		return
	case cliHelp:
		fmt.Println(usage())
		return
	case cliInvalid:
		fmt.Fprintf(os.Stderr, "%s\n%s\n", msg, usage())
		os.Exit(2)
	}

	// 1. Load config from environment.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// 2. Route logs away from the terminal the TUI owns.
	if cfg.LogPath != "" {
		f, err := tea.LogToFile(cfg.LogPath, "socialfeed")
		if err != nil {
			fmt.Fprintf(os.Stderr, "log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	// 3. Build the in-memory stores and the feed service.
	profiles := index.NewProfileIndex()
	svc := app.NewService(profiles, index.NewPostIndex(profiles))
	clk := clock.NewRealClock()

	notice := ""
	if cfg.SeedPath != "" {
		report, err := seed.NewLoader(svc, clk).LoadFile(cfg.SeedPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "seed: %v\n", err)
			os.Exit(1)
		}
		for _, e := range report.Errors {
			log.Printf("seed: %v", e)
		}
		notice = seedNotice(cfg.SeedPath, report)
	}

	// 4. Wire root TUI model.
	rootModel := tui.NewApp(tui.Deps{
		Feed:       svc,
		Editor:     editor.NewEnvEditor(),
		Clock:      clk,
		ViewBudget: cfg.ViewBudget,
		WrapWidth:  cfg.WrapWidth,
		Notice:     notice,
	})

	// 5. Run.
	p := tea.NewProgram(rootModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "socialfeed: %v\n", err)
		os.Exit(1)
	}
}
