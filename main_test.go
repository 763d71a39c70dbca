package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/CrestNiraj12/socialfeed/infra/seed"
)

func TestParseCLIArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		mode cliMode
		msg  string
	}{
		{name: "run default", args: nil, mode: cliRun},
		{name: "version long", args: []string{"--version"}, mode: cliVersion},
		{name: "version short", args: []string{"-v"}, mode: cliVersion},
		{name: "version single-dash", args: []string{"-version"}, mode: cliVersion},
		{name: "help long", args: []string{"--help"}, mode: cliHelp},
		{name: "help short", args: []string{"-h"}, mode: cliHelp},
		{name: "help word", args: []string{"help"}, mode: cliHelp},
		{name: "invalid flag", args: []string{"--bogus"}, mode: cliInvalid, msg: "unexpected argument: --bogus"},
		{name: "invalid flags", args: []string{"--bogus", "--pogus"}, mode: cliInvalid, msg: "unexpected argument: --bogus --pogus"},
		{name: "too many args", args: []string{"--version", "extra"}, mode: cliVersion},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mode, msg := parseCLIArgs(tc.args)
			if mode != tc.mode {
				t.Fatalf("mode mismatch: got %v want %v", mode, tc.mode)
			}
			if tc.msg != "" && msg != tc.msg {
				t.Fatalf("msg mismatch: got %q want %q", msg, tc.msg)
			}
		})
	}
}

func TestResolveVersionInfo(t *testing.T) {
	settings := map[string]string{
		"vcs.revision": "0123456789abcdef",
		"vcs.time":     "2026-01-02T03:04:05Z",
	}

	v, c, d := resolveVersionInfo("dev", "none", "unknown", "v1.2.3", settings)
	if v != "v1.2.3" || c != "0123456789ab" || d != "2026-01-02T03:04:05Z" {
		t.Fatalf("unexpected build info: %q %q %q", v, c, d)
	}

	v, c, d = resolveVersionInfo("v9.0.0", "abc", "today", "(devel)", settings)
	if v != "v9.0.0" || c != "abc" || d != "today" {
		t.Fatalf("ldflags values should win: %q %q %q", v, c, d)
	}

	v, _, _ = resolveVersionInfo("dev", "none", "unknown", "(devel)", nil)
	if v != "dev" {
		t.Fatalf("devel module version should be ignored, got %q", v)
	}
}

func TestSeedNotice(t *testing.T) {
	got := seedNotice("feed.json", seed.Report{Profiles: 2, Posts: 3, Comments: 1})
	if got != "Loaded 2 profiles, 3 posts and 1 comments from feed.json." {
		t.Fatalf("unexpected notice: %q", got)
	}

	got = seedNotice("feed.json", seed.Report{Errors: []error{errors.New("a"), errors.New("b")}})
	if !strings.HasSuffix(got, " 2 records rejected.") {
		t.Fatalf("rejections missing from notice: %q", got)
	}
}
