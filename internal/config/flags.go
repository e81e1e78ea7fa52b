package config

import (
	"flag"
	"os"
	"strings"

	"github.com/hlxtools/sidekick/models"
)

// mountPointList holds an ordered list of mount points parsed from a
// comma-separated flag value. It implements the flag.Value interface.
type mountPointList []string

// ParseFlags parses all project option flags from the command line and
// returns the parsed options together with the optional path of a JSON
// options file.
//
// Flags:
//
//	-owner repository owner
//	-repo repository name
//	-ref git reference (branch)
//	-giturl git repository URL
//	-mountpoints comma-separated content-source mount points
//	-project project display name
//	-host public production hostname
//	-preview-host custom preview hostname
//	-live-host custom live hostname
//	-dev development mode
//	-dev-origin local development origin
//	-admin-version admin service API version pin
//	-lang UI language
//	-c/-config json file path with project options
func ParseFlags() (models.Options, string) {
	opts, configPath, err := parseArgs(os.Args[1:])
	if err != nil {
		// Usage has already been printed by the flag package.
		os.Exit(2)
	}
	return opts, configPath
}

func parseArgs(args []string) (models.Options, string, error) {
	var opts models.Options
	var mounts mountPointList
	var configPath string

	fs := flag.NewFlagSet("sidekick", flag.ContinueOnError)
	fs.StringVar(&opts.Owner, "owner", "", "Repository owner")
	fs.StringVar(&opts.Repo, "repo", "", "Repository name")
	fs.StringVar(&opts.Ref, "ref", "", "Git reference")
	fs.StringVar(&opts.GitURL, "giturl", "", "Git repository URL")
	fs.Var(&mounts, "mountpoints", "Comma-separated mount points")
	fs.StringVar(&opts.Project, "project", "", "Project display name")
	fs.StringVar(&opts.Host, "host", "", "Public production hostname")
	fs.StringVar(&opts.PreviewHost, "preview-host", "", "Custom preview hostname")
	fs.StringVar(&opts.LiveHost, "live-host", "", "Custom live hostname")
	fs.BoolVar(&opts.DevMode, "dev", false, "Development mode")
	fs.StringVar(&opts.DevOrigin, "dev-origin", "", "Local development origin")
	fs.StringVar(&opts.AdminVersion, "admin-version", "", "Admin service API version pin")
	fs.StringVar(&opts.Lang, "lang", "", "UI language")
	fs.StringVar(&configPath, "c", "", "JSON options file path")
	fs.StringVar(&configPath, "config", "", "JSON options file path (alias)")

	if err := fs.Parse(args); err != nil {
		return models.Options{}, "", err
	}

	opts.MountPoints = mounts
	return opts, configPath, nil
}

// String returns the canonical comma-separated form of the list.
func (m *mountPointList) String() string {
	return strings.Join(*m, ",")
}

// Set parses a comma-separated mount point list, trimming whitespace
// and dropping empty entries.
func (m *mountPointList) Set(s string) error {
	*m = (*m)[:0]
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*m = append(*m, part)
		}
	}
	return nil
}
