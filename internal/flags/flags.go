package flags

import (
	"time"

	"github.com/spf13/pflag"
)

type Context struct {
	flagSet *pflag.FlagSet

	url      *string
	config   *string
	grouping *string
	sorting  *string
	theme    *string
	locale   *string
	timeout  *time.Duration
	debug    *bool
	logFile  *string
}

// Parse reads the command line arguments (without the program name).
func Parse(args []string) (*Context, error) {
	flagSet := pflag.NewFlagSet("kanview", pflag.ContinueOnError)
	c := Context{
		flagSet:  flagSet,
		url:      flagSet.StringP("url", "u", "", "ticket API endpoint (overrides config and $KANVIEW_API_URL)"),
		config:   flagSet.StringP("config", "c", "", "path to the config file"),
		grouping: flagSet.StringP("group", "g", "", "initial grouping: status, user or priority"),
		sorting:  flagSet.StringP("sort", "s", "", "initial sorting: priority, title or none"),
		theme:    flagSet.StringP("theme", "t", "", "initial theme: light or dark"),
		locale:   flagSet.String("locale", "", "language used to sort titles, e.g. en or sv"),
		timeout:  flagSet.Duration("timeout", 0, "timeout for fetching the tickets"),
		debug:    flagSet.Bool("debug", false, "turns on debug logging"),
		logFile:  flagSet.String("log-file", "debug.log", "file to write logs to, empty disables logging"),
	}
	if err := flagSet.Parse(args); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Context) Changed(name string) bool {
	return c.flagSet.Changed(name)
}

func (c *Context) URL() string {
	return *c.url
}

func (c *Context) ConfigPath() string {
	return *c.config
}

func (c *Context) Grouping() string {
	return *c.grouping
}

func (c *Context) Sorting() string {
	return *c.sorting
}

func (c *Context) Theme() string {
	return *c.theme
}

func (c *Context) Locale() string {
	return *c.locale
}

func (c *Context) Timeout() time.Duration {
	return *c.timeout
}

func (c *Context) Debug() bool {
	return *c.debug
}

func (c *Context) LogFile() string {
	return *c.logFile
}
