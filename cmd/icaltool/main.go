package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	ics "github.com/arran4/golang-icalcore"
)

const usage = `usage: icaltool [-config file] <command> [arguments]

commands:
  check FILE           report RFC 5545 restriction failures
  expand [-max N] [-until DATE] FILE
                       list the occurrences of every recurring component
  rrule [-from DATE] [-max N] RULE
                       expand a bare RRULE value
  fmt FILE             parse and write FILE back out
  xcal FILE            write FILE as xCal
  zones                list the built in time zones
  hostzone             show the host time zone
`

type app struct {
	cfg  *ics.Config
	zone *ics.TimeZone
	out  io.Writer
	log  *slog.Logger
}

func main() {
	configPath := flag.String("config", os.Getenv("ICAL_CONFIG"), "Path to a YAML config file")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := ics.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "icaltool:", err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	ics.SetLogger(logger)

	zone, err := cfg.Zone()
	if err != nil {
		logger.Error("default zone", "zone", cfg.DefaultZone, "err", err)
		os.Exit(2)
	}
	a := &app{cfg: cfg, zone: zone, out: os.Stdout, log: logger}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if err := a.run(flag.Arg(0), flag.Args()[1:]); err != nil {
		logger.Error(flag.Arg(0)+" failed", "err", err, "detail", ics.StrError(err))
		os.Exit(1)
	}
}

func (a *app) run(cmd string, args []string) error {
	switch cmd {
	case "check":
		return a.check(args)
	case "expand":
		return a.expand(args)
	case "rrule":
		return a.rrule(args)
	case "fmt":
		return a.format(args)
	case "xcal":
		return a.xcal(args)
	case "zones":
		return a.zones()
	case "hostzone":
		z := ics.CurrentTimezone()
		_, err := fmt.Fprintf(a.out, "%s daylight=%v\n", z.Name, z.IsDaylight)
		return err
	}
	return fmt.Errorf("%w: unknown command %q", ics.ErrBadParameters, cmd)
}

func (a *app) load(args []string) (*ics.Component, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: expected one file", ics.ErrBadParameters)
	}
	if args[0] == "-" {
		return ics.Parse(os.Stdin)
	}
	return ics.Load(args[0])
}

var errRestrictions = errors.New("restriction failures")

func (a *app) check(args []string) error {
	c, err := a.load(args)
	if err != nil {
		return err
	}
	n := c.CheckRestrictions()
	printErrors(a.out, c)
	if n > 0 {
		return fmt.Errorf("%w: %d", errRestrictions, n)
	}
	_, err = fmt.Fprintln(a.out, "ok")
	return err
}

func printErrors(w io.Writer, c *ics.Component) {
	for it := c.Properties(ics.PropertyXLicError); it.Advance(); {
		fmt.Fprintf(w, "%s: %s\n", c.Name(), it.Item().ValueText())
	}
	for it := c.Children(ics.ComponentAny); it.Advance(); {
		printErrors(w, it.Item())
	}
}

func (a *app) limitFlags(fs *flag.FlagSet) (*int, *string) {
	return fs.Int("max", a.cfg.MaxRows, "Maximum number of occurrences"),
		fs.String("until", "", "Last date to expand to, e.g. 20241231 or 20241231T235959Z")
}

func (a *app) limit(until string) (ics.DateTime, error) {
	if until == "" {
		return ics.DateTime{}, nil
	}
	return ics.ParseDateTime(until, a.zone)
}

func (a *app) expand(args []string) error {
	fs := flag.NewFlagSet("expand", flag.ContinueOnError)
	maxRows, until := a.limitFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	c, err := a.load(fs.Args())
	if err != nil {
		return err
	}
	to, err := a.limit(*until)
	if err != nil {
		return err
	}
	return a.expandTree(c, to, *maxRows)
}

func (a *app) expandTree(c *ics.Component, to ics.DateTime, maxRows int) error {
	if c.HasProperty(ics.PropertyRrule) {
		start, err := c.Start()
		if err != nil {
			return fmt.Errorf("%s %s: %w", c.Name(), c.UID(), err)
		}
		r, err := c.Recurrence()
		if err != nil {
			return err
		}
		if err := a.printOccurrences(c.UID(), r, start, to, maxRows); err != nil {
			return err
		}
	}
	for it := c.Children(ics.ComponentAny); it.Advance(); {
		if err := a.expandTree(it.Item(), to, maxRows); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) printOccurrences(label string, r *ics.Recurrence, from, to ics.DateTime, maxRows int) error {
	limit := ics.MaxRows(maxRows)
	if !to.IsNull() {
		limit = ics.UntilDate(to)
	}
	e, err := r.Expand(from, limit)
	if err != nil {
		return err
	}
	rows := 0
	for d, ok := e.Next(); ok && rows < maxRows; d, ok = e.Next() {
		rows++
		if label != "" {
			fmt.Fprintf(a.out, "%s\t", label)
		}
		fmt.Fprintln(a.out, ics.StampOf(d).ISO8601())
	}
	return nil
}

func (a *app) rrule(args []string) error {
	fs := flag.NewFlagSet("rrule", flag.ContinueOnError)
	from := fs.String("from", "", "First date, defaults to now")
	maxRows, until := a.limitFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: expected one rule", ics.ErrBadParameters)
	}
	r, err := ics.ParseRecurrence(strings.TrimPrefix(fs.Arg(0), "RRULE:"))
	if err != nil {
		return err
	}
	start := ics.Now(a.zone)
	if *from != "" {
		if start, err = ics.ParseDateTime(*from, a.zone); err != nil {
			return err
		}
	}
	to, err := a.limit(*until)
	if err != nil {
		return err
	}
	return a.printOccurrences("", r, start, to, *maxRows)
}

func (a *app) format(args []string) error {
	c, err := a.load(args)
	if err != nil {
		return err
	}
	return c.SerializeTo(a.out, a.cfg.Serialization())
}

func (a *app) xcal(args []string) error {
	c, err := a.load(args)
	if err != nil {
		return err
	}
	return c.WriteXCal(a.out)
}

func (a *app) zones() error {
	for _, z := range ics.BuiltinTimezones() {
		if _, err := fmt.Fprintf(a.out, "%s\t%+.4f\t%+.4f\t%s\n", z.TZID, z.Latitude, z.Longitude, strings.Join(z.TZNames, ",")); err != nil {
			return err
		}
	}
	return nil
}
