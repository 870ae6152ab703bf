package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/smartcity/trafficmap/internal/domain"
	"github.com/smartcity/trafficmap/internal/geo"
	"github.com/smartcity/trafficmap/internal/session"
	"github.com/smartcity/trafficmap/pkg/utils"
)

const helpText = `commands:
  mode [normal|emergency|rickshaw|festival]   toggle a mode, or show the active one
  route <from> <to>                            points are area keys or lat,lng
  refresh                                      reload traffic markers
  markers                                      list the markers on the map
  reports                                      show recent incident reports
  report <type> <at> [low|medium|high] [text]  submit an incident
  areas                                        list area keys
  quit`

var errQuit = errors.New("quit")

// usageError is a malformed command line. Session failures are not wrapped
// in it since the session already notified the user about them.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func usage(err error) error {
	return &usageError{err: err}
}

// parsePoint accepts an area key or a "lat,lng" pair
func parsePoint(s string) (domain.Coordinate, error) {
	if a, ok := geo.AreaByKey(strings.ToLower(s)); ok {
		return a.Coordinate, nil
	}
	lat, lng, ok := strings.Cut(s, ",")
	if !ok {
		return domain.Coordinate{}, fmt.Errorf("unknown point %q", s)
	}
	la, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("bad latitude %q", lat)
	}
	ln, err := strconv.ParseFloat(strings.TrimSpace(lng), 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("bad longitude %q", lng)
	}
	return domain.Coordinate{Lat: la, Lng: ln}, nil
}

// parseReport builds a report form from "<type> <at> [severity] [description...]"
func parseReport(args []string) (domain.ReportForm, error) {
	if len(args) < 2 {
		return domain.ReportForm{}, errors.New("usage: report <type> <at> [severity] [description]")
	}
	pos, err := parsePoint(args[1])
	if err != nil {
		return domain.ReportForm{}, err
	}

	form := domain.ReportForm{
		IncidentType: strings.ToLower(args[0]),
		Lat:          pos.Lat,
		Lng:          pos.Lng,
	}
	if a, ok := geo.AreaByKey(strings.ToLower(args[1])); ok {
		form.Location = a.Name
	}

	rest := args[2:]
	if len(rest) > 0 {
		switch sev := strings.ToLower(rest[0]); sev {
		case "low", "medium", "high":
			form.Severity = sev
			rest = rest[1:]
		}
	}
	form.Description = strings.Join(rest, " ")
	return form, nil
}

// execute runs one command line against the session
func execute(ctx context.Context, s *session.Session, out io.Writer, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "help", "?":
		fmt.Fprintln(out, helpText)
	case "quit", "exit":
		return errQuit
	case "mode":
		if len(args) == 0 {
			fmt.Fprintf(out, "mode: %s\n", s.Mode())
			return nil
		}
		s.ToggleMode(domain.ParseMode(strings.ToLower(args[0])))
	case "route":
		if len(args) != 2 {
			return usage(errors.New("usage: route <from> <to>"))
		}
		from, err := parsePoint(args[0])
		if err != nil {
			return usage(err)
		}
		to, err := parsePoint(args[1])
		if err != nil {
			return usage(err)
		}
		_, err = s.RequestRoute(ctx, &from, &to)
		return err
	case "refresh":
		return s.RefreshMarkers(ctx)
	case "markers":
		for _, m := range s.Markers() {
			fmt.Fprintf(out, "%-16s %3d%% %s\n", m.Key, utils.Percent(m.Level), m.Tier)
		}
	case "reports":
		_, err := s.LoadReports(ctx)
		return err
	case "report":
		form, err := parseReport(args)
		if err != nil {
			return usage(err)
		}
		return s.SubmitReport(ctx, form)
	case "areas":
		for _, a := range geo.Areas {
			fmt.Fprintf(out, "%-16s %s %s\n", a.Key, a.Name, a.Coordinate)
		}
	default:
		return usage(fmt.Errorf("unknown command %q (try help)", cmd))
	}
	return nil
}
