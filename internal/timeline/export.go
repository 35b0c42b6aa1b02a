package timeline

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"
)

var ErrUnknownFormat = errors.New("timeline: unknown export format")

// Formats lists the accepted Export formats.
var Formats = []string{"table", "csv", "json"}

func Export(w io.Writer, rec *Recording, format string) error {
	switch format {
	case "table", "":
		return WriteTable(w, rec)
	case "csv":
		return WriteCSV(w, rec)
	case "json":
		return WriteJSON(w, rec)
	default:
		return fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, format, strings.Join(Formats, ", "))
	}
}

func ms(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10)
}

func WriteCSV(w io.Writer, rec *Recording) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"at_ms", "phase", "shown", "total", "done", "displayed"}); err != nil {
		return err
	}
	for _, f := range rec.Frames {
		row := []string{
			ms(f.At),
			f.PhaseName,
			strconv.Itoa(f.Shown),
			strconv.Itoa(f.Total),
			strconv.FormatBool(f.Done),
			f.Displayed,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type jsonFrame struct {
	At        int64  `json:"at_ms"`
	Phase     string `json:"phase"`
	Shown     int    `json:"shown"`
	Total     int    `json:"total"`
	Done      bool   `json:"done"`
	Displayed string `json:"displayed"`
}

type jsonRecording struct {
	TypingDelay int64       `json:"typing_delay_ms"`
	Interval    int64       `json:"tick_interval_ms"`
	Step        int         `json:"chars_per_tick"`
	Frames      []jsonFrame `json:"frames"`
}

func WriteJSON(w io.Writer, rec *Recording) error {
	out := jsonRecording{
		TypingDelay: rec.TypingDelay.Milliseconds(),
		Interval:    rec.Interval.Milliseconds(),
		Step:        rec.Step,
		Frames:      make([]jsonFrame, len(rec.Frames)),
	}
	for i, f := range rec.Frames {
		out.Frames[i] = jsonFrame{
			At:        f.At.Milliseconds(),
			Phase:     f.PhaseName,
			Shown:     f.Shown,
			Total:     f.Total,
			Done:      f.Done,
			Displayed: f.Displayed,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// tailWidth is how many trailing runes of the prefix the table shows.
const tailWidth = 32

func WriteTable(w io.Writer, rec *Recording) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "AT(ms)\tPHASE\tSHOWN\tTAIL")
	for _, f := range rec.Frames {
		fmt.Fprintf(tw, "%s\t%s\t%d/%d\t%s\n", ms(f.At), f.PhaseName, f.Shown, f.Total, tail(f.Displayed))
	}
	return tw.Flush()
}

func tail(s string) string {
	s = strings.ReplaceAll(s, "\n", "⏎")
	r := []rune(s)
	if len(r) > tailWidth {
		return "…" + string(r[len(r)-tailWidth:])
	}
	return s
}
