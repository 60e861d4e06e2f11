package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/travigo/rasp/pkg/rasp"
)

func newTabWriter(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
}

func writeSegmentsText(out io.Writer, segments []rasp.Segment) error {
	rows, err := SegmentRows(segments)
	if err != nil {
		return err
	}

	w := newTabWriter(out)
	fmt.Fprintln(w, "NUMBER\tTYPE\tFROM\tTO\tDEPARTURE\tARRIVAL\tDURATION\tPRICE")
	for i, row := range rows {
		price := "-"
		if row.Price != "" {
			price = row.Price + " " + row.Currency
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			orDash(row.Number), row.TransportType, row.FromTitle, row.ToTitle,
			row.Departure, row.Arrival, segments[i].DurationValue(), price)
	}
	return w.Flush()
}

func writeSchedulesText(out io.Writer, results []*rasp.ScheduleResult) error {
	rows, err := ScheduleRows(results)
	if err != nil {
		return err
	}

	w := newTabWriter(out)
	fmt.Fprintln(w, "STATION\tNUMBER\tTITLE\tDEPARTURE\tARRIVAL\tPLATFORM\tDAYS")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			row.StationCode, orDash(row.Number), row.Title,
			orDash(row.Departure), orDash(row.Arrival), orDash(row.Platform), row.Days)
	}
	return w.Flush()
}

func writeStationsText(out io.Writer, stations []rasp.FlatStation) error {
	w := newTabWriter(out)
	fmt.Fprintln(w, "CODE\tTITLE\tTYPE\tSETTLEMENT\tREGION\tCOUNTRY")
	for _, station := range stations {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			station.Codes.YandexCode, station.Title, station.TransportType,
			orDash(station.Settlement), orDash(station.Region), station.Country)
	}
	return w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
