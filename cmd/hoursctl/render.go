package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/barbercloud/barbercloud/internal/domain"
	"github.com/barbercloud/barbercloud/internal/service/workinghours"
)

// renderTemplate печатает неделю: день, статус и пронумерованные диапазоны
func renderTemplate(out io.Writer, template domain.WeeklyTemplate) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, day := range domain.AllWeekdays() {
		ranges := workinghours.SortedRanges(template, day)

		parts := make([]string, len(ranges))
		for i, r := range ranges {
			parts[i] = fmt.Sprintf("[%d] %s-%s", i+1, r.StartTime, r.EndTime)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", day.Label(), workinghours.DayStatusLabel(template, day), strings.Join(parts, "  "))
	}
	_ = w.Flush()
}
