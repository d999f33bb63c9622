package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/td0m/vacation/pkg/planner"
)

// printSummary writes a plain text overview of the viewed year, used when
// stdout is not a terminal
func printSummary(w io.Writer, s planner.Snapshot) error {
	over := ""
	if s.OverBudget() {
		over = " (over budget)"
	}
	if _, err := fmt.Fprintf(w, "Calendar %d\nVacation days: %d / %d%s\n\n", s.Year, s.VacationDaysUsed, s.TotalVacationDays, over); err != nil {
		return err
	}
	for _, l := range s.Layers {
		dates := append([]string{}, s.YearDates[l.ID]...)
		sort.Strings(dates)
		hidden := ""
		if !l.Active {
			hidden = " [hidden]"
		}
		if _, err := fmt.Fprintf(w, "%s %s%s: %d\n", l.Color, l.Name, hidden, len(dates)); err != nil {
			return err
		}
		for _, d := range dates {
			if _, err := fmt.Fprintf(w, "  %s\n", d); err != nil {
				return err
			}
		}
	}
	return nil
}
