// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/MKhiriev/hazard-keeper/models"
)

var (
	okMark      = color.New(color.FgGreen).SprintFunc()
	warnMark    = color.New(color.FgYellow).SprintFunc()
	overdueMark = color.New(color.FgRed, color.Bold).SprintFunc()
	lockedMark  = color.New(color.FgYellow).SprintFunc()
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func dash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func printHazards(w io.Writer, hazards []models.Hazard) error {
	if len(hazards) == 0 {
		_, err := fmt.Fprintln(w, "No hazards found")
		return err
	}

	t := newTable(w)
	fmt.Fprintln(t, "ID\tNUMBER\tAREA\tTYPE\tRESPONSIBLE\tDEADLINE\tPROGRESS\tHANDLER\tOVERDUE\tLOCK")
	for _, h := range hazards {
		overdue := "-"
		if h.Overdue() {
			overdue = overdueMark(strconv.Itoa(h.OverdueDays) + "d")
		}
		lock := "-"
		if h.ManualLock {
			lock = lockedMark("locked")
		}
		fmt.Fprintf(t, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			h.ID, dash(h.SubProcessNumber), dash(h.FactoryArea), dash(h.HazardType),
			dash(h.ResponsiblePerson), dash(h.Deadline), dash(h.Progress), dash(h.CurrentHandler),
			overdue, lock)
	}
	return t.Flush()
}

func printPersonnel(w io.Writer, personnel []models.Personnel) error {
	if len(personnel) == 0 {
		_, err := fmt.Fprintln(w, "No personnel found")
		return err
	}

	t := newTable(w)
	fmt.Fprintln(t, "ID\tNAME\tDEPARTMENT\tSTART\tEND")
	for _, p := range personnel {
		end := p.EndDate
		if p.Active() {
			end = "至今"
		}
		fmt.Fprintf(t, "%d\t%s\t%s\t%s\t%s\n", p.ID, dash(p.Name), dash(p.Department), dash(p.StartDate), end)
	}
	return t.Flush()
}

func printUsers(w io.Writer, users []models.User) error {
	if len(users) == 0 {
		_, err := fmt.Fprintln(w, "No users found")
		return err
	}

	t := newTable(w)
	fmt.Fprintln(t, "ID\tUSERNAME\tROLE")
	for _, u := range users {
		fmt.Fprintf(t, "%d\t%s\t%s\n", u.ID, u.Username, u.Role)
	}
	return t.Flush()
}
