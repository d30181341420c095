package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/su-ri-ya/littlechampions/core/student"
	"github.com/su-ri-ya/littlechampions/services/spreadsheet"
)

// importStudents runs a spreadsheet through the import and reports every row.
func (cli *commandLine) importStudents(path string) error {
	format, err := spreadsheet.FormatOf(path)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := spreadsheet.ReadStudents(f, format, cli.studentSvc.ImportMaxRows())
	if err != nil {
		return err
	}
	res, err := cli.studentSvc.Import(rows)
	if err != nil {
		return err
	}

	if isTerminalFunc() {
		err = cli.printTable(res)
	} else {
		err = cli.printCSV(res)
	}
	if err != nil {
		return err
	}
	if res.Skipped > 0 {
		return errRowsSkipped
	}
	return nil
}

func (cli *commandLine) printTable(res student.ImportResult) error {
	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LINE\tNAME\tRESULT")
	for _, s := range res.Students {
		fmt.Fprintf(w, "%d\t%s\timported as %s\n", s.Line, s.Name, s.ID)
	}
	for _, re := range res.Rejected {
		fmt.Fprintf(w, "%d\t%s\t%s\n", re.Line, re.Name, re.Reason)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(cli.out, "\n%d imported, %d skipped\n", res.Imported, res.Skipped)
	return err
}

func (cli *commandLine) printCSV(res student.ImportResult) error {
	w := csv.NewWriter(cli.out)
	records := [][]string{{"line", "name", "status", "reason"}}
	for _, s := range res.Students {
		records = append(records, []string{strconv.Itoa(s.Line), s.Name, "imported", ""})
	}
	for _, re := range res.Rejected {
		records = append(records, []string{strconv.Itoa(re.Line), re.Name, "skipped", re.Reason})
	}
	return w.WriteAll(records)
}

func (cli *commandLine) writeTemplate(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := spreadsheet.WriteTemplate(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "template written to %s\n", path)
	return nil
}
