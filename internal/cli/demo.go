package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bjaus/termtable"
)

type demo struct {
	title string
	build func() (*termtable.Table, error)
}

var demos = []demo{
	{"Bot Status Table (Default Style)", botStatusDemo},
	{"Simple Table", simpleDemo},
	{"Unicode Style", unicodeDemo},
	{"Center Alignment", centerDemo},
	{"Color Support", colorDemo},
	{"Per-Cell Alignment Override", cellAlignDemo},
	{"Minimal Style with Minimum Width", minimalDemo},
}

func (a *App) newDemoCmd() *cobra.Command {
	var color ColorMode
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print sample tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, enabled := output(cmd.OutOrStdout(), color)
			return a.runDemos(out, enabled)
		},
	}
	cmd.Flags().Var(&color, "color", "color mode: auto, always or never")
	return cmd
}

func (a *App) runDemos(w io.Writer, color bool) error {
	for i, d := range demos {
		t, err := d.build()
		if err != nil {
			return fmt.Errorf("demo %q: %w", d.title, err)
		}
		t.SetLogger(a.log)
		if i > 0 {
			if _, err := io.WriteString(w, "\n\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "=== Demo %d: %s ===\n\n", i+1, d.title); err != nil {
			return err
		}
		if err := t.RenderTo(w, color); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func botStatusDemo() (*termtable.Table, error) {
	t, err := termtable.NewWithColumns(
		termtable.NewColumn("Bot Name", termtable.AlignLeft),
		termtable.NewColumn("Date Time", termtable.AlignCenter),
		termtable.NewColumn("Remaining Count", termtable.AlignRight),
		termtable.NewColumn("Total Count", termtable.AlignRight),
		termtable.NewColumn("Progress", termtable.AlignRight),
		termtable.NewColumn("Filename", termtable.AlignRight),
		termtable.NewColumn("Stopped", termtable.AlignRight),
	)
	if err != nil {
		return nil, err
	}
	bots := []struct {
		name      string
		at        string
		remaining int
		total     int
		file      string
	}{
		{"Bot [00]", "02/11/2026 02:29:50", 256, 303, "profiledata/prd/tokyo-1/profiledata_20260205T193513_game-server-000-qpzb6.zip"},
		{"Bot [01]", "02/11/2026 02:29:46", 152, 310, "profiledata/prd/tokyo-1/profiledata_20260205T193815_game-server-000-bftuz.zip"},
		{"Bot [02]", "02/11/2026 02:29:51", 1305, 1405, "profiledata/prd/tokyo-1/profiledata_20260205T193150_game-server-000-7sxql.zip"},
		{"Bot [03]", "02/11/2026 02:29:32", 93, 138, "profiledata/prd/tokyo-2/profiledata_20260205T105723_game-server-030-femt7.zip"},
		{"Bot [04]", "02/11/2026 02:29:46", 156, 255, "profiledata/prd/tokyo-1/profiledata_20260205T193937_game-server-000-if7hw.zip"},
	}
	for _, b := range bots {
		pct := b.remaining * 100 / b.total
		t.AddRow(b.name, b.at, b.remaining, b.total, fmt.Sprintf("%d%%", pct), b.file, "Stopped = False")
	}
	return t, nil
}

func simpleDemo() (*termtable.Table, error) {
	t, err := termtable.New("Name", "Age", "City")
	if err != nil {
		return nil, err
	}
	t.AddRow("Alice", 30, "Seoul")
	t.AddRow("Bob", 25, "Tokyo")
	t.AddRow("Charlie", 35, "New York")
	if err := t.SetAlignment(1, termtable.AlignRight); err != nil {
		return nil, err
	}
	if err := t.SetAlignment(2, termtable.AlignCenter); err != nil {
		return nil, err
	}
	return t, nil
}

func unicodeDemo() (*termtable.Table, error) {
	t, err := termtable.New("ID", "Product", "Price", "Stock")
	if err != nil {
		return nil, err
	}
	t.SetStyle(termtable.StyleUnicode)
	for _, i := range []int{0, 2, 3} {
		if err := t.SetAlignment(i, termtable.AlignRight); err != nil {
			return nil, err
		}
	}
	t.AddRow(1, "Keyboard", "$49.99", 150)
	t.AddRow(2, "Mouse", "$29.99", 300)
	t.AddRow(3, "Monitor", "$399.99", 45)
	t.AddRow(4, "USB Cable", "$9.99", 1200)
	return t, nil
}

func centerDemo() (*termtable.Table, error) {
	t, err := termtable.NewWithColumns(
		termtable.NewColumn("Status", termtable.AlignCenter),
		termtable.NewColumn("Count", termtable.AlignCenter),
		termtable.NewColumn("Percentage", termtable.AlignCenter),
	)
	if err != nil {
		return nil, err
	}
	t.AddRow("Success", 1234, "82.3%")
	t.AddRow("Failed", 156, "10.4%")
	t.AddRow("Pending", 110, "7.3%")
	return t, nil
}

func colorDemo() (*termtable.Table, error) {
	t, err := termtable.New("Level", "Message", "Count")
	if err != nil {
		return nil, err
	}
	t.SetHeaderColor(termtable.Cyan)
	if err := t.SetColumnColor(0, termtable.Yellow); err != nil {
		return nil, err
	}
	if err := t.SetColumnColor(2, termtable.Green); err != nil {
		return nil, err
	}
	if err := t.SetAlignment(2, termtable.AlignRight); err != nil {
		return nil, err
	}
	t.AddRow("INFO", "Application started", 42)
	t.AddRow("WARN", "Memory usage high", 7)
	t.AddRow("ERROR", "Connection timeout", 3)
	return t, nil
}

func cellAlignDemo() (*termtable.Table, error) {
	t, err := termtable.NewWithColumns(
		termtable.NewColumn("Name", termtable.AlignLeft),
		termtable.NewColumn("Score", termtable.AlignRight),
		termtable.NewColumn("Grade", termtable.AlignRight),
		termtable.NewColumn("Note", termtable.AlignLeft),
	)
	if err != nil {
		return nil, err
	}
	t.AddRow("Alice", 95, "A+", "Excellent")
	t.AddRow("Bob", termtable.AlignedCell(72, termtable.AlignCenter), "B", termtable.AlignedCell("Needs review", termtable.AlignCenter))
	t.AddRow("Charlie", 88, termtable.AlignedCell("A", termtable.AlignLeft), "Good")
	t.AddRow(termtable.AlignedCell("Diana", termtable.AlignCenter), 91, "A", termtable.AlignedCell("Great", termtable.AlignRight))
	return t, nil
}

func minimalDemo() (*termtable.Table, error) {
	t, err := termtable.New("Key", "Value")
	if err != nil {
		return nil, err
	}
	t.SetStyle(termtable.StyleMinimal)
	if err := t.SetMinWidth(0, 12); err != nil {
		return nil, err
	}
	t.AddRow("Version", "1.0.0")
	t.AddRow("Author", "termtable")
	return t, nil
}
