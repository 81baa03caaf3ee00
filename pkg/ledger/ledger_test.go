package ledger

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		minor int64
		want  string
	}{
		{4567, "45.67"},
		{1234, "12.34"},
		{5, "0.05"},
		{100, "1.00"},
		{250000, "2500.00"},
		{0, "0.00"},
	}

	for _, tt := range tests {
		if got := FormatAmount(tt.minor); got != tt.want {
			t.Errorf("FormatAmount(%d) = %q, want %q", tt.minor, got, tt.want)
		}
	}
}

func TestFormatEntryWithComment(t *testing.T) {
	entry := Entry{
		Date:        date(2024, time.January, 5),
		Name:        "Amazon",
		Credited:    "Expenses:Shopping",
		Debited:     "Checking",
		AmountMinor: 4567,
		Comment:     "online order",
	}

	want := "2024/01/05 Amazon    ; online order\n" +
		"    Expenses:Shopping    $45.67\n" +
		"    Checking\n"

	if got := FormatEntry(entry); got != want {
		t.Errorf("FormatEntry mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatEntryWithoutComment(t *testing.T) {
	entry := Entry{
		Date:        date(2024, time.March, 1),
		Name:        "Salary",
		Credited:    "Checking",
		Debited:     "Income:Salary",
		AmountMinor: 250000,
	}

	want := "2024/03/01 Salary\n" +
		"    Checking    $2500.00\n" +
		"    Income:Salary\n"

	if got := FormatEntry(entry); got != want {
		t.Errorf("FormatEntry mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatSeparatesEntriesWithBlankLine(t *testing.T) {
	entries := []Entry{
		{Date: date(2024, time.January, 5), Name: "A", Credited: "X", Debited: "Y", AmountMinor: 100},
		{Date: date(2024, time.January, 6), Name: "B", Credited: "X", Debited: "Y", AmountMinor: 200},
	}

	want := "2024/01/05 A\n    X    $1.00\n    Y\n" +
		"\n" +
		"2024/01/06 B\n    X    $2.00\n    Y\n"

	if got := Format(entries); got != want {
		t.Errorf("Format mismatch:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestFileRepositoryWriteAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "ledger.txt")
	repo := NewFileRepository(path)

	entries := []Entry{
		{Date: date(2024, time.January, 5), Name: "A", Credited: "X", Debited: "Y", AmountMinor: 100},
	}
	if err := repo.WriteAll(entries); err != nil {
		t.Fatalf("WriteAll returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(data) != Format(entries) {
		t.Errorf("file contents mismatch:\n%s", data)
	}

	// A second write replaces the file, it does not append.
	if err := repo.WriteAll(entries); err != nil {
		t.Fatalf("WriteAll returned error: %v", err)
	}
	data, err = os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(data) != Format(entries) {
		t.Errorf("second write appended instead of overwriting:\n%s", data)
	}
}
