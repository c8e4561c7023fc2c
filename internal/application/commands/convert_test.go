package commands

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"obotab/internal/adapters/fetch"
	"obotab/internal/domain"
)

const convertFixture = `format-version: 1.2

[Term]
id: HP:0000001
name: All

[Term]
id: HP:0000118
name: Phenotypic abnormality
is_a: HP:0000001

[Term]
id: HP:0000478
name: Abnormality of the eye
is_a: HP:0000118
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.obo")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConvertCommand_WritesTSVToStdout(t *testing.T) {
	input := writeFixture(t, convertFixture)

	var out strings.Builder
	cmd := NewConvertCommand(fetch.NewResolver(), zap.NewNop(), input)
	cmd.Stdout = &out

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.RootID != "HP:0000001" {
		t.Errorf("expected resolved root HP:0000001, got %s", result.RootID)
	}
	if result.Terms != 3 {
		t.Errorf("expected 3 terms, got %d", result.Terms)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "id\tname") {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[0], "parent_ids") {
		t.Errorf("is_a not renamed in header: %q", lines[0])
	}
}

func TestConvertCommand_WritesFile(t *testing.T) {
	input := writeFixture(t, convertFixture)
	output := filepath.Join(t.TempDir(), "out.tsv")

	cmd := NewConvertCommand(fetch.NewResolver(), zap.NewNop(), input)
	cmd.OutputPath = output

	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	if !strings.Contains(string(data), "HP:0000478") {
		t.Error("output file missing term rows")
	}
}

func TestConvertCommand_ExplicitRootRestricts(t *testing.T) {
	input := writeFixture(t, convertFixture)

	var out strings.Builder
	cmd := NewConvertCommand(fetch.NewResolver(), zap.NewNop(), input)
	cmd.Stdout = &out
	cmd.RootID = "HP:0000118"

	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if strings.Contains(out.String(), "HP:0000001\t") {
		t.Error("term above the requested root appeared in output")
	}
}

func TestConvertCommand_UnknownRoot(t *testing.T) {
	input := writeFixture(t, convertFixture)

	cmd := NewConvertCommand(fetch.NewResolver(), zap.NewNop(), input)
	cmd.RootID = "HP:9999999"

	_, err := cmd.Execute(context.Background())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected lookup error, got %v", err)
	}
}

func TestConvertCommand_CategoryColumn(t *testing.T) {
	input := writeFixture(t, convertFixture)

	var out strings.Builder
	cmd := NewConvertCommand(fetch.NewResolver(), zap.NewNop(), input)
	cmd.Stdout = &out
	cmd.AddCategory = true

	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	header := strings.SplitN(out.String(), "\n", 2)[0]
	if !strings.Contains(header, "category_id") || !strings.Contains(header, "category_name") {
		t.Errorf("category columns missing from header: %q", header)
	}
	if !strings.Contains(out.String(), "Phenotypic abnormality") {
		t.Error("expected category name in output")
	}
}

func TestConvertCommand_MissingInput(t *testing.T) {
	cmd := NewConvertCommand(fetch.NewResolver(), zap.NewNop(), "")

	_, err := cmd.Execute(context.Background())
	if err == nil {
		t.Fatal("expected validation error for empty input")
	}
}

func TestDeriveOutputPath(t *testing.T) {
	cases := map[string]string{
		"hp.obo":                                "hp.tsv",
		"/data/sources/go.obo":                  "go.tsv",
		"http://purl.obolibrary.org/obo/hp.obo": "hp.tsv",
		"plain":                                 "plain.tsv",
	}
	for input, want := range cases {
		if got := deriveOutputPath(input); got != want {
			t.Errorf("deriveOutputPath(%q) = %q, want %q", input, got, want)
		}
	}
}
