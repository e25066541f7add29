package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const testScene = `
name: demo
scale: 32
bodies:
  - name: crate
    fixtures:
      - shape: box
        halfWidth: 1
        halfHeight: 2
  - name: pit
    type: static
    position: [0, -10]
    fixtures:
      - shape: polygon
        vertices: [[-6, -4], [-2, -4], [-4, -1]]
      - shape: circle
        center: [-3, -3]
        radius: 0.5
`

func writeScene(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(testScene), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--env", filepath.Join(t.TempDir(), "none.env")))
	t.Cleanup(func() {
		sizeBody, sizeScale, sizeWatch = "", 0, false
		fixturesBody = ""
		largestCount, largestSmallest = 10, false
		for _, c := range rootCmd.Commands() {
			c.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
		}
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestSizeCommand(t *testing.T) {
	output, err := execute(t, "size", writeScene(t))
	if err != nil {
		t.Fatalf("size failed: %v", err)
	}

	for _, want := range []string{
		"Scene: demo",
		"Scale: 32",
		"crate (dynamic, 1 fixtures)",
		"Width:  2.000000 units",
		"Height: 4.000000 units",
		"Scaled: 64.000 x 128.000",
		// pit lies entirely in negative space: x -6 .. -2, y -4 .. -1
		"Bounds: (-6.000000, -4.000000) .. (-2.000000, -1.000000)",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestSizeCommandScaleFlag(t *testing.T) {
	output, err := execute(t, "size", writeScene(t), "--body", "crate", "--scale", "10")
	if err != nil {
		t.Fatalf("size failed: %v", err)
	}
	if !strings.Contains(output, "Scaled: 20.000 x 40.000") {
		t.Errorf("expected flag scale to win, got:\n%s", output)
	}
	if strings.Contains(output, "pit") {
		t.Errorf("expected only crate in output, got:\n%s", output)
	}
}

func TestSizeCommandNegativeScale(t *testing.T) {
	output, err := execute(t, "size", writeScene(t), "--body", "crate", "--scale", "-2")
	if err != nil {
		t.Fatalf("size failed: %v", err)
	}
	if !strings.Contains(output, "Scale: 2") || !strings.Contains(output, "Scaled: 4.000 x 8.000") {
		t.Errorf("expected negative scale applied by magnitude, got:\n%s", output)
	}
}

func TestSizeCommandZeroScale(t *testing.T) {
	if _, err := execute(t, "size", writeScene(t), "--scale", "0"); err == nil {
		t.Fatal("expected error for explicit zero scale")
	}
}

func TestSizeCommandUnknownBody(t *testing.T) {
	if _, err := execute(t, "size", writeScene(t), "--body", "ghost"); err == nil {
		t.Fatal("expected error for unknown body")
	}
}

func TestFixturesCommand(t *testing.T) {
	output, err := execute(t, "fixtures", writeScene(t), "--body", "pit")
	if err != nil {
		t.Fatalf("fixtures failed: %v", err)
	}
	if !strings.Contains(output, "polygon") || !strings.Contains(output, "circle") {
		t.Errorf("expected both fixtures listed, got:\n%s", output)
	}
	if strings.Index(output, "polygon") > strings.Index(output, "circle") {
		t.Errorf("expected fixtures in creation order, got:\n%s", output)
	}
}

func TestLargestCommand(t *testing.T) {
	output, err := execute(t, "largest", writeScene(t), "-n", "1")
	if err != nil {
		t.Fatalf("largest failed: %v", err)
	}
	// crate is 2 x 4 = 8, pit is 4 x 3 = 12
	if !strings.Contains(output, "Top 1 Largest Bodies") || !strings.Contains(output, "pit") {
		t.Errorf("expected pit ranked first, got:\n%s", output)
	}
}

func TestLargestCommandNegativeCount(t *testing.T) {
	if _, err := execute(t, "largest", writeScene(t), "-n", "-1"); err == nil {
		t.Fatal("expected error for negative count")
	}
}

func TestRenderCommand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out.png")
	if _, err := execute(t, "render", writeScene(t), "-o", target, "--width", "120", "--height", "80"); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("expected PNG to be written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected non-empty PNG")
	}
}

func TestCompleteBodyNames(t *testing.T) {
	names, directive := completeBodyNames(sizeCmd, []string{writeScene(t)}, "")
	if len(names) != 2 || names[0] != "crate" || names[1] != "pit" {
		t.Errorf("expected [crate pit], got %v", names)
	}
	if directive != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("unexpected directive %v", directive)
	}

	if _, directive := completeBodyNames(sizeCmd, []string{"missing.yaml"}, ""); directive != cobra.ShellCompDirectiveError {
		t.Errorf("expected error directive for missing file, got %v", directive)
	}
}
