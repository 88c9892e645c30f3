package gen_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// runExampleIntegrationTest regenerates examples/<exampleName> through the
// CLI and runs the example's own tests against the fresh output.
func runExampleIntegrationTest(t *testing.T, exampleName string) {
	t.Helper()

	if testing.Short() {
		t.Skip("runs the go command")
	}

	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	if err != nil {
		t.Fatalf("repo root: %v", err)
	}

	exampleDir := filepath.Join(repoRoot, "examples", exampleName)

	cmd := exec.CommandContext(t.Context(), "go", "run", "./cmd/seqbuf-gen", "gen",
		"-m", filepath.Join(exampleDir, "seqbuf.yaml"),
		"-o", exampleDir,
	)
	cmd.Dir = repoRoot

	b, err := cmd.CombinedOutput()
	if err != nil {
		// Best-effort: dump any sidecar for easier debugging.
		if matches, globErr := filepath.Glob(filepath.Join(exampleDir, "*.unformatted.go")); globErr == nil {
			for _, p := range matches {
				if fb, rerr := os.ReadFile(p); rerr == nil {
					t.Logf("unformatted file %s:\n%s", p, string(fb))
				}
			}
		}

		t.Fatalf("gen failed: %v\n%s", err, string(b))
	}

	run := exec.CommandContext(t.Context(), "go", "test", "./examples/"+exampleName, "-count=1")
	run.Dir = repoRoot

	b, err = run.CombinedOutput()
	if err != nil {
		t.Fatalf("example tests failed: %v\n%s", err, string(b))
	}
}

func TestGenerate_BasicExample(t *testing.T) {
	runExampleIntegrationTest(t, "basic")
}
