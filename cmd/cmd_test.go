package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var testdata = filepath.Join("..", "internal", "design", "testdata")

func Test_designExec(t *testing.T) {
	out := filepath.Join(t.TempDir(), "primers")

	type args struct {
		args []string
	}
	tests := []struct {
		name  string
		args  args
		files []string
	}{
		{
			"end to end test",
			args{
				[]string{
					"design",
					filepath.Join(testdata, "genes.csv"),
					filepath.Join(testdata, "sample.gtf"),
					filepath.Join(testdata, "genome.fa"),
					"--out", out,
					"--mode", "population",
					"--sort",
				},
			},
			[]string{"g1.csv", "g3.csv"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RootCmd.SetArgs(tt.args.args)
			if err := RootCmd.Execute(); err != nil {
				t.Fatal(err)
			}
			for _, f := range tt.files {
				if _, err := os.Stat(filepath.Join(out, f)); err != nil {
					t.Errorf("design did not write %s: %v", f, err)
				}
			}
		})
	}
}

func Test_regionExec(t *testing.T) {
	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	defer RootCmd.SetOut(nil)

	RootCmd.SetArgs([]string{"region", "g1", "--gtf", filepath.Join(testdata, "sample.gtf")})
	if err := RootCmd.Execute(); err != nil {
		t.Fatal(err)
	}

	want := "g1\tchr1:100-150(+)\t50\t2\n"
	if buf.String() != want {
		t.Errorf("region printed %q, want %q", buf.String(), want)
	}

	RootCmd.SetArgs([]string{"region", "g2", "--gtf", filepath.Join(testdata, "sample.gtf")})
	if err := RootCmd.Execute(); err == nil || !strings.Contains(err.Error(), "no viable CDS region") {
		t.Errorf("region g2 error = %v", err)
	}
}

func Test_makeDocs(t *testing.T) {
	dir := t.TempDir()
	if err := makeDocs(RootCmd, dir); err != nil {
		t.Fatal(err)
	}

	page, err := os.ReadFile(filepath.Join(dir, "fisheye_design.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(page), "---\nlayout: default\ntitle: design\nparent: fisheye\n") {
		t.Errorf("fisheye_design.md front matter = %q", string(page[:80]))
	}
	if _, err := os.Stat(filepath.Join(dir, "fisheye_docs.md")); err == nil {
		t.Error("hidden docs command was documented")
	}
}

func Test_linkHandler(t *testing.T) {
	if got := linkHandler("fisheye.md"); got != "/" {
		t.Errorf("linkHandler(fisheye.md) = %s", got)
	}
	if got := linkHandler("fisheye_scan.md"); got != "fisheye_scan" {
		t.Errorf("linkHandler(fisheye_scan.md) = %s", got)
	}
}
