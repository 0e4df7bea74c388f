//go:build e2e

package test

import (
	"bytes"
	"context"

	"github.com/lerenn/cppcheck-go/pkg/config"
	"github.com/lerenn/cppcheck-go/pkg/cppcheck"
	"github.com/lerenn/cppcheck-go/pkg/dependencies"
	"github.com/lerenn/cppcheck-go/pkg/diagnostic"
	"github.com/lerenn/cppcheck-go/pkg/report"

	. "github.com/onsi/gomega"
)

// result holds the output of one analysis run.
type result struct {
	count    int
	findings []diagnostic.Diagnostic
	progress []string
	text     string
}

// analyze runs the whole analysis pipeline over files with cfg.
func analyze(cfg config.Config, files ...string) result {
	collector := report.NewCollector()
	c, err := cppcheck.NewCppCheck(cppcheck.NewCppCheckParams{
		Sink:         collector,
		Dependencies: dependencies.New(),
	})
	Expect(err).To(Succeed())
	Expect(c.Configure(cfg)).To(Succeed())
	for _, f := range files {
		Expect(c.Enqueue(f)).To(Succeed())
	}

	count, err := c.Run(context.Background())
	Expect(err).To(Succeed())

	var text bytes.Buffer
	for _, d := range collector.Findings() {
		text.WriteString(d.String() + "\n")
	}

	return result{
		count:    count,
		findings: collector.Findings(),
		progress: collector.Progress(),
		text:     text.String(),
	}
}

// sourcesOf lists the sources below dir the way the command line does.
func sourcesOf(dir string) []string {
	files, err := dependencies.New().FS.SourceFiles(dir)
	Expect(err).To(Succeed())
	return files
}

func withJobs(jobs int) config.Config {
	cfg := config.Default()
	cfg.Jobs = jobs
	return cfg
}
