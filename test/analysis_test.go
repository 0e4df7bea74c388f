//go:build e2e

package test

import (
	"slices"

	"github.com/lerenn/cppcheck-go/pkg/config"
	"github.com/lerenn/cppcheck-go/pkg/diagnostic"
	"github.com/lerenn/cppcheck-go/pkg/usage"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gstruct"
)

var _ = Describe("Analysis", func() {
	It("lists the project sources", func() {
		Expect(sourcesOf("testdata/project")).To(Equal([]string{
			"testdata/project/main.c",
			"testdata/project/shapes.cpp",
			"testdata/project/util.c",
		}))
	})

	DescribeTable("Reports the unused free functions of the project",
		func(jobs int, reverse bool) {
			expectedOutput := "[testdata/project/shapes.cpp:18]: (style) The function 'square_helper' is never used\n" +
				"[testdata/project/util.c:14]: (style) The function 'unused_helper' is never used\n"

			files := sourcesOf("testdata/project")
			if reverse {
				By("Running in reverse order")
				slices.Reverse(files)
			}

			res := analyze(withJobs(jobs), files...)
			Expect(res.text).To(Equal(expectedOutput))
			Expect(res.count).To(Equal(2))
		},
		Entry("Sequential", 1, false),
		Entry("Sequential reversed", 1, true),
		Entry("Parallel", 4, false),
		Entry("Parallel reversed", 4, true),
	)

	It("reports progress for every file", func() {
		res := analyze(config.Default(), sourcesOf("testdata/project")...)

		Expect(res.progress).To(Equal([]string{
			"Checking testdata/project/main.c...",
			"1/3 files checked 33% done",
			"Checking testdata/project/shapes.cpp...",
			"2/3 files checked 66% done",
			"Checking testdata/project/util.c...",
			"3/3 files checked 100% done",
		}))
	})

	It("counts functions referenced by value or through a macro as used", func() {
		res := analyze(config.Default(), "testdata/references/references.c")

		Expect(res.text).To(Equal(
			"[testdata/references/references.c:13]: (style) The function 'forgotten' is never used\n"))
		Expect(res.count).To(Equal(1))
	})

	It("never reports a name defined in two files", func() {
		res := analyze(config.Default(), sourcesOf("testdata/ambiguous")...)

		Expect(res.findings).To(BeEmpty())
		Expect(res.count).To(BeZero())
	})

	It("reports the unused function once the defining file is checked alone", func() {
		res := analyze(config.Default(), "testdata/ambiguous/first.c")

		Expect(res.findings).To(ConsistOf(MatchAllFields(Fields{
			"Check":    Equal(usage.CheckName),
			"Severity": Equal(diagnostic.SeverityStyle),
			"Message":  Equal("The function 'init' is never used"),
			"File":     Equal("testdata/ambiguous/first.c"),
			"Line":     Equal(1),
		})))
	})

	It("runs every check over a file", func() {
		res := analyze(config.Default(), "testdata/defects/defects.c")

		Expect(res.text).To(Equal(
			"[testdata/defects/defects.c:5]: (warning) Found 'gets'. You should use 'fgets' instead\n" +
				"[testdata/defects/defects.c:6]: (style) Redundant condition. It is safe to deallocate a NULL pointer\n" +
				"[testdata/defects/defects.c:7]: (error) Division by zero\n" +
				"[testdata/defects/defects.c:3]: (style) The function 'read_line' is never used\n",
		))
	})

	DescribeTable("Filters by severity",
		func(severity diagnostic.Severity, expected int) {
			cfg := config.Default()
			cfg.Severity = severity

			res := analyze(cfg, "testdata/defects/defects.c")
			Expect(res.count).To(Equal(expected))
			Expect(res.findings).To(HaveLen(expected))
		},
		Entry("style", diagnostic.SeverityStyle, 4),
		Entry("warning", diagnostic.SeverityWarning, 2),
		Entry("error", diagnostic.SeverityError, 1),
	)

	It("only runs the enabled checks", func() {
		cfg := config.Default()
		cfg.Enable = []string{usage.CheckName}

		res := analyze(cfg, "testdata/defects/defects.c")
		Expect(res.findings).To(HaveExactElements(
			HaveField("Message", "The function 'read_line' is never used"),
		))
	})
})
