package browser

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/san-kum/arcview/internal/arc"
	"github.com/san-kum/arcview/internal/viz"
)

var _ = Describe("Display", func() {
	var (
		out    *bytes.Buffer
		shower *recordingShower
		b      *Browser
	)

	BeforeEach(func() {
		out = &bytes.Buffer{}
		shower = &recordingShower{}
		b = New(arc.Dataset{}, arc.Dataset{}, &scriptedPrompter{}, shower, Options{Out: out, Logger: zap.NewNop()})
	})

	It("shows every training pair, then the test challenge, then the solution", func() {
		Expect(b.Display(mustRecord("t.json", taskJSON), 7)).To(Succeed())

		Expect(shower.titles()).To(Equal([]string{
			"Problem 7: Training Example #1",
			"Problem 7: Training Example #2",
			"Problem 7: Test Example #1",
			"Problem 7: Test Example #1 Solution",
		}))

		train := shower.figures[0]
		Expect(train.Panels).To(HaveLen(2))
		Expect(train.Panels[0].Title).To(Equal("Training Example #1"))
		Expect(train.Panels[0].Grid).To(Equal(arc.Grid{{0, 1}, {2, 3}}))
		Expect(train.Panels[1].Title).To(Equal("Solution #1"))

		challenge := shower.figures[2]
		Expect(challenge.Panels).To(HaveLen(1))
		Expect(challenge.Panels[0].Title).To(Equal("Solve This (Test Example #1)"))

		solution := shower.figures[3]
		Expect(solution.Panels).To(HaveLen(2))
		Expect(solution.Panels[1].Title).To(Equal("The Solution (Test Example #1)"))
		Expect(solution.Panels[1].Grid).To(Equal(arc.Grid{{7, 6}}))
	})

	It("prints text grids input first, in pair order, ignoring extra test pairs", func() {
		Expect(b.Display(mustRecord("t.json", taskJSON), 7)).To(Succeed())
		text := out.String()

		order := []string{
			"PROBLEM NUMBER 7",
			`raw data for "example" parameter: {"train":`,
			"PROBLEM 7: Training (i.e. example) Input Grid #1 (Grid 2x2):\n[0, 1]\n[2, 3]\n",
			"PROBLEM 7: Training (i.e., example solution) Output Grid #1 (Grid 2x2):\n[3, 2]\n[1, 0]\n",
			"PROBLEM 7: Training (i.e. example) Input Grid #2 (Grid 1x1):\n[4]\n",
			"PROBLEM 7:Test Input Grid #1 (Grid 1x2):\n[6, 7]\n",
			"PROBLEM 7:Test Output Grid #1 (Grid 1x2):\n[7, 6]\n",
		}
		pos := 0
		for _, want := range order {
			i := strings.Index(text[pos:], want)
			Expect(i).To(BeNumerically(">=", 0), "missing or out of order: %q", want)
			pos += i + len(want)
		}
		Expect(text).NotTo(ContainSubstring("\n[8]\n"))
		Expect(text).To(ContainSubstring("color values: black 0, blue 1"))
	})

	It("skips the test figures when the test list is empty", func() {
		Expect(b.Display(mustRecord("t.json", `{"train": [{"input": [[1]], "output": [[2]]}], "test": []}`), 0)).To(Succeed())
		Expect(shower.figures).To(HaveLen(1))
	})

	It("shows only the test figures when there is no train key", func() {
		Expect(b.Display(mustRecord("t.json", `{"test": [{"input": [[1]], "output": [[2]]}]}`), 0)).To(Succeed())
		Expect(shower.titles()).To(Equal([]string{"Problem 0: Test Example #1", "Problem 0: Test Example #1 Solution"}))
	})

	It("prints only the raw data for a record that is not a mapping", func() {
		Expect(b.Display(mustRecord("t.json", `[1, 2]`), 4)).To(Succeed())
		Expect(shower.figures).To(BeEmpty())
		Expect(out.String()).To(ContainSubstring(`raw data for "example" parameter: [1,2]`))
	})

	It("propagates an empty grid as an error", func() {
		err := b.Display(mustRecord("t.json", `{"train": [{"input": [], "output": [[1]]}]}`), 0)
		Expect(err).To(MatchError(arc.ErrEmptyGrid))
		Expect(shower.figures).To(BeEmpty())
	})

	It("stops at the first out-of-range cell", func() {
		err := b.Display(mustRecord("t.json", `{"train": [{"input": [[0]], "output": [[-1]]}], "test": [{"input": [[1]], "output": [[1]]}]}`), 0)
		Expect(err).To(MatchError(arc.ErrColorOutOfRange))
		Expect(shower.figures).To(BeEmpty())
	})

	It("renders the instructions through glamour when asked", func() {
		b = New(arc.Dataset{}, arc.Dataset{}, &scriptedPrompter{}, shower, Options{Out: out, Markdown: true, Text: viz.TextOptions{}})
		Expect(b.Display(mustRecord("t.json", `{"test": []}`), 0)).To(Succeed())
		Expect(out.String()).To(ContainSubstring("PROBLEM NUMBER 0"))
		Expect(out.String()).To(ContainSubstring("raw data"))
	})
})
