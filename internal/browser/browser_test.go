package browser

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/san-kum/arcview/internal/arc"
)

var _ = Describe("Browser", func() {
	var (
		out        *bytes.Buffer
		prompter   *scriptedPrompter
		shower     *recordingShower
		training   arc.Dataset
		evaluation arc.Dataset
	)

	run := func(answers ...string) error {
		prompter = &scriptedPrompter{answers: answers}
		b := New(training, evaluation, prompter, shower, Options{Out: out, Logger: zap.NewNop()})
		return b.Run()
	}

	BeforeEach(func() {
		out = &bytes.Buffer{}
		shower = &recordingShower{}
		training = dataset("training", 3)
		evaluation = dataset("evaluation", 2)
	})

	It("quits at the index prompt without rendering", func() {
		Expect(run("", "q")).To(Succeed())
		Expect(shower.figures).To(BeEmpty())
		Expect(prompter.asked).To(HaveLen(2))
	})

	It("accepts an upper-case quit token", func() {
		Expect(run("e", "Q")).To(Succeed())
		Expect(shower.figures).To(BeEmpty())
	})

	It("defaults to the training dataset", func() {
		Expect(run("anything", "q")).To(Succeed())
		Expect(out.String()).To(ContainSubstring("training files has been chosen"))
		Expect(out.String()).To(ContainSubstring("Loaded 3 problems"))
	})

	It("selects the evaluation dataset with the alternate token", func() {
		Expect(run("e", "q")).To(Succeed())
		Expect(out.String()).To(ContainSubstring("evaluation files has been chosen"))
		Expect(out.String()).To(ContainSubstring("(0-1)"))
	})

	It("re-prompts on non-numeric input without touching the datasets", func() {
		Expect(run("", "abc", "", "q")).To(Succeed())
		Expect(out.String()).To(ContainSubstring("Please enter a valid number."))
		Expect(shower.figures).To(BeEmpty())
		Expect(prompter.asked).To(HaveLen(4))
		Expect(training.Len()).To(Equal(3))
		Expect(evaluation.Len()).To(Equal(2))
	})

	It("rejects an index equal to the dataset length", func() {
		Expect(run("", "3", "", "q")).To(Succeed())
		Expect(out.String()).To(ContainSubstring("Invalid problem number selected. Please enter a number between 0 and 2."))
		Expect(shower.figures).To(BeEmpty())
	})

	It("rejects negative indices", func() {
		Expect(run("e", "-1", "", "q")).To(Succeed())
		Expect(out.String()).To(ContainSubstring("between 0 and 1"))
		Expect(shower.figures).To(BeEmpty())
	})

	It("displays a valid index and asks for the dataset again", func() {
		Expect(run("", "2", "e", "q")).To(Succeed())
		Expect(out.String()).To(ContainSubstring("PROBLEM NUMBER 2"))
		Expect(shower.figures).To(HaveLen(4))
		Expect(prompter.asked).To(HaveLen(4))
		Expect(prompter.asked[2]).To(ContainSubstring("evaluation files press 'e'"))
	})

	It("tolerates surrounding spaces in the index", func() {
		Expect(run("", " 1 ", "", "q")).To(Succeed())
		Expect(out.String()).To(ContainSubstring("PROBLEM NUMBER 1"))
	})

	It("stops cleanly when input ends", func() {
		Expect(run("")).To(Succeed())
		Expect(shower.figures).To(BeEmpty())
	})

	It("returns rendering failures", func() {
		training.Records[0] = mustRecord("bad.json", `{"test": [{"input": [[10]], "output": [[0]]}]}`)
		err := run("", "0", "", "q")
		Expect(err).To(MatchError(arc.ErrColorOutOfRange))
	})
})
